// Package kernel wires the five core components into the
// foreground main loop and the two ISR entry points, owning the shared
// mutable state that must be mediated by critical sections.
package kernel

import (
	"sync"
	"time"

	"github.com/rspg/arduino-jar/internal/control"
	"github.com/rspg/arduino-jar/internal/thermistor"
)

// ControlState is the kernel-owned control state: currentTemperature,
// targetTemperature, temperatureErrorIntegral, and the phase delay last
// set by SET_PHASE_DELAY (stored only; the heater driver's gate schedule
// does not read it). It implements
// sequencer.State. All access is behind one mutex; contention is not a
// concern at these rates (≤120Hz zero-cross, ≤10kHz timer, ~5-10Hz
// foreground).
type ControlState struct {
	mu         sync.Mutex
	target     float64
	current    float64
	integral   float64
	phaseDelay time.Duration
}

func (s *ControlState) CurrentTemperature() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ControlState) TargetTemperature() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *ControlState) SetTargetTemperature(c float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = c
}

func (s *ControlState) SetPhaseDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phaseDelay = d
}

func (s *ControlState) PhaseDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseDelay
}

// setCurrent is called by the sampler pass with a fresh reading.
func (s *ControlState) setCurrent(c float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

// advanceIntegral applies the sampler's leaky-integrator update.
func (s *ControlState) advanceIntegral(ti float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.integral = thermistor.UpdateIntegral(s.integral, s.target, s.current, ti)
}

// Rate computes the controller's output under the lock.
func (s *ControlState) Rate(g control.Gains) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return control.Rate(s.target, s.current, s.integral, g)
}

// Freeze zeroes setpoints and the integral on entry to the main loop
// while a fault is latched, so control output drops to zero instead of
// chasing a stale reading.
func (s *ControlState) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = 0
	s.current = 0
	s.integral = 0
}
