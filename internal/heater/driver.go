// Package heater implements a zero-cross-synchronized phase-angle
// heater driver: a zero-cross handler that arms a gate pulse once per
// AC half-cycle, and a high-frequency timer handler that fires the
// pulse at its scheduled deadline.
//
// Both handlers stand in for hardware ISRs and may be called from
// different goroutines; Driver serializes the shared (mode, deadline) atom
// behind a mutex, the software equivalent of masking the timer interrupt
// while the zero-cross interrupt updates it.
package heater

import (
	"sync"
	"time"
)

// Mode is the gate scheduler's state: idle, armed waiting to fire HIGH,
// or armed waiting to fire LOW.
type Mode int

const (
	ModeIdle Mode = iota
	ModeUp
	ModeDown
)

// Gate is the triac/SCR gate output. Only Driver may call it: the
// foreground loop must never write the pin.
type Gate interface {
	High()
	Low()
}

// DebounceInterval rejects zero-cross edges closer together than this,
// filtering contact bounce and noise pulses above 200Hz.
const DebounceInterval = 5 * time.Millisecond

// Driver owns the zero-cross-synchronized gate schedule.
type Driver struct {
	gate Gate

	edgeMu   sync.Mutex
	lastEdge time.Time
	haveEdge bool
	interval time.Duration

	schedMu   sync.Mutex
	mode      Mode
	deadline  time.Time
	armedOn   time.Duration // Δon captured at arm time, used for the UP->DOWN deadline

	// PinnedHalfCycle overrides measurement with a constant.
	PinnedHalfCycle time.Duration
}

// New constructs a Driver bound to gate.
func New(gate Gate) *Driver {
	return &Driver{gate: gate}
}

// ZeroCrossInterval returns the last latched half-cycle duration.
func (d *Driver) ZeroCrossInterval() time.Duration {
	d.edgeMu.Lock()
	defer d.edgeMu.Unlock()
	return d.interval
}

// OnZeroCross is the rising-edge ISR. rateFn is read to get the current
// commanded power rate (the controller's output); publishPower receives
// the rounded 0..100 value to store into the status record.
func (d *Driver) OnZeroCross(now time.Time, rateFn func() float64, publishPower func(byte)) {
	d.edgeMu.Lock()
	gap := time.Duration(0)
	if d.haveEdge {
		gap = now.Sub(d.lastEdge)
	}
	if d.haveEdge && gap < DebounceInterval {
		d.edgeMu.Unlock()
		return
	}
	if d.haveEdge {
		d.interval = gap
	}
	d.lastEdge = now
	d.haveEdge = true
	halfCycle := d.interval
	if d.PinnedHalfCycle > 0 {
		halfCycle = d.PinnedHalfCycle
	}
	d.edgeMu.Unlock()

	rate := rateFn()
	publishPower(clampPowerByte(rate))

	d.schedMu.Lock()
	defer d.schedMu.Unlock()
	switch {
	case rate >= 1:
		d.gate.High()
		d.mode = ModeIdle
	case rate <= 0:
		d.gate.Low()
		d.mode = ModeIdle
	default:
		onDur := DeltaOn(rate, float64(halfCycle))
		d.armedOn = time.Duration(onDur)
		d.mode = ModeUp
		d.deadline = now.Add(halfCycle - d.armedOn)
	}
}

// OnTimerTick is the ~10kHz gate-timer ISR.
func (d *Driver) OnTimerTick(now time.Time) {
	d.schedMu.Lock()
	defer d.schedMu.Unlock()

	if d.mode == ModeIdle {
		return
	}
	if now.Before(d.deadline) {
		return
	}

	switch d.mode {
	case ModeUp:
		d.gate.High()
		d.mode = ModeDown
		d.deadline = now.Add(d.armedOn)
	case ModeDown:
		d.gate.Low()
		d.mode = ModeIdle
	}
}

// Mode reports the current scheduling mode, for tests and diagnostics.
func (d *Driver) Mode() Mode {
	d.schedMu.Lock()
	defer d.schedMu.Unlock()
	return d.mode
}

func clampPowerByte(rate float64) byte {
	v := rate * 100
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return byte(v + 0.5)
}
