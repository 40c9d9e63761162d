package shell

import "time"

// DebounceSwitch turns a raw, possibly-bouncy active-low read function
// into a stable PowerSwitch by requiring the same level to hold for
// DebounceWindow.
type DebounceSwitch struct {
	Read           func() bool
	DebounceWindow time.Duration

	last     bool
	lastFlip time.Time
	stable   bool
	haveRead bool
}

// NewDebounceSwitch wraps raw with a 50ms debounce window, a typical
// mechanical-switch settle time.
func NewDebounceSwitch(raw func() bool) *DebounceSwitch {
	return &DebounceSwitch{Read: raw, DebounceWindow: 50 * time.Millisecond}
}

// Pressed samples the raw input now and returns the debounced state.
func (d *DebounceSwitch) Pressed() bool {
	return d.sample(time.Now())
}

func (d *DebounceSwitch) sample(now time.Time) bool {
	level := d.Read()
	if !d.haveRead {
		d.last = level
		d.stable = level
		d.lastFlip = now
		d.haveRead = true
		return d.stable
	}
	if level != d.last {
		d.last = level
		d.lastFlip = now
	} else if level != d.stable && now.Sub(d.lastFlip) >= d.DebounceWindow {
		d.stable = level
	}
	return d.stable
}

// Lifecycle walks BOOT -> ACTIVE -> SHUTDOWN. It is a plain
// state holder; Boot and Shutdown are called through Kernel.Boot and
// Kernel.Shutdown by the caller. The kernel does not read the power
// switch itself.
type Lifecycle struct {
	phase Phase
}

// Phase reports the current lifecycle phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Boot transitions BOOT -> ACTIVE once the power pin is released.
func (l *Lifecycle) Boot() {
	l.phase = PhaseActive
}

// Shutdown transitions ACTIVE -> SHUTDOWN: interrupts should be disabled
// and the power-hold output dropped by the caller before or after this
// call, per the concrete wiring.
func (l *Lifecycle) Shutdown() {
	l.phase = PhaseShutdown
}
