package shell

import (
	"testing"
	"time"
)

func TestDebounceSwitchIgnoresShortGlitch(t *testing.T) {
	level := false
	d := NewDebounceSwitch(func() bool { return level })
	now := time.Unix(0, 0)
	d.sample(now) // seed stable=false

	level = true
	now = now.Add(10 * time.Millisecond) // glitch, inside debounce window
	if got := d.sample(now); got {
		t.Fatalf("sample() = true, want false (glitch should not flip yet)")
	}

	level = false
	now = now.Add(10 * time.Millisecond) // glitch reverts before settling
	if got := d.sample(now); got {
		t.Fatalf("sample() = true, want false after glitch reverted")
	}
}

func TestDebounceSwitchFlipsAfterSettling(t *testing.T) {
	level := false
	d := NewDebounceSwitch(func() bool { return level })
	now := time.Unix(0, 0)
	d.sample(now)

	level = true
	var got bool
	for i := 0; i < 20; i++ {
		now = now.Add(5 * time.Millisecond) // poll every 5ms, as the foreground loop would
		got = d.sample(now)
	}
	if !got {
		t.Fatalf("sample() = false, want true after polling past the debounce window")
	}
}

func TestLifecyclePhaseTransitions(t *testing.T) {
	var l Lifecycle
	if l.Phase() != PhaseBoot {
		t.Fatalf("initial phase = %v, want BOOT", l.Phase())
	}
	l.Boot()
	if l.Phase() != PhaseActive {
		t.Fatalf("phase after Boot() = %v, want ACTIVE", l.Phase())
	}
	l.Shutdown()
	if l.Phase() != PhaseShutdown {
		t.Fatalf("phase after Shutdown() = %v, want SHUTDOWN", l.Phase())
	}
}
