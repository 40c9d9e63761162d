package kernel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rspg/arduino-jar/internal/command"
	"github.com/rspg/arduino-jar/internal/nvstore"
	"github.com/rspg/arduino-jar/internal/status"
)

type fakeGate struct {
	state bool
}

func (g *fakeGate) High() { g.state = true }
func (g *fakeGate) Low()  { g.state = false }

func testGains(t *testing.T) *nvstore.Gains {
	t.Helper()
	s, err := nvstore.Open(filepath.Join(t.TempDir(), "tuning.db"))
	if err != nil {
		t.Fatalf("nvstore.Open() err=%v", err)
	}
	t.Cleanup(func() { s.Close() })
	return nvstore.LoadGains(s)
}

func TestKernelAppliesUploadedTargetAndAdvancesOnDwell(t *testing.T) {
	gains := testGains(t)
	prog := &command.Program{}
	k := New(Deps{
		Gate:  &fakeGate{},
		Gains: gains,
		Program: prog,
	})

	// Upload a TARGET_TEMPERATURE slot directly (bypassing the protocol
	// engine, which has its own decode tests).
	prog.Write(command.Slot{Op: command.OpTargetTemperature, Index: 0, Params: [6]byte{8}})

	now := time.Unix(0, 0)
	k.ctrl.setCurrent(8.0) // already at target

	for i := 0; i < 130; i++ {
		now = now.Add(time.Second)
		k.runSequencer(now)
	}

	if got := k.Status().CmdID; got != 1 {
		t.Fatalf("CmdID = %d, want 1 after dwelling past 120s at target", got)
	}
}

func TestKernelFreezesControlOnFault(t *testing.T) {
	gains := testGains(t)
	k := New(Deps{Gate: &fakeGate{}, Gains: gains})

	k.ctrl.SetTargetTemperature(50)
	k.ctrl.setCurrent(30)

	k.recMu.Lock()
	k.rec.SetCode(status.CodeTemperatureOverlimit)
	k.recMu.Unlock()

	k.Tick(time.Unix(0, 0))

	if got := k.ctrl.TargetTemperature(); got != 0 {
		t.Fatalf("TargetTemperature = %v, want 0 after fault freeze", got)
	}
	if got := k.ctrl.CurrentTemperature(); got != 0 {
		t.Fatalf("CurrentTemperature = %v, want 0 after fault freeze", got)
	}
}

func TestKernelFaultCodeStaysLatchedAcrossTicks(t *testing.T) {
	gains := testGains(t)
	k := New(Deps{Gate: &fakeGate{}, Gains: gains})

	k.recMu.Lock()
	k.rec.SetCode(status.CodeCommandOverflow)
	k.recMu.Unlock()

	k.Tick(time.Unix(0, 0))
	k.Tick(time.Unix(1, 0))

	if got := k.Status().Code; got != status.CodeCommandOverflow {
		t.Fatalf("Code = %v, want it to stay latched at CommandOverflow", got)
	}
}

func TestKernelZeroCrossKeepsGateLowAtZeroRate(t *testing.T) {
	gains := testGains(t)
	gate := &fakeGate{}
	k := New(Deps{Gate: gate, Gains: gains})

	// rate=0 with Kp small and target==current keeps the gate disarmed.
	k.ctrl.SetTargetTemperature(0)
	k.ctrl.setCurrent(0)

	now := time.Unix(0, 0)
	k.OnZeroCross(now)
	now = now.Add(10 * time.Millisecond)
	k.OnZeroCross(now)

	if gate.state {
		t.Fatalf("gate LOW with rate=0 expected, got HIGH")
	}
	if got := k.Status().Power; got != 0 {
		t.Fatalf("published power = %d, want 0", got)
	}
}
