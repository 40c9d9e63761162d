package command

import "testing"

func TestSlotEncodeDecodeRoundTrip(t *testing.T) {
	s := Slot{Op: OpHold, Index: 3, Params: [ParamsSize]byte{0x00, 0x78, 0, 0, 0, 0}}
	got := Decode(Encode(s))
	if got != s {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestProgramAbsoluteAddressing(t *testing.T) {
	var p Program
	s := Slot{Op: OpTargetTemperature, Index: 5, Params: [ParamsSize]byte{8}}
	if err := p.Write(s); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := p.At(5); got.Op != OpTargetTemperature {
		t.Fatalf("slot 5 = %+v, want TARGET_TEMPERATURE", got)
	}
	if p.CmdNum != 0 {
		t.Fatalf("absolute write must not advance CmdNum, got %d", p.CmdNum)
	}
}

func TestProgramAppendAddressing(t *testing.T) {
	var p Program
	for i := 0; i < 3; i++ {
		if err := p.Write(Slot{Op: OpNOP, Index: IndexAppend}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if p.CmdNum != 3 {
		t.Fatalf("CmdNum = %d, want 3", p.CmdNum)
	}
}

func TestProgramAppendOverflow(t *testing.T) {
	var p Program
	p.CmdNum = Capacity - 1
	if err := p.Write(Slot{Op: OpNOP, Index: IndexAppend}); err != nil {
		t.Fatalf("append into last slot: %v", err)
	}
	if p.CmdNum != Capacity {
		t.Fatalf("CmdNum = %d, want %d", p.CmdNum, Capacity)
	}
	if err := p.Write(Slot{Op: OpNOP, Index: IndexAppend}); err != ErrOverflow {
		t.Fatalf("33rd append error = %v, want ErrOverflow", err)
	}
}

func TestProgramOverwriteCurrent(t *testing.T) {
	var p Program
	p.CmdID = 2
	if err := p.Write(Slot{Op: OpHold, Index: IndexOverwriteCurrent}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if p.At(2).Op != OpHold {
		t.Fatalf("slot 2 not overwritten: %+v", p.At(2))
	}
}

func TestProgramResolveOutOfRange(t *testing.T) {
	var p Program
	if _, err := p.Resolve(Capacity); err != ErrOverflow {
		t.Fatalf("Resolve(%d) error = %v, want ErrOverflow", Capacity, err)
	}
}

func TestProgramAdvanceNeverExceedsCapacity(t *testing.T) {
	var p Program
	p.CmdID = Capacity - 1
	p.Advance()
	if p.CmdID != Capacity-1 {
		t.Fatalf("CmdID = %d, sequencer must never address >= Capacity", p.CmdID)
	}
}

func TestProgramResetClearsSlotZero(t *testing.T) {
	var p Program
	_ = p.Write(Slot{Op: OpTargetTemperature, Index: 0, Params: [ParamsSize]byte{8}})
	p.CmdID = 5
	p.CmdNum = 10
	p.Reset()
	if p.CmdID != 0 || p.CmdNum != 0 {
		t.Fatalf("Reset cursors = (%d,%d), want (0,0)", p.CmdID, p.CmdNum)
	}
	if p.At(0).Op != OpNOP {
		t.Fatalf("slot 0 after Reset = %+v, want NOP", p.At(0))
	}
}
