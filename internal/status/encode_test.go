package status

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := Record{
		Code:        CodeCooking,
		CmdID:       3,
		CmdNum:      5,
		Power:       42,
		Temperature: 2048, // 8.0 C
		RemainTime:  7200,
	}

	b := Encode(r)
	if len(b) != RecordSize {
		t.Fatalf("encoded length = %d, want %d", len(b), RecordSize)
	}

	got := Decode(b)
	if got != r {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, r)
	}
}

func TestSetCodeLatchesFault(t *testing.T) {
	var r Record
	r.Code = CodeStandby

	if !r.SetCode(CodeCooking) {
		t.Fatalf("expected standby -> cooking to apply")
	}
	if !r.SetCode(CodeTemperatureOverlimit) {
		t.Fatalf("expected cooking -> fault to apply")
	}
	if r.SetCode(CodeStandby) {
		t.Fatalf("expected fault -> standby to be rejected")
	}
	if r.Code != CodeTemperatureOverlimit {
		t.Fatalf("code mutated after latch: got %v", r.Code)
	}

	r.Reset()
	if r.Code != CodeStandby {
		t.Fatalf("reset did not clear code: got %v", r.Code)
	}
	if !r.SetCode(CodeCooking) {
		t.Fatalf("expected code to be writable again after reset")
	}
}

func TestEncodeRemainSecondsVsMinutes(t *testing.T) {
	cases := []struct {
		seconds float64
		want    uint16
	}{
		{0, 0},
		{59, 59},
		{3599, 3599},
		{3600, 3600},
		{3601, 60 | RemainMinutesFlag},
		{7200, 120 | RemainMinutesFlag},
	}
	for _, c := range cases {
		got := EncodeRemain(c.seconds)
		if got != c.want {
			t.Errorf("EncodeRemain(%v) = %#x, want %#x", c.seconds, got, c.want)
		}
	}
}

func TestTemperatureCelsiusRoundTrip(t *testing.T) {
	var r Record
	r.SetTemperatureCelsius(23.5)
	got := r.TemperatureCelsius()
	if diff := got - 23.5; diff > 0.01 || diff < -0.01 {
		t.Fatalf("TemperatureCelsius() = %v, want ~23.5", got)
	}
}
