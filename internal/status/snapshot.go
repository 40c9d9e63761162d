package status

// Record is the in-memory form of the 8-byte wire-visible status record
//. All control-kernel components read and write this structure;
// Code enforces the monotone fault-latching invariant itself so that no
// caller can accidentally un-latch a fault.
type Record struct {
	Code        Code
	CmdID       byte // 0..31, the executing program slot
	CmdNum      byte // 0..32, the next free upload slot (32 once the program is full)
	Power       byte // 0..100, last commanded power rate
	Temperature int16
	RemainTime  uint16
}

// NewRecord returns a fresh, fault-free standby record.
func NewRecord() Record {
	return Record{Code: CodeStandby}
}

// SetCode applies a latching write: it only succeeds while the record is
// currently fault-free. Once Code is negative it is immutable until Reset.
// It reports whether the write was applied.
func (r *Record) SetCode(c Code) bool {
	if r.Code.IsFault() {
		return false
	}
	r.Code = c
	return true
}

// Reset clears a latched fault and zeroes every other field of the
// record. It is the only way to un-latch Code.
func (r *Record) Reset() {
	r.Code = CodeStandby
	r.CmdID = 0
	r.CmdNum = 0
	r.Power = 0
	r.Temperature = 0
	r.RemainTime = 0
}

// SetTemperatureCelsius stores t (°C) as Q8.8 fixed point.
func (r *Record) SetTemperatureCelsius(t float64) {
	r.Temperature = int16(roundHalfAwayFromZero(t * 256))
}

// TemperatureCelsius returns the stored Q8.8 temperature as °C.
func (r *Record) TemperatureCelsius() float64 {
	return float64(r.Temperature) / 256
}

// SetRemainSeconds encodes d seconds into RemainTime using the
// seconds-up-to-3600 / minutes-with-high-bit-set scheme.
func (r *Record) SetRemainSeconds(d float64) {
	r.RemainTime = EncodeRemain(d)
}

// EncodeRemain applies the seconds/minutes encoding rule in isolation, so
// the sequencer and tests can exercise it without a Record.
func EncodeRemain(seconds float64) uint16 {
	if seconds < 0 {
		seconds = 0
	}
	if seconds <= RemainSecondsMax {
		return uint16(roundHalfAwayFromZero(seconds))
	}
	minutes := uint16(roundHalfAwayFromZero(seconds/60)) & ^uint16(RemainMinutesFlag)
	return minutes | RemainMinutesFlag
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
