package status

import "encoding/binary"

// Encode converts r into the 8-byte wire record.
// Layout is protocol-locked. No IO, no side effects.
func Encode(r Record) [RecordSize]byte {
	var b [RecordSize]byte
	b[0] = byte(r.Code)
	b[1] = r.CmdID
	b[2] = r.CmdNum
	b[3] = r.Power
	binary.BigEndian.PutUint16(b[4:6], uint16(r.Temperature))
	binary.BigEndian.PutUint16(b[6:8], r.RemainTime)
	return b
}

// Decode is the inverse of Encode, used by tests and by the peer-side
// simulator to verify the wire round-trip.
func Decode(b [RecordSize]byte) Record {
	return Record{
		Code:        Code(int8(b[0])),
		CmdID:       b[1],
		CmdNum:      b[2],
		Power:       b[3],
		Temperature: int16(binary.BigEndian.Uint16(b[4:6])),
		RemainTime:  binary.BigEndian.Uint16(b[6:8]),
	}
}
