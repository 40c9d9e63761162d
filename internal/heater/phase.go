package heater

import "math"

// DeltaOn is the phase-delay function: the duration, within an AC
// half-cycle of length t, that the gate stays HIGH once fired.
// Δon(r) = t·arccos(1-2r)/π is monotone non-decreasing with
// Δon(0)=0 and Δon(1)=t. rate is clamped to [0,1]
// before evaluation so callers never need to pre-clamp.
func DeltaOn(rate float64, halfCycle float64) float64 {
	if rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return halfCycle
	}
	return halfCycle * math.Acos(1-2*rate) / math.Pi
}

// Table is a table-driven alternative to the closed-form arccos
// evaluation. It linearly interpolates a
// 101-point table built once from DeltaOn, useful on targets where
// arccos is too slow for a 10kHz timer ISR.
type Table struct {
	points [101]float64 // Δon(rate)/halfCycle, i.e. normalized to [0,1]
}

// NewTable builds the normalized lookup table.
func NewTable() *Table {
	var tb Table
	for i := range tb.points {
		tb.points[i] = DeltaOn(float64(i)/100, 1)
	}
	return &tb
}

// Lookup interpolates the table for rate in [0,1] and scales by halfCycle.
func (tb *Table) Lookup(rate, halfCycle float64) float64 {
	if rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return halfCycle
	}
	pos := rate * 100
	i := int(pos)
	frac := pos - float64(i)
	lo := tb.points[i]
	hi := tb.points[i+1]
	return halfCycle * (lo + (hi-lo)*frac)
}
