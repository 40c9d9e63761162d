// Package thermistor implements the temperature acquisition filter:
// median-of-samples, moving average, and the B-parameter thermistor
// conversion. It holds no knowledge of the controller or the cooking
// program; it only turns raw ADC counts into a °C reading.
package thermistor

import "time"

// Config holds the per-deployment device constants a Sampler needs.
type Config struct {
	// SampleRingSize is the number of raw ADC readings collapsed by
	// median into one history entry.
	SampleRingSize int
	// HistoryRingSize is the number of median readings averaged into one
	// controller update.
	HistoryRingSize int
	// SampleInterval is the minimum spacing between raw ADC appends
	//.
	SampleInterval time.Duration

	// Voltage divider constants.
	Rv         float64 // divider resistor, kOhm
	Vref       float64 // divider supply voltage
	VrefIntern float64 // ADC internal reference voltage

	// B-parameter thermistor equation constants.
	B  float64 // 3000..4100 typical
	R0 float64 // reference resistance, kOhm
	T0 float64 // reference temperature, °C

	// Plausibility window.
	PlausibilityMinC float64
	PlausibilityMaxC float64
}

// DefaultConfig returns the constants spec.md cites as nominal.
func DefaultConfig() Config {
	return Config{
		SampleRingSize:   5,
		HistoryRingSize:  10,
		SampleInterval:   200 * time.Millisecond,
		Rv:               1.5,
		Vref:             4.7,
		VrefIntern:       1.1,
		B:                3950,
		R0:               58.3,
		T0:               25,
		PlausibilityMinC: -20,
		PlausibilityMaxC: 250,
	}
}
