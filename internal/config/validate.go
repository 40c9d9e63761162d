// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Device.Name != "" {
		for i := 0; i < len(cfg.Device.Name); i++ {
			if cfg.Device.Name[i] > 0x7F {
				return fmt.Errorf("device.name must contain ASCII characters only")
			}
		}
	}

	if cfg.Device.MainsHz != 0 && cfg.Device.MainsHz != 50 && cfg.Device.MainsHz != 60 {
		return fmt.Errorf("device.mains_hz must be 0 (default), 50, or 60, got %d", cfg.Device.MainsHz)
	}

	t := cfg.Thermistor
	if t.Rv <= 0 || t.Vref <= 0 || t.VrefIntern <= 0 {
		return fmt.Errorf("thermistor.rv/vref/vref_intern must be positive")
	}
	if t.B <= 0 {
		return fmt.Errorf("thermistor.b must be positive, got %v", t.B)
	}
	if t.R0 <= 0 {
		return fmt.Errorf("thermistor.r0 must be positive, got %v", t.R0)
	}
	if t.SampleRingSize < 0 || t.HistoryRingSize < 0 {
		return fmt.Errorf("thermistor.sample_ring_size/history_ring_size must not be negative")
	}
	if t.SampleIntervalMs < 0 {
		return fmt.Errorf("thermistor.sample_interval_ms must not be negative")
	}
	if t.PlausibilityMinC != 0 || t.PlausibilityMaxC != 0 {
		if t.PlausibilityMinC >= t.PlausibilityMaxC {
			return fmt.Errorf("thermistor.plausibility_min_c must be < plausibility_max_c")
		}
	}

	c := cfg.Control
	if c.DefaultKp != 0 && (c.DefaultKp <= 1e-6 || c.DefaultKp >= 1e4) {
		return fmt.Errorf("control.default_kp out of (1e-6, 1e4): %v", c.DefaultKp)
	}
	if c.DefaultTi < 0 || c.DefaultTi >= 9e4 {
		return fmt.Errorf("control.default_ti out of [0, 9e4): %v", c.DefaultTi)
	}
	if c.DefaultTd < 0 || c.DefaultTd >= 9e4 {
		return fmt.Errorf("control.default_td out of [0, 9e4): %v", c.DefaultTd)
	}

	w := cfg.Wireless
	if w.Port != "" && w.BaudRate <= 0 {
		return fmt.Errorf("wireless.baud_rate must be positive when wireless.port is set")
	}

	for _, n := range cfg.Melody.Finish {
		if n.FrequencyHz < 0 || n.DurationMs < 0 {
			return fmt.Errorf("melody.finish: frequency_hz and duration_ms must not be negative")
		}
	}
	for _, n := range cfg.Melody.Notification {
		if n.FrequencyHz < 0 || n.DurationMs < 0 {
			return fmt.Errorf("melody.notification: frequency_hz and duration_ms must not be negative")
		}
	}

	return nil
}
