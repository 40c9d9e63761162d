// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if len(cfg.Device.Name) > 16 {
		cfg.Device.Name = cfg.Device.Name[:16]
	}
	if cfg.Device.MainsHz == 0 {
		cfg.Device.MainsHz = 50
	}

	t := &cfg.Thermistor
	if t.SampleRingSize <= 0 {
		t.SampleRingSize = 5
	}
	if t.HistoryRingSize <= 0 {
		t.HistoryRingSize = 10
	}
	if t.SampleIntervalMs <= 0 {
		t.SampleIntervalMs = 200
	}
	if t.PlausibilityMinC == 0 && t.PlausibilityMaxC == 0 {
		t.PlausibilityMinC = -20
		t.PlausibilityMaxC = 250
	}

	c := &cfg.Control
	if c.DefaultKp == 0 {
		c.DefaultKp = 0.3
	}
}
