// internal/config/config.go
package config

// Config is the per-deployment device configuration spec.md marks
// "implementations MUST accept as configuration": thermistor and
// divider constants, mains frequency, sampler ring
// sizes, default tuning gains, the wireless link, and melody note
// tables.
type Config struct {
	Device     DeviceConfig     `yaml:"device"`
	Thermistor ThermistorConfig `yaml:"thermistor"`
	Control    ControlConfig    `yaml:"control"`
	Wireless   WirelessConfig   `yaml:"wireless"`
	Melody     MelodyConfig     `yaml:"melody"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Name    string `yaml:"name"`
	MainsHz int    `yaml:"mains_hz"` // 50 or 60; 0 means "default to 50"
}

// ---- THERMISTOR / SAMPLER ----

type ThermistorConfig struct {
	Rv         float64 `yaml:"rv"`
	Vref       float64 `yaml:"vref"`
	VrefIntern float64 `yaml:"vref_intern"`
	B          float64 `yaml:"b"`
	R0         float64 `yaml:"r0"`
	T0         float64 `yaml:"t0"`

	SampleRingSize   int `yaml:"sample_ring_size"`
	HistoryRingSize  int `yaml:"history_ring_size"`
	SampleIntervalMs int `yaml:"sample_interval_ms"`

	PlausibilityMinC float64 `yaml:"plausibility_min_c"`
	PlausibilityMaxC float64 `yaml:"plausibility_max_c"`
}

// ---- CONTROL ----

type ControlConfig struct {
	DefaultKp float64 `yaml:"default_kp"`
	DefaultTi float64 `yaml:"default_ti"`
	DefaultTd float64 `yaml:"default_td"`
}

// ---- WIRELESS ----

type WirelessConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// ---- MELODY ----

type MelodyConfig struct {
	Finish       []NoteConfig `yaml:"finish"`
	Notification []NoteConfig `yaml:"notification"`
}

type NoteConfig struct {
	FrequencyHz int `yaml:"frequency_hz"`
	DurationMs  int `yaml:"duration_ms"`
}
