// Package shell implements the out-of-core collaborators exposed as
// external interfaces only: the OLED display, the buzzer melody
// player, the power-switch debouncer, and boot/shutdown sequencing.
// The kernel depends on the interfaces here; the logging-backed
// implementations are a deployment's default when no real hardware
// driver is wired in.
package shell

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Display renders diagnostics, e.g. "ST:<code>" on error.
type Display interface {
	ShowStatus(code int8)
	ShowLine(line string)
}

// Buzzer plays melody cues. Melodies block the foreground for up to
// several seconds; the heat ISR pair keeps regulating while they play.
type Buzzer interface {
	PlayFinish()
	PlayNotification()
	Beep(durationMs int)
}

// PowerSwitch is the debounced active-low power input.
type PowerSwitch interface {
	// Pressed reports the debounced current state: true means pressed
	// (shutdown requested).
	Pressed() bool
}

// Phase is a lifecycle state: BOOT -> ACTIVE -> SHUTDOWN.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseActive
	PhaseShutdown
)

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "BOOT"
	case PhaseActive:
		return "ACTIVE"
	case PhaseShutdown:
		return "SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}

// NewLogger builds the package-level logger style used throughout this
// module: a plain *logrus.Logger with TextFormatter, writing to stdout.
func NewLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Formatter = new(logrus.TextFormatter)
	log.Level = level
	log.Out = os.Stdout
	return log
}

// LoggingDisplay logs what would have been drawn to the OLED. It is the
// default Display when no real panel driver is wired in.
type LoggingDisplay struct {
	Log *logrus.Logger
}

func (d *LoggingDisplay) ShowStatus(code int8) {
	d.Log.WithField("code", code).Info("display: ST")
}

func (d *LoggingDisplay) ShowLine(line string) {
	d.Log.WithField("line", line).Info("display")
}

// LoggingBuzzer logs melody cues instead of driving a physical buzzer.
type LoggingBuzzer struct {
	Log *logrus.Logger
}

func (b *LoggingBuzzer) PlayFinish()       { b.Log.Info("buzzer: finish melody") }
func (b *LoggingBuzzer) PlayNotification() { b.Log.Info("buzzer: notification melody") }
func (b *LoggingBuzzer) Beep(durationMs int) {
	b.Log.WithField("duration_ms", durationMs).Info("buzzer: beep")
}
