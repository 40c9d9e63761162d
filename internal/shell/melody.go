package shell

import (
	"time"

	"github.com/rspg/arduino-jar/internal/config"
)

// NotePlayer is the synchronous melody player: it blocks the
// foreground for the sum of its notes' durations while the heat ISR
// pair keeps regulating independently. Sleep is overridable in tests.
type NotePlayer struct {
	Finish       []config.NoteConfig
	Notification []config.NoteConfig
	Sleep        func(time.Duration)
	Tone         func(frequencyHz, durationMs int)
}

// NewNotePlayer builds a player from the device's melody configuration.
// tone, if nil, is a no-op (useful when there is no physical buzzer to
// drive and only the timing matters).
func NewNotePlayer(cfg config.MelodyConfig, tone func(frequencyHz, durationMs int)) *NotePlayer {
	if tone == nil {
		tone = func(int, int) {}
	}
	return &NotePlayer{
		Finish:       cfg.Finish,
		Notification: cfg.Notification,
		Sleep:        time.Sleep,
		Tone:         tone,
	}
}

func (p *NotePlayer) play(notes []config.NoteConfig) {
	for _, n := range notes {
		p.Tone(n.FrequencyHz, n.DurationMs)
		p.Sleep(time.Duration(n.DurationMs) * time.Millisecond)
	}
}

func (p *NotePlayer) PlayFinish()       { p.play(p.Finish) }
func (p *NotePlayer) PlayNotification() { p.play(p.Notification) }
func (p *NotePlayer) Beep(durationMs int) {
	p.Tone(0, durationMs)
	p.Sleep(time.Duration(durationMs) * time.Millisecond)
}
