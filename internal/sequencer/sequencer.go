// Package sequencer implements the cooking-program state machine: it
// walks the command array one slot at a time, dwelling on
// TARGET_TEMPERATURE and HOLD until their advance condition is met, and
// applying the SET_* tuning ops immediately.
package sequencer

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/rspg/arduino-jar/internal/command"
	"github.com/rspg/arduino-jar/internal/status"
)

// TargetDwell is the continuous-within-tolerance duration TARGET_TEMPERATURE
// requires before advancing.
const TargetDwell = 120 * time.Second

// TargetTolerance is the ± band TARGET_TEMPERATURE treats as "reached".
const TargetTolerance = 0.5

// State is the subset of shared control state the sequencer reads and
// writes. It is deliberately narrow: the sequencer never touches
// zeroCrossInterval, heatControlMode, or heatControlTime (those belong
// to the ISR pair of internal/heater).
type State interface {
	CurrentTemperature() float64
	SetTargetTemperature(c float64)
	SetPhaseDelay(d time.Duration)
}

// GainStore persists the tuning triple to the non-volatile store, keyed
// as addresses 0/4/8.
type GainStore interface {
	WriteKp(v float32)
	WriteTi(v float32)
	WriteTd(v float32)
}

// Melody plays the two cues the sequencer triggers: FINISH's completion
// jingle and HOLD's end-of-wait notification.
type Melody interface {
	PlayFinish()
	PlayNotification()
}

// Sequencer holds the private re-entrant state: previousOp,
// operationTime, previousTime.
type Sequencer struct {
	previousOp    command.Op
	operationTime time.Duration
	previousTime  time.Time
	havePrevTime  bool

	gains  GainStore
	melody Melody
}

// New constructs a Sequencer. gains and melody may be nil in tests that
// don't exercise SET_* ops or melody cues.
func New(gains GainStore, melody Melody) *Sequencer {
	return &Sequencer{gains: gains, melody: melody}
}

// Tick runs one main-loop pass of the sequencer against prog and rec.
// now is the current wall-clock instant.
func (s *Sequencer) Tick(now time.Time, prog *command.Program, rec *status.Record, st State) {
	slot := prog.Current()

	var delta time.Duration
	if s.havePrevTime {
		delta = now.Sub(s.previousTime)
	}
	changed := slot.Op != s.previousOp

	switch slot.Op {
	case command.OpNOP:
		// never advances

	case command.OpFINISH:
		prog.Reset()
		st.SetTargetTemperature(0)
		if s.melody != nil {
			s.melody.PlayFinish()
		}

	case command.OpTargetTemperature:
		target := float64(slot.Params[0])
		if changed {
			st.SetTargetTemperature(target)
			s.operationTime = 0
		}
		if math.Abs(st.CurrentTemperature()-target) <= TargetTolerance {
			s.operationTime += delta
		} else {
			s.operationTime = 0
		}
		if s.operationTime >= TargetDwell {
			prog.Advance()
			s.operationTime = 0
		}

	case command.OpHold:
		if changed {
			s.operationTime = 0
		}
		duration := holdDuration(slot)
		s.operationTime += delta
		remain := duration - s.operationTime
		rec.SetRemainSeconds(remain.Seconds())
		if s.operationTime >= duration {
			if s.melody != nil {
				s.melody.PlayNotification()
			}
			prog.Advance()
			s.operationTime = 0
		}

	case command.OpSetKp:
		if changed && s.gains != nil {
			s.gains.WriteKp(decodeF32(slot.Params))
		}
		prog.Advance()

	case command.OpSetTi:
		if changed && s.gains != nil {
			s.gains.WriteTi(decodeF32(slot.Params))
		}
		prog.Advance()

	case command.OpSetTd:
		if changed && s.gains != nil {
			s.gains.WriteTd(decodeF32(slot.Params))
		}
		prog.Advance()

	case command.OpSetPhaseDelay:
		if changed {
			us := binary.BigEndian.Uint16(slot.Params[0:2])
			st.SetPhaseDelay(time.Duration(us) * time.Microsecond)
		}
		prog.Advance()

	default:
		prog.Advance()
	}

	s.previousOp = slot.Op
	s.previousTime = now
	s.havePrevTime = true
}

// holdDuration decodes HOLD's u16 minutes parameter into a time.Duration.
func holdDuration(slot command.Slot) time.Duration {
	minutes := binary.BigEndian.Uint16(slot.Params[0:2])
	return time.Duration(minutes) * time.Minute
}

func decodeF32(params [command.ParamsSize]byte) float32 {
	bits := binary.BigEndian.Uint32(params[0:4])
	return math.Float32frombits(bits)
}
