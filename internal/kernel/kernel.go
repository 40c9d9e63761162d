package kernel

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rspg/arduino-jar/internal/command"
	"github.com/rspg/arduino-jar/internal/control"
	"github.com/rspg/arduino-jar/internal/heater"
	"github.com/rspg/arduino-jar/internal/nvstore"
	"github.com/rspg/arduino-jar/internal/protocol"
	"github.com/rspg/arduino-jar/internal/sequencer"
	"github.com/rspg/arduino-jar/internal/shell"
	"github.com/rspg/arduino-jar/internal/status"
	"github.com/rspg/arduino-jar/internal/thermistor"
)

// PublishInterval is the default status-notification period, picked at
// the conservative end of the 1000-5000ms range a link can tolerate.
const PublishInterval = 1000 * time.Millisecond

// Kernel wires the five core components plus the out-of-core
// shell collaborators into one control loop: OnZeroCross and OnTimerTick
// are the ISR entry points, Tick is one foreground pass.
type Kernel struct {
	Log *logrus.Logger

	driver *heater.Driver
	ctrl   *ControlState
	gains  *nvstore.Gains

	sampler *thermistor.Sampler
	adcRead func() uint16

	prog   *command.Program
	rec    status.Record
	recMu  sync.Mutex

	seq    *sequencer.Sequencer
	engine *protocol.Engine

	switchRead func() bool
	life       *shell.Lifecycle

	lastPublish time.Time
}

// Deps bundles the collaborators a Kernel needs. Any of the hardware
// facing ones may be nil in tests that only exercise a slice of the loop.
type Deps struct {
	Gate       heater.Gate
	ADCRead    func() uint16
	Gains      *nvstore.Gains
	Sampler    *thermistor.Sampler
	Program    *command.Program
	Engine     *protocol.Engine
	Melody     sequencer.Melody
	SwitchRead func() bool
	Log        *logrus.Logger
}

// New constructs a Kernel from its collaborators.
func New(d Deps) *Kernel {
	if d.Program == nil {
		d.Program = &command.Program{}
	}
	if d.Log == nil {
		d.Log = shell.NewLogger(logrus.InfoLevel)
	}
	k := &Kernel{
		Log:        d.Log,
		driver:     heater.New(d.Gate),
		ctrl:       &ControlState{},
		gains:      d.Gains,
		sampler:    d.Sampler,
		adcRead:    d.ADCRead,
		prog:       d.Program,
		seq:        sequencer.New(d.Gains, d.Melody),
		engine:     d.Engine,
		switchRead: d.SwitchRead,
		life:       &shell.Lifecycle{},
	}
	k.rec = status.NewRecord()
	return k
}

// OnZeroCross is the rising-edge zero-cross ISR entry point.
func (k *Kernel) OnZeroCross(now time.Time) {
	rateFn := func() float64 {
		return k.ctrl.Rate(control.Gains{Kp: k.gains.Kp, Ti: k.gains.Ti, Td: k.gains.Td})
	}
	publishPower := func(p byte) {
		k.recMu.Lock()
		k.rec.Power = p
		k.recMu.Unlock()
	}
	k.driver.OnZeroCross(now, rateFn, publishPower)
}

// OnTimerTick is the ~10kHz gate-timer ISR entry point.
func (k *Kernel) OnTimerTick(now time.Time) {
	k.driver.OnTimerTick(now)
}

// Tick runs one foreground pass: sampler -> protocol -> sequencer ->
// publisher, plus the sticky-fault freeze that holds control at zero
// once a fault code has latched.
func (k *Kernel) Tick(now time.Time) {
	k.recMu.Lock()
	faulted := k.rec.Code.IsFault()
	k.recMu.Unlock()
	if faulted {
		k.ctrl.Freeze()
	} else {
		k.runSampler(now)
	}

	k.runProtocol()
	k.runSequencer(now)
	k.runPublisher(now)
}

func (k *Kernel) runSampler(now time.Time) {
	if k.sampler == nil || k.adcRead == nil {
		return
	}
	reading := k.adcRead()
	celsius, ready := k.sampler.Tick(reading, now)
	if !ready {
		return
	}
	k.ctrl.setCurrent(celsius)
	k.ctrl.advanceIntegral(k.gains.Ti)
	k.recMu.Lock()
	k.rec.SetTemperatureCelsius(celsius)
	if !k.sampler.FeedbackOK() {
		k.rec.SetCode(status.CodeTemperatureFeedbackFailed)
	}
	k.recMu.Unlock()
}

func (k *Kernel) runProtocol() {
	if k.engine == nil {
		return
	}
	for _, line := range k.engine.DrainCommands() {
		slot, err := protocol.DecodeCommandFrame(line)
		if err != nil {
			k.recMu.Lock()
			k.rec.SetCode(codeForDecodeErr(err))
			k.recMu.Unlock()
			continue
		}
		if err := k.prog.Write(slot); err != nil {
			k.recMu.Lock()
			k.rec.SetCode(status.CodeCommandOverflow)
			k.recMu.Unlock()
		}
	}
}

func codeForDecodeErr(err error) status.Code {
	if err == protocol.ErrInvalidArgument {
		return status.CodeInvalidArgument
	}
	return status.CodeInvalidCommand
}

func (k *Kernel) runSequencer(now time.Time) {
	k.recMu.Lock()
	rec := k.rec
	k.recMu.Unlock()

	if rec.Code.IsFault() {
		return
	}

	k.seq.Tick(now, k.prog, &rec, k.ctrl)

	k.recMu.Lock()
	k.rec.RemainTime = rec.RemainTime
	k.rec.CmdID = k.prog.CmdID
	k.rec.CmdNum = k.prog.CmdNum
	if k.prog.Current().Op == command.OpNOP {
		k.rec.SetCode(status.CodeStandby)
	} else {
		k.rec.SetCode(status.CodeCooking)
	}
	k.recMu.Unlock()
}

func (k *Kernel) runPublisher(now time.Time) {
	if k.engine == nil {
		return
	}
	if now.Sub(k.lastPublish) < PublishInterval {
		return
	}
	k.lastPublish = now

	k.recMu.Lock()
	snapshot := k.rec
	k.recMu.Unlock()

	if !k.engine.PublishStatus(snapshot) {
		k.recMu.Lock()
		k.rec.SetCode(status.CodeBTDeviceError)
		k.recMu.Unlock()
	}
}

// Status returns a copy of the current status record.
func (k *Kernel) Status() status.Record {
	k.recMu.Lock()
	defer k.recMu.Unlock()
	return k.rec
}

// Lifecycle reports the current BOOT/ACTIVE/SHUTDOWN phase.
func (k *Kernel) Lifecycle() shell.Phase {
	return k.life.Phase()
}

// Boot transitions into ACTIVE, as if the power pin had just been released.
func (k *Kernel) Boot() { k.life.Boot() }

// Shutdown transitions into SHUTDOWN: the caller is
// responsible for disabling interrupts and dropping the power-hold
// output around this call.
func (k *Kernel) Shutdown() { k.life.Shutdown() }
