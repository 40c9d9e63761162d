package thermistor

import "time"

// Sampler chains a 5-slot median ring into a 10-slot moving-average
// history ring, converted through the divider and B-parameter
// equations into a °C reading. At least SampleRingSize*HistoryRingSize
// raw ADC samples collapse into one controller update.
type Sampler struct {
	cfg Config

	samples    []uint16
	history    []float64
	nextTick   time.Time
	haveTick   bool
	current    float64
	feedbackOK bool
}

// New constructs a Sampler. cfg.SampleRingSize/HistoryRingSize default to
// DefaultConfig's values when zero. A zero cfg.SampleInterval accepts a
// sample on every Tick.
func New(cfg Config) *Sampler {
	if cfg.SampleRingSize <= 0 {
		cfg.SampleRingSize = DefaultConfig().SampleRingSize
	}
	if cfg.HistoryRingSize <= 0 {
		cfg.HistoryRingSize = DefaultConfig().HistoryRingSize
	}
	return &Sampler{
		cfg:        cfg,
		samples:    make([]uint16, 0, cfg.SampleRingSize),
		history:    make([]float64, 0, cfg.HistoryRingSize),
		feedbackOK: true,
	}
}

// Tick is called from the main loop once per pass. It is a
// no-op unless at least cfg.SampleInterval has elapsed since the last
// accepted sample, and it only returns ready=true on the pass that
// completes a full history batch (a new controller-visible reading).
func (s *Sampler) Tick(adcReading uint16, now time.Time) (celsius float64, ready bool) {
	if s.haveTick && now.Before(s.nextTick) {
		return s.current, false
	}
	s.haveTick = true
	s.nextTick = now.Add(s.cfg.SampleInterval)

	s.samples = append(s.samples, adcReading)
	if len(s.samples) < s.cfg.SampleRingSize {
		return s.current, false
	}

	med := median(s.samples)
	s.samples = s.samples[:0]

	s.history = append(s.history, float64(med))
	if len(s.history) < s.cfg.HistoryRingSize {
		return s.current, false
	}

	avg := mean(s.history)
	s.history = s.history[:0]

	r := adcToResistance(s.cfg, avg)
	t := resistanceToCelsius(s.cfg, r)

	s.feedbackOK = t >= s.cfg.PlausibilityMinC && t <= s.cfg.PlausibilityMaxC
	s.current = t
	return t, true
}

// Current returns the last computed temperature, valid immediately after
// a Tick that returned ready=true.
func (s *Sampler) Current() float64 { return s.current }

// FeedbackOK reports whether the last computed reading fell inside the
// plausibility window. false means the caller should latch
// TEMPERATURE_FEEDBACK_FAILED.
func (s *Sampler) FeedbackOK() bool { return s.feedbackOK }

// UpdateIntegral advances the leaky-integrator error accumulator:
// integral += ((target-current)-integral)*Ti. Ti==0 disables the leak,
// leaving the integral in place.
func UpdateIntegral(integral, target, current, ti float64) float64 {
	return integral + ((target-current)-integral)*ti
}
