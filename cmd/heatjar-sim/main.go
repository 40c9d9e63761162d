// cmd/heatjar-sim/main.go
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rspg/arduino-jar/internal/command"
	"github.com/rspg/arduino-jar/internal/config"
	"github.com/rspg/arduino-jar/internal/kernel"
	"github.com/rspg/arduino-jar/internal/nvstore"
	"github.com/rspg/arduino-jar/internal/protocol"
	"github.com/rspg/arduino-jar/internal/shell"
	"github.com/rspg/arduino-jar/internal/thermistor"
	xserial "github.com/rspg/arduino-jar/internal/transport/serial"
)

func main() {
	log := shell.NewLogger(logrus.InfoLevel)

	if len(os.Args) < 3 {
		log.Fatal("usage: heatjar-sim <config.yaml> <tuning.db>")
	}
	cfgPath, dbPath := os.Args[1], os.Args[2]

	// -------------------------
	// Load + validate + normalize config
	// -------------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// -------------------------
	// Non-volatile tuning store
	// -------------------------

	store, err := nvstore.Open(dbPath)
	if err != nil {
		log.Fatalf("nvstore open failed: %v", err)
	}
	defer store.Close()
	gains := nvstore.LoadGains(store)

	// -------------------------
	// Temperature sampler
	// -------------------------

	sampler := thermistor.New(thermistor.Config{
		SampleRingSize:   cfg.Thermistor.SampleRingSize,
		HistoryRingSize:  cfg.Thermistor.HistoryRingSize,
		SampleInterval:   time.Duration(cfg.Thermistor.SampleIntervalMs) * time.Millisecond,
		Rv:               cfg.Thermistor.Rv,
		Vref:             cfg.Thermistor.Vref,
		VrefIntern:       cfg.Thermistor.VrefIntern,
		B:                cfg.Thermistor.B,
		R0:               cfg.Thermistor.R0,
		T0:               cfg.Thermistor.T0,
		PlausibilityMinC: cfg.Thermistor.PlausibilityMinC,
		PlausibilityMaxC: cfg.Thermistor.PlausibilityMaxC,
	})

	// -------------------------
	// Wireless link (optional: no port configured runs headless)
	// -------------------------

	var engine *protocol.Engine
	if cfg.Wireless.Port != "" {
		port, err := xserial.Open(xserial.Config{PortName: cfg.Wireless.Port, BaudRate: cfg.Wireless.BaudRate})
		if err != nil {
			log.Fatalf("wireless port open failed: %v", err)
		}
		defer port.Close()
		engine = protocol.NewEngine(port)
	}

	melody := shell.NewNotePlayer(cfg.Melody, nil)

	// -------------------------
	// Simulated ADC: no physical thermistor on a host, so a placeholder
	// reading is fed; real deployments pass their ADC driver's read
	// function here instead.
	// -------------------------

	adcRead := func() uint16 {
		return uint16(500 + rand.Intn(10))
	}

	k := kernel.New(kernel.Deps{
		Gate:    &loggingGate{Log: log},
		ADCRead: adcRead,
		Gains:   gains,
		Sampler: sampler,
		Program: &command.Program{},
		Engine:  engine,
		Melody:  melody,
		Log:     log,
	})
	k.Boot()

	mainsHalfCycle := time.Second / time.Duration(2*cfg.Device.MainsHz)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	zeroCross := time.NewTicker(mainsHalfCycle)
	defer zeroCross.Stop()
	gateTimer := time.NewTicker(100 * time.Microsecond)
	defer gateTimer.Stop()
	foreground := time.NewTicker(time.Duration(cfg.Thermistor.SampleIntervalMs) * time.Millisecond)
	defer foreground.Stop()

	log.WithField("device", cfg.Device.Name).Info("kernel active")

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-zeroCross.C:
			k.OnZeroCross(t)
		case t := <-gateTimer.C:
			k.OnTimerTick(t)
		case t := <-foreground.C:
			k.Tick(t)
		}
	}
}

// loggingGate stands in for the real active-high triac gate pin,
// grounded the same way internal/shell's logging-backed defaults are.
type loggingGate struct {
	Log   *logrus.Logger
	state bool
}

func (g *loggingGate) High() {
	if !g.state {
		g.Log.Debug("gate: HIGH")
	}
	g.state = true
}

func (g *loggingGate) Low() {
	if g.state {
		g.Log.Debug("gate: LOW")
	}
	g.state = false
}
