// Package serial wraps the physical 2400-baud wireless link in
// the minimal io.ReadWriteCloser shape internal/protocol needs.
package serial

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// Port is the line-oriented byte transport internal/protocol frames
// lines over. Real deployments get one from Open; internal/protocol's
// tests drive the engine over an in-memory net.Pipe instead.
type Port io.ReadWriteCloser

// Config names the physical link: a 2400 8-N-1 UART by default.
type Config struct {
	PortName string
	BaudRate int
}

// DefaultBaudRate is the wireless link's nominal speed.
const DefaultBaudRate = 2400

// Open opens the named OS serial device at the configured baud rate,
// 8 data bits, no parity, one stop bit.
func Open(cfg Config) (Port, error) {
	baud := cfg.BaudRate
	if baud == 0 {
		baud = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.PortName, err)
	}
	return port, nil
}

// Ports lists the serial devices visible to the OS.
func Ports() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serial: list ports: %w", err)
	}
	return names, nil
}
