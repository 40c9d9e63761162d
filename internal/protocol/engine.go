package protocol

import (
	"encoding/hex"
	"io"
	"strings"
	"time"

	"github.com/rspg/arduino-jar/internal/status"
)

// Retry and timeout budgets for status publication and bring-up.
const (
	StatusRetryCount   = 3
	StatusRoundTrip    = 1000 * time.Millisecond
	RebootAttempts     = 3
	RebootSpacing      = 1 * time.Second
	RebootRoundTrip    = 1000 * time.Millisecond
)

// Port is the physical transport the engine frames lines over.
type Port interface {
	io.Writer
	io.Reader
}

// Engine owns one wireless link: it publishes status frames with retry,
// performs the rebootBT bring-up handshake on total failure, and queues
// WV command frames that arrive while it waits for a reply, for the
// foreground's protocol pass to drain. One background goroutine per Engine decodes the inbound byte
// stream into lines; everything else runs from the foreground.
type Engine struct {
	port  Port
	lines chan string
	cmds  chan string

	// Sleep is overridable in tests so the 1s reboot spacing doesn't
	// make the suite slow; it defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewEngine constructs an Engine and starts its background line reader.
func NewEngine(port Port) *Engine {
	e := &Engine{
		port:  port,
		lines: make(chan string, 8),
		cmds:  make(chan string, 8),
		Sleep: time.Sleep,
	}
	go e.readLoop()
	return e
}

func (e *Engine) readLoop() {
	var f Framer
	buf := make([]byte, 1)
	for {
		n, err := e.port.Read(buf)
		if err != nil {
			close(e.lines)
			return
		}
		if n == 0 {
			continue
		}
		line, complete := f.Feed(buf[0])
		if !complete {
			continue
		}
		select {
		case e.lines <- line:
		default:
			// inbound buffer full: drop rather than block the reader.
		}
	}
}

// DrainCommands returns any WV frames queued since the last call,
// without blocking. Call once per foreground pass.
func (e *Engine) DrainCommands() []string {
	var out []string
	for {
		select {
		case line := <-e.cmds:
			out = append(out, line)
		default:
			return out
		}
	}
}

// waitFor blocks up to timeout for a line matching want. Lines that look
// like WV command frames are routed to the command queue instead of
// being consumed; any other non-matching line ends the wait early since
// the link is half-duplex per round-trip.
func (e *Engine) waitFor(want Response, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		select {
		case line, ok := <-e.lines:
			if !ok {
				return false
			}
			if strings.HasPrefix(line, "WV,") {
				select {
				case e.cmds <- line:
				default:
				}
				continue
			}
			return ParseResponse(line) == want
		case <-deadline:
			return false
		}
	}
}

// PublishStatus sends the SHW frame up to StatusRetryCount times in
// total, resending on a non-AOK reply or timeout. On total exhaustion it runs the
// rebootBT handshake. It reports whether the link is healthy; callers
// latch status.CodeBTDeviceError themselves on false (status codes are
// the caller's concern, not the transport's).
func (e *Engine) PublishStatus(rec status.Record) bool {
	frame := EncodeStatusFrame(rec)
	for i := 0; i < StatusRetryCount; i++ {
		e.port.Write([]byte(frame))
		if e.waitFor(RespAOK, StatusRoundTrip) {
			return true
		}
	}
	return e.RebootBT()
}

// RebootBT sends the R,1 bring-up command up to RebootAttempts times,
// spaced RebootSpacing apart, expecting CMD within RebootRoundTrip.
func (e *Engine) RebootBT() bool {
	for attempt := 0; attempt < RebootAttempts; attempt++ {
		e.port.Write([]byte("R,1\n"))
		if e.waitFor(RespCMD, RebootRoundTrip) {
			return true
		}
		if attempt < RebootAttempts-1 {
			e.Sleep(RebootSpacing)
		}
	}
	return false
}

// EncodeStatusFrame renders rec as the SHW wire frame.
func EncodeStatusFrame(rec status.Record) string {
	b := status.Encode(rec)
	return "SHW," + ServiceStatus + "," + strings.ToUpper(hex.EncodeToString(b[:])) + "\n"
}
