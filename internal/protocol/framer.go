// Package protocol implements the command-ingest and status-publication
// wire protocol: line framing over the wireless link, WV command-slot
// upload, SHW status notification with retry, and the rebootBT
// bring-up handshake.
package protocol

// FrameBufferSize is the inbound line buffer's fixed capacity.
const FrameBufferSize = 64

// Framer implements the inbound line-framing rule: printable-ASCII
// payloads terminated by '\n'; non-printable bytes other than '\n' are
// silently dropped; filling the buffer without seeing '\n' wraps it,
// discarding whatever had accumulated.
type Framer struct {
	buf [FrameBufferSize]byte
	n   int
}

// Feed processes one inbound byte. complete is true exactly when b
// completed a line, in which case line holds it (without the terminator).
func (f *Framer) Feed(b byte) (line string, complete bool) {
	if b == '\n' {
		line = string(f.buf[:f.n])
		f.n = 0
		return line, true
	}
	if b < 0x20 || b > 0x7E {
		return "", false
	}
	if f.n >= FrameBufferSize {
		f.n = 0
	}
	f.buf[f.n] = b
	f.n++
	return "", false
}
