package protocol

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/rspg/arduino-jar/internal/command"
)

// ServiceCommand is the inbound command service id.
const ServiceCommand = "001B"

// ServiceStatus is the outbound status service id.
const ServiceStatus = "001D"

var (
	ErrInvalidCommand  = errors.New("protocol: invalid command frame")
	ErrInvalidArgument = errors.New("protocol: invalid argument")
)

// DecodeCommandFrame parses a WV,<serviceId>,<16 hex>[.] line into a
// command slot. It accepts either a trailing '.' or its absence: the
// newline, already stripped by Framer, is always an acceptable
// terminator on its own.
func DecodeCommandFrame(line string) (command.Slot, error) {
	line = strings.TrimSuffix(line, ".")

	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 || parts[0] != "WV" || parts[1] != ServiceCommand {
		return command.Slot{}, ErrInvalidCommand
	}

	hexPart := parts[2]
	if len(hexPart) != 16 {
		return command.Slot{}, ErrInvalidArgument
	}

	raw, err := hex.DecodeString(strings.ToLower(hexPart))
	if err != nil {
		return command.Slot{}, ErrInvalidArgument
	}

	var b [command.SlotSize]byte
	copy(b[:], raw)
	return command.Decode(b), nil
}

// EncodeCommandFrame is the inverse of DecodeCommandFrame, used by tests
// and by any peer-simulating tooling. It always emits the '.' terminator.
func EncodeCommandFrame(s command.Slot) string {
	b := command.Encode(s)
	return "WV," + ServiceCommand + "," + strings.ToUpper(hex.EncodeToString(b[:])) + "."
}
