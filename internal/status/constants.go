// Package status implements the 8-byte wire-visible status record of the
// cooking kernel and its monotone fault-latching invariant.
package status

// Code is the status/error enum carried in byte 0 of the wire record.
// Negative values are errors; zero and above are operating states.
type Code int8

const (
	// CodeUnknown is an unclassified fault.
	CodeUnknown Code = -64
	// CodeInvalidCommand is a received line that is not a WV command frame
	// for the command service.
	CodeInvalidCommand Code = -63
	// CodeInvalidArgument is a malformed or out-of-range command argument.
	CodeInvalidArgument Code = -62
	// CodeCommandOverflow is a slot write that resolves beyond the 32-slot
	// program capacity.
	CodeCommandOverflow Code = -61
	// CodeTemperatureOverlimit is a measured temperature outside the safe range.
	CodeTemperatureOverlimit Code = -60
	// CodeTemperatureFeedbackFailed is an implausible or open-circuit thermistor reading.
	CodeTemperatureFeedbackFailed Code = -59
	// CodeBTDeviceError is a wireless bring-up or publication failure latch.
	CodeBTDeviceError Code = -58

	// CodeStandby is the idle, fault-free state.
	CodeStandby Code = 0
	// CodeCooking is the active, fault-free cooking state.
	CodeCooking Code = 1
)

// IsFault reports whether c represents a latched error.
func (c Code) IsFault() bool { return c < 0 }

// String names the code for logging.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeInvalidCommand:
		return "invalid_command"
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeCommandOverflow:
		return "command_overflow"
	case CodeTemperatureOverlimit:
		return "temperature_overlimit"
	case CodeTemperatureFeedbackFailed:
		return "temperature_feedback_failed"
	case CodeBTDeviceError:
		return "btdevice_error"
	case CodeStandby:
		return "standby"
	case CodeCooking:
		return "cooking"
	default:
		return "reserved"
	}
}

// RecordSize is the length in bytes of the wire-visible status record.
const RecordSize = 8

// RemainMinutesFlag marks RemainTime as minutes instead of seconds (bit 15).
const RemainMinutesFlag uint16 = 0x8000

// RemainSecondsMax is the largest remaining duration still reported in
// seconds; anything beyond it switches to minutes with RemainMinutesFlag
// set.
const RemainSecondsMax = 3600

// MaxProgramSlots is the fixed capacity of the command program array.
const MaxProgramSlots = 32
