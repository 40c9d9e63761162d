package protocol

import (
	"testing"

	"github.com/rspg/arduino-jar/internal/command"
)

func TestDecodeCommandFrameRoundTrip(t *testing.T) {
	slot := command.Slot{Op: command.OpTargetTemperature, Index: 0x00, Params: [6]byte{8, 0, 0, 0, 0, 0}}
	frame := EncodeCommandFrame(slot)

	got, err := DecodeCommandFrame(frame)
	if err != nil {
		t.Fatalf("DecodeCommandFrame() err=%v", err)
	}
	if got != slot {
		t.Fatalf("DecodeCommandFrame() = %+v, want %+v", got, slot)
	}
}

func TestDecodeCommandFrameAcceptsMissingDotTerminator(t *testing.T) {
	slot := command.Slot{Op: command.OpHold, Index: 0x80, Params: [6]byte{0, 120, 0, 0, 0, 0}}
	frame := EncodeCommandFrame(slot)
	frame = frame[:len(frame)-1] // strip the '.', as if the newline terminated it instead

	got, err := DecodeCommandFrame(frame)
	if err != nil {
		t.Fatalf("DecodeCommandFrame() err=%v", err)
	}
	if got != slot {
		t.Fatalf("DecodeCommandFrame() = %+v, want %+v", got, slot)
	}
}

func TestDecodeCommandFrameRejectsShortHex(t *testing.T) {
	_, err := DecodeCommandFrame("WV,001B,02000820000.")
	if err != ErrInvalidArgument {
		t.Fatalf("err=%v, want ErrInvalidArgument", err)
	}
}

func TestDecodeCommandFrameRejectsWrongService(t *testing.T) {
	_, err := DecodeCommandFrame("WV,0099,0200082000000000.")
	if err != ErrInvalidCommand {
		t.Fatalf("err=%v, want ErrInvalidCommand", err)
	}
}
