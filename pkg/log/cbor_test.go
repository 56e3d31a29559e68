package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

func TestEncodeDecodeCommandEvent(t *testing.T) {
	cfg := hal.ConfigRequest{Support5g: true, MasterPreference: 111, ClusterLow: 5, ClusterHigh: 155}
	event := Event{
		Timestamp:  time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
		InstanceID: "3f1c",
		Direction:  DirectionOut,
		Category:   CategoryCommand,
		ClientID:   1005,
		Command: &CommandEvent{
			TxID:   42,
			Op:     hal.OpEnableAndConfigure,
			Config: &cfg,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
	if decoded.ClientID != 1005 {
		t.Errorf("ClientID: got %d, want 1005", decoded.ClientID)
	}
	if decoded.Command == nil {
		t.Fatal("Command is nil")
	}
	if decoded.Command.TxID != 42 || decoded.Command.Op != hal.OpEnableAndConfigure {
		t.Errorf("Command: got tx=%d op=%s", decoded.Command.TxID, decoded.Command.Op)
	}
	if decoded.Command.Config == nil || *decoded.Command.Config != cfg {
		t.Errorf("Config: got %v, want %v", decoded.Command.Config, cfg)
	}
}

func TestEncodeDecodeCallbackEvent(t *testing.T) {
	status := hal.StatusNoSpaceAvailable
	event := Event{
		Timestamp: time.Now(),
		Direction: DirectionIn,
		Category:  CategoryCallback,
		Callback: &CallbackEvent{
			Kind:    hal.CallbackPublishFail,
			TxID:    7,
			Status:  &status,
			Unknown: true,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	cb := decoded.Callback
	if cb == nil {
		t.Fatal("Callback is nil")
	}
	if cb.Kind != hal.CallbackPublishFail {
		t.Errorf("Kind: got %s, want PublishFail", cb.Kind)
	}
	if cb.Status == nil || *cb.Status != hal.StatusNoSpaceAvailable {
		t.Errorf("Status: got %v", cb.Status)
	}
	if !cb.Unknown {
		t.Error("Unknown flag lost")
	}
	if decoded.Command != nil || decoded.StateChange != nil || decoded.Error != nil {
		t.Error("unexpected payloads set after decode")
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		InstanceID: "x",
		Category:   CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntitySession,
			OldState: "idle",
			NewState: "publishing",
		},
	}

	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding the same event twice produced different bytes")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := uint16(1); i <= 3; i++ {
		if err := enc.Encode(Event{Category: CategoryCommand, Command: &CommandEvent{TxID: i, Op: hal.OpDisable}}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i := uint16(1); i <= 3; i++ {
		var event Event
		if err := dec.Decode(&event); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if event.Command == nil || event.Command.TxID != i {
			t.Errorf("event %d: got %+v", i, event.Command)
		}
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error decoding garbage")
	}
}
