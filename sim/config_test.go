package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChannelConfig_FieldEquivalence(t *testing.T) {
	got := NewChannelConfig(100, 1000, 1, 3)
	want := ChannelConfig{NumUsers: 100, NumSlots: 1000, SlotLen: 1, FTT: 3}
	assert.Equal(t, want, got)
}

func TestChannelConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ChannelConfig
		wantErr bool
	}{
		{"reference aloha", NewChannelConfig(100, 100, 1, 1), false},
		{"reference csma", NewChannelConfig(100, 100, 1, 3), false},
		{"fractional slot length", NewChannelConfig(10, 10, 0.1, 0.3), false},
		{"zero users", NewChannelConfig(0, 100, 1, 1), true},
		{"zero slots", NewChannelConfig(10, 0, 1, 1), true},
		{"zero slot length", NewChannelConfig(10, 10, 0, 1), true},
		{"NaN slot length", NewChannelConfig(10, 10, math.NaN(), 1), true},
		{"zero ftt", NewChannelConfig(10, 10, 1, 0), true},
		{"ftt shorter than a slot", NewChannelConfig(10, 10, 1, 0.5), true},
		{"ftt not a whole multiple", NewChannelConfig(10, 10, 1, 1.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChannelConfig_FrameSlots(t *testing.T) {
	assert.Equal(t, 1, NewChannelConfig(1, 1, 1, 1).FrameSlots())
	assert.Equal(t, 3, NewChannelConfig(1, 1, 1, 3).FrameSlots())
	assert.Equal(t, 3, NewChannelConfig(1, 1, 0.1, 0.3).FrameSlots())
}

func TestSimConfig_Probabilities(t *testing.T) {
	aloha := newTestConfig(ProtocolSlottedAloha, 100, 10, 1, 0.5, 0.01)
	assert.InDelta(t, 0.005, aloha.GenerationProb(), 1e-15)
	assert.Equal(t, 1.0, aloha.TransmissionProb(), "aloha ignores persistence")

	csma := newTestConfig(ProtocolPPersistentCSMA, 100, 10, 3, 0.5, 0.01)
	assert.Equal(t, 0.01, csma.TransmissionProb())
}

func TestSimConfig_Validate_RejectsUnknownProtocolAndNaNLambda(t *testing.T) {
	cfg := newTestConfig("ethernet", 10, 10, 1, 0.5, 0.5)
	assert.Error(t, cfg.Validate())

	cfg = newTestConfig(ProtocolSlottedAloha, 10, 10, 1, math.NaN(), 0.5)
	assert.Error(t, cfg.Validate())
}
