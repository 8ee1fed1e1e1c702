package sim

import (
	"fmt"
	"math"
)

// frameSlotsTolerance bounds how far FTT / SLOT_LEN may sit from a whole number.
const frameSlotsTolerance = 1e-9

// ChannelConfig groups the parameters shared by every run of a sweep.
type ChannelConfig struct {
	NumUsers int     `json:"num_users"` // stations sharing the channel (must be > 0)
	NumSlots int     `json:"num_slots"` // slots simulated per run (must be > 0)
	SlotLen  float64 `json:"slot_len"`  // slot length τ (must be > 0)
	FTT      float64 `json:"ftt"`       // frame transmission time, a whole multiple of SlotLen
}

// NewChannelConfig creates a ChannelConfig.
func NewChannelConfig(numUsers, numSlots int, slotLen, ftt float64) ChannelConfig {
	return ChannelConfig{
		NumUsers: numUsers,
		NumSlots: numSlots,
		SlotLen:  slotLen,
		FTT:      ftt,
	}
}

// Validate checks the channel parameters.
func (c ChannelConfig) Validate() error {
	if c.NumUsers <= 0 {
		return fmt.Errorf("num_users must be positive, got %d", c.NumUsers)
	}
	if c.NumSlots <= 0 {
		return fmt.Errorf("num_slots must be positive, got %d", c.NumSlots)
	}
	if math.IsNaN(c.SlotLen) || math.IsInf(c.SlotLen, 0) || c.SlotLen <= 0 {
		return fmt.Errorf("slot_len must be a finite positive number, got %v", c.SlotLen)
	}
	if math.IsNaN(c.FTT) || math.IsInf(c.FTT, 0) || c.FTT <= 0 {
		return fmt.Errorf("ftt must be a finite positive number, got %v", c.FTT)
	}
	ratio := c.FTT / c.SlotLen
	if ratio < 1-frameSlotsTolerance || math.Abs(ratio-math.Round(ratio)) > frameSlotsTolerance {
		return fmt.Errorf("ftt (%v) must be a whole multiple (>= 1) of slot_len (%v)", c.FTT, c.SlotLen)
	}
	return nil
}

// FrameSlots returns the number of slots one frame occupies.
// Only meaningful on a validated config.
func (c ChannelConfig) FrameSlots() int {
	return int(math.Round(c.FTT / c.SlotLen))
}

// SimConfig is one configuration point: a channel, a protocol, an aggregate
// load and (for CSMA) a persistence probability.
type SimConfig struct {
	ChannelConfig
	Protocol    Protocol
	Lambda      float64 // aggregate offered load; each user generates with Lambda / NumUsers
	Persistence float64 // p for p-persistent CSMA; ignored by Slotted ALOHA
	TraceSlots  bool    // record one trace.SlotRecord per slot
}

// Validate checks everything except the probabilities, which NewUser owns.
func (c SimConfig) Validate() error {
	if !IsValidProtocol(c.Protocol) {
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}
	if math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) {
		return fmt.Errorf("lambda must be a finite number, got %v", c.Lambda)
	}
	return c.ChannelConfig.Validate()
}

// GenerationProb returns the per-user generation probability λ / n.
func (c SimConfig) GenerationProb() float64 {
	return c.Lambda / float64(c.NumUsers)
}

// TransmissionProb returns the per-user persistence probability for the protocol.
// Slotted ALOHA always transmits a generated frame.
func (c SimConfig) TransmissionProb() float64 {
	if c.Protocol == ProtocolSlottedAloha {
		return 1
	}
	return c.Persistence
}
