package sim

import "fmt"

// Protocol names a medium-access protocol.
type Protocol string

const (
	// ProtocolSlottedAloha transmits every frame in the slot it was generated.
	ProtocolSlottedAloha Protocol = "slotted-aloha"
	// ProtocolPPersistentCSMA queues frames and retries them with probability p on idle slots.
	ProtocolPPersistentCSMA Protocol = "p-csma"
)

// protocolAliases maps short CLI spellings to canonical protocol names.
var protocolAliases = map[string]Protocol{
	"aloha":             ProtocolSlottedAloha,
	"slotted-aloha":     ProtocolSlottedAloha,
	"csma":              ProtocolPPersistentCSMA,
	"p-csma":            ProtocolPPersistentCSMA,
	"p-persistent-csma": ProtocolPPersistentCSMA,
}

// ParseProtocol resolves a protocol name or alias.
func ParseProtocol(name string) (Protocol, error) {
	if p, ok := protocolAliases[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown protocol %q; valid: slotted-aloha (aloha), p-csma (csma)", name)
}

// IsValidProtocol returns true if p is a canonical protocol name.
func IsValidProtocol(p Protocol) bool {
	return p == ProtocolSlottedAloha || p == ProtocolPPersistentCSMA
}

// TransmissionPolicy decides, per user and per idle slot, whether the user
// puts a frame on the channel.
type TransmissionPolicy interface {
	Protocol() Protocol
	// QueueFrames reports whether generated frames are held in the user's queue.
	QueueFrames() bool
	// Attempts reports whether u transmits in the current idle slot.
	// generated is true when u produced a frame earlier in this slot.
	Attempts(u *User, generated bool, rng UniformSource) bool
	// OnSuccess is called for the single user whose attempt got through.
	OnSuccess(u *User) error
}

// SlottedAloha sends a frame in the slot it is generated; there is no retry.
type SlottedAloha struct{}

func (SlottedAloha) Protocol() Protocol { return ProtocolSlottedAloha }
func (SlottedAloha) QueueFrames() bool  { return false }

func (SlottedAloha) Attempts(_ *User, generated bool, _ UniformSource) bool {
	return generated
}

func (SlottedAloha) OnSuccess(_ *User) error { return nil }

// PPersistentCSMA attempts the head-of-queue frame with the user's
// transmission probability whenever the channel is sensed idle.
type PPersistentCSMA struct{}

func (PPersistentCSMA) Protocol() Protocol { return ProtocolPPersistentCSMA }
func (PPersistentCSMA) QueueFrames() bool  { return true }

// Attempts consumes a draw only when the user has something to send.
func (PPersistentCSMA) Attempts(u *User, _ bool, rng UniformSource) bool {
	if u.queue == 0 {
		return false
	}
	return rng.Float64() < u.transmissionProb
}

func (PPersistentCSMA) OnSuccess(u *User) error {
	return u.dequeue()
}

// NewTransmissionPolicy creates the policy for a canonical protocol name.
// Panics on unrecognized names; callers validate with IsValidProtocol first.
func NewTransmissionPolicy(p Protocol) TransmissionPolicy {
	switch p {
	case ProtocolSlottedAloha:
		return SlottedAloha{}
	case ProtocolPPersistentCSMA:
		return PPersistentCSMA{}
	default:
		panic(fmt.Sprintf("unhandled protocol %q", p))
	}
}
