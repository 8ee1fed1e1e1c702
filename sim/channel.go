package sim

// Outcome classifies one arbitrated slot.
type Outcome int

const (
	// OutcomeIdle means no user transmitted.
	OutcomeIdle Outcome = iota
	// OutcomeSuccess means exactly one user transmitted.
	OutcomeSuccess
	// OutcomeCollision means two or more users transmitted.
	OutcomeCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeSuccess:
		return "success"
	case OutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Channel is the shared broadcast medium. Time is counted in whole slots.
type Channel struct {
	frameSlots int // slots occupied by one frame (FTT / SLOT_LEN)
	waitSlots  int // slots left before the channel can be sensed idle
}

// NewChannel creates an idle channel whose frames last frameSlots slots.
// frameSlots must be >= 1.
func NewChannel(frameSlots int) *Channel {
	if frameSlots < 1 {
		panic("NewChannel: frameSlots must be >= 1")
	}
	return &Channel{frameSlots: frameSlots}
}

// Busy reports whether the current slot is still occupied by an earlier
// transmission or collision.
func (c *Channel) Busy() bool { return c.waitSlots > 0 }

// WaitSlots returns the remaining busy slots.
func (c *Channel) WaitSlots() int { return c.waitSlots }

// Tick consumes one busy slot.
func (c *Channel) Tick() {
	if c.waitSlots > 0 {
		c.waitSlots--
	}
}

// Arbitrate classifies an idle slot with the given number of attempts and
// occupies the channel accordingly. An idle slot holds the channel for one
// slot, a success or a collision for a full frame time; the current slot is
// already part of that duration.
func (c *Channel) Arbitrate(attempts int) Outcome {
	if c.Busy() {
		panic("Channel.Arbitrate: channel is busy")
	}
	var outcome Outcome
	busy := c.frameSlots
	switch {
	case attempts == 0:
		outcome = OutcomeIdle
		busy = 1
	case attempts == 1:
		outcome = OutcomeSuccess
	default:
		outcome = OutcomeCollision
	}
	c.waitSlots = busy - 1
	return outcome
}
