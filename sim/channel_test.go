package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_Arbitrate_ClassifiesByAttemptCount(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		frame     int
		want      Outcome
		wantAfter int
	}{
		{"idle holds one slot", 0, 3, OutcomeIdle, 0},
		{"success one-slot frame", 1, 1, OutcomeSuccess, 0},
		{"success three-slot frame", 1, 3, OutcomeSuccess, 2},
		{"collision of two", 2, 3, OutcomeCollision, 2},
		{"collision of many", 57, 1, OutcomeCollision, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChannel(tt.frame)
			got := c.Arbitrate(tt.attempts)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAfter, c.WaitSlots())
			assert.Equal(t, tt.wantAfter > 0, c.Busy())
		})
	}
}

func TestChannel_Tick_FreesChannelAfterFrameTime(t *testing.T) {
	c := NewChannel(3)
	c.Arbitrate(1)
	assert.True(t, c.Busy())
	c.Tick()
	assert.True(t, c.Busy())
	c.Tick()
	assert.False(t, c.Busy())
	// ticking an idle channel keeps it at zero
	c.Tick()
	assert.Equal(t, 0, c.WaitSlots())
}

func TestChannel_ArbitrateWhileBusy_Panics(t *testing.T) {
	c := NewChannel(2)
	c.Arbitrate(2)
	assert.Panics(t, func() { c.Arbitrate(0) })
}

func TestNewChannel_ZeroFrameSlots_Panics(t *testing.T) {
	assert.Panics(t, func() { NewChannel(0) })
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "idle", OutcomeIdle.String())
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "collision", OutcomeCollision.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
