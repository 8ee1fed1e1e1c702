package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_ValidProbabilities_Succeeds(t *testing.T) {
	for _, gen := range []float64{0, 0.001, 0.5, 1} {
		for _, tx := range []float64{0, 0.01, 0.5, 1} {
			u, err := NewUser(3, gen, tx)
			require.NoError(t, err, "gen=%v tx=%v", gen, tx)
			assert.Equal(t, 3, u.ID)
			assert.Equal(t, gen, u.GenerationProb())
			assert.Equal(t, tx, u.TransmissionProb())
			assert.Equal(t, 0, u.QueueLen())
		}
	}
}

func TestNewUser_InvalidProbability_ReturnsErrInvalidProbability(t *testing.T) {
	tests := []struct {
		name string
		gen  float64
		tx   float64
	}{
		{"negative generation", -0.1, 0.5},
		{"generation above one", 1.0001, 0.5},
		{"NaN generation", math.NaN(), 0.5},
		{"negative transmission", 0.5, -1},
		{"transmission above one", 0.5, 2},
		{"infinite transmission", 0.5, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(0, tt.gen, tt.tx)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, ErrInvalidProbability)
		})
	}
}

func TestGenerateFrame_ZeroProbability_NeverGenerates(t *testing.T) {
	u, err := NewUser(0, 0, 1)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10_000; i++ {
		require.False(t, u.GenerateFrame(rng, true))
	}
	assert.Equal(t, 0, u.QueueLen())
}

func TestGenerateFrame_OneProbability_AlwaysGenerates(t *testing.T) {
	u, err := NewUser(0, 1, 1)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		require.True(t, u.GenerateFrame(rng, true))
	}
	assert.Equal(t, 100, u.QueueLen())
}

func TestGenerateFrame_DrawBelowProbability_Generates(t *testing.T) {
	// GIVEN a user generating with probability 0.3
	u, err := NewUser(0, 0.3, 1)
	require.NoError(t, err)

	// WHEN draws straddle the threshold
	src := newScriptedSource(t, 0.29, 0.3, 0.31, 0.0)

	// THEN only draws strictly below 0.3 produce a frame
	assert.True(t, u.GenerateFrame(src, false))
	assert.False(t, u.GenerateFrame(src, false))
	assert.False(t, u.GenerateFrame(src, false))
	assert.True(t, u.GenerateFrame(src, true))

	// AND only the enqueued frame is counted
	assert.Equal(t, 1, u.QueueLen())
}
