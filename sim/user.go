package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidProbability is returned when a User is built with a
	// generation or transmission probability outside [0, 1].
	ErrInvalidProbability = errors.New("probability must lie in [0, 1]")

	// ErrQueueUnderflow signals a success was credited to a user with no
	// pending frame. It means the channel and the policy disagree about who
	// transmitted and is never recoverable.
	ErrQueueUnderflow = errors.New("dequeue on empty frame queue")
)

// User is one independent traffic source sharing the channel.
// Pending frames carry no identity, so the FIFO is kept as a count.
type User struct {
	ID               int
	generationProb   float64 // chance of a new frame in any slot
	transmissionProb float64 // chance of attempting a queued frame on an idle slot
	queue            int     // pending frames (p-persistent CSMA only)
}

// NewUser creates a User. Both probabilities must be in [0, 1].
func NewUser(id int, generationProb, transmissionProb float64) (*User, error) {
	if err := validateProbability("generation_probability", generationProb); err != nil {
		return nil, err
	}
	if err := validateProbability("transmission_probability", transmissionProb); err != nil {
		return nil, err
	}
	return &User{
		ID:               id,
		generationProb:   generationProb,
		transmissionProb: transmissionProb,
	}, nil
}

func validateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s = %v: %w", name, p, ErrInvalidProbability)
	}
	return nil
}

// GenerationProb returns the per-slot frame generation probability.
func (u *User) GenerationProb() float64 { return u.generationProb }

// TransmissionProb returns the persistence probability.
func (u *User) TransmissionProb() float64 { return u.transmissionProb }

// QueueLen returns the number of frames waiting for transmission.
func (u *User) QueueLen() int { return u.queue }

// GenerateFrame draws one sample and reports whether a frame was produced
// this slot. When enqueue is set the frame joins the user's queue.
func (u *User) GenerateFrame(rng UniformSource, enqueue bool) bool {
	if rng.Float64() >= u.generationProb {
		return false
	}
	if enqueue {
		u.queue++
	}
	return true
}

// dequeue removes the head frame after a successful transmission.
func (u *User) dequeue() error {
	if u.queue == 0 {
		return fmt.Errorf("user %d: %w", u.ID, ErrQueueUnderflow)
	}
	u.queue--
	return nil
}
