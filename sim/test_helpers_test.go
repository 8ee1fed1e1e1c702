package sim

import "testing"

// scriptedSource replays a fixed list of draws and fails the test if the
// simulation asks for more than were scripted.
type scriptedSource struct {
	t     *testing.T
	draws []float64
	next  int
}

func newScriptedSource(t *testing.T, draws ...float64) *scriptedSource {
	t.Helper()
	return &scriptedSource{t: t, draws: draws}
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.draws) {
		s.t.Fatalf("scripted source exhausted after %d draws", len(s.draws))
	}
	v := s.draws[s.next]
	s.next++
	return v
}

// remaining reports how many scripted draws were not consumed.
func (s *scriptedSource) remaining() int {
	return len(s.draws) - s.next
}

// constSource returns the same value forever.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// newTestConfig returns a SimConfig with slot length 1.
func newTestConfig(protocol Protocol, users, slots int, ftt, lambda, p float64) SimConfig {
	return SimConfig{
		ChannelConfig: NewChannelConfig(users, slots, 1, ftt),
		Protocol:      protocol,
		Lambda:        lambda,
		Persistence:   p,
	}
}
