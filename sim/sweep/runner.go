// Package sweep runs a simulation for every point of a (λ, p) grid and
// collects the throughput and queue-length series.
package sweep

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/macsim/sim"
)

// Runner executes a sweep point by point, strictly in order.
type Runner struct {
	cfg Config
	rng *sim.PartitionedRNG
}

// NewRunner validates cfg and prepares a Runner seeded with cfg.Seed.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep config: %w", err)
	}
	if cfg.Channel.NumSlots < 100 {
		logrus.Warnf("num_slots=%d is small; throughput estimates will be noisy", cfg.Channel.NumSlots)
	}
	return &Runner{
		cfg: cfg,
		rng: sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)),
	}, nil
}

// Run simulates every configuration point. The first failing point aborts
// the sweep and its error is returned.
func (r *Runner) Run() (*Result, error) {
	start := time.Now()
	lambdas := r.cfg.Lambdas()
	persistence := r.cfg.PersistenceValues()

	logrus.Infof("Starting %s sweep: users=%d slots=%d ftt=%v lambdas=%d p=%v seed=%d",
		r.cfg.Protocol, r.cfg.Channel.NumUsers, r.cfg.Channel.NumSlots, r.cfg.Channel.FTT,
		len(lambdas), persistence, r.cfg.Seed)

	res := &Result{
		Protocol: r.cfg.Protocol,
		Channel:  r.cfg.Channel,
		Seed:     r.cfg.Seed,
		Lambdas:  lambdas,
		Series:   make([]Series, 0, len(persistence)),
	}
	for si, p := range persistence {
		series := Series{P: p, Points: make([]Point, 0, len(lambdas))}
		for pi, lambda := range lambdas {
			pt, err := r.runPoint(si, pi, lambda, p)
			if err != nil {
				return nil, fmt.Errorf("point λ=%v p=%v: %w", lambda, p, err)
			}
			series.Points = append(series.Points, pt)
		}
		series.summarize(r.cfg.Protocol)
		res.Series = append(res.Series, series)
	}
	res.WallTime = time.Since(start)
	logrus.Infof("Sweep complete: %d points in %v", len(lambdas)*len(persistence), res.WallTime)
	return res, nil
}

func (r *Runner) runPoint(series, point int, lambda, p float64) (Point, error) {
	cfg := sim.SimConfig{
		ChannelConfig: r.cfg.Channel,
		Protocol:      r.cfg.Protocol,
		Lambda:        lambda,
		Persistence:   p,
	}
	s, err := sim.NewSimulator(cfg, r.rng.ForSubsystem(sim.SubsystemPoint(series, point)))
	if err != nil {
		return Point{}, err
	}
	m, err := s.Run()
	if err != nil {
		return Point{}, err
	}
	pt := Point{
		Lambda:          lambda,
		P:               p,
		Throughput:      m.Throughput(),
		AvgQueueLength:  m.AvgQueueLength(),
		Successes:       m.SuccessfulTransmissions,
		Collisions:      m.Collisions,
		FramesGenerated: m.FramesGenerated,
		FramesLost:      m.FramesLost,
	}
	if r.cfg.Protocol == sim.ProtocolSlottedAloha {
		pt.Theoretical = sim.SlottedAlohaThroughput(lambda, r.cfg.Channel.NumUsers)
	}
	return pt, nil
}
