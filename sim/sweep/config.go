package sweep

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/inference-sim/macsim/sim"
)

// Config describes a full parameter sweep: one channel, one protocol, a
// uniform λ grid and, for CSMA, a set of persistence probabilities.
type Config struct {
	Protocol    sim.Protocol
	Channel     sim.ChannelConfig
	NumLambdas  int       // grid points over [LambdaMin, LambdaMax]
	LambdaMin   float64   // first λ of the grid
	LambdaMax   float64   // last λ of the grid
	Persistence []float64 // one series per value (CSMA); ignored by Slotted ALOHA
	Seed        int64     // master seed; every point derives its own stream
}

// Validate checks the sweep parameters. Probability ranges are left to
// sim.NewUser so that a bad point fails with sim.ErrInvalidProbability.
func (c *Config) Validate() error {
	if !sim.IsValidProtocol(c.Protocol) {
		return fmt.Errorf("unknown protocol %q", c.Protocol)
	}
	if err := c.Channel.Validate(); err != nil {
		return err
	}
	if c.NumLambdas <= 0 {
		return fmt.Errorf("num_lambdas must be positive, got %d", c.NumLambdas)
	}
	for name, v := range map[string]float64{"lambda_min": c.LambdaMin, "lambda_max": c.LambdaMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", name, v)
		}
	}
	if c.LambdaMin > c.LambdaMax {
		return fmt.Errorf("lambda_min (%v) must not exceed lambda_max (%v)", c.LambdaMin, c.LambdaMax)
	}
	if c.Protocol == sim.ProtocolPPersistentCSMA && len(c.Persistence) == 0 {
		return fmt.Errorf("p-csma needs at least one persistence probability")
	}
	return nil
}

// Lambdas returns the uniformly spaced λ grid.
func (c *Config) Lambdas() []float64 {
	if c.NumLambdas == 1 {
		return []float64{c.LambdaMin}
	}
	return floats.Span(make([]float64, c.NumLambdas), c.LambdaMin, c.LambdaMax)
}

// PersistenceValues returns the p of every series in sweep order.
// Slotted ALOHA has a single series with p = 1.
func (c *Config) PersistenceValues() []float64 {
	if c.Protocol == sim.ProtocolSlottedAloha {
		if len(c.Persistence) > 0 {
			logrus.Warnf("persistence values %v ignored for %s", c.Persistence, c.Protocol)
		}
		return []float64{1}
	}
	return c.Persistence
}
