package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inference-sim/macsim/sim"
	"github.com/inference-sim/macsim/sim/sweep"
)

// sweepOptions holds the flag values of one sweep subcommand.
type sweepOptions struct {
	numUsers    int
	numSlots    int
	slotLen     float64
	ftt         float64
	numLambdas  int
	lambdaMin   float64
	lambdaMax   float64
	persistence []float64
	seed        int64
	configPath  string
	outputPath  string
	format      string
}

// register binds the sweep flags on c. Defaults follow the reference lab
// scenarios: 100 users, 100 slots, 100 λ points over [0, 1].
func (o *sweepOptions) register(c *cobra.Command, defaultFTT float64, withPersistence bool) {
	c.Flags().IntVar(&o.numUsers, "users", 100, "Number of users sharing the channel")
	c.Flags().IntVar(&o.numSlots, "slots", 100, "Number of slots simulated per configuration point")
	c.Flags().Float64Var(&o.slotLen, "slot-len", 1, "Slot length τ")
	c.Flags().Float64Var(&o.ftt, "ftt", defaultFTT, "Frame transmission time (whole multiple of slot length)")
	c.Flags().IntVar(&o.numLambdas, "lambdas", 100, "Number of λ points in the grid")
	c.Flags().Float64Var(&o.lambdaMin, "lambda-min", 0, "Smallest aggregate load λ")
	c.Flags().Float64Var(&o.lambdaMax, "lambda-max", 1, "Largest aggregate load λ")
	c.Flags().Int64Var(&o.seed, "seed", 42, "Master seed for all random draws")
	c.Flags().StringVar(&o.configPath, "config", "", "Path to a YAML scenario file (flags given explicitly win)")
	c.Flags().StringVar(&o.outputPath, "output", "", "Write the series to this file ('-' for stdout)")
	c.Flags().StringVar(&o.format, "format", sweep.FormatCSV, "Series output format (csv, json)")
	if withPersistence {
		c.Flags().Float64SliceVar(&o.persistence, "persistence", []float64{0.5, 0.01}, "Comma-separated persistence probabilities p")
	}
}

// config resolves the scenario file (if any) and builds the sweep config.
func (o *sweepOptions) config(c *cobra.Command, protocol sim.Protocol) (sweep.Config, error) {
	if o.configPath != "" {
		sc, err := LoadScenario(o.configPath)
		if err != nil {
			return sweep.Config{}, err
		}
		if sc.Protocol != "" {
			p, err := sim.ParseProtocol(sc.Protocol)
			if err != nil {
				return sweep.Config{}, fmt.Errorf("scenario %s: %w", o.configPath, err)
			}
			if p != protocol {
				return sweep.Config{}, fmt.Errorf("scenario %s is for %s, not %s", o.configPath, p, protocol)
			}
		}
		sc.apply(o, c.Flags().Changed)
	}
	if !sweep.IsValidFormat(o.format) {
		return sweep.Config{}, fmt.Errorf("unknown output format %q; valid: csv, json", o.format)
	}
	cfg := sweep.Config{
		Protocol:   protocol,
		Channel:    sim.NewChannelConfig(o.numUsers, o.numSlots, o.slotLen, o.ftt),
		NumLambdas: o.numLambdas,
		LambdaMin:  o.lambdaMin,
		LambdaMax:  o.lambdaMax,
		Seed:       o.seed,
	}
	if protocol == sim.ProtocolPPersistentCSMA {
		cfg.Persistence = o.persistence
	}
	return cfg, cfg.Validate()
}
