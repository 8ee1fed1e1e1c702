package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inference-sim/macsim/sim"
	"github.com/inference-sim/macsim/sim/sweep"
	"github.com/inference-sim/macsim/sim/trace"
)

var (
	logLevel string // Log verbosity level

	alohaOpts sweepOptions
	csmaOpts  sweepOptions

	// CLI flags for the single-point run
	pointProtocol    string  // protocol name or alias
	pointLambda      float64 // aggregate load λ
	pointPersistence float64 // persistence probability p
	pointTraceSlots  bool    // record and summarize every slot
	pointSeed        int64   // seed for the run's random stream
	pointOpts        sweepOptions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "macsim",
	Short: "Slot-level Monte Carlo simulator for contention-based medium access",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// alohaCmd sweeps Slotted ALOHA over the λ grid
var alohaCmd = &cobra.Command{
	Use:   "aloha",
	Short: "Sweep Slotted ALOHA throughput over aggregate load λ",
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(cmd, &alohaOpts, sim.ProtocolSlottedAloha)
	},
}

// csmaCmd sweeps p-persistent CSMA over the λ grid, one series per p
var csmaCmd = &cobra.Command{
	Use:   "csma",
	Short: "Sweep p-persistent CSMA throughput and queue length over λ and p",
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(cmd, &csmaOpts, sim.ProtocolPPersistentCSMA)
	},
}

// pointCmd runs one configuration point and reports its metrics
var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Run a single (λ, p) configuration and print its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		protocol, err := sim.ParseProtocol(pointProtocol)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg := sim.SimConfig{
			ChannelConfig: sim.NewChannelConfig(pointOpts.numUsers, pointOpts.numSlots, pointOpts.slotLen, pointOpts.ftt),
			Protocol:      protocol,
			Lambda:        pointLambda,
			Persistence:   pointPersistence,
			TraceSlots:    pointTraceSlots,
		}
		if protocol == sim.ProtocolSlottedAloha && !cmd.Flags().Changed("ftt") {
			cfg.FTT = cfg.SlotLen
		}
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(pointSeed))
		s, err := sim.NewSimulator(cfg, rng.ForSubsystem(sim.SubsystemSingle))
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		logrus.Infof("Starting %s run: users=%d slots=%d λ=%v p=%v ftt=%v",
			protocol, cfg.NumUsers, cfg.NumSlots, cfg.Lambda, cfg.TransmissionProb(), cfg.FTT)
		m, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		m.Print(os.Stdout)
		if s.Trace != nil {
			printTraceSummary(os.Stdout, trace.Summarize(s.Trace))
		}
	},
}

func runSweep(cmd *cobra.Command, opts *sweepOptions, protocol sim.Protocol) {
	cfg, err := opts.config(cmd, protocol)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	runner, err := sweep.NewRunner(cfg)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	res, err := runner.Run()
	if err != nil {
		logrus.Fatalf("Sweep aborted: %v", err)
	}
	res.Print(os.Stdout)
	if err := saveSeries(opts.outputPath, opts.format, res); err != nil {
		logrus.Fatalf("%v", err)
	}
}

// saveSeries writes the sweep series for the plotting side. Empty path skips it.
func saveSeries(path, format string, res *sweep.Result) error {
	switch path {
	case "":
		return nil
	case "-":
		return sweep.Write(os.Stdout, res, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sweep.Write(f, res, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logrus.Infof("Wrote %s series to %s", format, path)
	return nil
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	p := message.NewPrinter(language.English)
	p.Fprintln(w, "=== Slot Trace ===")
	p.Fprintf(w, "Busy / Idle          : %d / %d\n", ts.BusySlots, ts.IdleSlots)
	p.Fprintf(w, "Success / Collision  : %d / %d\n", ts.SuccessSlots, ts.CollisionSlots)
	p.Fprintf(w, "Max Attempts in Slot : %d\n", ts.MaxAttempts)
	p.Fprintf(w, "Max User Queue       : %d\n", ts.MaxQueueLen)
	p.Fprintf(w, "Distinct Winners     : %d\n", len(ts.WinsByUser))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	alohaOpts.register(alohaCmd, 1, false)
	csmaOpts.register(csmaCmd, 3, true)

	pointCmd.Flags().StringVar(&pointProtocol, "protocol", "csma", "Protocol (aloha, csma)")
	pointCmd.Flags().Float64Var(&pointLambda, "lambda", 0.5, "Aggregate load λ")
	pointCmd.Flags().Float64Var(&pointPersistence, "p", 0.5, "Persistence probability (csma only)")
	pointCmd.Flags().BoolVar(&pointTraceSlots, "trace-slots", false, "Record every slot and print a trace summary")
	pointCmd.Flags().Int64Var(&pointSeed, "seed", 42, "Seed for the run's random stream")
	pointCmd.Flags().IntVar(&pointOpts.numUsers, "users", 100, "Number of users sharing the channel")
	pointCmd.Flags().IntVar(&pointOpts.numSlots, "slots", 100, "Number of slots simulated")
	pointCmd.Flags().Float64Var(&pointOpts.slotLen, "slot-len", 1, "Slot length τ")
	pointCmd.Flags().Float64Var(&pointOpts.ftt, "ftt", 3, "Frame transmission time (defaults to one slot for aloha)")

	rootCmd.AddCommand(alohaCmd)
	rootCmd.AddCommand(csmaCmd)
	rootCmd.AddCommand(pointCmd)
}
