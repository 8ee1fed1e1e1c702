package sweep

import (
	"io"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/macsim/sim"
)

// Point is the outcome of one configuration run.
type Point struct {
	Lambda          float64 `json:"lambda"`
	P               float64 `json:"p"`
	Throughput      float64 `json:"throughput"`
	AvgQueueLength  float64 `json:"avg_queue_length"`
	Theoretical     float64 `json:"theoretical,omitempty"` // Slotted ALOHA only
	Successes       int     `json:"successes"`
	Collisions      int     `json:"collisions"`
	FramesGenerated int     `json:"frames_generated"`
	FramesLost      int     `json:"frames_lost"`
}

// Summary condenses one series.
type Summary struct {
	PeakThroughput  float64 `json:"peak_throughput"`
	PeakLambda      float64 `json:"peak_lambda"`
	MeanThroughput  float64 `json:"mean_throughput"`
	MeanQueueLength float64 `json:"mean_queue_length"`
	TheoryRMSE      float64 `json:"theory_rmse,omitempty"` // root-mean-square gap to the closed form (ALOHA)
}

// Series holds every λ point for one persistence probability.
type Series struct {
	P       float64 `json:"p"`
	Points  []Point `json:"points"`
	Summary Summary `json:"summary"`
}

// Result bundles all outputs of a sweep for the plotting collaborator.
type Result struct {
	Protocol sim.Protocol      `json:"protocol"`
	Channel  sim.ChannelConfig `json:"channel"`
	Seed     int64             `json:"seed"`
	Lambdas  []float64         `json:"lambdas"`
	Series   []Series          `json:"series"`
	WallTime time.Duration     `json:"wall_time_ns"`
}

// summarize fills s.Summary from its points. s.Points must be non-empty.
func (s *Series) summarize(protocol sim.Protocol) {
	n := len(s.Points)
	tput := make([]float64, n)
	qlen := make([]float64, n)
	theo := make([]float64, n)
	for i, pt := range s.Points {
		tput[i] = pt.Throughput
		qlen[i] = pt.AvgQueueLength
		theo[i] = pt.Theoretical
	}
	peak := floats.MaxIdx(tput)
	s.Summary = Summary{
		PeakThroughput:  tput[peak],
		PeakLambda:      s.Points[peak].Lambda,
		MeanThroughput:  stat.Mean(tput, nil),
		MeanQueueLength: stat.Mean(qlen, nil),
	}
	if protocol == sim.ProtocolSlottedAloha {
		s.Summary.TheoryRMSE = floats.Distance(tput, theo, 2) / math.Sqrt(float64(n))
	}
}

// Print writes a per-series summary table to w.
func (r *Result) Print(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintln(w, "=== Sweep Summary ===")
	p.Fprintf(w, "Protocol : %s\n", r.Protocol)
	p.Fprintf(w, "Users    : %d\n", r.Channel.NumUsers)
	p.Fprintf(w, "Slots    : %d per point, %d points\n", r.Channel.NumSlots, len(r.Lambdas)*len(r.Series))
	p.Fprintf(w, "FTT      : %v (slot length %v)\n", r.Channel.FTT, r.Channel.SlotLen)
	p.Fprintf(w, "Seed     : %d\n", r.Seed)
	for _, s := range r.Series {
		p.Fprintf(w, "--- p = %v ---\n", s.P)
		p.Fprintf(w, "Peak Throughput      : %.4f at λ = %.4f\n", s.Summary.PeakThroughput, s.Summary.PeakLambda)
		p.Fprintf(w, "Mean Throughput      : %.4f\n", s.Summary.MeanThroughput)
		if r.Protocol == sim.ProtocolSlottedAloha {
			p.Fprintf(w, "RMSE vs Theory       : %.4f\n", s.Summary.TheoryRMSE)
		} else {
			p.Fprintf(w, "Mean Queue Length    : %.4f\n", s.Summary.MeanQueueLength)
		}
	}
	p.Fprintf(w, "Wall Time            : %v\n", r.WallTime)
}
