// Tracks per-run channel statistics such as throughput and queue occupancy.

package sim

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Metrics aggregates statistics about one simulation run
// for final reporting.
type Metrics struct {
	NumSlots                int   // slots simulated
	SuccessfulTransmissions int   // slots with exactly one sender
	Collisions              int   // slots with two or more senders
	IdleSlots               int   // arbitrated slots with no sender
	BusySlots               int   // slots skipped because the channel was occupied
	Attempts                int   // transmissions put on the channel, colliding ones included
	FramesGenerated         int   // frames produced by all users
	FramesLost              int   // ALOHA frames generated while the channel was busy
	CumulativeQueueLength   int64 // sum over slots of the total queued frames (CSMA)
}

// NewMetrics creates Metrics for a run of numSlots slots.
func NewMetrics(numSlots int) *Metrics {
	return &Metrics{NumSlots: numSlots}
}

// Throughput returns successful transmissions per slot.
func (m *Metrics) Throughput() float64 {
	if m.NumSlots == 0 {
		return 0
	}
	return float64(m.SuccessfulTransmissions) / float64(m.NumSlots)
}

// AvgQueueLength returns the time-averaged number of frames queued across all users.
func (m *Metrics) AvgQueueLength() float64 {
	if m.NumSlots == 0 {
		return 0
	}
	return float64(m.CumulativeQueueLength) / float64(m.NumSlots)
}

// Print writes a human-readable report of the run to w.
func (m *Metrics) Print(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintln(w, "=== Simulation Metrics ===")
	p.Fprintf(w, "Slots                : %d\n", m.NumSlots)
	p.Fprintf(w, "Successful Tx        : %d\n", m.SuccessfulTransmissions)
	p.Fprintf(w, "Collisions           : %d\n", m.Collisions)
	p.Fprintf(w, "Idle Slots           : %d\n", m.IdleSlots)
	p.Fprintf(w, "Busy Slots           : %d\n", m.BusySlots)
	p.Fprintf(w, "Frames Generated     : %d\n", m.FramesGenerated)
	if m.FramesLost > 0 {
		p.Fprintf(w, "Frames Lost (busy)   : %d\n", m.FramesLost)
	}
	p.Fprintf(w, "Average Throughput   : %.4f\n", m.Throughput())
	if m.CumulativeQueueLength > 0 {
		p.Fprintf(w, "Average Queue Length : %.4f\n", m.AvgQueueLength())
	}
}
