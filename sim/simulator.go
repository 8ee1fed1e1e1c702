// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/macsim/sim/trace"
)

// Simulator drives one configuration run: a fixed population of users
// contending for one channel over a fixed number of slots.
type Simulator struct {
	Config  SimConfig
	Users   []*User
	Channel *Channel
	Policy  TransmissionPolicy
	Metrics *Metrics
	// Trace is non-nil only when Config.TraceSlots is set.
	Trace *trace.SlotTrace
	// Slot is the index of the next slot to simulate.
	Slot int

	rng        UniformSource
	generated  []bool // per-user generation result for the current slot
	attempting []int  // indices of users transmitting in the current slot
}

// NewSimulator builds fresh users and an idle channel for cfg.
// Every draw of the run comes from rng.
func NewSimulator(cfg SimConfig, rng UniformSource) (*Simulator, error) {
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	users := make([]*User, cfg.NumUsers)
	for i := range users {
		u, err := NewUser(i, cfg.GenerationProb(), cfg.TransmissionProb())
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users[i] = u
	}
	s := &Simulator{
		Config:     cfg,
		Users:      users,
		Channel:    NewChannel(cfg.FrameSlots()),
		Policy:     NewTransmissionPolicy(cfg.Protocol),
		Metrics:    NewMetrics(cfg.NumSlots),
		rng:        rng,
		generated:  make([]bool, cfg.NumUsers),
		attempting: make([]int, 0, cfg.NumUsers),
	}
	if cfg.TraceSlots {
		s.Trace = trace.NewSlotTrace(cfg.NumSlots)
	}
	return s, nil
}

// Run simulates the remaining slots and returns the accumulated metrics.
// A queue underflow aborts the run.
func (sim *Simulator) Run() (*Metrics, error) {
	for sim.Slot < sim.Config.NumSlots {
		if err := sim.Step(); err != nil {
			return nil, err
		}
	}
	logrus.Debugf("[%s λ=%.4f p=%.4f] run ended: successes=%d collisions=%d idle=%d busy=%d",
		sim.Config.Protocol, sim.Config.Lambda, sim.Config.Persistence,
		sim.Metrics.SuccessfulTransmissions, sim.Metrics.Collisions, sim.Metrics.IdleSlots, sim.Metrics.BusySlots)
	return sim.Metrics, nil
}

// Step simulates one slot. Arrivals happen every slot; arbitration only
// when the channel is idle.
func (sim *Simulator) Step() error {
	queueFrames := sim.Policy.QueueFrames()

	generated := 0
	for i, u := range sim.Users {
		sim.generated[i] = u.GenerateFrame(sim.rng, queueFrames)
		if sim.generated[i] {
			generated++
		}
		if queueFrames {
			sim.Metrics.CumulativeQueueLength += int64(u.queue)
		}
	}
	sim.Metrics.FramesGenerated += generated

	record := trace.SlotRecord{Slot: sim.Slot, Generated: generated, Winner: -1}
	if sim.Trace != nil && queueFrames {
		record.QueueLens = make([]int, len(sim.Users))
		for i, u := range sim.Users {
			record.QueueLens[i] = u.queue
		}
	}

	if sim.Channel.Busy() {
		sim.Channel.Tick()
		sim.Metrics.BusySlots++
		if !queueFrames {
			sim.Metrics.FramesLost += generated
		}
		record.State = trace.SlotBusy
		sim.finishSlot(record)
		return nil
	}

	sim.attempting = sim.attempting[:0]
	for i, u := range sim.Users {
		if sim.Policy.Attempts(u, sim.generated[i], sim.rng) {
			sim.attempting = append(sim.attempting, i)
		}
	}
	record.Attempts = len(sim.attempting)
	sim.Metrics.Attempts += len(sim.attempting)

	switch outcome := sim.Channel.Arbitrate(len(sim.attempting)); outcome {
	case OutcomeIdle:
		sim.Metrics.IdleSlots++
		record.State = trace.SlotIdle
	case OutcomeSuccess:
		winner := sim.Users[sim.attempting[0]]
		if err := sim.Policy.OnSuccess(winner); err != nil {
			return fmt.Errorf("slot %d: %w", sim.Slot, err)
		}
		sim.Metrics.SuccessfulTransmissions++
		record.State = trace.SlotSuccess
		record.Winner = winner.ID
	case OutcomeCollision:
		sim.Metrics.Collisions++
		record.State = trace.SlotCollision
	default:
		panic(fmt.Sprintf("unhandled outcome %v", outcome))
	}
	sim.finishSlot(record)
	return nil
}

func (sim *Simulator) finishSlot(record trace.SlotRecord) {
	record.WaitAfter = sim.Channel.WaitSlots()
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("[slot %07d] %s generated=%d attempts=%d wait=%d",
			record.Slot, record.State, record.Generated, record.Attempts, record.WaitAfter)
	}
	if sim.Trace != nil {
		sim.Trace.Record(record)
	}
	sim.Slot++
}
