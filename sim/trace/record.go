// Package trace provides per-slot trace recording for a single simulation run.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// SlotState names what happened on the channel in one slot.
type SlotState string

const (
	// SlotBusy means the slot was still occupied and no arbitration ran.
	SlotBusy SlotState = "busy"
	// SlotIdle means arbitration ran and nobody transmitted.
	SlotIdle SlotState = "idle"
	// SlotSuccess means exactly one user transmitted.
	SlotSuccess SlotState = "success"
	// SlotCollision means two or more users transmitted.
	SlotCollision SlotState = "collision"
)

// SlotRecord captures one slot of a run.
type SlotRecord struct {
	Slot      int
	State     SlotState
	Generated int   // frames generated across all users this slot
	Attempts  int   // users that transmitted (0 on busy slots)
	Winner    int   // user ID of the successful sender, -1 otherwise
	WaitAfter int   // busy slots remaining once this slot ends
	QueueLens []int // per-user queue length sampled after generation (nil for ALOHA)
}
