package trace

// SlotTrace collects slot records during one simulation run.
type SlotTrace struct {
	Slots []SlotRecord
}

// NewSlotTrace creates a SlotTrace sized for numSlots records.
func NewSlotTrace(numSlots int) *SlotTrace {
	return &SlotTrace{Slots: make([]SlotRecord, 0, numSlots)}
}

// Record appends a slot record.
func (st *SlotTrace) Record(record SlotRecord) {
	st.Slots = append(st.Slots, record)
}
