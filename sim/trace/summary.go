package trace

// TraceSummary aggregates statistics from a SlotTrace.
type TraceSummary struct {
	TotalSlots     int
	BusySlots      int
	IdleSlots      int
	SuccessSlots   int
	CollisionSlots int
	MaxAttempts    int         // most users seen transmitting in one slot
	MaxQueueLen    int         // longest single-user queue observed
	WinsByUser     map[int]int // user ID → successful transmissions
}

// Summarize computes aggregate statistics from a SlotTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SlotTrace) *TraceSummary {
	summary := &TraceSummary{
		WinsByUser: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalSlots = len(st.Slots)
	for _, s := range st.Slots {
		switch s.State {
		case SlotBusy:
			summary.BusySlots++
		case SlotIdle:
			summary.IdleSlots++
		case SlotSuccess:
			summary.SuccessSlots++
			summary.WinsByUser[s.Winner]++
		case SlotCollision:
			summary.CollisionSlots++
		}
		summary.MaxAttempts = max(summary.MaxAttempts, s.Attempts)
		for _, q := range s.QueueLens {
			summary.MaxQueueLen = max(summary.MaxQueueLen, q)
		}
	}
	return summary
}
