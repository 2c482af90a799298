package api

// TraceTask is a snapshot of a long-running enrichment task. Progress runs
// from 0.0 to 1.0.
type TraceTask struct {
	ID              string  `json:"id"`
	Progress        float64 `json:"progress"`
	ProgressMessage string  `json:"progress_msg"`
}

// IsZero returns true if the trace endpoint reported no task at all, which
// the service signals with an empty payload.
func (t TraceTask) IsZero() bool {
	return t.ID == "" && t.Progress == 0 && t.ProgressMessage == ""
}

// Complete returns true once the task reached full progress.
func (t TraceTask) Complete() bool {
	return t.Progress >= 1.0
}
