package trace

// TraceSummary aggregates statistics from a SessionTrace.
type TraceSummary struct {
	Variables        int
	Aliased          int
	TypeDistribution map[string]int // type name → variables of that type
	Writes           int
	FanOutWrites     int // writes that reached more than one canonical variable
	Steps            int
	FinalTime        float64 // time after the last step; 0 if none
}

// Summarize computes aggregate statistics from a SessionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SessionTrace) *TraceSummary {
	summary := &TraceSummary{
		TypeDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.Variables = len(st.Registrations)
	for _, r := range st.Registrations {
		summary.TypeDistribution[r.Type]++
		if r.Alias != "" {
			summary.Aliased++
		}
	}

	summary.Writes = len(st.Writes)
	for _, w := range st.Writes {
		if len(w.Targets) > 1 {
			summary.FanOutWrites++
		}
	}

	summary.Steps = len(st.Steps)
	if n := len(st.Steps); n > 0 {
		summary.FinalTime = st.Steps[n-1].To
	}

	return summary
}
