package trace

// TraceLevel controls the verbosity of call tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelState captures registrations and time steps.
	TraceLevelState TraceLevel = "state"
	// TraceLevelWrites additionally captures every write.
	TraceLevelWrites TraceLevel = "writes"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelState:  true,
	TraceLevelWrites: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SessionTrace collects call records for one model instance.
// A nil *SessionTrace is valid and records nothing.
type SessionTrace struct {
	Level         TraceLevel
	Registrations []RegistrationRecord
	Writes        []WriteRecord
	Steps         []StepRecord
}

// NewSessionTrace creates a SessionTrace ready for recording.
func NewSessionTrace(level TraceLevel) *SessionTrace {
	return &SessionTrace{
		Level:         level,
		Registrations: make([]RegistrationRecord, 0),
		Writes:        make([]WriteRecord, 0),
		Steps:         make([]StepRecord, 0),
	}
}

func (st *SessionTrace) enabled(min TraceLevel) bool {
	if st == nil {
		return false
	}
	switch st.Level {
	case TraceLevelWrites:
		return true
	case TraceLevelState:
		return min == TraceLevelState
	}
	return false
}

// RecordRegistration appends a registration record.
func (st *SessionTrace) RecordRegistration(record RegistrationRecord) {
	if st.enabled(TraceLevelState) {
		st.Registrations = append(st.Registrations, record)
	}
}

// RecordWrite appends a write record. Only kept at TraceLevelWrites.
func (st *SessionTrace) RecordWrite(record WriteRecord) {
	if st.enabled(TraceLevelWrites) {
		st.Writes = append(st.Writes, record)
	}
}

// RecordStep appends a time step record.
func (st *SessionTrace) RecordStep(record StepRecord) {
	if st.enabled(TraceLevelState) {
		st.Steps = append(st.Steps, record)
	}
}
