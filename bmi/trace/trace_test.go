package trace

import (
	"testing"
)

func TestSessionTrace_RecordRegistration_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for state changes
	st := NewSessionTrace(TraceLevelState)

	// WHEN a registration record is recorded
	st.RecordRegistration(RegistrationRecord{
		Name:     "adouble",
		Type:     "double",
		Count:    1,
		Units:    "K",
		Location: "node",
		Alias:    "alias",
	})

	// THEN the trace contains one registration record with correct data
	if len(st.Registrations) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(st.Registrations))
	}
	if st.Registrations[0].Alias != "alias" {
		t.Errorf("expected alias 'alias', got %s", st.Registrations[0].Alias)
	}
}

func TestSessionTrace_StateLevel_DropsWrites(t *testing.T) {
	// GIVEN a trace at state level
	st := NewSessionTrace(TraceLevelState)

	// WHEN a write and a step are recorded
	st.RecordWrite(WriteRecord{Name: "x", Targets: []string{"x"}})
	st.RecordStep(StepRecord{From: 0, To: 1})

	// THEN only the step is kept
	if len(st.Writes) != 0 {
		t.Errorf("expected writes to be dropped at state level, got %d", len(st.Writes))
	}
	if len(st.Steps) != 1 {
		t.Errorf("expected 1 step, got %d", len(st.Steps))
	}
}

func TestSessionTrace_NoneLevel_RecordsNothing(t *testing.T) {
	st := NewSessionTrace(TraceLevelNone)
	st.RecordRegistration(RegistrationRecord{Name: "x"})
	st.RecordWrite(WriteRecord{Name: "x"})
	st.RecordStep(StepRecord{To: 1})

	if len(st.Registrations)+len(st.Writes)+len(st.Steps) != 0 {
		t.Error("expected no records at level none")
	}
}

func TestSessionTrace_Nil_IsNoOp(t *testing.T) {
	// GIVEN a nil trace
	var st *SessionTrace

	// WHEN records are added THEN nothing panics
	st.RecordRegistration(RegistrationRecord{Name: "x"})
	st.RecordWrite(WriteRecord{Name: "x"})
	st.RecordStep(StepRecord{To: 1})
}

func TestSessionTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace recording writes
	st := NewSessionTrace(TraceLevelWrites)

	// WHEN multiple records are added
	st.RecordRegistration(RegistrationRecord{Name: "a"})
	st.RecordRegistration(RegistrationRecord{Name: "b"})
	st.RecordWrite(WriteRecord{Name: "a", Targets: []string{"a"}})

	// THEN order is preserved
	if len(st.Registrations) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(st.Registrations))
	}
	if st.Registrations[0].Name != "a" || st.Registrations[1].Name != "b" {
		t.Error("registration order not preserved")
	}
	if len(st.Writes) != 1 || st.Writes[0].Name != "a" {
		t.Error("write record mismatch")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"state", true},
		{"writes", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"STATE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
