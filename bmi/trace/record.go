// Package trace records the calls that shape a model's state: variable
// registrations, writes and time advances. It has no dependency on any
// component package and stores pure data types.
package trace

// RegistrationRecord captures a variable created on first write.
type RegistrationRecord struct {
	Name     string // canonical name
	Type     string
	Count    int
	Units    string
	Location string
	Alias    string // empty when the variable has no input alias
}

// WriteRecord captures a SetValue or SetValueAtIndices call.
type WriteRecord struct {
	Name    string   // name as passed by the caller
	Targets []string // canonical names written; more than one on alias fan-out
	Indexed bool
	Count   int // elements written for indexed writes, 0 for whole writes
}

// StepRecord captures a time advance.
type StepRecord struct {
	From float64
	To   float64
}
