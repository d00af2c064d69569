package sloth

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sloth-sim/sloth/bmi"
	"github.com/sloth-sim/sloth/bmi/trace"
)

// ComponentName is reported by GetComponentName.
const ComponentName = "Simple Logical Tautology Handler (SLoTH) Model"

var _ bmi.Model = (*Model)(nil)

// Model is the SLoTH BMI component. The zero value is not usable; call New.
//
// Writes register variables on first use (see package doc); reads resolve
// input aliases to the canonical variable sharing their storage.
type Model struct {
	store   *Store
	aliases *AliasIndex
	trace   *trace.SessionTrace // nil = no tracing

	currentTime float64
	configFile  string
}

// New creates a Model with no variables.
func New() *Model {
	return &Model{
		store:   NewStore(),
		aliases: NewAliasIndex(),
	}
}

// SetTrace attaches a call trace. Pass nil to stop recording.
func (m *Model) SetTrace(st *trace.SessionTrace) {
	m.trace = st
}

// === Control ===

// Initialize resets the clock to the start time. The config file is recorded
// but not read: SLoTH has no configuration.
func (m *Model) Initialize(configFile string) error {
	m.configFile = configFile
	m.currentTime = m.GetStartTime()
	logrus.Debugf("initialized %s (config %q)", ComponentName, configFile)
	return nil
}

// Update advances time by GetTimeStep.
func (m *Model) Update() error {
	return m.UpdateUntil(m.currentTime + m.GetTimeStep())
}

// UpdateUntil sets the current time to t. There is no bound check and t may
// lie in the past.
func (m *Model) UpdateUntil(t float64) error {
	if m.currentTime != t {
		logrus.Debugf("time %g -> %g", m.currentTime, t)
		m.trace.RecordStep(trace.StepRecord{From: m.currentTime, To: t})
		m.currentTime = t
	}
	return nil
}

// Finalize is a no-op; all buffers are released with the Model.
func (m *Model) Finalize() error {
	return nil
}

// === Info ===

func (m *Model) GetComponentName() string {
	return ComponentName
}

// GetInputVarNames returns the distinct input aliases, sorted.
func (m *Model) GetInputVarNames() []string {
	return m.aliases.Inputs()
}

// GetOutputVarNames returns every canonical name in registration order.
func (m *Model) GetOutputVarNames() []string {
	return m.store.Names()
}

func (m *Model) GetInputItemCount() int {
	return m.aliases.Len()
}

func (m *Model) GetOutputItemCount() int {
	return m.store.Len()
}

// === Variable info ===

// describe strips any metadata suffix, resolves aliases and returns the
// registered metadata. It never registers a variable.
func (m *Model) describe(op, name string) (string, Meta, error) {
	canonical := m.aliases.Resolve(BareName(name))
	meta, err := m.store.Meta(canonical)
	if err != nil {
		return "", Meta{}, wrap(op, name, err)
	}
	return canonical, meta, nil
}

func (m *Model) GetVarType(name string) (string, error) {
	_, meta, err := m.describe("GetVarType", name)
	if err != nil {
		return "", err
	}
	return meta.Type.String(), nil
}

func (m *Model) GetVarUnits(name string) (string, error) {
	_, meta, err := m.describe("GetVarUnits", name)
	if err != nil {
		return "", err
	}
	return meta.Units, nil
}

func (m *Model) GetVarLocation(name string) (string, error) {
	_, meta, err := m.describe("GetVarLocation", name)
	if err != nil {
		return "", err
	}
	return meta.Location, nil
}

// GetVarItemsize returns the byte width of one element.
func (m *Model) GetVarItemsize(name string) (int, error) {
	_, meta, err := m.describe("GetVarItemsize", name)
	if err != nil {
		return 0, err
	}
	if !bmi.IsValidType(meta.Type.String()) {
		return 0, wrap("GetVarItemsize", name, fmt.Errorf("%w: item has illegal type %q", bmi.ErrInvalidType, meta.Type))
	}
	return meta.Type.Size(), nil
}

// GetVarNbytes returns the size of the variable's whole buffer.
func (m *Model) GetVarNbytes(name string) (int, error) {
	canonical, _, err := m.describe("GetVarNbytes", name)
	if err != nil {
		return 0, err
	}
	n, err := m.store.ByteSize(canonical)
	return n, wrap("GetVarNbytes", name, err)
}

// === Getters ===

// GetValue copies the whole variable into dest, which must hold at least
// GetVarNbytes(name) bytes.
func (m *Model) GetValue(name string, dest []byte) error {
	canonical := m.aliases.Resolve(name)
	return wrap("GetValue", name, m.store.CopyWhole(canonical, Read, dest))
}

// GetValuePtr returns the variable's buffer itself. It stays valid for the
// life of the Model and writes through it are visible to later reads.
func (m *Model) GetValuePtr(name string) ([]byte, error) {
	buf, err := m.store.Ptr(m.aliases.Resolve(name))
	if err != nil {
		return nil, wrap("GetValuePtr", name, err)
	}
	return buf, nil
}

// GetValueAtIndices gathers count elements at inds into dest.
// See Store.CopyIndexed for the caller's obligations on inds and dest.
func (m *Model) GetValueAtIndices(name string, dest []byte, inds []int, count int) error {
	canonical := m.aliases.Resolve(name)
	return wrap("GetValueAtIndices", name, m.store.CopyIndexed(canonical, Read, dest, inds, count))
}

// === Setters ===

// SetValue copies GetVarNbytes bytes of src into the variable, registering it
// first if name is new. A write to an input alias reaches every variable that
// claims it; a failure part way through leaves earlier targets written.
func (m *Model) SetValue(name string, src []byte) error {
	targets, err := m.writeTargets("SetValue", name, func(meta Meta) error {
		return fitsBuffer(meta, meta.Count, len(src))
	})
	if err != nil {
		return err
	}
	for _, canonical := range targets {
		if err := m.store.CopyWhole(canonical, Write, src); err != nil {
			return wrap("SetValue", canonical, err)
		}
	}
	m.trace.RecordWrite(trace.WriteRecord{Name: name, Targets: targets})
	return nil
}

// SetValueAtIndices scatters count elements of src to positions inds, with
// the same registration and alias fan-out rules as SetValue.
// See Store.CopyIndexed for the caller's obligations on inds and src.
func (m *Model) SetValueAtIndices(name string, inds []int, count int, src []byte) error {
	if count < 1 {
		return wrap("SetValueAtIndices", name, fmt.Errorf("%w: illegal count %d", bmi.ErrIllegalArgument, count))
	}
	targets, err := m.writeTargets("SetValueAtIndices", name, func(meta Meta) error {
		return fitsBuffer(meta, count, len(src))
	})
	if err != nil {
		return err
	}
	for _, canonical := range targets {
		if err := m.store.CopyIndexed(canonical, Write, src, inds, count); err != nil {
			return wrap("SetValueAtIndices", canonical, err)
		}
	}
	m.trace.RecordWrite(trace.WriteRecord{Name: name, Targets: targets, Indexed: true, Count: count})
	return nil
}

// writeTargets returns the canonical variables a write to name must reach:
// every owner if name is an input alias, otherwise the (possibly newly
// registered) variable name denotes.
func (m *Model) writeTargets(op, name string, fits func(Meta) error) ([]string, error) {
	if owners := m.aliases.Owners(name); len(owners) > 0 {
		if len(owners) > 1 {
			logrus.Warnf("%s: input alias %q is claimed by %d variables %v; writing all of them", op, name, len(owners), owners)
		}
		return owners, nil
	}
	canonical, err := m.processNameMeta(op, name, fits)
	if err != nil {
		return nil, err
	}
	return []string{canonical}, nil
}

// fitsBuffer rejects a source of n bytes too short for elems elements of meta's type.
func fitsBuffer(meta Meta, elems, n int) error {
	if need := elems * meta.Type.Size(); n < need {
		return fmt.Errorf("%w: buffer of %d bytes for %d %s elements (%d bytes)",
			bmi.ErrIllegalArgument, n, elems, meta.Type, need)
	}
	return nil
}

// === Time ===

func (m *Model) GetCurrentTime() float64 {
	return m.currentTime
}

func (m *Model) GetStartTime() float64 {
	return 0.0
}

// GetEndTime returns the largest representable time: SLoTH runs forever.
func (m *Model) GetEndTime() float64 {
	return math.MaxFloat64
}

func (m *Model) GetTimeUnits() string {
	return "s"
}

// GetTimeStep returns the most negative representable time. Each Update
// therefore drives the clock toward -Inf: one step reaches -MaxFloat64 and
// the next overflows to -Inf, where it stays.
func (m *Model) GetTimeStep() float64 {
	return -math.MaxFloat64
}

// wrap attaches op and name to err unless it already carries them.
func wrap(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var ve *bmi.VarError
	if errors.As(err, &ve) {
		return err
	}
	return &bmi.VarError{Op: op, Name: name, Wrapped: err}
}
