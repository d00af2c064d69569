package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sloth-sim/sloth/bmi"
	"github.com/sloth-sim/sloth/bmi/sloth"
)

// Scenario is a scripted host session: variables to define, indexed writes,
// then time advances.
type Scenario struct {
	Steps     int            `yaml:"steps"`
	Until     *float64       `yaml:"until"` // nil = no UpdateUntil call
	Variables []VariableSpec `yaml:"variables"`
	Writes    []WriteSpec    `yaml:"writes"`
}

// VariableSpec is a whole-buffer SetValue. Name may carry a metadata suffix.
type VariableSpec struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

// WriteSpec is a SetValueAtIndices with count = len(Indices).
type WriteSpec struct {
	Name    string    `yaml:"name"`
	Indices []int     `yaml:"indices"`
	Values  []float64 `yaml:"values"`
}

// LoadScenario reads a scenario file. Unknown fields are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", sc.Steps)
	}
	for i, v := range sc.Variables {
		if v.Name == "" {
			return fmt.Errorf("variables[%d]: name is required", i)
		}
	}
	for i, w := range sc.Writes {
		if w.Name == "" {
			return fmt.Errorf("writes[%d]: name is required", i)
		}
		if len(w.Indices) == 0 {
			return fmt.Errorf("writes[%d] %q: at least one index is required", i, w.Name)
		}
		if len(w.Indices) != len(w.Values) {
			return fmt.Errorf("writes[%d] %q: %d indices but %d values", i, w.Name, len(w.Indices), len(w.Values))
		}
	}
	return nil
}

// Apply performs the scenario's writes and time advances against m.
func (sc *Scenario) Apply(m bmi.Model) error {
	for _, v := range sc.Variables {
		typ, _, err := elementShape(m, v.Name)
		if err != nil {
			return err
		}
		src, err := bmi.EncodeFloat64s(typ, v.Values)
		if err != nil {
			return fmt.Errorf("variable %q: %w", v.Name, err)
		}
		if err := m.SetValue(v.Name, src); err != nil {
			return err
		}
		logrus.Infof("set %s (%d values)", v.Name, len(v.Values))
	}

	for _, w := range sc.Writes {
		typ, count, err := elementShape(m, w.Name)
		if err != nil {
			return err
		}
		for _, idx := range w.Indices {
			if idx < 0 || idx >= count {
				return fmt.Errorf("write %q: %w: index %d outside [0, %d)", w.Name, bmi.ErrIllegalArgument, idx, count)
			}
		}
		src, err := bmi.EncodeFloat64s(typ, w.Values)
		if err != nil {
			return fmt.Errorf("write %q: %w", w.Name, err)
		}
		if err := m.SetValueAtIndices(w.Name, w.Indices, len(w.Indices), src); err != nil {
			return err
		}
		logrus.Infof("wrote %s at %v", w.Name, w.Indices)
	}

	for i := 0; i < sc.Steps; i++ {
		if err := m.Update(); err != nil {
			return err
		}
	}
	if sc.Until != nil {
		if err := m.UpdateUntil(*sc.Until); err != nil {
			return err
		}
	}
	logrus.Infof("time is now %g %s", m.GetCurrentTime(), m.GetTimeUnits())
	return nil
}

// elementShape returns the type values for name must be encoded as and the
// number of elements it holds: those of the existing variable, or those
// declared in name's metadata suffix. Writes to a shared alias use the first
// owner's shape.
func elementShape(m bmi.Model, name string) (bmi.Type, int, error) {
	typName, err := m.GetVarType(name)
	if err == nil {
		typ, err := bmi.ParseType(typName)
		if err != nil {
			return "", 0, err
		}
		nbytes, err := m.GetVarNbytes(name)
		if err != nil {
			return "", 0, err
		}
		return typ, nbytes / typ.Size(), nil
	}
	if !errors.Is(err, bmi.ErrNotFound) {
		return "", 0, err
	}
	_, meta, err := sloth.ParseName(name)
	if err != nil {
		return "", 0, err
	}
	return meta.Type, meta.Count, nil
}
