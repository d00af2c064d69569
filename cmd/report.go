package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"

	"github.com/sloth-sim/sloth/bmi"
	"github.com/sloth-sim/sloth/bmi/trace"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// maxShownValues caps the values column; longer variables are elided.
const maxShownValues = 8

// readValues returns the whole contents of name widened to float64.
func readValues(m bmi.Model, name string) ([]float64, error) {
	typName, err := m.GetVarType(name)
	if err != nil {
		return nil, err
	}
	typ, err := bmi.ParseType(typName)
	if err != nil {
		return nil, err
	}
	n, err := m.GetVarNbytes(name)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := m.GetValue(name, buf); err != nil {
		return nil, err
	}
	return bmi.DecodeFloat64s(typ, buf)
}

func formatValues(vals []float64) string {
	shown := vals
	if len(shown) > maxShownValues {
		shown = shown[:maxShownValues]
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strings.Join(parts, " ")
	if len(vals) > maxShownValues {
		s += fmt.Sprintf(" ... (%d more)", len(vals)-maxShownValues)
	}
	return s
}

// variableRows builds one table row per output variable, in registration order.
func variableRows(m bmi.Model) ([][]string, error) {
	names := m.GetOutputVarNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		typ, err := m.GetVarType(name)
		if err != nil {
			return nil, err
		}
		units, err := m.GetVarUnits(name)
		if err != nil {
			return nil, err
		}
		loc, err := m.GetVarLocation(name)
		if err != nil {
			return nil, err
		}
		vals, err := readValues(m, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{name, typ, units, loc, strconv.Itoa(len(vals)), formatValues(vals)})
	}
	return rows, nil
}

// writeVariableTable renders the model's variables and input aliases.
func writeVariableTable(w io.Writer, m bmi.Model) error {
	rows, err := variableRows(m)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no variables")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("NAME", "TYPE", "UNITS", "LOCATION", "COUNT", "VALUES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if inputs := m.GetInputVarNames(); len(inputs) > 0 {
		_, err = fmt.Fprintf(w, "inputs: %s\n", strings.Join(inputs, ", "))
	}
	return err
}

// writeTraceSummary prints aggregate trace statistics.
func writeTraceSummary(w io.Writer, s *trace.TraceSummary) error {
	types := make([]string, 0, len(s.TypeDistribution))
	for typ := range s.TypeDistribution {
		types = append(types, typ)
	}
	sort.Strings(types)
	dist := make([]string, len(types))
	for i, typ := range types {
		dist[i] = fmt.Sprintf("%s=%d", typ, s.TypeDistribution[typ])
	}

	_, err := fmt.Fprintf(w,
		"=== Trace Summary ===\nvariables: %d (aliased %d)\ntypes: %s\nwrites: %d (fan-out %d)\nsteps: %d\nfinal time: %g\n",
		s.Variables, s.Aliased, strings.Join(dist, " "), s.Writes, s.FanOutWrites, s.Steps, s.FinalTime)
	return err
}

// writePlot draws name's values against element index.
func writePlot(w io.Writer, m bmi.Model, name string) error {
	vals, err := readValues(m, name)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		return fmt.Errorf("no data to plot")
	}
	graph := asciigraph.Plot(vals,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s by index", name)),
	)
	_, err = fmt.Fprintf(w, "%s\n\n", graph)
	return err
}
