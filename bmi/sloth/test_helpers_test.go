package sloth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sloth-sim/sloth/bmi"
)

// newInitializedModel returns a Model after Initialize, as a host would use it.
func newInitializedModel(t *testing.T) *Model {
	t.Helper()
	m := New()
	require.NoError(t, m.Initialize(""))
	return m
}

// setDoubles writes vals through SetValue and fails the test on error.
func setDoubles(t *testing.T, m *Model, name string, vals ...float64) {
	t.Helper()
	require.NoError(t, m.SetValue(name, bmi.Encode(vals)))
}

// getDoubles reads the whole variable through GetValue as float64s.
func getDoubles(t *testing.T, m *Model, name string) []float64 {
	t.Helper()
	n, err := m.GetVarNbytes(name)
	require.NoError(t, err)
	buf := make([]byte, n)
	require.NoError(t, m.GetValue(name, buf))
	vals, err := bmi.Decode[float64](buf)
	require.NoError(t, err)
	return vals
}
