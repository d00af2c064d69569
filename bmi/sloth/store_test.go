package sloth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sloth-sim/sloth/bmi"
)

func newStoreWith(t *testing.T, name string, meta Meta) *Store {
	t.Helper()
	s := NewStore()
	s.Register(name, meta)
	require.NoError(t, s.EnsureAllocated(name))
	return s
}

func TestStore_ByteSize_PerType(t *testing.T) {
	tests := []struct {
		typ  bmi.Type
		want int
	}{
		{bmi.TypeDouble, 5 * 8},
		{bmi.TypeFloat, 5 * 4},
		{bmi.TypeInt, 5 * 4},
		{bmi.TypeShort, 5 * 2},
		{bmi.TypeLong, 5 * 8},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			s := newStoreWith(t, "v", Meta{Count: 5, Type: tt.typ})
			n, err := s.ByteSize("v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestStore_ByteSize_BeforeAllocation_ComputedFromMeta(t *testing.T) {
	// GIVEN metadata registered but no buffer yet
	s := NewStore()
	s.Register("v", Meta{Count: 3, Type: bmi.TypeFloat})

	// WHEN the size is requested
	n, err := s.ByteSize("v")

	// THEN it is recomputed from count × width
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	buf, err := s.Ptr("v")
	require.NoError(t, err)
	assert.Nil(t, buf)
}

func TestStore_EnsureAllocated_Idempotent(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 2, Type: bmi.TypeDouble})
	first, _ := s.Ptr("v")
	first[0] = 0xAB

	require.NoError(t, s.EnsureAllocated("v"))

	second, _ := s.Ptr("v")
	assert.Equal(t, byte(0xAB), second[0], "buffer must not be reallocated")
}

func TestStore_Register_ExistingName_KeepsMeta(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 2, Type: bmi.TypeInt})

	s.Register("v", Meta{Count: 9, Type: bmi.TypeDouble})

	meta, err := s.Meta("v")
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Count)
	assert.Equal(t, bmi.TypeInt, meta.Type)
	assert.Equal(t, []string{"v"}, s.Names())
}

func TestStore_UnknownName_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Ptr("nope")
	assert.ErrorIs(t, err, bmi.ErrNotFound)
	_, err = s.ByteSize("nope")
	assert.ErrorIs(t, err, bmi.ErrNotFound)
	_, err = s.Meta("nope")
	assert.ErrorIs(t, err, bmi.ErrNotFound)
	assert.ErrorIs(t, s.EnsureAllocated("nope"), bmi.ErrNotFound)
	assert.ErrorIs(t, s.CopyWhole("nope", Read, make([]byte, 8)), bmi.ErrNotFound)
	assert.ErrorIs(t, s.CopyIndexed("nope", Read, make([]byte, 8), []int{0}, 1), bmi.ErrNotFound)
}

func TestStore_CopyWhole_RoundTrip(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 3, Type: bmi.TypeLong})
	src := bmi.Encode([]int64{-1, 0, 1 << 40})

	require.NoError(t, s.CopyWhole("v", Write, src))
	out := make([]byte, len(src))
	require.NoError(t, s.CopyWhole("v", Read, out))

	assert.Equal(t, src, out)
}

func TestStore_CopyWhole_ShortBuffer_IllegalArgument(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 2, Type: bmi.TypeDouble})

	err := s.CopyWhole("v", Write, make([]byte, 15))

	assert.ErrorIs(t, err, bmi.ErrIllegalArgument)
}

func TestStore_CopyWhole_LongBuffer_CopiesExactSize(t *testing.T) {
	// GIVEN a 1-element double and a 16-byte source
	s := newStoreWith(t, "v", Meta{Count: 1, Type: bmi.TypeDouble})
	src := bmi.Encode([]float64{1.5, 2.5})

	// WHEN written and read back into a larger buffer pre-filled with a marker
	require.NoError(t, s.CopyWhole("v", Write, src))
	out := bmi.Encode([]float64{9, 9})
	require.NoError(t, s.CopyWhole("v", Read, out))

	// THEN exactly one element moved each way
	got, err := bmi.Decode[float64](out)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 9}, got)
}

func TestStore_CopyIndexed_GatherAndScatter(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 5, Type: bmi.TypeShort})
	require.NoError(t, s.CopyWhole("v", Write, bmi.Encode([]int16{10, 11, 12, 13, 14})))

	// scatter 2 elements to positions 4 and 1
	require.NoError(t, s.CopyIndexed("v", Write, bmi.Encode([]int16{40, 41}), []int{4, 1}, 2))

	whole := make([]byte, 10)
	require.NoError(t, s.CopyWhole("v", Read, whole))
	got, err := bmi.Decode[int16](whole)
	require.NoError(t, err)
	assert.Equal(t, []int16{10, 41, 12, 13, 40}, got)

	// gather positions 1, 1, 0 (repeats allowed)
	out := make([]byte, 6)
	require.NoError(t, s.CopyIndexed("v", Read, out, []int{1, 1, 0}, 3))
	gathered, err := bmi.Decode[int16](out)
	require.NoError(t, err)
	assert.Equal(t, []int16{41, 41, 10}, gathered)
}

func TestStore_CopyIndexed_CountBelowOne_IllegalArgument(t *testing.T) {
	s := newStoreWith(t, "v", Meta{Count: 2, Type: bmi.TypeDouble})

	for _, count := range []int{0, -1} {
		err := s.CopyIndexed("v", Read, make([]byte, 16), []int{0}, count)
		assert.ErrorIs(t, err, bmi.ErrIllegalArgument, "count %d", count)
	}
}

func TestStore_CopyIndexed_CountLimitsElements(t *testing.T) {
	// GIVEN more indices than count
	s := newStoreWith(t, "v", Meta{Count: 3, Type: bmi.TypeInt})

	// WHEN scattering with count 1
	require.NoError(t, s.CopyIndexed("v", Write, bmi.Encode([]int32{7, 8}), []int{2, 0}, 1))

	// THEN only the first index is written
	whole := make([]byte, 12)
	require.NoError(t, s.CopyWhole("v", Read, whole))
	got, _ := bmi.Decode[int32](whole)
	assert.Equal(t, []int32{0, 0, 7}, got)
}

func TestStore_CopyIndexed_OutOfRangeIndex_Panics(t *testing.T) {
	// Out-of-range indices are a caller obligation, surfaced by bounds checks.
	s := newStoreWith(t, "v", Meta{Count: 2, Type: bmi.TypeDouble})

	assert.Panics(t, func() {
		_ = s.CopyIndexed("v", Read, make([]byte, 8), []int{2}, 1)
	})
}

func TestStore_Names_RegistrationOrder(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		s.Register(name, DefaultMeta())
		require.NoError(t, s.EnsureAllocated(name))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Names())
	assert.Equal(t, 3, s.Len())
}
