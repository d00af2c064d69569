package sloth

import (
	"fmt"

	"github.com/sloth-sim/sloth/bmi"
)

// Direction selects which way a copy moves bytes.
type Direction int

const (
	// Read copies from the store into the caller's buffer.
	Read Direction = iota
	// Write copies from the caller's buffer into the store.
	Write
)

// variable is one canonical variable: its metadata and owned buffer.
type variable struct {
	meta   Meta
	buf    []byte
	nbytes int
	sized  bool // nbytes has been materialized
}

// Store owns the metadata and byte buffer of every canonical variable.
// Buffers are allocated once, at registration, and never resized or freed
// before the Store itself is dropped.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type Store struct {
	vars  map[string]*variable
	order []string // canonical names in registration order
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		vars:  make(map[string]*variable),
		order: make([]string, 0),
	}
}

// Has returns true if name is a registered canonical name.
func (s *Store) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Len returns the number of registered variables.
func (s *Store) Len() int {
	return len(s.order)
}

// Names returns the canonical names in registration order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Register records metadata for a new canonical name. Re-registering an
// existing name is a no-op: metadata is immutable once set.
// EnsureAllocated must follow immediately.
func (s *Store) Register(name string, meta Meta) {
	if s.Has(name) {
		return
	}
	s.vars[name] = &variable{meta: meta}
	s.order = append(s.order, name)
}

// EnsureAllocated allocates the buffer for name from its registered type and
// count. No-op if the buffer already exists.
func (s *Store) EnsureAllocated(name string) error {
	v, err := s.lookup(name)
	if err != nil {
		return err
	}
	if v.buf != nil {
		return nil
	}
	n, err := s.ByteSize(name)
	if err != nil {
		return err
	}
	v.buf = make([]byte, n)
	v.nbytes = n
	v.sized = true
	return nil
}

// Meta returns the registered metadata for name.
func (s *Store) Meta(name string) (Meta, error) {
	v, err := s.lookup(name)
	if err != nil {
		return Meta{}, err
	}
	return v.meta, nil
}

// ByteSize returns count × element width for name, computing it from
// metadata if the size has not been materialized yet.
func (s *Store) ByteSize(name string) (int, error) {
	v, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	if v.sized {
		return v.nbytes, nil
	}
	width := v.meta.Type.Size()
	if width == 0 {
		return 0, fmt.Errorf("%w: variable %q has illegal type %q", bmi.ErrInvalidType, name, v.meta.Type)
	}
	return v.meta.Count * width, nil
}

// Ptr returns the buffer owned by name. The slice aliases the store: writes
// through it are visible to later reads.
func (s *Store) Ptr(name string) ([]byte, error) {
	v, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return v.buf, nil
}

// CopyWhole copies exactly ByteSize(name) bytes between the variable and ext.
// ext must be at least that long.
func (s *Store) CopyWhole(name string, dir Direction, ext []byte) error {
	v, err := s.lookup(name)
	if err != nil {
		return err
	}
	if len(ext) < len(v.buf) {
		return fmt.Errorf("%w: buffer of %d bytes for variable %q of %d bytes", bmi.ErrIllegalArgument, len(ext), name, len(v.buf))
	}
	if dir == Read {
		copy(ext, v.buf)
	} else {
		copy(v.buf, ext[:len(v.buf)])
	}
	return nil
}

// CopyIndexed moves count elements between the variable and ext, using the
// element width as stride. On Read, element inds[i] of the variable lands at
// position i of ext; on Write, position i of ext lands at element inds[i].
//
// Indices are trusted: the caller must ensure len(inds) >= count, every index
// lies in [0, Count) and ext holds count elements. A violation panics with an
// index out of range. The loop is not atomic.
func (s *Store) CopyIndexed(name string, dir Direction, ext []byte, inds []int, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: illegal count %d for indexed copy of %q", bmi.ErrIllegalArgument, count, name)
	}
	v, err := s.lookup(name)
	if err != nil {
		return err
	}
	width := v.meta.Type.Size()
	for i := 0; i < count; i++ {
		elem := v.buf[inds[i]*width : (inds[i]+1)*width]
		slot := ext[i*width : (i+1)*width]
		if dir == Read {
			copy(slot, elem)
		} else {
			copy(elem, slot)
		}
	}
	return nil
}

func (s *Store) lookup(name string) (*variable, error) {
	v, ok := s.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown variable %q", bmi.ErrNotFound, name)
	}
	return v, nil
}
