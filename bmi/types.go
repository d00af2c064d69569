package bmi

import (
	"fmt"
	"strings"
)

// Type is one of the element types a variable can hold.
type Type string

const (
	TypeDouble Type = "double"
	TypeFloat  Type = "float"
	TypeInt    Type = "int"
	TypeShort  Type = "short"
	TypeLong   Type = "long"
)

// typeSizes maps each catalog type to its native byte width (C LP64 layout:
// int is 32-bit, long is 64-bit).
var typeSizes = map[Type]int{
	TypeDouble: 8,
	TypeFloat:  4,
	TypeInt:    4,
	TypeShort:  2,
	TypeLong:   8,
}

// Types returns the catalog in canonical order.
func Types() []Type {
	return []Type{TypeDouble, TypeFloat, TypeInt, TypeShort, TypeLong}
}

// ValidTypeNames returns the catalog type names, for error messages and help text.
func ValidTypeNames() []string {
	names := make([]string, 0, len(typeSizes))
	for _, t := range Types() {
		names = append(names, string(t))
	}
	return names
}

// IsValidType returns true if name is a catalog type. Matching is case-sensitive.
func IsValidType(name string) bool {
	_, ok := typeSizes[Type(name)]
	return ok
}

// ParseType returns the catalog type for name.
func ParseType(name string) (Type, error) {
	if !IsValidType(name) {
		return "", fmt.Errorf("%w: %q; valid: %s", ErrInvalidType, name, strings.Join(ValidTypeNames(), ", "))
	}
	return Type(name), nil
}

// Size returns the byte width of one element, or 0 for a type outside the catalog.
func (t Type) Size() int {
	return typeSizes[t]
}

func (t Type) String() string {
	return string(t)
}
