package sloth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sloth-sim/sloth/bmi"
	"github.com/sloth-sim/sloth/bmi/trace"
)

// Defaults applied to metadata fields a name leaves unspecified.
const (
	DefaultCount    = 1
	DefaultType     = bmi.TypeDouble
	DefaultUnits    = "1" // dimensionless
	DefaultLocation = "node"
)

// metaFieldCount is the number of positional fields in a metadata suffix:
// count, type, units, location, alias.
const metaFieldCount = 5

// Meta is the metadata decoded from a variable name.
type Meta struct {
	Count    int
	Type     bmi.Type
	Units    string
	Location string
	Alias    string // empty means no input alias
}

// DefaultMeta returns the metadata used for a bare name.
func DefaultMeta() Meta {
	return Meta{
		Count:    DefaultCount,
		Type:     DefaultType,
		Units:    DefaultUnits,
		Location: DefaultLocation,
	}
}

// BareName strips any metadata suffix from name without validating it.
func BareName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		return name[:i]
	}
	return name
}

// ParseName decodes name into its canonical name and metadata, filling
// defaults for omitted fields. It does not consult any registry state.
//
// Errors wrap bmi.ErrMalformedInput (unterminated suffix, bad count, too many
// fields, trailing text, empty name) or bmi.ErrInvalidType.
func ParseName(name string) (string, Meta, error) {
	meta := DefaultMeta()

	lp := strings.IndexByte(name, '(')
	if lp < 0 {
		if name == "" {
			return "", meta, fmt.Errorf("%w: empty variable name", bmi.ErrMalformedInput)
		}
		return name, meta, nil
	}

	raw := name[:lp]
	body := name[lp+1:]
	rp := strings.IndexByte(body, ')')
	if rp < 0 {
		return "", meta, fmt.Errorf("%w: missing closing paren in variable definition %q", bmi.ErrMalformedInput, name)
	}
	if raw == "" {
		return "", meta, fmt.Errorf("%w: variable definition %q has no name", bmi.ErrMalformedInput, name)
	}
	if trailing := strings.TrimSpace(body[rp+1:]); trailing != "" {
		return "", meta, fmt.Errorf("%w: unexpected %q after metadata in %q", bmi.ErrMalformedInput, trailing, name)
	}

	fields := strings.Split(body[:rp], ",")
	if len(fields) > metaFieldCount {
		return "", meta, fmt.Errorf("%w: %d metadata fields in %q, at most %d allowed (count,type,units,location,alias)",
			bmi.ErrMalformedInput, len(fields), name, metaFieldCount)
	}

	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		switch i {
		case 0:
			count, err := strconv.Atoi(field)
			if err != nil || count < 1 {
				return "", meta, fmt.Errorf("%w: count %q for variable %q must be a positive integer", bmi.ErrMalformedInput, field, raw)
			}
			meta.Count = count
		case 1:
			t, err := bmi.ParseType(field)
			if err != nil {
				return "", meta, fmt.Errorf("variable %q: %w", raw, err)
			}
			meta.Type = t
		case 2:
			meta.Units = field
		case 3:
			meta.Location = field
		case 4:
			meta.Alias = field
		}
	}
	return raw, meta, nil
}

// processNameMeta resolves a name passed to a write into the canonical name
// to store under, registering a new variable on first encounter.
//
// Fast paths skip parsing: a name whose bare part is a registered canonical
// name returns that name (any suffix is ignored), and a name that is exactly
// a registered alias is returned unchanged. A suffixed name whose bare part
// is an alias is an attempt to define a new variable and collides.
//
// For a new name, fits (if non-nil) is checked against the parsed metadata
// before anything is registered, so a rejected write leaves no variable.
func (m *Model) processNameMeta(op, name string, fits func(Meta) error) (string, error) {
	if bare := BareName(name); m.store.Has(bare) {
		return bare, nil
	}
	if m.aliases.IsAlias(name) {
		return name, nil
	}

	canonical, meta, err := ParseName(name)
	if err != nil {
		return "", wrap(op, name, err)
	}

	if meta.Alias != "" {
		if meta.Alias == canonical {
			return "", wrap(op, name, fmt.Errorf("%w: aliasing an input variable (%q) to its own name is not allowed",
				bmi.ErrNamingCollision, meta.Alias))
		}
		if m.store.Has(meta.Alias) {
			return "", wrap(op, name, fmt.Errorf("%w: input alias %q for variable %q conflicts with an existing output variable of the same name",
				bmi.ErrNamingCollision, meta.Alias, canonical))
		}
	}
	if m.aliases.IsAlias(canonical) {
		return "", wrap(op, name, fmt.Errorf("%w: new variable %q conflicts with a previously defined input alias of the same name",
			bmi.ErrNamingCollision, canonical))
	}
	if fits != nil {
		if err := fits(meta); err != nil {
			return "", wrap(op, name, err)
		}
	}

	m.store.Register(canonical, meta)
	if err := m.store.EnsureAllocated(canonical); err != nil {
		return "", wrap(op, name, err)
	}
	if meta.Alias != "" {
		m.aliases.Bind(canonical, meta.Alias)
	}

	logrus.Debugf("registered %s(%d,%s,%s,%s,%s)", canonical, meta.Count, meta.Type, meta.Units, meta.Location, meta.Alias)
	m.trace.RecordRegistration(trace.RegistrationRecord{
		Name:     canonical,
		Type:     meta.Type.String(),
		Count:    meta.Count,
		Units:    meta.Units,
		Location: meta.Location,
		Alias:    meta.Alias,
	})
	return canonical, nil
}
