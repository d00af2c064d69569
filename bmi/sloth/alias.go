package sloth

import "sort"

// AliasIndex maps input-side alias names to the canonical variables that
// claim them. Several canonical variables may claim the same alias; writes to
// that alias reach all of them.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type AliasIndex struct {
	aliasOf map[string]string   // canonical → alias
	owners  map[string][]string // alias → canonical names, in bind order
}

// NewAliasIndex creates an empty AliasIndex.
func NewAliasIndex() *AliasIndex {
	return &AliasIndex{
		aliasOf: make(map[string]string),
		owners:  make(map[string][]string),
	}
}

// Bind records alias as the input name of canonical. A canonical name holds at
// most one alias; binding it again is a no-op.
func (a *AliasIndex) Bind(canonical, alias string) {
	if _, bound := a.aliasOf[canonical]; bound {
		return
	}
	a.aliasOf[canonical] = alias
	a.owners[alias] = append(a.owners[alias], canonical)
}

// IsAlias returns true if name is bound as some variable's alias.
func (a *AliasIndex) IsAlias(name string) bool {
	return len(a.owners[name]) > 0
}

// Resolve returns the canonical name behind an alias, or name unchanged if it
// is not an alias. When several variables share the alias, the earliest bound
// wins; callers reading through a shared alias should not rely on which.
func (a *AliasIndex) Resolve(name string) string {
	if owners := a.owners[name]; len(owners) > 0 {
		return owners[0]
	}
	return name
}

// Owners returns every canonical name whose alias equals name, in bind order.
// Empty if name is not an alias.
func (a *AliasIndex) Owners(name string) []string {
	owners := a.owners[name]
	out := make([]string, len(owners))
	copy(out, owners)
	return out
}

// Inputs returns the distinct alias names, sorted.
func (a *AliasIndex) Inputs() []string {
	names := make([]string, 0, len(a.owners))
	for alias := range a.owners {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct aliases.
func (a *AliasIndex) Len() int {
	return len(a.owners)
}
