package curie

import (
	"iter"
	"maps"
)

// PrefixMapping is a registry of prefix -> base-identifier pairs plus an
// optional default base. Expansion and contraction run against the pairs it
// currently holds.
//
// The zero value is an empty registry, ready to use. PrefixMapping is not
// safe for concurrent mutation; callers that share one across goroutines
// must serialize access themselves.
type PrefixMapping struct {
	defaultBase string
	hasDefault  bool
	prefixes    map[string]string
}

// NewPrefixMapping returns an empty registry: no default base, no prefixes.
func NewPrefixMapping() *PrefixMapping {
	return &PrefixMapping{prefixes: make(map[string]string)}
}

// NewPrefixMappingFromMap returns a registry seeded with the given
// prefix -> base pairs. It fails if any key is the reserved "_" prefix, in
// which case no registry is returned.
func NewPrefixMappingFromMap(pairs map[string]string) (*PrefixMapping, error) {
	pm := NewPrefixMapping()
	for prefix, base := range pairs {
		if err := pm.AddPrefix(prefix, base); err != nil {
			return nil, err
		}
	}
	return pm, nil
}

// SetDefault replaces the default base identifier unconditionally. The
// default base resolves bare references such as "Person"; it plays no part
// in resolving prefixed forms, including the empty-prefix form ":Person".
func (pm *PrefixMapping) SetDefault(base string) {
	pm.defaultBase = base
	pm.hasDefault = true
}

// Default returns the default base identifier and whether one has been set.
func (pm *PrefixMapping) Default() (base string, ok bool) {
	return pm.defaultBase, pm.hasDefault
}

// AddPrefix registers base under prefix, overwriting any previous value for
// the same prefix. The reserved prefix "_" is rejected with an error
// matching ErrReservedPrefix and the registry is left unchanged. Any other
// prefix name is accepted verbatim, the empty string included.
func (pm *PrefixMapping) AddPrefix(prefix, base string) error {
	if prefix == "_" {
		return &PrefixError{Prefix: prefix, Err: ErrReservedPrefix}
	}
	if pm.prefixes == nil {
		pm.prefixes = make(map[string]string)
	}
	pm.prefixes[prefix] = base
	return nil
}

// RemovePrefix deletes the mapping for prefix. Removing an absent prefix is
// a no-op.
func (pm *PrefixMapping) RemovePrefix(prefix string) {
	delete(pm.prefixes, prefix)
}

// PrefixValue returns the base registered for prefix and whether the prefix
// is registered.
func (pm *PrefixMapping) PrefixValue(prefix string) (base string, ok bool) {
	base, ok = pm.prefixes[prefix]
	return base, ok
}

// PrefixFor returns a prefix registered for exactly the given base. When
// several prefixes share the base, whichever is met first in map iteration
// order wins.
func (pm *PrefixMapping) PrefixFor(base string) (prefix string, ok bool) {
	for p, b := range pm.prefixes {
		if b == base {
			return p, true
		}
	}
	return "", false
}

// Len reports the number of registered prefixes. The default base is not
// counted.
func (pm *PrefixMapping) Len() int { return len(pm.prefixes) }

// Merge copies every mapping of other into pm, overwriting pairs that share
// a prefix, and adopts other's default base when one is set. A nil other is
// a no-op.
func (pm *PrefixMapping) Merge(other *PrefixMapping) {
	if other == nil {
		return
	}
	if other.hasDefault {
		pm.SetDefault(other.defaultBase)
	}
	if len(other.prefixes) == 0 {
		return
	}
	if pm.prefixes == nil {
		pm.prefixes = make(map[string]string, len(other.prefixes))
	}
	// Registries never hold the reserved prefix, so the pairs can be copied
	// without revalidation.
	for prefix, base := range other.prefixes {
		pm.prefixes[prefix] = base
	}
}

// Mappings returns an iterator over all (prefix, base) pairs currently
// registered, in unspecified order. The sequence is restartable: each range
// over it walks the registry afresh. It reads live state, so mutations
// between or during ranges follow Go map iteration semantics.
func (pm *PrefixMapping) Mappings() iter.Seq2[string, string] {
	return maps.All(pm.prefixes)
}
