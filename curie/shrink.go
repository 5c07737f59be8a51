package curie

import "strings"

// Shrink contracts a full identifier back into compact form by literal
// string matching, the reverse of ExpandCurie.
//
// The default base is tried first: when it is set and the identifier starts
// with it, the result is a bare Curie holding the remainder. Otherwise the
// registered (prefix, base) pairs are scanned and the first pair whose base
// starts the identifier wins. When no base matches at all, Shrink fails
// with ErrNoMapping.
//
// The scan follows map iteration order, so when several registered bases
// start the same identifier the choice among them is unspecified and may
// differ between calls. Shrink deliberately does not prefer the longest
// matching base; callers that need a deterministic choice should keep their
// registered bases prefix-free.
func (pm *PrefixMapping) Shrink(identifier string) (Curie, error) {
	if pm.hasDefault && strings.HasPrefix(identifier, pm.defaultBase) {
		return NewBareCurie(identifier[len(pm.defaultBase):]), nil
	}
	for prefix, base := range pm.prefixes {
		if strings.HasPrefix(identifier, base) {
			return NewCurie(prefix, identifier[len(base):]), nil
		}
	}
	return Curie{}, ErrNoMapping
}
