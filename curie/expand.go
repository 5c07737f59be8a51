package curie

// Expand resolves a raw compact form into its full identifier. The input is
// split at the first colon; the part before it is the prefix, everything
// after it the reference. Input without a colon is a bare reference and
// resolves against the default base.
//
// Expand("foaf:Person") with foaf registered yields the foaf base with
// "Person" appended. Expand(":Person") looks up the empty prefix, which
// succeeds only when "" has been registered with AddPrefix; the default base
// is never consulted for it. Expand("Person") uses the default base or fails
// with ErrMissingDefault.
func (pm *PrefixMapping) Expand(text string) (string, error) {
	return pm.ExpandCurie(ParseCurie(text))
}

// ExpandCurie resolves an already-split compact identifier. Expansion is
// straight concatenation of the resolved base and the reference; no
// separator is inserted, so bases are expected to end with one, typically
// "/" or "#".
//
// A present prefix, the empty string included, is looked up among the
// registered prefixes and fails with an error matching ErrInvalidPrefix
// when absent. A missing prefix resolves against the default base and fails
// with ErrMissingDefault when none is set. Expand delegates here, so the
// two entry points agree on every input.
func (pm *PrefixMapping) ExpandCurie(c Curie) (string, error) {
	prefix, ok := c.Prefix()
	if !ok {
		if !pm.hasDefault {
			return "", ErrMissingDefault
		}
		return pm.defaultBase + c.reference, nil
	}
	base, found := pm.prefixes[prefix]
	if !found {
		return "", &PrefixError{Prefix: prefix, Err: ErrInvalidPrefix}
	}
	return base + c.reference, nil
}
