package curie

import "strings"

// Curie is a parsed Compact URI: an optional prefix and a reference.
//
// The prefix carries a presence flag because the empty prefix is meaningful:
// NewCurie("", "Person") renders as ":Person" and resolves through the
// mapping registered for "", while NewBareCurie("Person") renders as
// "Person" and resolves through the default base. Curie values are
// comparable with ==.
type Curie struct {
	prefix    string
	hasPrefix bool
	reference string
}

// NewCurie returns a Curie with an explicit prefix. The prefix may be empty;
// that is the distinct empty-prefix form, not a bare reference.
func NewCurie(prefix, reference string) Curie {
	return Curie{prefix: prefix, hasPrefix: true, reference: reference}
}

// NewBareCurie returns a Curie with no prefix at all. It renders without a
// colon and expands against the default base.
func NewBareCurie(reference string) Curie {
	return Curie{reference: reference}
}

// ParseCurie splits s into a Curie at the first colon. Input without a colon
// becomes a bare Curie. ParseCurie never fails; whether the prefix resolves
// is decided at expansion time.
func ParseCurie(s string) Curie {
	if prefix, reference, ok := splitCurie(s); ok {
		return NewCurie(prefix, reference)
	}
	return NewBareCurie(s)
}

// Prefix returns the prefix and whether one is present. The empty string
// with ok == true is the empty prefix, as in ":Person".
func (c Curie) Prefix() (prefix string, ok bool) {
	return c.prefix, c.hasPrefix
}

// Reference returns the reference part.
func (c Curie) Reference() string { return c.reference }

// String renders the compact form: prefix:reference when a prefix is
// present, otherwise the bare reference.
func (c Curie) String() string {
	if c.hasPrefix {
		return c.prefix + ":" + c.reference
	}
	return c.reference
}

// MarshalText implements encoding.TextMarshaler using the compact form.
func (c Curie) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// ParseCurie accepts.
func (c *Curie) UnmarshalText(text []byte) error {
	*c = ParseCurie(string(text))
	return nil
}

// splitCurie splits s at the first colon. ok reports whether a colon was
// present. Further colons stay in the reference, so "a:b:c" splits into
// ("a", "b:c").
func splitCurie(s string) (prefix, reference string, ok bool) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return "", s, false
}
