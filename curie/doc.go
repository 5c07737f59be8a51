// Package curie expands and contracts CURIEs (Compact URIs).
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// A CURIE (https://www.w3.org/TR/curie/) abbreviates an identifier as
// prefix:reference, or as a bare reference resolved against a default base.
// The package centers on one type:
//   - PrefixMapping: a registry of prefix -> base-identifier pairs plus an
//     optional default base, created empty and mutated through AddPrefix,
//     RemovePrefix and SetDefault.
//
// Expansion substitutes the base registered for a prefix and concatenates the
// reference to it; no separator is inserted, so bases normally end with "/"
// or "#". Contraction (Shrink) reverses the substitution by literal string
// prefix matching.
//
// Example (expansion and contraction):
//
//	pm := curie.NewPrefixMapping()
//	if err := pm.AddPrefix("foaf", "http://xmlns.com/foaf/0.1/"); err != nil {
//	    // handle error
//	}
//
//	full, err := pm.Expand("foaf:Person")
//	// full == "http://xmlns.com/foaf/0.1/Person"
//
//	compact, err := pm.Shrink("http://xmlns.com/foaf/0.1/Person")
//	// compact.String() == "foaf:Person"
//
// The empty prefix and the absent prefix are distinct: ":Person" looks up the
// mapping registered for "", while "Person" (no colon at all) resolves
// against the default base set with SetDefault. Collapsing the two is a
// common implementation mistake; Expand and ExpandCurie keep them apart.
//
// Prefix declarations can be loaded from and written to documents in several
// formats via ReadPrefixes, WritePrefixes and LoadPrefixFile:
//   - FormatTurtle: Turtle/SPARQL @prefix, PREFIX, @base and BASE directives
//   - FormatYAML, FormatTOML: a default scalar plus a prefixes table
//   - FormatJSONLD: a JSON-LD @context object (@vocab maps to the default)
//
// All failures are returned as error values the caller can branch on with
// errors.Is against the package sentinels (ErrReservedPrefix,
// ErrInvalidPrefix, ErrMissingDefault, ErrNoMapping, ErrUnsupportedFormat)
// or classify with Code. The package never logs and never panics on
// malformed input.
//
// A PrefixMapping is an ordinary mutable value with no internal locking.
// Callers that share one across goroutines must serialize access; the design
// assumes exclusive ownership by one logical owner at a time.
package curie
