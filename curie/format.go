package curie

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies prefix document serialization formats.
type Format string

const (
	// FormatTurtle holds prefix declarations as Turtle/SPARQL directives:
	// @prefix, PREFIX, @base and BASE.
	FormatTurtle Format = "turtle"
	// FormatYAML holds a default scalar plus a prefixes map.
	FormatYAML Format = "yaml"
	// FormatTOML holds a default scalar plus a prefixes table.
	FormatTOML Format = "toml"
	// FormatJSONLD holds a JSON-LD @context object.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "yaml", "yml":
		return FormatYAML, true
	case "toml":
		return FormatTOML, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// FormatFromPath infers a format from a filename extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".turtle":
		return FormatTurtle, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".jsonld", ".json":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
