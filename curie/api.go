package curie

import (
	"fmt"
	"io"
	"maps"
	"os"
)

// prefixDocument is the document schema shared by the YAML and TOML codecs.
// The pointer distinguishes an absent default from an empty one.
type prefixDocument struct {
	Default  *string           `yaml:"default,omitempty" toml:"default,omitempty"`
	Prefixes map[string]string `yaml:"prefixes,omitempty" toml:"prefixes,omitempty"`
}

func applyPrefixDocument(doc *prefixDocument, pm *PrefixMapping, format Format) error {
	if doc.Default != nil {
		pm.SetDefault(*doc.Default)
	}
	for prefix, base := range doc.Prefixes {
		if err := pm.AddPrefix(prefix, base); err != nil {
			return wrapParseError(format, 0, err)
		}
	}
	return nil
}

func buildPrefixDocument(pm *PrefixMapping) *prefixDocument {
	doc := &prefixDocument{}
	if base, ok := pm.Default(); ok {
		doc.Default = &base
	}
	if pm.Len() > 0 {
		doc.Prefixes = maps.Collect(pm.Mappings())
	}
	return doc
}

// ReadPrefixes reads a prefix document in the given format and returns a
// fresh registry holding its declarations. Unknown formats are rejected with
// ErrUnsupportedFormat; syntax problems are reported as a ParseError. A
// document declaring the reserved "_" prefix fails the same way AddPrefix
// does, wrapped with parse context.
func ReadPrefixes(r io.Reader, format Format) (*PrefixMapping, error) {
	pm := NewPrefixMapping()
	var err error
	switch format {
	case FormatTurtle:
		err = readTurtlePrefixes(r, pm)
	case FormatYAML:
		err = readYAMLPrefixes(r, pm)
	case FormatTOML:
		err = readTOMLPrefixes(r, pm)
	case FormatJSONLD:
		err = readJSONLDPrefixes(r, pm)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return pm, nil
}

// WritePrefixes writes the registry as a prefix document in the given
// format. Output is deterministic: prefixes are sorted where the format
// itself does not fix an order.
func WritePrefixes(w io.Writer, pm *PrefixMapping, format Format) error {
	switch format {
	case FormatTurtle:
		return writeTurtlePrefixes(w, pm)
	case FormatYAML:
		return writeYAMLPrefixes(w, pm)
	case FormatTOML:
		return writeTOMLPrefixes(w, pm)
	case FormatJSONLD:
		return writeJSONLDPrefixes(w, pm)
	default:
		return ErrUnsupportedFormat
	}
}

// LoadPrefixFile reads the prefix document at path, inferring the format
// from the filename extension.
func LoadPrefixFile(path string) (*PrefixMapping, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pm, err := ReadPrefixes(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pm, nil
}

// WritePrefixFile writes the registry to path, inferring the format from
// the filename extension.
func WritePrefixFile(path string, pm *PrefixMapping) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePrefixes(f, pm, format); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
