package curie

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

// readTOMLPrefixes loads a TOML prefix document: an optional "default" key
// plus a [prefixes] table.
func readTOMLPrefixes(r io.Reader, pm *PrefixMapping) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return wrapParseError(FormatTOML, 0, err)
	}
	var doc prefixDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return wrapParseError(FormatTOML, 0, err)
	}
	return applyPrefixDocument(&doc, pm, FormatTOML)
}

// writeTOMLPrefixes writes the registry as a TOML prefix document.
func writeTOMLPrefixes(w io.Writer, pm *PrefixMapping) error {
	data, err := toml.Marshal(buildPrefixDocument(pm))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
