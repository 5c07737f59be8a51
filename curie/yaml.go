package curie

import (
	"io"

	"gopkg.in/yaml.v3"
)

// readYAMLPrefixes loads a YAML prefix document: an optional "default"
// scalar plus a "prefixes" map.
func readYAMLPrefixes(r io.Reader, pm *PrefixMapping) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return wrapParseError(FormatYAML, 0, err)
	}
	var doc prefixDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return wrapParseError(FormatYAML, 0, err)
	}
	return applyPrefixDocument(&doc, pm, FormatYAML)
}

// writeYAMLPrefixes writes the registry as a YAML prefix document.
func writeYAMLPrefixes(w io.Writer, pm *PrefixMapping) error {
	data, err := yaml.Marshal(buildPrefixDocument(pm))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
