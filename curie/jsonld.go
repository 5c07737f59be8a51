package curie

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// readJSONLDPrefixes loads prefix declarations from a JSON-LD @context. The
// input may be a full document carrying an "@context" member or a bare
// context object. String-valued terms and expanded term definitions with an
// "@id" become prefixes; "@vocab" becomes the default base. Remote context
// references are not resolved.
func readJSONLDPrefixes(r io.Reader, pm *PrefixMapping) error {
	var data interface{}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return wrapParseError(FormatJSONLD, 0, err)
	}
	obj, ok := data.(map[string]interface{})
	if !ok {
		return wrapParseError(FormatJSONLD, 0, fmt.Errorf("document is not a JSON object"))
	}
	raw, found := obj["@context"]
	if !found {
		raw = data
	}
	return applyJSONLDContext(raw, pm)
}

// applyJSONLDContext folds one @context value into the registry. Context
// arrays apply left to right, later entries overriding earlier ones.
func applyJSONLDContext(raw interface{}, pm *PrefixMapping) error {
	switch value := raw.(type) {
	case map[string]interface{}:
		for key, entry := range value {
			if key == "@vocab" {
				if str, ok := entry.(string); ok {
					pm.SetDefault(str)
				}
				continue
			}
			if strings.HasPrefix(key, "@") {
				continue
			}
			base, ok := contextTermBase(entry)
			if !ok {
				continue
			}
			if err := pm.AddPrefix(key, base); err != nil {
				return wrapParseError(FormatJSONLD, 0, err)
			}
		}
	case []interface{}:
		for _, entry := range value {
			if err := applyJSONLDContext(entry, pm); err != nil {
				return err
			}
		}
	case string:
		return wrapParseError(FormatJSONLD, 0, fmt.Errorf("remote context %q is not supported", value))
	case nil:
		// A null @context resets state in JSON-LD; there is nothing to collect.
	default:
		return wrapParseError(FormatJSONLD, 0, fmt.Errorf("unsupported @context value"))
	}
	return nil
}

// contextTermBase extracts the base identifier of one context term: either
// a plain string value or the "@id" of an expanded term definition.
func contextTermBase(entry interface{}) (string, bool) {
	switch value := entry.(type) {
	case string:
		return value, true
	case map[string]interface{}:
		if id, ok := value["@id"].(string); ok {
			return id, true
		}
	}
	return "", false
}

// writeJSONLDPrefixes writes the registry as a JSON-LD document holding a
// single @context object. The default base is written as "@vocab".
func writeJSONLDPrefixes(w io.Writer, pm *PrefixMapping) error {
	context := make(map[string]string, pm.Len()+1)
	for prefix, base := range pm.Mappings() {
		context[prefix] = base
	}
	if base, ok := pm.Default(); ok {
		context["@vocab"] = base
	}
	data, err := json.MarshalIndent(map[string]interface{}{"@context": context}, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
