package curie

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Directive keywords for Turtle and SPARQL prologues.
const (
	directiveAtPrefix  = "@prefix"
	directivePrefix    = "PREFIX"
	directiveAtBase    = "@base"
	directiveBase      = "BASE"
	directiveAtVersion = "@version"
	directiveVersion   = "VERSION"
)

// readTurtlePrefixes scans the directive prologue of a Turtle or SPARQL
// document, one directive per line: @prefix and PREFIX feed the registry,
// @base and BASE set the default base, version directives are skipped.
// Scanning stops quietly at the first line that is not a directive, so
// prefixes can be harvested from the top of a full data document. Malformed
// @-directives are reported as parse errors; a bare keyword line that does
// not parse is taken as the start of the data instead.
func readTurtlePrefixes(r io.Reader, pm *PrefixMapping) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
scan:
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@") {
			switch {
			case strings.HasPrefix(line, directiveAtPrefix):
				prefix, base, ok := parseAtPrefixDirective(line)
				if !ok {
					return wrapParseError(FormatTurtle, lineNo, fmt.Errorf("malformed @prefix directive"))
				}
				if err := pm.AddPrefix(prefix, base); err != nil {
					return wrapParseError(FormatTurtle, lineNo, err)
				}
			case strings.HasPrefix(line, directiveAtBase):
				base, ok := parseAtBaseDirective(line)
				if !ok {
					return wrapParseError(FormatTurtle, lineNo, fmt.Errorf("malformed @base directive"))
				}
				pm.SetDefault(base)
			case strings.HasPrefix(line, directiveAtVersion):
				if !isVersionDirective(line) {
					return wrapParseError(FormatTurtle, lineNo, fmt.Errorf("malformed @version directive"))
				}
			default:
				return wrapParseError(FormatTurtle, lineNo, fmt.Errorf("unknown directive"))
			}
			continue
		}
		if prefix, base, ok := parseBarePrefixDirective(line); ok {
			if err := pm.AddPrefix(prefix, base); err != nil {
				return wrapParseError(FormatTurtle, lineNo, err)
			}
			continue
		}
		if base, ok := parseBareBaseDirective(line); ok {
			pm.SetDefault(base)
			continue
		}
		if isVersionDirective(line) {
			continue
		}
		break scan
	}
	if err := scanner.Err(); err != nil {
		return wrapParseError(FormatTurtle, lineNo, err)
	}
	return nil
}

// writeTurtlePrefixes writes the registry as a Turtle prologue: an @base
// directive for the default base when set, then @prefix directives in sorted
// prefix order. Prefix names that cannot appear in Turtle are rejected.
func writeTurtlePrefixes(w io.Writer, pm *PrefixMapping) error {
	writer := bufio.NewWriter(w)
	if base, ok := pm.Default(); ok {
		if _, err := writer.WriteString("@base <" + base + "> .\n"); err != nil {
			return err
		}
	}
	for _, prefix := range sortedPrefixKeys(pm) {
		if !isValidPrefixName(prefix) {
			return fmt.Errorf("turtle: prefix %q is not a valid prefix name", prefix)
		}
		base, _ := pm.PrefixValue(prefix)
		if _, err := writer.WriteString("@prefix " + prefix + ": <" + base + "> .\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func sortedPrefixKeys(pm *PrefixMapping) []string {
	keys := make([]string, 0, pm.Len())
	for prefix := range pm.Mappings() {
		keys = append(keys, prefix)
	}
	sort.Strings(keys)
	return keys
}

// parseAtPrefixDirective parses a Turtle "@prefix p: <iri> ." line. The
// trailing period is required.
func parseAtPrefixDirective(line string) (prefix, base string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || parts[0] != directiveAtPrefix || !strings.HasSuffix(line, ".") {
		return "", "", false
	}
	label, found := strings.CutSuffix(parts[1], ":")
	if !found || !isValidPrefixName(label) {
		return "", "", false
	}
	iri, found := cutIRIRef(parts[2])
	if !found {
		return "", "", false
	}
	return label, iri, true
}

// parseBarePrefixDirective parses a SPARQL "PREFIX p: <iri>" line. The
// keyword is case-insensitive and there is no terminator.
func parseBarePrefixDirective(line string) (prefix, base string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || !strings.EqualFold(parts[0], directivePrefix) {
		return "", "", false
	}
	label, found := strings.CutSuffix(parts[1], ":")
	if !found || !isValidPrefixName(label) {
		return "", "", false
	}
	iri, found := cutIRIRef(parts[2])
	if !found {
		return "", "", false
	}
	return label, iri, true
}

// parseAtBaseDirective parses a Turtle "@base <iri> ." line.
func parseAtBaseDirective(line string) (base string, ok bool) {
	rest, found := strings.CutPrefix(line, directiveAtBase)
	if !found || !strings.HasSuffix(line, ".") {
		return "", false
	}
	return cutIRIRef(strings.TrimSpace(rest))
}

// parseBareBaseDirective parses a SPARQL "BASE <iri>" line.
func parseBareBaseDirective(line string) (base string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 || !strings.EqualFold(parts[0], directiveBase) {
		return "", false
	}
	return cutIRIRef(parts[1])
}

// isVersionDirective reports whether line is a "@version" or "VERSION"
// directive carrying a quoted version string.
func isVersionDirective(line string) bool {
	rest, found := strings.CutPrefix(line, directiveAtVersion)
	if !found {
		parts := strings.Fields(line)
		if len(parts) != 2 || !strings.EqualFold(parts[0], directiveVersion) {
			return false
		}
		rest = parts[1]
	}
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "."))
	if len(rest) < 2 {
		return false
	}
	quote := rest[0]
	return (quote == '"' || quote == '\'') && rest[len(rest)-1] == quote
}

// cutIRIRef extracts the IRI between "<" and the first ">" of s; anything
// after the ">" is ignored.
func cutIRIRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "<") {
		return "", false
	}
	end := strings.IndexByte(s, '>')
	if end < 1 {
		return "", false
	}
	return s[1:end], true
}

// isValidPrefixName approximates the Turtle PN_PREFIX production: empty is
// allowed, the name may not start or end with a dot, the first character
// must be a letter, underscore or non-ASCII byte, and the rest letters,
// digits, underscores, hyphens, dots or non-ASCII bytes.
func isValidPrefixName(prefix string) bool {
	if prefix == "" {
		return true
	}
	if prefix[0] == '.' || prefix[len(prefix)-1] == '.' {
		return false
	}
	first := prefix[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || first == '_' || first >= 0x80) {
		return false
	}
	for i := 1; i < len(prefix); i++ {
		ch := prefix[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_' || ch == '-' || ch == '.' || ch >= 0x80 {
			continue
		}
		return false
	}
	return true
}
