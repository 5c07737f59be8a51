package curie

import (
	"errors"
	"maps"
	"strings"
	"testing"
)

func TestReadTOMLPrefixes(t *testing.T) {
	input := `default = "http://example.com/"

[prefixes]
foaf = "http://xmlns.com/foaf/0.1/"
dc = "http://purl.org/dc/elements/1.1/"
`
	pm, err := ReadPrefixes(strings.NewReader(input), FormatTOML)
	if err != nil {
		t.Fatalf("ReadPrefixes: %v", err)
	}
	base, ok := pm.Default()
	if !ok || base != "http://example.com/" {
		t.Errorf("Default() = %q, %v", base, ok)
	}
	expected := map[string]string{
		"foaf": "http://xmlns.com/foaf/0.1/",
		"dc":   "http://purl.org/dc/elements/1.1/",
	}
	if got := maps.Collect(pm.Mappings()); !maps.Equal(got, expected) {
		t.Errorf("Mappings() = %v, want %v", got, expected)
	}
}

func TestReadTOMLPrefixesDefaultAbsence(t *testing.T) {
	pm, err := ReadPrefixes(strings.NewReader("[prefixes]\nfoaf = \"http://xmlns.com/foaf/0.1/\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("ReadPrefixes: %v", err)
	}
	if _, ok := pm.Default(); ok {
		t.Error("document without a default key should leave the default unset")
	}
}

func TestReadTOMLPrefixesReserved(t *testing.T) {
	_, err := ReadPrefixes(strings.NewReader("[prefixes]\n\"_\" = \"http://blank.example/\"\n"), FormatTOML)
	if !errors.Is(err, ErrReservedPrefix) {
		t.Errorf("error = %v, want ErrReservedPrefix", err)
	}
}

func TestReadTOMLPrefixesMalformed(t *testing.T) {
	_, err := ReadPrefixes(strings.NewReader("default = \n"), FormatTOML)
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Format != FormatTOML {
		t.Errorf("error = %v, want a toml ParseError", err)
	}
}

func TestTOMLPrefixesRoundTrip(t *testing.T) {
	pm := NewPrefixMapping()
	pm.SetDefault("http://example.com/")
	for prefix, base := range map[string]string{
		"foaf": "http://xmlns.com/foaf/0.1/",
		"dc":   "http://purl.org/dc/elements/1.1/",
		"":     "http://example.com/doc#",
	} {
		if err := pm.AddPrefix(prefix, base); err != nil {
			t.Fatalf("AddPrefix: %v", err)
		}
	}

	var buf strings.Builder
	if err := WritePrefixes(&buf, pm, FormatTOML); err != nil {
		t.Fatalf("WritePrefixes: %v", err)
	}
	if !strings.Contains(buf.String(), "[prefixes]") {
		t.Errorf("output missing prefixes table: %q", buf.String())
	}
	back, err := ReadPrefixes(strings.NewReader(buf.String()), FormatTOML)
	if err != nil {
		t.Fatalf("ReadPrefixes: %v", err)
	}
	if !maps.Equal(maps.Collect(back.Mappings()), maps.Collect(pm.Mappings())) {
		t.Errorf("mappings changed across the round trip: %q", buf.String())
	}
	base, ok := back.Default()
	if !ok || base != "http://example.com/" {
		t.Errorf("default = %q, %v after round trip", base, ok)
	}
}
