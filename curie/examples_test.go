package curie

import (
	"bytes"
	"fmt"
	"strings"
)

func ExamplePrefixMapping_Expand() {
	pm := WellKnownPrefixes()
	identifier, err := pm.Expand("foaf:Person")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(identifier)

	// Output:
	// http://xmlns.com/foaf/0.1/Person
}

func ExamplePrefixMapping_Shrink() {
	pm := WellKnownPrefixes()
	c, err := pm.Shrink("http://xmlns.com/foaf/0.1/Person")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.String())

	// Output:
	// foaf:Person
}

func ExamplePrefixMapping_SetDefault() {
	pm := NewPrefixMapping()
	pm.SetDefault("http://example.com/people/")

	// A bare reference resolves against the default base.
	identifier, err := pm.Expand("Person")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(identifier)

	// ":Person" names the empty prefix, which is not registered here.
	_, err = pm.Expand(":Person")
	fmt.Println("error:", err)

	// Output:
	// http://example.com/people/Person
	// error: prefix "": curie: prefix has no registered mapping
}

func ExamplePrefixMapping_AddPrefix() {
	pm := NewPrefixMapping()
	if err := pm.AddPrefix("dc", "http://purl.org/dc/terms/"); err != nil {
		fmt.Println("error:", err)
		return
	}
	err := pm.AddPrefix("_", "http://example.com/bnode/")
	fmt.Println("error:", err)

	// Output:
	// error: prefix "_": curie: prefix "_" is reserved
}

func ExampleReadPrefixes() {
	input := "@base <http://example.com/> .\n" +
		"@prefix foaf: <http://xmlns.com/foaf/0.1/> .\n"
	pm, err := ReadPrefixes(strings.NewReader(input), FormatTurtle)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	base, _ := pm.PrefixValue("foaf")
	fmt.Println(base)
	def, _ := pm.Default()
	fmt.Println(def)

	// Output:
	// http://xmlns.com/foaf/0.1/
	// http://example.com/
}

func ExampleWritePrefixes() {
	pm := NewPrefixMapping()
	pm.SetDefault("http://example.com/")
	_ = pm.AddPrefix("foaf", "http://xmlns.com/foaf/0.1/")
	_ = pm.AddPrefix("dc", "http://purl.org/dc/terms/")

	var buf bytes.Buffer
	if err := WritePrefixes(&buf, pm, FormatTurtle); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(buf.String())

	// Output:
	// @base <http://example.com/> .
	// @prefix dc: <http://purl.org/dc/terms/> .
	// @prefix foaf: <http://xmlns.com/foaf/0.1/> .
}

func ExampleParseCurie() {
	c := ParseCurie("foaf:name")
	prefix, ok := c.Prefix()
	fmt.Println(prefix, ok)
	fmt.Println(c.Reference())

	// Output:
	// foaf true
	// name
}

func ExampleParseFormat() {
	format, ok := ParseFormat("ttl")
	if !ok {
		fmt.Println("unknown")
		return
	}
	fmt.Println(format)

	// Output:
	// turtle
}
