package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/curie-go/cmd/curie/commands"
)

var rootCmd = &cobra.Command{
	Use:   "curie",
	Short: "Expand and contract CURIEs (Compact URIs)",
	Long: `curie - Expand and contract CURIEs (Compact URIs).

The tool keeps a prefix registry loaded from Turtle, YAML, TOML or JSON-LD
prefix files and maps between compact identifiers such as "foaf:Person" and
full identifiers such as "http://xmlns.com/foaf/0.1/Person".

Available commands:
  expand   - Expand CURIEs to full identifiers
  shrink   - Contract full identifiers to CURIEs
  prefixes - List or convert the loaded prefix registry
  version  - Show version information

Examples:
  curie expand -k foaf:Person              # expand against well-known vocabularies
  curie expand -p prefixes.ttl ex:doc      # expand against a prefix file
  curie shrink -k http://xmlns.com/foaf/0.1/Person
  curie prefixes -p context.jsonld         # render a JSON-LD context as Turtle`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(commands.ExpandCmd)
	rootCmd.AddCommand(commands.ShrinkCmd)
	rootCmd.AddCommand(commands.PrefixesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
