package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/curie-go/curie"
)

// PrefixesCmd represents the prefixes command
var PrefixesCmd = &cobra.Command{
	Use:   "prefixes [flags]",
	Short: "List the loaded prefix registry",
	Long: `Write the loaded prefix registry to stdout in the requested format. With
prefix files loaded this doubles as a converter between the supported
formats.

Examples:
  curie prefixes -k                          # well-known table as Turtle
  curie prefixes -p context.jsonld           # JSON-LD context as Turtle
  curie prefixes -p prefixes.ttl --json      # Turtle prologue as a JSON-LD context
  curie prefixes -p prefixes.ttl -f yaml     # Turtle prologue as YAML`,
	RunE: runPrefixes,
}

var listFormat string

func init() {
	addRegistryFlags(PrefixesCmd)
	PrefixesCmd.Flags().StringVarP(&listFormat, "format", "f", "turtle", "Output format: turtle, yaml, toml or jsonld")
	PrefixesCmd.Flags().BoolP("json", "j", false, "Output as a JSON-LD context (same as --format jsonld)")
}

func runPrefixes(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	pm, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	name := listFormat
	if jsonOutput {
		name = string(curie.FormatJSONLD)
	}
	format, ok := curie.ParseFormat(name)
	if !ok {
		return fmt.Errorf("unknown output format %q", name)
	}
	return curie.WritePrefixes(cmd.OutOrStdout(), pm, format)
}
