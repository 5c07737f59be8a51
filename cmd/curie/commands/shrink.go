package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ShrinkCmd represents the shrink command
var ShrinkCmd = &cobra.Command{
	Use:   "shrink [flags] IRI...",
	Short: "Contract full identifiers to CURIEs",
	Long: `Contract full identifiers against the loaded prefix registry, one CURIE
per line, in argument order. Identifiers starting with the default base
come back as bare references; when several registered bases match, one of
them is used.

Examples:
  curie shrink -k http://xmlns.com/foaf/0.1/Person
  curie shrink -p prefixes.yaml http://example.com/doc/readme`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShrink,
}

func init() {
	addRegistryFlags(ShrinkCmd)
}

func runShrink(cmd *cobra.Command, args []string) error {
	pm, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	for _, identifier := range args {
		c, err := pm.Shrink(identifier)
		if err != nil {
			return fmt.Errorf("shrink %q: %w", identifier, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
	}
	return nil
}
