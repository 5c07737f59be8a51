package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExpandCmd represents the expand command
var ExpandCmd = &cobra.Command{
	Use:   "expand [flags] CURIE...",
	Short: "Expand CURIEs to full identifiers",
	Long: `Expand compact identifiers against the loaded prefix registry, one result
per line, in argument order. A bare reference (no colon) resolves against
the default base when one is set.

Examples:
  curie expand -k foaf:Person
  curie expand -p prefixes.ttl ex:doc ex:title
  curie expand -d http://example.com/people/ Person`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	addRegistryFlags(ExpandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	pm, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	for _, text := range args {
		identifier, err := pm.Expand(text)
		if err != nil {
			return fmt.Errorf("expand %q: %w", text, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), identifier)
	}
	return nil
}
