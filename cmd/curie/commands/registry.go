package commands

import (
	"github.com/spf13/cobra"

	"github.com/geoknoesis/curie-go/curie"
)

var (
	prefixFiles []string
	defaultBase string
	wellKnown   bool
)

// addRegistryFlags wires the shared registry flags onto a command. The same
// package-level values back every command; only one command runs per
// invocation.
func addRegistryFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&prefixFiles, "prefixes", "p", nil, "Prefix file to load (repeatable; Turtle, YAML, TOML or JSON-LD)")
	cmd.Flags().StringVarP(&defaultBase, "default", "d", "", "Default base identifier for bare references")
	cmd.Flags().BoolVarP(&wellKnown, "well-known", "k", false, "Preload well-known vocabulary prefixes")
}

// loadRegistry builds the registry a command operates on: the well-known
// table first when requested, then prefix files in order, then the explicit
// default base. Later sources override earlier ones.
func loadRegistry(cmd *cobra.Command) (*curie.PrefixMapping, error) {
	pm := curie.NewPrefixMapping()
	if wellKnown {
		pm.Merge(curie.WellKnownPrefixes())
	}
	for _, path := range prefixFiles {
		loaded, err := curie.LoadPrefixFile(path)
		if err != nil {
			return nil, err
		}
		pm.Merge(loaded)
	}
	if cmd.Flags().Changed("default") {
		pm.SetDefault(defaultBase)
	}
	return pm, nil
}
