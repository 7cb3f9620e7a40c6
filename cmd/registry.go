package cmd

import (
	"fmt"

	"github.com/cottand/streamtype/repr"
	"github.com/cottand/streamtype/types"
	"github.com/spf13/cobra"
)

var RegistryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the registered types",
}

var registryListCmd = &cobra.Command{
	Use:          "list",
	Short:        "List the names of the registered types",
	Args:         cobra.NoArgs,
	RunE:         runRegistryList,
	SilenceUsage: true,
}

var registryShowCmd = &cobra.Command{
	Use:          "show NAME",
	Short:        "Show a registered type and its fields",
	Args:         cobra.ExactArgs(1),
	RunE:         runRegistryShow,
	SilenceUsage: true,
}

func init() {
	RegistryCmd.AddCommand(registryListCmd)
	RegistryCmd.AddCommand(registryShowCmd)
}

func runRegistryList(cmd *cobra.Command, _ []string) error {
	for _, name := range types.DefaultRegistry().Names() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}

func runRegistryShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	t, err := types.DefaultRegistry().Materialize(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	meths, base := types.SplitMeths(t)
	_, _ = fmt.Fprintf(out, "%s : %s\n", name, repr.String(base))
	for _, m := range meths {
		optional := ""
		if m.Optional {
			optional = "?"
		}
		_, _ = fmt.Fprintf(out, "  .%s%s : %s\n", m.Name, optional, repr.Scheme(m.Scheme))
		if m.Doc != "" {
			_, _ = fmt.Fprintf(out, "      %s\n", m.Doc)
		}
	}
	return nil
}
