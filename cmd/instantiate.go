package cmd

import (
	"fmt"

	"github.com/cottand/streamtype/repr"
	"github.com/cottand/streamtype/types"
	"github.com/spf13/cobra"
)

var InstantiateCmd = &cobra.Command{
	Use:          "instantiate NAME",
	Short:        "Generalize a registered type and print fresh instances of it",
	RunE:         runInstantiate,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	instanceCount *int
	instanceLevel *int
)

func init() {
	instanceCount = InstantiateCmd.Flags().IntP("count", "n", 2, "number of instances")
	instanceLevel = InstantiateCmd.Flags().IntP("level", "l", 1, "level of the instances' variables")
}

func runInstantiate(cmd *cobra.Command, args []string) error {
	t, err := types.DefaultRegistry().Materialize(args[0])
	if err != nil {
		return err
	}
	scheme := types.Generalize(types.AtLevel(0), t)
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s : %s\n", args[0], repr.Scheme(scheme))
	logger.Debug("generalized", "name", args[0], "quantified", len(scheme.Vars))

	for i := range *instanceCount {
		instance := scheme.Instantiate(types.AtLevel(*instanceLevel))
		_, _ = fmt.Fprintf(out, "%d: %s %v\n", i+1, repr.String(instance), types.FreeVars(instance))
	}
	return nil
}
