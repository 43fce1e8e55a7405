package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archsym/archsym/archgraph"
)

var automGAP bool

// automCmd prints the automorphism group of an architecture
// description.
var automCmd = &cobra.Command{
	Use:   "autom <description.yaml>",
	Short: "Compute the automorphism group of an architecture",
	Args:  exactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		sys, err := archgraph.LoadFile(args[0])
		if err != nil {
			return err
		}

		opts, err := bsgsOptions()
		if err != nil {
			return err
		}

		autom, err := sys.Automorphisms(archgraph.WithBSGSOptions(opts...))
		if err != nil {
			return err
		}

		logger.Debug().
			Int("degree", autom.Degree()).
			Str("order", autom.Order().String()).
			Msg("automorphism group computed")

		fmt.Printf("processors: %d\n", sys.NumProcessors())
		fmt.Printf("channels:   %d\n", sys.NumChannels())
		fmt.Printf("degree:     %d\n", autom.Degree())
		fmt.Printf("order:      %s\n", autom.Order())
		fmt.Printf("generators: %s\n", autom.Generators())

		if automGAP {
			fmt.Printf("gap:        %s\n", sys.GAP())
		}

		return nil
	},
}

func init() {
	automCmd.Flags().BoolVar(&automGAP, "gap", false, "print a GAP cross-check expression")
	rootCmd.AddCommand(automCmd)
}

// exactArgs wraps cobra's arg validation in the usage error class.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d argument(s), got %d", ErrUsage, n, len(args))
		}

		return nil
	}
}
