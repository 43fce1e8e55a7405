package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archsym/archsym/archgraph"
)

var dotOutput string

// dotCmd renders a leaf architecture description as a DOT graph.
var dotCmd = &cobra.Command{
	Use:   "dot <description.yaml>",
	Short: "Render an architecture graph in DOT format",
	Args:  exactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		sys, err := archgraph.LoadFile(args[0])
		if err != nil {
			return err
		}

		leaf, ok := sys.(*archgraph.Leaf)
		if !ok || leaf.Graph() == nil {
			return fmt.Errorf("%w: dot export requires a leaf description", ErrUsage)
		}

		out := os.Stdout
		if dotOutput != "" {
			f, errCreate := os.Create(dotOutput)
			if errCreate != nil {
				return errCreate
			}
			defer f.Close()
			out = f
		}

		return leaf.Graph().DOT(out)
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(dotCmd)
}
