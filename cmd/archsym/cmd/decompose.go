package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archsym/archsym/archgraph"
	"github.com/archsym/archsym/group"
)

var decomposeClasses bool

// decomposeCmd reports the structural decompositions of an
// architecture's automorphism group.
var decomposeCmd = &cobra.Command{
	Use:   "decompose <description.yaml>",
	Short: "Decompose the automorphism group into products",
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
		fmt.Printf("group: degree %d, order %s\n", autom.Degree(), autom.Order())

		var disjointOpts []group.DisjointOption
		if decomposeClasses {
			disjointOpts = append(disjointOpts, group.WithDependencyClasses())
		}
		factors, err := autom.DisjointDecomposition(disjointOpts...)
		if err != nil {
			return err
		}
		if len(factors) > 1 {
			fmt.Printf("disjoint: %d factors\n", len(factors))
			for i, f := range factors {
				fmt.Printf("  factor %d: order %s\n", i+1, f.Order())
			}
		} else {
			fmt.Println("disjoint: indecomposable")
		}

		if dec, ok := autom.WreathDecomposition(); ok {
			fmt.Printf("wreath: %d blocks of size %d\n",
				dec.System.Size(), len(dec.System.Block(0)))
			fmt.Printf("  top:    order %s\n", dec.Top.Order())
			fmt.Printf("  bottom: order %s\n", dec.Bottom[0].Order())
		} else {
			fmt.Println("wreath: none found")
		}

		return nil
	},
}

func init() {
	decomposeCmd.Flags().BoolVar(&decomposeClasses, "dependency-classes", false,
		"merge dependent orbits before the disjoint search")
	rootCmd.AddCommand(decomposeCmd)
}
