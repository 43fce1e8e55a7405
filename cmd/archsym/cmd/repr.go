package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archsym/archsym/archgraph"
	"github.com/archsym/archsym/tasks"
)

var (
	reprMethod  string
	reprVariant string
	reprNoMatch bool
)

// reprCmd maps task allocations to canonical representatives.
var reprCmd = &cobra.Command{
	Use:   "repr <description.yaml> <allocation>...",
	Short: "Canonicalize task allocations under the architecture symmetry",
	Long: `repr maps each allocation (a comma-separated list of 1-based
processor indices, one per task) to the canonical representative of
its orbit under the architecture's automorphism group. Equivalent
allocations share a representative and an equivalence class index.`,
	Args: minimumArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		sys, err := archgraph.LoadFile(args[0])
		if err != nil {
			return err
		}

		opts, err := reprOptions()
		if err != nil {
			return err
		}

		var orbits tasks.Orbits
		for _, arg := range args[1:] {
			alloc, errParse := parseAllocation(arg, sys.NumProcessors())
			if errParse != nil {
				return errParse
			}

			m, errRepr := sys.Repr(alloc, &orbits, opts...)
			if errRepr != nil {
				return errRepr
			}

			_, class := orbits.Insert(m)
			fmt.Printf("%v => %v (class %d)\n", []int(m.Allocation), []int(m.Representative), class)
		}

		fmt.Printf("orbits: %d\n", orbits.Len())

		return nil
	},
}

func init() {
	reprCmd.Flags().StringVar(&reprMethod, "method", "orbits", "search method: iterate, orbits, local-search")
	reprCmd.Flags().StringVar(&reprVariant, "variant", "bfs", "local-search variant: bfs, dfs, sa")
	reprCmd.Flags().BoolVar(&reprNoMatch, "no-match", false, "disable early exit on cached representatives")
	rootCmd.AddCommand(reprCmd)
}

// reprOptions translates the repr flags.
func reprOptions() ([]tasks.Option, error) {
	var opts []tasks.Option

	switch strings.ToLower(reprMethod) {
	case "iterate":
		opts = append(opts, tasks.WithMethod(tasks.MethodIterate))
	case "", "orbits":
		opts = append(opts, tasks.WithMethod(tasks.MethodOrbits))
	case "local-search":
		opts = append(opts, tasks.WithMethod(tasks.MethodLocalSearch))
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrUsage, reprMethod)
	}

	switch strings.ToLower(reprVariant) {
	case "", "bfs":
		opts = append(opts, tasks.WithVariant(tasks.VariantBFS))
	case "dfs":
		opts = append(opts, tasks.WithVariant(tasks.VariantDFS))
	case "sa":
		opts = append(opts, tasks.WithVariant(tasks.VariantSALinear))
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrUsage, reprVariant)
	}

	opts = append(opts, tasks.WithMatch(!reprNoMatch))

	return opts, nil
}

// parseAllocation parses a comma-separated PE list.
func parseAllocation(arg string, numPEs int) (tasks.Allocation, error) {
	parts := strings.Split(arg, ",")
	alloc := make(tasks.Allocation, 0, len(parts))
	for _, part := range parts {
		pe, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: allocation entry %q", ErrUsage, part)
		}
		if pe < 1 || pe > numPEs {
			return nil, fmt.Errorf("%w: PE %d outside 1..%d", ErrUsage, pe, numPEs)
		}
		alloc = append(alloc, pe)
	}

	return alloc, nil
}

// minimumArgs wraps cobra's arg validation in the usage error class.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: expected at least %d argument(s), got %d", ErrUsage, n, len(args))
		}

		return nil
	}
}
