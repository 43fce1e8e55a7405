// Command archsym inspects the symmetry of parallel-computing
// architecture graphs: automorphism groups, structural
// decompositions, and canonical task-mapping representatives.
//
// Exit codes: 0 success, 1 usage error, 2 input parse error,
// 3 runtime error.
package main

import (
	"errors"
	"os"

	"github.com/archsym/archsym/archgraph"
	"github.com/archsym/archsym/cmd/archsym/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cmd.ErrUsage):
			os.Exit(1)
		case errors.Is(err, archgraph.ErrParse), errors.Is(err, archgraph.ErrDescription):
			os.Exit(2)
		default:
			os.Exit(3)
		}
	}
}
