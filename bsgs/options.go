// This file declares construction options and sentinel errors for the
// bsgs package.
package bsgs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/archsym/archsym/schreier"
)

// Sentinel errors for BSGS construction and mutation.
var (
	// ErrNotSolvable is returned by the solvable construction when the
	// generated group turns out not to be solvable.
	ErrNotSolvable = errors.New("bsgs: group is not solvable")

	// ErrDivergence is returned by the random construction when the
	// iteration guard trips before the confidence window is reached.
	ErrDivergence = errors.New("bsgs: random schreier-sims diverged")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("bsgs: invalid option supplied")

	// ErrBasePoint is returned for base-change prefixes containing
	// out-of-range or duplicate points.
	ErrBasePoint = errors.New("bsgs: invalid base point")
)

// Construction selects the Schreier–Sims variant run by New.
type Construction int

const (
	// Deterministic runs the exact Schreier–Sims algorithm.
	Deterministic Construction = iota

	// Random runs the Monte-Carlo variant over product replacement.
	Random

	// Solve runs the solvable-group construction; it fails with
	// ErrNotSolvable when the caller's solvability assertion is wrong.
	Solve
)

// String renders the construction name.
func (c Construction) String() string {
	switch c {
	case Deterministic:
		return "deterministic"
	case Random:
		return "random"
	case Solve:
		return "solve"
	default:
		return "unknown"
	}
}

// DefaultRandomWindow is the number of consecutive trivial residues
// the random construction requires before terminating.
const DefaultRandomWindow = 10

// Options collects the tunables of BSGS construction.
type Options struct {
	// Construction selects the Schreier–Sims variant.
	Construction Construction

	// Transversals selects the Schreier structure variant.
	Transversals schreier.Kind

	// RandomWindow is the confidence parameter w of the random
	// construction.
	RandomWindow int

	// RandomIterations is the product-replacement warm-up length; 0
	// selects the prodrepl default.
	RandomIterations int

	// Rand is the random stream used by the random construction.
	Rand *rand.Rand

	// Logger receives construction traces; defaults to a no-op logger.
	Logger zerolog.Logger

	err error
}

// Option configures BSGS construction.
type Option func(*Options)

// defaultOptions returns the baseline configuration.
func defaultOptions() Options {
	return Options{
		Construction: Deterministic,
		Transversals: schreier.Tree,
		RandomWindow: DefaultRandomWindow,
		Logger:       zerolog.Nop(),
	}
}

// WithConstruction selects the Schreier–Sims variant.
func WithConstruction(c Construction) Option {
	return func(o *Options) { o.Construction = c }
}

// WithTransversals selects the Schreier structure variant.
func WithTransversals(k schreier.Kind) Option {
	return func(o *Options) { o.Transversals = k }
}

// WithRandomWindow sets the confidence parameter of the random
// construction; values < 1 are invalid.
func WithRandomWindow(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: random window %d < 1", ErrOptionViolation, w)
			return
		}
		o.RandomWindow = w
	}
}

// WithRandomIterations sets the product-replacement warm-up length;
// negative values are invalid.
func WithRandomIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: random iterations %d < 0", ErrOptionViolation, n)
			return
		}
		o.RandomIterations = n
	}
}

// WithRand sets the random stream for the random construction.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLogger attaches a trace logger to the construction.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
