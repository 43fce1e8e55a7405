// This file implements the product-replacement Randomizer and its
// construction options.
//
// Errors:
//
//	ErrEmptyGenerators - the generator set is empty.
//	ErrOptionViolation - an invalid option value was supplied.
package prodrepl

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/archsym/archsym/perm"
)

// Sentinel errors for randomizer construction.
var (
	// ErrEmptyGenerators is returned when no generators are supplied.
	ErrEmptyGenerators = errors.New("prodrepl: empty generator set")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("prodrepl: invalid option supplied")
)

// Defaults for slot count and warm-up length; both are confidence
// parameters, not correctness requirements.
const (
	// DefaultSlots is the minimum number of non-accumulator slots.
	DefaultSlots = 10

	// DefaultWarmup is the number of Next calls burned at construction.
	DefaultWarmup = 20
)

// Options holds the tunables of a Randomizer.
type Options struct {
	// Slots is the minimum slot count (excluding the accumulator).
	Slots int

	// Warmup is the number of initial mixing rounds.
	Warmup int

	// Rand is the random stream; defaults to a time-seeded source.
	Rand *rand.Rand

	err error
}

// Option configures a Randomizer.
type Option func(*Options)

// defaultOptions returns the baseline configuration.
func defaultOptions() Options {
	return Options{Slots: DefaultSlots, Warmup: DefaultWarmup}
}

// WithSlots sets the minimum slot count; values < 2 are invalid.
func WithSlots(k int) Option {
	return func(o *Options) {
		if k < 2 {
			o.err = fmt.Errorf("%w: slots %d < 2", ErrOptionViolation, k)
			return
		}
		o.Slots = k
	}
}

// WithWarmup sets the warm-up length; negative values are invalid.
func WithWarmup(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: warmup %d < 0", ErrOptionViolation, n)
			return
		}
		o.Warmup = n
	}
}

// WithRand sets the random stream used by Next.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Randomizer produces pseudo-random elements of the group generated by
// a fixed permutation set. Not safe for concurrent use.
type Randomizer struct {
	slots []perm.Perm // slots[0] is the accumulator
	rng   *rand.Rand
}

// New builds a Randomizer over the given generators and performs the
// warm-up. Returns ErrEmptyGenerators for an empty set and
// ErrOptionViolation for bad options.
func New(generators perm.Set, opts ...Option) (*Randomizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if generators.Empty() {
		return nil, ErrEmptyGenerators
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	degree := generators.Degree()
	slots := make([]perm.Perm, 1, o.Slots+1)
	slots[0] = perm.Identity(degree)

	// Fill with generators, cyclically padded up to the slot minimum.
	for i := 0; i < generators.Len(); i++ {
		slots = append(slots, generators.At(i))
	}
	for i := 0; len(slots)-1 < o.Slots; i++ {
		slots = append(slots, generators.At(i%generators.Len()))
	}

	r := &Randomizer{slots: slots, rng: o.Rand}
	for i := 0; i < o.Warmup; i++ {
		r.Next()
	}

	return r, nil
}

// Next performs one product-replacement step and returns the
// accumulator. Complexity: O(n) per call.
func (r *Randomizer) Next() perm.Perm {
	k := len(r.slots) - 1

	s := 1 + r.rng.Intn(k)
	t := s
	for t == s {
		t = 1 + r.rng.Intn(k)
	}

	operand := r.slots[t]
	if r.rng.Intn(2) == 1 {
		operand = operand.Inverse()
	}

	if r.rng.Intn(2) == 1 {
		r.slots[s] = r.slots[s].Mul(operand)
		r.slots[0] = r.slots[0].Mul(r.slots[s])
	} else {
		r.slots[s] = operand.Mul(r.slots[s])
		r.slots[0] = r.slots[s].Mul(r.slots[0])
	}

	return r.slots[0]
}
