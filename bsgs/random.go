// This file implements the Monte-Carlo Schreier–Sims construction fed
// by product replacement.
package bsgs

import (
	"math/rand"

	"github.com/archsym/archsym/perm"
	"github.com/archsym/archsym/prodrepl"
)

// maxRandomRounds guards the Monte-Carlo loop. The loop terminates
// with probability 1; the guard converts a pathological stall into
// ErrDivergence instead of spinning.
const maxRandomRounds = 1 << 20

// schreierSimsRandom draws random group elements until w consecutive
// draws strip to the identity. Every non-trivial residue extends the
// stabilizer chain exactly as in the deterministic construction and
// resets the confidence counter.
func (b *BSGS) schreierSimsRandom(w, warmup int, rng *rand.Rand) error {
	sgens, _ := b.schreierSimsInit()

	var prOpts []prodrepl.Option
	if rng != nil {
		prOpts = append(prOpts, prodrepl.WithRand(rng))
	}
	if warmup > 0 {
		prOpts = append(prOpts, prodrepl.WithWarmup(warmup))
	}
	pr, err := prodrepl.New(b.gens, prOpts...)
	if err != nil {
		return err
	}

	consecutive := 0
	for rounds := 0; consecutive < w; rounds++ {
		if rounds > maxRandomRounds {
			return ErrDivergence
		}

		residue, level := b.Strip(pr.Next())

		update := false
		switch {
		case level <= len(b.base):
			update = true
		case !residue.IsIdentity():
			update = true
			bp := b.nextBasePoint(residue)
			b.extendBase(bp)
			sgens = append(sgens, perm.Set{})
		}

		if !update {
			consecutive++
			continue
		}

		// Level 0 keeps the full generating set: its fundamental orbit
		// is already complete, so only deeper levels grow.
		for j := 1; j < level; j++ {
			sgens[j].Push(residue)
			b.updateSchreierStructure(j, sgens[j])
		}
		consecutive = 0
	}

	b.schreierSimsFinish()

	return nil
}
