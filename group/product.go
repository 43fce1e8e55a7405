// This file implements direct and wreath product construction.
package group

import (
	"github.com/archsym/archsym/bsgs"
	"github.com/archsym/archsym/perm"
)

// DirectProduct returns the direct product of the factors, acting on
// the disjoint union of their point sets in factor order. Factor i's
// generators are embedded shifted past the degrees of the factors
// before it.
func DirectProduct(factors []*PermGroup, opts ...bsgs.Option) (*PermGroup, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}

	degree := 0
	for _, f := range factors {
		degree += f.Degree()
	}

	var gens perm.Set
	offset := 0
	for _, f := range factors {
		fGens := f.Generators()
		for i := 0; i < fGens.Len(); i++ {
			gens.Push(embed(fGens.At(i), offset, degree))
		}
		offset += f.Degree()
	}

	return FromGenerators(degree, gens, opts...)
}

// WreathProduct returns proto ≀ outer: outer.Degree() copies of proto
// laid out block-wise, permuted as whole blocks by outer. The degree
// is outer.Degree()·proto.Degree(); block i covers points
// [i·d+1, (i+1)·d] with d = proto.Degree().
func WreathProduct(proto, outer *PermGroup, opts ...bsgs.Option) (*PermGroup, error) {
	d := proto.Degree()
	m := outer.Degree()
	degree := m * d

	var gens perm.Set

	// One embedded copy of the proto generators per outer point.
	protoGens := proto.Generators()
	for block := 0; block < m; block++ {
		for i := 0; i < protoGens.Len(); i++ {
			gens.Push(embed(protoGens.At(i), block*d, degree))
		}
	}

	// Outer generators act on whole blocks, preserving intra-block
	// order.
	outerGens := outer.Generators()
	for i := 0; i < outerGens.Len(); i++ {
		sigma := outerGens.At(i)

		images := make([]int, degree)
		for block := 0; block < m; block++ {
			target := sigma.Apply(block+1) - 1
			for j := 0; j < d; j++ {
				images[block*d+j] = target*d + j + 1
			}
		}

		lifted, err := perm.New(images)
		if err != nil {
			return nil, err
		}
		gens.Push(lifted)
	}

	return FromGenerators(degree, gens, opts...)
}

// embed shifts p by offset inside a permutation of the larger degree,
// fixing all points outside the shifted window.
func embed(p perm.Perm, offset, degree int) perm.Perm {
	images := make([]int, degree)
	for i := range images {
		images[i] = i + 1
	}
	for i := 1; i <= p.Degree(); i++ {
		images[offset+i-1] = p.Apply(i) + offset
	}

	embedded, err := perm.New(images)
	if err != nil {
		panic(err) // shifting a bijection preserves bijectivity
	}

	return embedded
}
