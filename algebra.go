package freelie

import (
	"github.com/katalvlaran/freelie/lieword"
	"github.com/katalvlaran/freelie/ring"
)

// Algebra is a free Lie algebra on a fixed ordered generator set over a
// coefficient ring. The generator set and ring are immutable after New;
// the two basis realizations (Hall, Lyndon) each own their memoization
// tables and are safe for concurrent use.
type Algebra[C any] struct {
	rg    ring.Ring[C]
	gens  []Generator
	index map[string]int

	hall   *HallBasis[C]
	lyndon *LyndonBasis[C]
}

// New constructs the free Lie algebra over ring r generated by the named
// generators, in the given order. Names must be non-empty and unique.
//
// Errors: ErrNilRing, ErrNoGenerators, ErrEmptyName, ErrDuplicateGenerator.
func New[C any](r ring.Ring[C], names ...string) (*Algebra[C], error) {
	if r == nil {
		return nil, ErrNilRing
	}
	if len(names) == 0 {
		return nil, ErrNoGenerators
	}
	a := &Algebra[C]{
		rg:    r,
		gens:  make([]Generator, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := a.index[name]; dup {
			return nil, ErrDuplicateGenerator
		}
		a.index[name] = i
		a.gens = append(a.gens, Generator{Name: name, Rank: i})
	}
	a.hall = newHallBasis(a)
	a.lyndon = newLyndonBasis(a)

	return a, nil
}

// Ring returns the coefficient ring.
func (a *Algebra[C]) Ring() ring.Ring[C] { return a.rg }

// GeneratorCount returns the number of generators n.
func (a *Algebra[C]) GeneratorCount() int { return len(a.gens) }

// Generators returns the generators in rank order as a fresh slice.
func (a *Algebra[C]) Generators() []Generator {
	return append([]Generator(nil), a.gens...)
}

// Generator returns the generator of rank i.
//
// Errors: ErrUnknownGenerator when i is outside [0, n).
func (a *Algebra[C]) Generator(i int) (Generator, error) {
	if i < 0 || i >= len(a.gens) {
		return Generator{}, ErrUnknownGenerator
	}

	return a.gens[i], nil
}

// GeneratorByName returns the generator with the given name.
//
// Errors: ErrUnknownGenerator when no generator has that name.
func (a *Algebra[C]) GeneratorByName(name string) (Generator, error) {
	i, ok := a.index[name]
	if !ok {
		return Generator{}, ErrUnknownGenerator
	}

	return a.gens[i], nil
}

// GradedDimension returns the dimension of the k-th graded piece by the
// Witt formula. Both bases produce exactly this many keys per grade, so it
// doubles as an independent cross-check on the generators.
//
// GradedDimension(0) is 0. Errors: lieword.ErrNegativeGrade for k < 0.
func (a *Algebra[C]) GradedDimension(k int) (int, error) {
	return lieword.Count(len(a.gens), k)
}

// Hall returns the Hall basis realization of the algebra.
func (a *Algebra[C]) Hall() *HallBasis[C] { return a.hall }

// Lyndon returns the Lyndon basis realization of the algebra.
func (a *Algebra[C]) Lyndon() *LyndonBasis[C] { return a.lyndon }
