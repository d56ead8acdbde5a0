// Package freelie_test — shared helpers for the engine tests.
package freelie_test

import (
	"testing"

	"github.com/katalvlaran/freelie"
	"github.com/katalvlaran/freelie/ring"
	"github.com/stretchr/testify/require"
)

// newXYZ builds the integer free Lie algebra on x < y < z.
func newXYZ(t *testing.T) (*freelie.Algebra[int64], freelie.Generator, freelie.Generator, freelie.Generator) {
	t.Helper()
	alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	require.NoError(t, err)
	gs := alg.Generators()

	return alg, gs[0], gs[1], gs[2]
}

// newXY builds the integer free Lie algebra on x < y.
func newXY(t *testing.T) (*freelie.Algebra[int64], freelie.Generator, freelie.Generator) {
	t.Helper()
	alg, err := freelie.New[int64](ring.Int64{}, "x", "y")
	require.NoError(t, err)
	gs := alg.Generators()

	return alg, gs[0], gs[1]
}

// basisOps is the realization surface the cross-basis property tests run
// against; both *HallBasis and *LyndonBasis satisfy it.
type basisOps interface {
	GradedBasis(k int) []freelie.Key
	Compare(a, b freelie.Key) int
	Rewrite(l, r freelie.Key) (freelie.Element[int64], error)
	Monomial(k freelie.Key) freelie.Element[int64]
	Add(x, y freelie.Element[int64]) freelie.Element[int64]
	Neg(x freelie.Element[int64]) freelie.Element[int64]
	Bracket(x, y freelie.Element[int64]) freelie.Element[int64]
	Equal(x, y freelie.Element[int64]) bool
	Express(k freelie.Key) freelie.Element[int64]
	Keys(e freelie.Element[int64]) []freelie.Key
}

// keyStrings renders keys for order-sensitive comparisons.
func keyStrings(keys []freelie.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}

	return out
}
