// Package freelie_test — benchmarks for basis generation and rewriting.
//
// Policy (mirrors the rest of the module's benchmarks):
//   - Fresh algebras inside the loop when the cost under test is a cold
//     cache fill; shared algebras when measuring the memoized path.
//   - Deterministic inputs only; instance sizes kept CI-friendly.
package freelie_test

import (
	"testing"

	"github.com/katalvlaran/freelie"
	"github.com/katalvlaran/freelie/ring"
)

// BenchmarkHallBasis_ColdGeneration measures building the grade-8 Hall
// set (810 keys on three generators) from an empty cache.
func BenchmarkHallBasis_ColdGeneration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
		if err != nil {
			b.Fatal(err)
		}
		if len(alg.Hall().GradedBasis(8)) != 810 {
			b.Fatal("unexpected basis size")
		}
	}
}

// BenchmarkLyndonBasis_ColdGeneration measures the grade-8 Lyndon basis
// from an empty cache (word enumeration plus standard bracketing).
func BenchmarkLyndonBasis_ColdGeneration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
		if err != nil {
			b.Fatal(err)
		}
		if len(alg.Lyndon().GradedBasis(8)) != 810 {
			b.Fatal("unexpected basis size")
		}
	}
}

// BenchmarkHallBasis_RewriteCold measures a deep non-canonical rewrite on
// a cold memo table.
func BenchmarkHallBasis_RewriteCold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
		if err != nil {
			b.Fatal(err)
		}
		H := alg.Hall()
		basis := H.GradedBasis(4)
		gs := alg.Generators()
		if _, err = H.Rewrite(gs[0], basis[len(basis)-1]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHallBasis_RewriteWarm measures the same rewrite with the memo
// table already populated.
func BenchmarkHallBasis_RewriteWarm(b *testing.B) {
	alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	if err != nil {
		b.Fatal(err)
	}
	H := alg.Hall()
	basis := H.GradedBasis(4)
	gs := alg.Generators()
	l, r := freelie.Key(gs[0]), basis[len(basis)-1]
	if _, err = H.Rewrite(l, r); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = H.Rewrite(l, r); err != nil {
			b.Fatal(err)
		}
	}
}
