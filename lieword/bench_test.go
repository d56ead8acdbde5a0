package lieword_test

import (
	"testing"

	"github.com/katalvlaran/freelie/lieword"
)

// BenchmarkIsLyndon measures the hot membership scan on a long accepted
// word (worst case: the full scan runs to the end).
func BenchmarkIsLyndon(b *testing.B) {
	w := make([]int, 512)
	w[len(w)-1] = 1 // 0…01 is Lyndon, so the scan never exits early
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !lieword.IsLyndon(w) {
			b.Fatal("expected Lyndon")
		}
	}
}

// BenchmarkWords measures full enumeration of a mid-sized grade.
func BenchmarkWords(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if len(lieword.Words(3, 9)) == 0 {
			b.Fatal("expected words")
		}
	}
}

// BenchmarkCount measures the Witt formula at a larger grade.
func BenchmarkCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lieword.Count(5, 24); err != nil {
			b.Fatal(err)
		}
	}
}
