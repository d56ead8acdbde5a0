// Package lieword provides the Lyndon-word primitives underneath the free
// Lie algebra bases, plus the Witt dimension formula.
//
// A Lyndon word is a finite sequence over an ordered alphabet that is
// strictly smaller than every one of its proper rotations. Lyndon words of
// length k over n letters index the k-th graded piece of the free Lie
// algebra on n generators, which is why three of the four primitives here
// exist:
//
//   - IsLyndon      — the O(len) single-scan membership test
//   - StandardSplit — the split point of the right standard factorization
//   - Words         — all Lyndon words of a fixed length, lexicographic
//     (Duval's algorithm)
//   - Count         — the Witt formula (1/k)·Σ_{d|k} μ(d)·n^(k/d), an
//     oracle for the number of words Words must produce
//
// IsLyndon is the performance-critical inner primitive: basis generation
// calls it once per candidate word, so it allocates nothing and keeps O(1)
// extra state.
//
// Words are plain []int slices of generator ranks; the natural integer
// order is the alphabet order throughout.
package lieword
