// Package freelie computes with free Lie algebras: canonical bases for the
// graded pieces spanned by iterated brackets of a finite generator set, and
// a rewrite engine expressing arbitrary brackets in those bases.
//
// 🚀 What is freelie?
//
//	A pure-Go engine for the free Lie algebra on n ordered generators over
//	a caller-supplied coefficient ring:
//	  • Two canonical bases per algebra: the Hall basis and the Lyndon basis
//	  • Graded basis generation, one grade at a time
//	  • Jacobi-identity bracket rewriting into either basis, memoized
//	  • Element arithmetic (add, negate, scale, bracket) per basis
//	  • Conversion of elements between the two bases
//	  • The Witt formula as an independent dimension oracle
//
// ✨ Why choose freelie?
//
//   - Deterministic – same inputs, structurally identical outputs, always
//   - Ring-agnostic – plug in integers, rationals, or your own ring
//   - Rock-solid guarantees – sentinel errors, no panics on documented inputs
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under the root package plus two subpackages:
//
//	.        — Key model, Hall & Lyndon bases, rewrite engine, elements
//	lieword/ — Lyndon word primitives and the Witt dimension formula
//	ring/    — the coefficient-ring capability and stock implementations
//
// Quick example:
//
//	alg, _ := freelie.New[int64](ring.Int64{}, "x", "y", "z")
//	H := alg.Hall()
//	basis := H.GradedBasis(3) // the 8 Hall brackets of grade 3
//
// Dive into the per-package docs for algorithm outlines, complexity notes
// and the exact canonical-form invariants of each basis.
//
//	go get github.com/katalvlaran/freelie
package freelie
