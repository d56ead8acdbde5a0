// Package ring declares the coefficient-ring capability the freelie engine
// computes over, plus stock implementations.
//
// The engine needs exactly six operations from its coefficients — zero,
// one, addition, negation, multiplication, and a zero test — so Ring[C] is
// exactly that and nothing more. Implementations must treat coefficient
// values as immutable: every operation returns a fresh value and never
// mutates an operand, which is what lets the engine memoize and share
// linear combinations freely.
//
// Two rings ship with the package:
//
//   - Int64  — machine integers; every structure constant of a free Lie
//     algebra is an integer, so this is the natural default
//   - BigRat — exact rationals on *big.Rat for callers that scale elements
//     by fractions
//
// Any commutative ring with these six operations works; supply your own
// implementation to compute over it.
package ring
