package ring

import "math/big"

// Ring is the coefficient capability: zero, one, addition, negation,
// multiplication, and a zero test over some coefficient type C.
//
// Implementations must be pure: no operation may mutate its operands, and
// equal inputs must always produce equal outputs.
type Ring[C any] interface {
	// Zero returns the additive identity.
	Zero() C

	// One returns the multiplicative identity.
	One() C

	// Add returns a + b.
	Add(a, b C) C

	// Neg returns -a.
	Neg(a C) C

	// Mul returns a * b.
	Mul(a, b C) C

	// IsZero reports whether a is the additive identity.
	IsZero(a C) bool
}

// Int64 is the ring of machine integers.
type Int64 struct{}

// Zero returns 0.
func (Int64) Zero() int64 { return 0 }

// One returns 1.
func (Int64) One() int64 { return 1 }

// Add returns a + b.
func (Int64) Add(a, b int64) int64 { return a + b }

// Neg returns -a.
func (Int64) Neg(a int64) int64 { return -a }

// Mul returns a * b.
func (Int64) Mul(a, b int64) int64 { return a * b }

// IsZero reports whether a == 0.
func (Int64) IsZero(a int64) bool { return a == 0 }

// BigRat is the ring of exact rationals over *big.Rat. All operations
// allocate fresh values; operands are never mutated.
type BigRat struct{}

// Zero returns 0/1.
func (BigRat) Zero() *big.Rat { return new(big.Rat) }

// One returns 1/1.
func (BigRat) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b as a fresh value.
func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Neg returns -a as a fresh value.
func (BigRat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Mul returns a * b as a fresh value.
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// IsZero reports whether a is zero.
func (BigRat) IsZero(a *big.Rat) bool { return a.Sign() == 0 }
