package freelie

import "sort"

// Element is a linear combination of basis keys: a mapping from key to
// ring coefficient. Keys are unique by construction and zero-coefficient
// entries are never retained, so the empty (or nil) map is the zero
// element. Elements are plain maps; operations that combine them live on
// the basis realizations, which carry the ring.
type Element[C any] map[Key]C

// IsZero reports whether the element is zero.
func (e Element[C]) IsZero() bool { return len(e) == 0 }

func (e Element[C]) clone() Element[C] {
	out := make(Element[C], len(e))
	for k, c := range e {
		out[k] = c
	}

	return out
}

// Monomial returns the element 1·k.
func (b *basisCore[C]) Monomial(k Key) Element[C] {
	return Element[C]{k: b.rg.One()}
}

// Term returns the element c·k, or zero when c is the ring zero.
func (b *basisCore[C]) Term(k Key, c C) Element[C] {
	if b.rg.IsZero(c) {
		return Element[C]{}
	}

	return Element[C]{k: c}
}

// Add returns x + y.
func (b *basisCore[C]) Add(x, y Element[C]) Element[C] {
	out := x.clone()
	for k, c := range y {
		b.addTerm(out, k, c)
	}

	return out
}

// Sub returns x - y.
func (b *basisCore[C]) Sub(x, y Element[C]) Element[C] {
	out := x.clone()
	for k, c := range y {
		b.addTerm(out, k, b.rg.Neg(c))
	}

	return out
}

// Neg returns -x.
func (b *basisCore[C]) Neg(x Element[C]) Element[C] {
	out := make(Element[C], len(x))
	for k, c := range x {
		out[k] = b.rg.Neg(c)
	}

	return out
}

// Scale returns c·x.
func (b *basisCore[C]) Scale(c C, x Element[C]) Element[C] {
	out := make(Element[C], len(x))
	if b.rg.IsZero(c) {
		return out
	}
	for k, v := range x {
		b.addTerm(out, k, b.rg.Mul(v, c))
	}

	return out
}

// Bracket returns the Lie bracket [x, y] expressed in this basis, by
// bilinear extension of the rewrite engine. Operand pairs are ordered (and
// coefficients sign-flipped) internally, so no precondition applies.
func (b *basisCore[C]) Bracket(x, y Element[C]) Element[C] {
	out := Element[C]{}
	for kx, cx := range x {
		for ky, cy := range y {
			b.bracketInto(kx, ky, b.rg.Mul(cx, cy), out)
		}
	}

	return out
}

// Equal reports whether x and y are the same linear combination under the
// ring's zero test.
func (b *basisCore[C]) Equal(x, y Element[C]) bool {
	if len(x) != len(y) {
		return false
	}
	for k, cx := range x {
		cy, ok := y[k]
		if !ok || !b.rg.IsZero(b.rg.Add(cx, b.rg.Neg(cy))) {
			return false
		}
	}

	return true
}

// Keys returns the element's keys sorted under this basis order.
func (b *basisCore[C]) Keys(e Element[C]) []Key {
	keys := make([]Key, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return b.cmp(keys[i], keys[j]) < 0 })

	return keys
}

// Express rewrites an arbitrary bracketed expression (any tree of this
// algebra's generators, canonical in this basis or not) as an element of
// this basis.
func (b *basisCore[C]) Express(k Key) Element[C] {
	switch t := k.(type) {
	case Bracket:
		return b.Bracket(b.Express(t.Left()), b.Express(t.Right()))
	default:
		return b.Monomial(k)
	}
}

// convert re-expresses an element of any basis in this one: generators map
// to themselves and brackets are re-expanded bottom-up through this
// basis's rewrite engine, exactly how the generator-fixing homomorphism
// between the two realizations acts.
func (b *basisCore[C]) convert(e Element[C]) Element[C] {
	out := Element[C]{}
	for k, c := range e {
		for kk, cc := range b.Express(k) {
			b.addTerm(out, kk, b.rg.Mul(cc, c))
		}
	}

	return out
}

// FromLyndon expresses a Lyndon-basis element in the Hall basis.
func (h *HallBasis[C]) FromLyndon(e Element[C]) Element[C] { return h.convert(e) }

// FromHall expresses a Hall-basis element in the Lyndon basis.
func (ly *LyndonBasis[C]) FromHall(e Element[C]) Element[C] { return ly.convert(e) }
