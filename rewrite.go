package freelie

import (
	"sync"

	"github.com/katalvlaran/freelie/ring"
)

// pair is a rewrite cache key. Rewrites are only ever cached with l < r
// under the owning basis order, which both bounds the cache and mirrors
// the engine precondition.
type pair struct{ l, r Key }

// basisCore carries everything the two basis flavors share: the ring, the
// flavor's total order, the memoized rewrite table, and the element-level
// operations built on top of the rewrite engine.
//
// The mutex guards only cache reads and writes, never the recursion, so
// concurrent callers may duplicate work but can never observe a partial
// result: recomputing a pair always yields a structurally identical
// combination, and the last store wins harmlessly.
type basisCore[C any] struct {
	alg *Algebra[C]
	rg  ring.Ring[C]

	// cmp is the flavor's total order: Compare for Hall, CompareWords for
	// Lyndon.
	cmp func(a, b Key) int

	// rewriteFn is the flavor's memoized rewrite, set by the owner.
	rewriteFn func(l, r Key) Element[C]

	mu   sync.Mutex
	memo map[pair]Element[C]
}

func newBasisCore[C any](alg *Algebra[C], cmp func(a, b Key) int) basisCore[C] {
	return basisCore[C]{
		alg:  alg,
		rg:   alg.rg,
		cmp:  cmp,
		memo: make(map[pair]Element[C]),
	}
}

// Compare orders two keys under this basis order and returns -1, 0 or +1.
func (b *basisCore[C]) Compare(x, y Key) int { return b.cmp(x, y) }

// Ring returns the coefficient ring of the owning algebra.
func (b *basisCore[C]) Ring() ring.Ring[C] { return b.rg }

// Rewrite expresses the bracket [l, r] of two basis keys as a linear
// combination of basis keys of this flavor. The operands must satisfy
// l < r under the basis order; a violation is caller misuse and yields
// ErrOrder with no partial result.
//
// Results are memoized per (l, r) pair; the returned combination is a
// fresh copy the caller may mutate.
func (b *basisCore[C]) Rewrite(l, r Key) (Element[C], error) {
	if b.cmp(l, r) >= 0 {
		return nil, ErrOrder
	}

	return b.rewriteFn(l, r).clone(), nil
}

// lookup returns the memoized rewrite of (l, r), if present.
func (b *basisCore[C]) lookup(l, r Key) (Element[C], bool) {
	b.mu.Lock()
	e, ok := b.memo[pair{l, r}]
	b.mu.Unlock()

	return e, ok
}

// store memoizes the rewrite of (l, r). The stored combination is shared
// and must never be mutated afterwards.
func (b *basisCore[C]) store(l, r Key, e Element[C]) {
	b.mu.Lock()
	b.memo[pair{l, r}] = e
	b.mu.Unlock()
}

// bracketInto accumulates c·[x, y] into acc for arbitrary keys x, y. The
// pair is put in basis order first, negating c on a swap (antisymmetry);
// [x, x] contributes nothing. This is the one accumulation step both
// Jacobi rewrites are built from.
func (b *basisCore[C]) bracketInto(x, y Key, c C, acc Element[C]) {
	switch d := b.cmp(x, y); {
	case d == 0:
		return
	case d > 0:
		x, y = y, x
		c = b.rg.Neg(c)
	}
	for k, v := range b.rewriteFn(x, y) {
		b.addTerm(acc, k, b.rg.Mul(v, c))
	}
}

// addTerm adds c to acc's coefficient for k, dropping the entry when the
// combined coefficient is the ring zero.
func (b *basisCore[C]) addTerm(acc Element[C], k Key, c C) {
	cur, ok := acc[k]
	if !ok {
		cur = b.rg.Zero()
	}
	sum := b.rg.Add(cur, c)
	if b.rg.IsZero(sum) {
		delete(acc, k)

		return
	}
	acc[k] = sum
}
