package freelie

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/freelie/lieword"
)

// LyndonBasis is the Lyndon realization of a free Lie algebra.
//
// Keys are the standard bracketings of Lyndon words over the generator
// ranks, and keys are ordered by CompareWords: lexicographically by their
// index words, not by grade. A bracket [l, r] is canonical iff the
// concatenated index word of l and r is a Lyndon word whose right standard
// factorization is exactly (l, r).
type LyndonBasis[C any] struct {
	basisCore[C]

	// graded memoizes the basis per grade; brackets memoizes standard
	// bracketings per encoded word. Both guarded by basisCore.mu.
	graded   map[int][]Key
	brackets map[string]Key
}

func newLyndonBasis[C any](alg *Algebra[C]) *LyndonBasis[C] {
	ly := &LyndonBasis[C]{
		basisCore: newBasisCore(alg, CompareWords),
		graded:    make(map[int][]Key),
		brackets:  make(map[string]Key),
	}
	ly.rewriteFn = ly.rewrite

	return ly
}

// GradedBasis returns the Lyndon keys of grade k as a fresh slice, ordered
// lexicographically by index word: the standard bracketing of every Lyndon
// word of length k over the n generator ranks. Empty for k <= 0.
func (ly *LyndonBasis[C]) GradedBasis(k int) []Key {
	if k <= 0 {
		return nil
	}
	ly.mu.Lock()
	set, ok := ly.graded[k]
	ly.mu.Unlock()
	if !ok {
		if k == 1 {
			for _, g := range ly.alg.gens {
				set = append(set, g)
			}
		} else {
			words := lieword.Words(len(ly.alg.gens), k)
			set = make([]Key, 0, len(words))
			for _, w := range words {
				set = append(set, ly.standardBracket(w))
			}
		}
		ly.mu.Lock()
		ly.graded[k] = set
		ly.mu.Unlock()
	}

	return append([]Key(nil), set...)
}

// StandardBracket returns the standard bracketing of the Lyndon word w
// over the generator ranks: the generator itself for a one-letter word,
// otherwise the bracket of the standard bracketings of w's right standard
// factorization.
//
// Errors: ErrEmptyWord, ErrUnknownGenerator for a letter outside [0, n),
// ErrNotLyndon when w is not a Lyndon word.
func (ly *LyndonBasis[C]) StandardBracket(w []int) (Key, error) {
	if len(w) == 0 {
		return nil, ErrEmptyWord
	}
	for _, let := range w {
		if let < 0 || let >= len(ly.alg.gens) {
			return nil, ErrUnknownGenerator
		}
	}
	if !lieword.IsLyndon(w) {
		return nil, ErrNotLyndon
	}

	return ly.standardBracket(w), nil
}

// standardBracket recursively brackets a validated Lyndon word, memoized
// per word. The split point is the first index whose suffix is Lyndon,
// which both factors inherit as Lyndon words.
func (ly *LyndonBasis[C]) standardBracket(w []int) Key {
	if len(w) == 1 {
		return ly.alg.gens[w[0]]
	}
	enc := encodeWord(w)
	ly.mu.Lock()
	b, ok := ly.brackets[enc]
	ly.mu.Unlock()
	if ok {
		return b
	}

	i := lieword.StandardSplit(w)
	b = NewBracket(ly.standardBracket(w[:i]), ly.standardBracket(w[i:]))

	ly.mu.Lock()
	ly.brackets[enc] = b
	ly.mu.Unlock()

	return b
}

// IsBasisElement reports whether the bracket of two basis keys [l, r] is
// itself a Lyndon basis key: the concatenated index word must be a Lyndon
// word and its standard factorization must reproduce exactly (l, r).
func (ly *LyndonBasis[C]) IsBasisElement(l, r Key) bool {
	w := append(l.Word(), r.Word()...)
	if !lieword.IsLyndon(w) {
		return false
	}
	br, isBr := ly.standardBracket(w).(Bracket)

	return isBr && br.Left() == l && br.Right() == r
}

// rewrite expands [l, r] (l < r under the word order) in the Lyndon basis.
//
// If [l, r] is canonical the result is the singleton {[l, r]: 1}.
// Otherwise l is necessarily a bracket [a, b]: a generator l with
// word(l) < word(r) always concatenates to a Lyndon word split at (l, r).
// The Jacobi identity then applies with c = r:
//
//	[[a, b], c] = [a, [b, c]] + [[a, c], b]
//
// Non-canonical [l, r] forces b < c under the word order, and a < b holds
// because l is canonical, so both recursive pairs respect the engine
// precondition.
func (ly *LyndonBasis[C]) rewrite(l, r Key) Element[C] {
	if e, ok := ly.lookup(l, r); ok {
		return e
	}

	var res Element[C]
	if ly.IsBasisElement(l, r) {
		res = Element[C]{NewBracket(l, r): ly.rg.One()}
	} else {
		lb := l.(Bracket)
		res = Element[C]{}
		a, b := lb.Left(), lb.Right()
		for m, c := range ly.rewrite(b, r) {
			ly.bracketInto(a, m, c, res)
		}
		for m, c := range ly.rewrite(a, r) {
			ly.bracketInto(m, b, c, res)
		}
	}
	ly.store(l, r, res)

	return res
}

// encodeWord renders an index word as a compact cache key.
func encodeWord(w []int) string {
	var sb strings.Builder
	for i, let := range w {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(let))
	}

	return sb.String()
}
