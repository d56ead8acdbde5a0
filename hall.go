package freelie

import "sort"

// HallBasis is the Hall realization of a free Lie algebra.
//
// A bracket [l, r] of Hall keys is canonical iff l < r under the graded
// order and, when r is itself a bracket, r.Left() <= l. Keys of one grade
// are ordered by Compare.
//
// The Hall set recursion below, including its midpoint handling, follows
// the construction as documented; it is validated against GradedDimension
// rather than re-derived, since a fully general correctness proof for this
// Hall basis is not known.
type HallBasis[C any] struct {
	basisCore[C]

	// sets memoizes the Hall set per grade; guarded by basisCore.mu.
	sets map[int][]Key
}

func newHallBasis[C any](alg *Algebra[C]) *HallBasis[C] {
	h := &HallBasis[C]{
		basisCore: newBasisCore(alg, Compare),
		sets:      make(map[int][]Key),
	}
	h.rewriteFn = h.rewrite

	return h
}

// GradedBasis returns the Hall keys of grade k, sorted under the graded
// order, as a fresh slice. Empty for k <= 0. The set for each grade is
// computed once and memoized.
func (h *HallBasis[C]) GradedBasis(k int) []Key {
	set := h.hallSet(k)

	return append([]Key(nil), set...)
}

// hallSet builds the Hall set of grade k recursively from lower grades.
//
// Construction:
//   - k <= 0: empty. k = 1: the generators in rank order.
//     k = 2: all pairs (a, b) of generators with a < b.
//   - k >= 3: for every split 1 <= i < (k+1)/2, bracket each a of grade i
//     with each b of grade k-i, keeping the pair when b.Left() <= a.
//     Splitting strictly below the midpoint avoids double generation at
//     even k; the midpoint itself is handled separately:
//     k = 4: all pairs a < b of grade 2 (grade-1 leaves bracketed in
//     order are canonical as they stand, no filter needed);
//     even k > 4: all pairs a < b of grade k/2 with the b.Left() <= a
//     filter.
//
// The result is sorted to make building higher grades cheap.
func (h *HallBasis[C]) hallSet(k int) []Key {
	if k <= 0 {
		return nil
	}
	h.mu.Lock()
	set, ok := h.sets[k]
	h.mu.Unlock()
	if ok {
		return set
	}

	switch {
	case k == 1:
		for _, g := range h.alg.gens {
			set = append(set, g)
		}
	case k == 2:
		base := h.hallSet(1)
		for i, a := range base {
			for _, b := range base[i+1:] {
				set = append(set, NewBracket(a, b))
			}
		}
	default:
		for i := 1; i < (k+1)/2; i++ {
			lower := h.hallSet(i)
			upper := h.hallSet(k - i)
			for _, a := range lower {
				for _, b := range upper {
					if br, isBr := b.(Bracket); isBr && Compare(br.Left(), a) > 0 {
						continue
					}
					set = append(set, NewBracket(a, b))
				}
			}
		}
		if k == 4 {
			base := h.hallSet(2)
			for i, a := range base {
				for _, b := range base[i+1:] {
					set = append(set, NewBracket(a, b))
				}
			}
		} else if k%2 == 0 {
			base := h.hallSet(k / 2) // grade >= 3
			for i, a := range base {
				for _, b := range base[i+1:] {
					if Compare(b.(Bracket).Left(), a) <= 0 {
						set = append(set, NewBracket(a, b))
					}
				}
			}
		}
	}
	sort.Slice(set, func(i, j int) bool { return Compare(set[i], set[j]) < 0 })

	h.mu.Lock()
	h.sets[k] = set
	h.mu.Unlock()

	return set
}

// rewrite expands [l, r] (l < r under the graded order) in the Hall basis.
//
// If r is not a bracket, or r.Left() <= l, then [l, r] is itself canonical
// and the result is the singleton {[l, r]: 1}. Otherwise r = [a, b] with
// l < a < b and the Jacobi identity applies:
//
//	[l, [a, b]] = [a, [l, b]] + [[l, a], b]
//
// Each summand recursively rewrites the inner pair, then brackets every
// resulting term with the remaining operand via bracketInto, which
// restores basis order and flips the coefficient sign on a swap.
func (h *HallBasis[C]) rewrite(l, r Key) Element[C] {
	if e, ok := h.lookup(l, r); ok {
		return e
	}

	var res Element[C]
	if br, isBr := r.(Bracket); !isBr || Compare(br.Left(), l) <= 0 {
		res = Element[C]{NewBracket(l, r): h.rg.One()}
	} else {
		res = Element[C]{}
		a, b := br.Left(), br.Right()
		for m, c := range h.rewrite(l, b) {
			h.bracketInto(a, m, c, res)
		}
		for m, c := range h.rewrite(l, a) {
			h.bracketInto(m, b, c, res)
		}
	}
	h.store(l, r, res)

	return res
}
