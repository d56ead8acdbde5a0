package freelie

// Key is a basis key: either a Generator (grade 1) or a Bracket of two
// keys (grade >= 2). Keys are immutable values with comparable fields, so
// Go equality on two Keys is exactly structural equality, and Keys serve
// directly as map keys.
//
// Two total orders exist on keys, one per basis flavor: Compare (graded
// order, the Hall basis order) and CompareWords (lexicographic order on
// index words, the Lyndon basis order).
type Key interface {
	// Grade returns the total generator count of the key. Cached at
	// construction; O(1).
	Grade() int

	// Word returns the index word: the generator ranks of the key's leaves,
	// left to right. The returned slice is freshly allocated.
	Word() []int

	// String renders the key in bracket notation, e.g. "[x, [y, z]]".
	String() string

	appendWord(dst []int) []int
}

// Generator is an indivisible grade-1 key: a name plus its rank in the
// algebra's total order. Generators are created by New and retrieved via
// the Algebra accessors; their ranks are unique within one algebra.
type Generator struct {
	// Name identifies the generator in rendered output.
	Name string

	// Rank is the generator's position in [0, n), fixing the total order.
	Rank int
}

// Grade returns 1.
func (Generator) Grade() int { return 1 }

// Word returns the one-letter index word [Rank].
func (g Generator) Word() []int { return []int{g.Rank} }

// String returns the generator name.
func (g Generator) String() string { return g.Name }

func (g Generator) appendWord(dst []int) []int { return append(dst, g.Rank) }

// Bracket is an internal key node representing [left, right]. The grade is
// computed once at construction and never recomputed by traversal. Build
// brackets with NewBracket so the cached grade stays consistent.
type Bracket struct {
	left, right Key
	grade       int
}

// NewBracket returns the key [l, r] with grade l.Grade() + r.Grade().
// No canonical-form check is performed; the basis generators and rewrite
// engines only ever construct canonical brackets.
func NewBracket(l, r Key) Bracket {
	return Bracket{left: l, right: r, grade: l.Grade() + r.Grade()}
}

// Left returns the left operand.
func (b Bracket) Left() Key { return b.left }

// Right returns the right operand.
func (b Bracket) Right() Key { return b.right }

// Grade returns the cached grade.
func (b Bracket) Grade() int { return b.grade }

// Word returns the concatenation of the left and right index words.
func (b Bracket) Word() []int { return b.appendWord(make([]int, 0, b.grade)) }

// String renders "[left, right]".
func (b Bracket) String() string {
	return "[" + b.left.String() + ", " + b.right.String() + "]"
}

func (b Bracket) appendWord(dst []int) []int {
	return b.right.appendWord(b.left.appendWord(dst))
}

// Compare orders two keys under the graded (Hall) order and returns
// -1, 0 or +1. Grade is the primary tie-break: lower grade is smaller.
// Equal-grade generators order by rank; equal-grade brackets order by
// (left, right) lexicographically under the same order.
//
// A grade of 1 forces a Generator and a grade >= 2 forces a Bracket, so
// the equal-grade cases never mix the two kinds.
func Compare(a, b Key) int {
	ga, gb := a.Grade(), b.Grade()
	switch {
	case ga < gb:
		return -1
	case ga > gb:
		return 1
	}
	if ga == 1 {
		x, y := a.(Generator), b.(Generator)
		switch {
		case x.Rank < y.Rank:
			return -1
		case x.Rank > y.Rank:
			return 1
		}

		return 0
	}
	x, y := a.(Bracket), b.(Bracket)
	if c := Compare(x.left, y.left); c != 0 {
		return c
	}

	return Compare(x.right, y.right)
}

// CompareWords orders two keys lexicographically by their index words (the
// Lyndon basis order) and returns -1, 0 or +1. A proper prefix is smaller
// than the longer word.
func CompareWords(a, b Key) int {
	wa, wb := a.Word(), b.Word()
	for i := 0; i < len(wa) && i < len(wb); i++ {
		switch {
		case wa[i] < wb[i]:
			return -1
		case wa[i] > wb[i]:
			return 1
		}
	}
	switch {
	case len(wa) < len(wb):
		return -1
	case len(wa) > len(wb):
		return 1
	}

	return 0
}
