package lieword

// IsLyndon reports whether w is a Lyndon word: nonempty and strictly
// smaller than every proper rotation of itself under the integer order.
//
// Algorithm Outline:
//  1. Keep an index i into w, starting at 0.
//  2. Scan each letter after position 0:
//     w[i] < letter — strict increase, reset i to 0;
//     w[i] = letter — tie, advance i;
//     w[i] > letter — a Lyndon factor starts after position 0, fail.
//  3. Accept iff the scan ends with i == 0.
//
// The scan is a single left-to-right pass with no allocation; this is the
// hot inner loop of Lyndon basis generation.
//
// Complexity: O(len(w)) time, O(1) memory.
func IsLyndon(w []int) bool {
	if len(w) == 0 {
		return false
	}
	i := 0
	for _, let := range w[1:] {
		switch {
		case w[i] < let:
			i = 0
		case w[i] == let:
			i++
		default:
			// A Lyndon factor starts after position 0.
			return false
		}
	}

	return i == 0
}

// StandardSplit returns the split point of the right standard factorization
// of w: the first index i >= 1 such that w[i:] is itself a Lyndon word.
// For a Lyndon word of length > 1 this split is unique and always exists
// (a single trailing letter is Lyndon). Returns 0 when len(w) < 2.
//
// Complexity: O(len(w)²) worst case, O(1) memory.
func StandardSplit(w []int) int {
	for i := 1; i < len(w); i++ {
		if IsLyndon(w[i:]) {
			return i
		}
	}

	return 0
}

// Words returns every Lyndon word of length exactly k over the alphabet
// {0, …, n-1}, in lexicographic order, using Duval's algorithm. Degenerate
// inputs (n < 1 or k < 1) yield nil.
//
// Algorithm Outline:
//  1. Start from the pre-word [-1].
//  2. Increment the last letter; the word is now Lyndon — emit it when its
//     length is exactly k.
//  3. Extend the word periodically up to length k, then strip trailing
//     maximal letters; stop when the word empties.
//
// Complexity: amortized O(k) per word emitted, O(k) working memory.
func Words(n, k int) [][]int {
	if n < 1 || k < 1 {
		return nil
	}

	var out [][]int
	w := make([]int, 1, k)
	w[0] = -1
	for len(w) > 0 {
		w[len(w)-1]++
		m := len(w)
		if m == k {
			out = append(out, append([]int(nil), w...))
		}
		// Periodic extension up to length k.
		for len(w) < k {
			w = append(w, w[len(w)-m])
		}
		// Strip trailing maximal letters.
		for len(w) > 0 && w[len(w)-1] == n-1 {
			w = w[:len(w)-1]
		}
	}

	return out
}
