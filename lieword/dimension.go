package lieword

// Count returns the dimension of the k-th graded piece of the free Lie
// algebra on n generators, by the Witt formula
//
//	(1/k) · Σ_{d | k} μ(d) · n^(k/d)
//
// where μ is the number-theoretic Möbius function. Equivalently, the number
// of Lyndon words of length k over n letters.
//
// Count(n, 0) is 0 by definition. A negative k yields ErrNegativeGrade and
// a negative n yields ErrNoAlphabet; neither is a recoverable condition.
//
// Complexity: O(k·√k) time, O(1) memory.
func Count(n, k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeGrade
	}
	if n < 0 {
		return 0, ErrNoAlphabet
	}
	if k == 0 {
		return 0, nil
	}

	sum := 0
	for d := 1; d <= k; d++ {
		if k%d != 0 {
			continue
		}
		mu := moebius(d)
		if mu == 0 {
			continue
		}
		sum += mu * ipow(n, k/d)
	}

	return sum / k, nil
}

// moebius returns μ(d) for d >= 1 by trial factorization: 0 when d has a
// squared prime factor, otherwise (-1)^(number of prime factors).
func moebius(d int) int {
	mu := 1
	for p := 2; p*p <= d; p++ {
		if d%p != 0 {
			continue
		}
		d /= p
		if d%p == 0 {
			return 0
		}
		mu = -mu
	}
	if d > 1 {
		mu = -mu
	}

	return mu
}

// ipow returns n^e for e >= 0 by binary exponentiation.
func ipow(n, e int) int {
	r := 1
	for e > 0 {
		if e&1 == 1 {
			r *= n
		}
		n *= n
		e >>= 1
	}

	return r
}
