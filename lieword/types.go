package lieword

import "errors"

// Sentinel errors for dimension queries.
var (
	// ErrNegativeGrade indicates a dimension query for a grade below zero.
	ErrNegativeGrade = errors.New("lieword: grade must be non-negative")

	// ErrNoAlphabet indicates a negative alphabet size.
	ErrNoAlphabet = errors.New("lieword: alphabet size must be non-negative")
)
