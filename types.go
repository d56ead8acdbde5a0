package freelie

import "errors"

// Sentinel errors for algebra construction, lookups and rewriting.
var (
	// ErrNilRing indicates a nil coefficient ring was passed to New.
	ErrNilRing = errors.New("freelie: coefficient ring is nil")

	// ErrNoGenerators indicates an algebra was requested with no generators.
	ErrNoGenerators = errors.New("freelie: algebra needs at least one generator")

	// ErrEmptyName indicates a generator with an empty name.
	ErrEmptyName = errors.New("freelie: generator name is empty")

	// ErrDuplicateGenerator indicates two generators share a name.
	ErrDuplicateGenerator = errors.New("freelie: duplicate generator name")

	// ErrUnknownGenerator indicates a lookup outside the configured generator set.
	ErrUnknownGenerator = errors.New("freelie: unknown generator")

	// ErrOrder indicates a rewrite was requested with l >= r. Callers must
	// order the operands under the basis order before rewriting; element
	// Bracket does this for you.
	ErrOrder = errors.New("freelie: rewrite requires l < r")

	// ErrEmptyWord indicates a standard bracketing of the empty word.
	ErrEmptyWord = errors.New("freelie: empty word")

	// ErrNotLyndon indicates a standard bracketing of a non-Lyndon word.
	ErrNotLyndon = errors.New("freelie: word is not a Lyndon word")
)
