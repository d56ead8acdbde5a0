package freelie_test

import (
	"fmt"

	"github.com/katalvlaran/freelie"
	"github.com/katalvlaran/freelie/ring"
)

// ExampleNew builds the integer free Lie algebra on three generators and
// lists a graded piece of its Hall basis.
func ExampleNew() {
	alg, err := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, k := range alg.Hall().GradedBasis(2) {
		fmt.Println(k)
	}
	// Output:
	// [x, y]
	// [x, z]
	// [y, z]
}

// ExampleAlgebra_GradedDimension prints the Witt dimensions every basis
// generator must reproduce.
func ExampleAlgebra_GradedDimension() {
	alg, _ := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	dims := make([]int, 0, 6)
	for k := 1; k <= 6; k++ {
		d, _ := alg.GradedDimension(k)
		dims = append(dims, d)
	}
	fmt.Println(dims)
	// Output:
	// [3 3 8 18 48 116]
}

// Example_expressHall rewrites a non-canonical nested bracket into the
// Hall basis.
func Example_expressHall() {
	alg, _ := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	H := alg.Hall()
	gs := alg.Generators()
	x, y, z := gs[0], gs[1], gs[2]

	e := H.Express(freelie.NewBracket(x, freelie.NewBracket(y, freelie.NewBracket(z, x))))
	for _, k := range H.Keys(e) {
		fmt.Printf("%+d·%s\n", e[k], k)
	}
	// Output:
	// -1·[y, [x, [x, z]]]
	// -1·[[x, y], [x, z]]
}

// Example_expressLyndon rewrites the same bracket into the Lyndon basis,
// where it collapses to a single basis key.
func Example_expressLyndon() {
	alg, _ := freelie.New[int64](ring.Int64{}, "x", "y", "z")
	Lyn := alg.Lyndon()
	gs := alg.Generators()
	x, y, z := gs[0], gs[1], gs[2]

	e := Lyn.Express(freelie.NewBracket(x, freelie.NewBracket(y, freelie.NewBracket(z, x))))
	for _, k := range Lyn.Keys(e) {
		fmt.Printf("%+d·%s\n", e[k], k)
	}
	// Output:
	// +1·[x, [[x, z], y]]
}

// ExampleLyndonBasis_StandardBracket brackets two Lyndon words by their
// right standard factorizations.
func ExampleLyndonBasis_StandardBracket() {
	alg, _ := freelie.New[int64](ring.Int64{}, "x", "y")
	Lyn := alg.Lyndon()

	a, _ := Lyn.StandardBracket([]int{0, 0, 1})
	b, _ := Lyn.StandardBracket([]int{0, 1, 1})
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// [x, [x, y]]
	// [[x, y], y]
}
