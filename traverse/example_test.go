package traverse_test

import (
	"fmt"
	"sort"

	"github.com/saltbread1/hemesh/builder"
	"github.com/saltbread1/hemesh/mesh"
	"github.com/saltbread1/hemesh/traverse"
)

// ExampleVertices prints the one-ring of the icosahedron's top pole.
func ExampleVertices() {
	m, _ := mesh.NewFromSource(builder.NewIcosahedron())
	res, err := traverse.Vertices(m, 0, traverse.WithMaxDepth(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ring := res.Ring(1)
	sort.Ints(ring)
	fmt.Println("one-ring:", ring)
	// Output:
	// one-ring: [1 2 3 4 5]
}

// ExampleComponents counts the parts of a composed mesh.
func ExampleComponents() {
	d, _ := builder.Compose(nil, builder.Solid(builder.Octahedron), builder.Plane(3, 3))
	m, _ := mesh.NewFromSource(d)
	for i, part := range traverse.Components(m) {
		fmt.Printf("part %d: %d faces\n", i, len(part))
	}
	// Output:
	// part 0: 8 faces
	// part 1: 8 faces
}
