// SPDX-License-Identifier: MIT

package obj_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hemesh/obj"
)

// ExampleDecode parses a unit square split into two triangles, the second
// one tagged with a patch, and writes it back out.
func ExampleDecode() {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
g lid
f 1 3 4
`
	m, err := obj.Decode(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", m.VertexCount(), "faces:", m.FaceCount(), "patches:", m.PatchCount())
	_ = obj.Encode(os.Stdout, m)

	// Output:
	// vertices: 4 faces: 2 patches: 1
	// v 0 0 0
	// v 1 0 0
	// v 1 1 0
	// v 0 1 0
	// f 1 2 3
	// g lid
	// f 1 3 4
}
