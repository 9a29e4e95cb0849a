// SPDX-License-Identifier: MIT

package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// Encode writes mesh as OBJ text: vertices first, then faces without a patch,
// then one "g" block per patch (empty patches included, so the patch list
// survives a round trip). References are written 1-based.
func Encode(w io.Writer, mesh *iomesh.Mesh) error {
	bw := bufio.NewWriter(w)

	for _, p := range mesh.Vertices {
		writeVertex(bw, p)
	}

	byPatch := make([][]int, len(mesh.Patches))
	for i, f := range mesh.Faces {
		if !f.HasPatch() {
			writeFace(bw, f.Vertices)
			continue
		}
		if f.Patch < 0 || f.Patch >= len(byPatch) {
			return fmt.Errorf("obj: face %d: %w", i, iomesh.ErrPatchIndex)
		}
		byPatch[f.Patch] = append(byPatch[f.Patch], i)
	}
	for pi, faces := range byPatch {
		bw.WriteString("g " + mesh.Patches[pi].Name + "\n")
		for _, fi := range faces {
			writeFace(bw, mesh.Faces[fi].Vertices)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: write: %w", err)
	}

	return nil
}

// EncodeEdges writes line elements for the given vertex pairs. Only the
// vertices referenced by edges are emitted, renumbered in first-appearance order.
func EncodeEdges(w io.Writer, positions []geom.Vec, edges [][2]int) error {
	bw := bufio.NewWriter(w)

	remap := make(map[int]int, 2*len(edges))
	var order []int
	for _, e := range edges {
		for _, v := range e {
			if v < 0 || v >= len(positions) {
				return fmt.Errorf("obj: edge vertex %d of %d: %w", v, len(positions), iomesh.ErrVertexIndex)
			}
			if _, ok := remap[v]; !ok {
				remap[v] = len(order)
				order = append(order, v)
			}
		}
	}
	for _, v := range order {
		writeVertex(bw, positions[v])
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "l %d %d\n", remap[e[0]]+1, remap[e[1]]+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: write: %w", err)
	}

	return nil
}

func writeVertex(bw *bufio.Writer, p geom.Vec) {
	bw.WriteString("v ")
	bw.WriteString(formatFloat(p.X))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(p.Y))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(p.Z))
	bw.WriteByte('\n')
}

func writeFace(bw *bufio.Writer, vertices []int) {
	var sb strings.Builder
	sb.WriteString("f")
	for _, v := range vertices {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v + 1))
	}
	sb.WriteByte('\n')
	bw.WriteString(sb.String())
}

// formatFloat uses the shortest representation that parses back exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
