// SPDX-License-Identifier: MIT

package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// maxLineBytes bounds a single OBJ line; large polygons can be long.
const maxLineBytes = 16 << 20

// directive is the closed set of line kinds the decoder understands.
type directive int

const (
	directiveUnknown directive = iota
	directiveVertex
	directiveFace
	directiveGroup
)

func parseDirective(keyword string) directive {
	switch keyword {
	case "v":
		return directiveVertex
	case "f":
		return directiveFace
	case "g":
		return directiveGroup
	default:
		return directiveUnknown
	}
}

var (
	errVertexArity = errors.New("want three coordinates")
	errFaceArity   = errors.New("want at least three vertex references")
	errZeroIndex   = errors.New("vertex reference 0 is invalid (references are 1-based)")
	errRelative    = errors.New("relative vertex reference before enough vertices")
	errGroupName   = errors.New("missing group name")
)

// Decode parses OBJ text from r. Parsing stops at the first malformed line;
// no partial mesh is returned.
func Decode(r io.Reader) (*iomesh.Mesh, error) {
	mesh := iomesh.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		keyword, args := splitLine(scanner.Text())

		var err error
		switch parseDirective(keyword) {
		case directiveVertex:
			err = decodeVertex(args, mesh)
		case directiveFace:
			err = decodeFace(args, mesh)
		case directiveGroup:
			err = decodeGroup(args, mesh)
		case directiveUnknown:
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Directive: keyword, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}

	return mesh, nil
}

// splitLine separates the leading keyword from the rest of a trimmed line.
func splitLine(line string) (keyword, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}

	return line[:i], strings.TrimSpace(line[i:])
}

func decodeVertex(args string, mesh *iomesh.Mesh) error {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return fmt.Errorf("%w, got %d", errVertexArity, len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return err
		}
		xyz[i] = f
	}
	mesh.AddVertex(geom.V(xyz[0], xyz[1], xyz[2]))

	return nil
}

func decodeFace(args string, mesh *iomesh.Mesh) error {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return fmt.Errorf("%w, got %d", errFaceArity, len(fields))
	}
	vertices := make([]int, len(fields))
	for i, tok := range fields {
		ref, _, _ := strings.Cut(tok, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return err
		}
		switch {
		case idx > 0:
			vertices[i] = idx - 1
		case idx < 0:
			resolved := mesh.VertexCount() + idx
			if resolved < 0 {
				return fmt.Errorf("%w: %d", errRelative, idx)
			}
			vertices[i] = resolved
		default:
			return errZeroIndex
		}
	}
	mesh.AddFace(vertices, mesh.LatestPatch())

	return nil
}

func decodeGroup(args string, mesh *iomesh.Mesh) error {
	if args == "" {
		return errGroupName
	}
	mesh.AddPatch(args)

	return nil
}
