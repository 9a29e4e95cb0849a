// SPDX-License-Identifier: MIT

package obj

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// IsCompressed reports whether path names a gzip-compressed file.
// It returns ErrInvalidPath when path has no extension.
func IsCompressed(path string) (bool, error) {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return false, fmt.Errorf("%q: %w", path, ErrInvalidPath)
	}

	return strings.EqualFold(ext, ".gz"), nil
}

// ReadFile imports an OBJ file, decompressing ".gz" paths on the fly.
func ReadFile(path string) (*iomesh.Mesh, error) {
	gz, err := IsCompressed(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if gz {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("obj: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	mesh, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mesh, nil
}

// WriteFile exports mesh to path, gzip-compressing ".gz" paths.
func WriteFile(path string, mesh *iomesh.Mesh) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, mesh) })
}

// WriteEdgesFile exports line elements to path; see EncodeEdges.
func WriteEdgesFile(path string, positions []geom.Vec, edges [][2]int) error {
	return writeFile(path, func(w io.Writer) error { return EncodeEdges(w, positions, edges) })
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	gz, err := IsCompressed(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj: create: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if !gz {
		return encode(f)
	}
	zw := gzip.NewWriter(f)
	if err := encode(zw); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}
