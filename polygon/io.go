// SPDX-License-Identifier: MIT

package polygon

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMalformedDocument indicates an instance document that cannot be decoded.
var ErrMalformedDocument = errors.New("polygon: malformed instance document")

// document is the on-disk form shared by YAML and JSON inputs:
//
//	positions: [[0, 0], [4, 0], [4, 4], [0, 4]]
//	boundary:  [0, 1, 2, 3]
//	holes:     []
type document struct {
	Positions [][]int64 `yaml:"positions"`
	Boundary  []int     `yaml:"boundary"`
	Holes     [][]int   `yaml:"holes,omitempty"`
}

// Load decodes and validates an instance from YAML (or JSON, which is valid YAML).
func Load(r io.Reader) (*Instance, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	positions := make([]Position, len(doc.Positions))
	for i, xy := range doc.Positions {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: position %d has %d coordinates", ErrMalformedDocument, i, len(xy))
		}
		positions[i] = Position{X: xy[0], Y: xy[1]}
	}

	return New(positions, doc.Boundary, doc.Holes)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polygon: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// MarshalYAML implements yaml.Marshaler using the document layout accepted by Load.
func (in *Instance) MarshalYAML() (interface{}, error) {
	doc := document{
		Positions: make([][]int64, len(in.positions)),
		Boundary:  in.Boundary(),
		Holes:     in.Holes(),
	}
	for i, p := range in.positions {
		doc.Positions[i] = []int64{p.X, p.Y}
	}

	return doc, nil
}

// Write encodes the instance as YAML.
func Write(w io.Writer, in *Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("polygon: encode: %w", err)
	}

	return enc.Close()
}
