// SPDX-License-Identifier: MIT

package witness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyWitness indicates a witness that no guard can see.
	ErrEmptyWitness = errors.New("witness: witness has no guards")

	// ErrNegativeGuard indicates a negative guard index in a witness.
	ErrNegativeGuard = errors.New("witness: negative guard index")

	// ErrMalformedDocument indicates a witness file that cannot be decoded.
	ErrMalformedDocument = errors.New("witness: malformed witness document")
)

// Witness is a coverage requirement: at least one of Guards must be selected.
// Guards is sorted ascending and duplicate-free.
type Witness struct {
	ID     int   `yaml:"id" json:"id"`
	Guards []int `yaml:"guards,flow" json:"guards"`
}

// Provider yields the witness set of one instance.
type Provider interface {
	Witnesses(ctx context.Context) ([]Witness, error)
}

// normalize sorts and deduplicates guards in place and validates them.
func normalize(w *Witness) error {
	if len(w.Guards) == 0 {
		return fmt.Errorf("witness %d: %w", w.ID, ErrEmptyWitness)
	}
	sort.Ints(w.Guards)
	out := w.Guards[:1]
	for _, g := range w.Guards[1:] {
		if g != out[len(out)-1] {
			out = append(out, g)
		}
	}
	w.Guards = out
	if w.Guards[0] < 0 {
		return fmt.Errorf("witness %d: %w: %d", w.ID, ErrNegativeGuard, w.Guards[0])
	}

	return nil
}

type static struct {
	ws  []Witness
	err error
}

// Static returns a provider serving copies of ws. IDs are reassigned to the
// position in ws; guard lists are sorted and deduplicated.
func Static(ws ...Witness) Provider {
	s := &static{ws: make([]Witness, len(ws))}
	for i, w := range ws {
		c := Witness{ID: i, Guards: append([]int(nil), w.Guards...)}
		if err := normalize(&c); err != nil && s.err == nil {
			s.err = err
		}
		s.ws[i] = c
	}

	return s
}

func (s *static) Witnesses(context.Context) ([]Witness, error) {
	if s.err != nil {
		return nil, s.err
	}

	return clone(s.ws), nil
}

type document struct {
	Witnesses []Witness `yaml:"witnesses"`
}

// Load decodes a YAML (or JSON) witness document:
//
//	witnesses:
//	  - {id: 0, guards: [0, 1]}
//	  - {id: 1, guards: [2, 3]}
func Load(r io.Reader) (Provider, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return Static(doc.Witnesses...), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("witness: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Write encodes ws in the format accepted by Load.
func Write(w io.Writer, ws []Witness) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Witnesses: ws}); err != nil {
		return fmt.Errorf("witness: encode: %w", err)
	}

	return enc.Close()
}

func clone(ws []Witness) []Witness {
	out := make([]Witness, len(ws))
	for i, w := range ws {
		out[i] = Witness{ID: w.ID, Guards: append([]int(nil), w.Guards...)}
	}

	return out
}
