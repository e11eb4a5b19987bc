// Package scenario reads YAML documents that describe degrees of freedom and
// evaluates them into a report of renderings and derived readings.
//
// A document looks like:
//
//	name: demo
//	entries:
//	  - name: z5
//	    cyclic: {modulus: 5, value: 7, steps: [inc, "add:3"]}
//	  - name: s1
//	    spin: {s: 1, sz: 0, steps: [inc, inc]}
//	  - name: q
//	    charge: {type: "-", value: "0"}
//	  - name: p
//	    plaquette:
//	      pure: true
//	      top: {modulus: 5, value: 3}
//	      bottom: {modulus: 5, value: 4}
package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
)

const domainName = "scenario"

// Document is a named list of entries.
type Document struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Entry describes exactly one degree of freedom.
type Entry struct {
	Name      string         `yaml:"name"`
	Cyclic    *CyclicSpec    `yaml:"cyclic,omitempty"`
	Spin      *SpinSpec      `yaml:"spin,omitempty"`
	Charge    *ChargeSpec    `yaml:"charge,omitempty"`
	Plaquette *PlaquetteSpec `yaml:"plaquette,omitempty"`
}

// CyclicSpec builds a ℤ_N element and applies steps to it in order.
// Steps: "inc", "dec", "neg", "add:<k>", "sub:<k>".
type CyclicSpec struct {
	Modulus int      `yaml:"modulus"`
	Value   int      `yaml:"value"`
	Steps   []string `yaml:"steps,omitempty"`
}

// SpinSpec builds a spin state and applies steps to it in order.
// Steps: "inc", "dec", "add:<sz>".
type SpinSpec struct {
	S     float64  `yaml:"s"`
	Sz    float64  `yaml:"sz"`
	Steps []string `yaml:"steps,omitempty"`
}

// ChargeSpec builds a charge site.
type ChargeSpec struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// PlaquetteSpec builds a plaquette from two ℤ_N links.
type PlaquetteSpec struct {
	Pure   bool       `yaml:"pure"`
	Top    CyclicSpec `yaml:"top"`
	Bottom CyclicSpec `yaml:"bottom"`
}

// Kind returns which degree of freedom the entry describes, or an error if
// it sets none or more than one.
func (e Entry) Kind() (string, error) {
	var kinds []string
	if e.Cyclic != nil {
		kinds = append(kinds, "cyclic")
	}
	if e.Spin != nil {
		kinds = append(kinds, "spin")
	}
	if e.Charge != nil {
		kinds = append(kinds, "charge")
	}
	if e.Plaquette != nil {
		kinds = append(kinds, "plaquette")
	}
	if len(kinds) != 1 {
		return "", shared.Errorf(domainName, "Kind", shared.ErrInvalidInput,
			"entry %q must set exactly one of cyclic, spin, charge, plaquette (got %d)", e.Name, len(kinds))
	}
	return kinds[0], nil
}

// Decode parses a single YAML document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, shared.NewDomainError(domainName, "Decode", shared.ErrInvalidInput, "empty document")
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, shared.NewDomainError(domainName, "Decode", shared.ErrInvalidInput, "document has no entries")
	}
	for i := range doc.Entries {
		if doc.Entries[i].Name == "" {
			doc.Entries[i].Name = fmt.Sprintf("entry-%d", i+1)
		}
	}
	return &doc, nil
}
