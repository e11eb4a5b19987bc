package dof

import "fmt"

// Plaquette is the elementary loop formed by a top and a bottom link.
// The plaquette holds its own copies of both links.
type Plaquette[V Payload[V]] struct {
	top    Link[V]
	bottom Link[V]
}

// NewPlaquette builds a plaquette from two links.
func NewPlaquette[V Payload[V]](top, bottom Link[V]) Plaquette[V] {
	return Plaquette[V]{top: top, bottom: bottom}
}

// Top returns the top link.
func (p Plaquette[V]) Top() Link[V] { return p.top }

// Bottom returns the bottom link.
func (p Plaquette[V]) Bottom() Link[V] { return p.bottom }

// LongitudinalPolarization returns top + bottom under the link addition law.
func (p Plaquette[V]) LongitudinalPolarization() (Link[V], error) {
	l, err := p.top.Add(p.bottom)
	if err != nil {
		return Link[V]{}, fmt.Errorf("longitudinal polarization: %w", err)
	}
	return l, nil
}

// String renders the plaquette.
func (p Plaquette[V]) String() string {
	return fmt.Sprintf("plaquette[top=%s, bottom=%s]", p.top, p.bottom)
}

// PurePlaquette is a plaquette without matter: its charge is always the
// identity of the links' group.
type PurePlaquette[V Group[V]] struct {
	Plaquette[V]
}

// NewPurePlaquette builds a pure plaquette from two links.
func NewPurePlaquette[V Group[V]](top, bottom Link[V]) PurePlaquette[V] {
	return PurePlaquette[V]{Plaquette: NewPlaquette(top, bottom)}
}

// Charge returns the identity of the top link's group. For cyclic payloads
// the links must hold elements built with cyclic.New; a zero-value payload
// has no group and yields an invalid identity.
func (p PurePlaquette[V]) Charge() V {
	return p.top.value.Identity()
}

// String renders the plaquette.
func (p PurePlaquette[V]) String() string {
	return fmt.Sprintf("pure plaquette[top=%s, bottom=%s]", p.top, p.bottom)
}
