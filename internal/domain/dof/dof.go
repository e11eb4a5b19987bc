package dof

import (
	"fmt"
	"strconv"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
)

const domainName = "dof"

// Payload is a value that can be carried by a degree of freedom.
type Payload[V any] interface {
	Add(V) (V, error)
	String() string
}

// Group is a payload with an additive identity.
type Group[V any] interface {
	Payload[V]
	Identity() V
}

// Integer is a plain integer payload. Its addition never fails.
type Integer int

// Add returns i + other.
func (i Integer) Add(other Integer) (Integer, error) {
	return i + other, nil
}

// Identity returns 0.
func (i Integer) Identity() Integer {
	return 0
}

// String returns the decimal representation.
func (i Integer) String() string {
	return strconv.Itoa(int(i))
}

// Kind tags the concrete type of a degree of freedom.
type Kind int

const (
	KindSite Kind = iota + 1
	KindLink
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSite:
		return "site"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// DegreeOfFreedom is implemented by Site and Link only.
type DegreeOfFreedom[V Payload[V]] interface {
	Kind() Kind
	Value() V
	String() string
	isDegreeOfFreedom()
}

// Site is a generic degree of freedom holding a single payload.
type Site[V Payload[V]] struct {
	value V
}

// NewSite wraps value in a Site.
func NewSite[V Payload[V]](value V) Site[V] {
	return Site[V]{value: value}
}

// Kind returns KindSite.
func (s Site[V]) Kind() Kind { return KindSite }

// Value returns the payload.
func (s Site[V]) Value() V { return s.value }

func (Site[V]) isDegreeOfFreedom() {}

// Add returns a new Site holding s.value + other.value.
func (s Site[V]) Add(other Site[V]) (Site[V], error) {
	v, err := addPayloads("Site.Add", s.value, other.value)
	if err != nil {
		return Site[V]{}, err
	}
	return Site[V]{value: v}, nil
}

// String renders the site.
func (s Site[V]) String() string {
	return "site(" + s.value.String() + ")"
}

// Link is a gauge link variable.
type Link[V Payload[V]] struct {
	value V
}

// NewLink wraps value in a Link.
func NewLink[V Payload[V]](value V) Link[V] {
	return Link[V]{value: value}
}

// Kind returns KindLink.
func (l Link[V]) Kind() Kind { return KindLink }

// Value returns the payload.
func (l Link[V]) Value() V { return l.value }

func (Link[V]) isDegreeOfFreedom() {}

// Add returns a new Link holding l.value + other.value.
func (l Link[V]) Add(other Link[V]) (Link[V], error) {
	v, err := addPayloads("Link.Add", l.value, other.value)
	if err != nil {
		return Link[V]{}, err
	}
	return Link[V]{value: v}, nil
}

// String renders the link.
func (l Link[V]) String() string {
	return "link(" + l.value.String() + ")"
}

// Add sums two degrees of freedom of the same concrete type. It fails with
// shared.ErrKindMismatch when the types differ, and with the payload's own
// error when the payloads cannot be combined.
func Add[V Payload[V]](a, b DegreeOfFreedom[V]) (DegreeOfFreedom[V], error) {
	if a == nil || b == nil {
		return nil, shared.NewDomainError(domainName, "Add", shared.ErrInvalidInput, "nil degree of freedom")
	}
	switch a := a.(type) {
	case Site[V]:
		if b, ok := b.(Site[V]); ok {
			sum, err := a.Add(b)
			if err != nil {
				return nil, err
			}
			return sum, nil
		}
	case Link[V]:
		if b, ok := b.(Link[V]); ok {
			sum, err := a.Add(b)
			if err != nil {
				return nil, err
			}
			return sum, nil
		}
	}
	return nil, shared.Errorf(domainName, "Add", shared.ErrKindMismatch,
		"cannot add %s (%T) to %s (%T)", b.Kind(), b, a.Kind(), a)
}

func addPayloads[V Payload[V]](op string, a, b V) (V, error) {
	v, err := a.Add(b)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("%s.%s: %w", domainName, op, err)
	}
	return v, nil
}
