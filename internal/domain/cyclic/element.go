// Package cyclic implements elements of the additive cyclic group ℤ_N.
package cyclic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
	"github.com/gauge-lab/lattice-dof/pkg/numerals"
)

const domainName = "cyclic"

// Element is a value of ℤ_N. The stored representative always lies in [0, N).
// The zero Element has no modulus and is not valid; build elements with New.
type Element struct {
	modulus int
	value   int
}

// New creates an element of ℤ_n holding value mod n.
// Negative values are reduced to their non-negative representative.
func New(n, value int) (Element, error) {
	if n <= 0 {
		return Element{}, shared.Errorf(domainName, "New", shared.ErrInvalidModulus,
			"modulus must be positive, got %d", n)
	}
	return Element{modulus: n, value: mod(value, n)}, nil
}

// MustNew is like New but panics on an invalid modulus.
// Intended for tests and package-level fixtures.
func MustNew(n, value int) Element {
	e, err := New(n, value)
	if err != nil {
		panic(err)
	}
	return e
}

// Modulus returns N.
func (e Element) Modulus() int {
	return e.modulus
}

// Value returns the representative in [0, N).
func (e Element) Value() int {
	return e.value
}

// IsValid reports whether the element was built with a positive modulus.
func (e Element) IsValid() bool {
	return e.modulus > 0
}

// CenteredValue returns value − ⌊N/2⌋, the symmetric integer representative.
func (e Element) CenteredValue() int {
	return e.value - e.modulus/2
}

// SpinValue returns value − N/2 as a real number. For odd N the result is a
// half-integer.
func (e Element) SpinValue() float64 {
	return float64(e.value) - float64(e.modulus)/2
}

// PhaseValue returns exp(2πi·value/N), a point on the unit circle.
func (e Element) PhaseValue() complex128 {
	if e.modulus <= 0 {
		return 1
	}
	return cmplx.Exp(complex(0, 2*math.Pi*float64(e.value)/float64(e.modulus)))
}

// Add returns e + other in ℤ_N.
func (e Element) Add(other Element) (Element, error) {
	if err := e.checkCompatible("Add", other); err != nil {
		return Element{}, err
	}
	// value+other.value can overflow when N is close to MaxInt.
	gap := e.modulus - other.value
	if e.value >= gap {
		return Element{modulus: e.modulus, value: e.value - gap}, nil
	}
	return Element{modulus: e.modulus, value: e.value + other.value}, nil
}

// Subtract returns e − other in ℤ_N.
func (e Element) Subtract(other Element) (Element, error) {
	if err := e.checkCompatible("Subtract", other); err != nil {
		return Element{}, err
	}
	v := e.value - other.value
	if v < 0 {
		v += e.modulus
	}
	return Element{modulus: e.modulus, value: v}, nil
}

// Negate returns the additive inverse of e.
func (e Element) Negate() Element {
	if e.value == 0 {
		return e
	}
	return Element{modulus: e.modulus, value: e.modulus - e.value}
}

// Identity returns the zero of the group e belongs to.
func (e Element) Identity() Element {
	return Element{modulus: e.modulus}
}

// Increment adds one in place, wrapping from N−1 to 0.
func (e *Element) Increment() {
	if e.modulus <= 0 {
		return
	}
	e.value++
	if e.value == e.modulus {
		e.value = 0
	}
}

// Decrement subtracts one in place, wrapping from 0 to N−1.
func (e *Element) Decrement() {
	if e.modulus <= 0 {
		return
	}
	if e.value == 0 {
		e.value = e.modulus
	}
	e.value--
}

// Equal reports whether both elements belong to the same group and hold the
// same value.
func (e Element) Equal(other Element) bool {
	return e.modulus == other.modulus && e.value == other.value
}

// String renders the element for humans, e.g. "ℤ₅ element, value = e^(2πi·2/5)".
func (e Element) String() string {
	n := fmt.Sprintf("%d", e.modulus)
	return fmt.Sprintf("ℤ%s element, value = e^(2πi·%d/%d)", numerals.Subscript(n), e.value, e.modulus)
}

// GoString implements fmt.GoStringer.
func (e Element) GoString() string {
	return fmt.Sprintf("ZN(N=%d, value=%d)", e.modulus, e.value)
}

func (e Element) checkCompatible(op string, other Element) error {
	if e.modulus <= 0 || other.modulus <= 0 {
		return shared.NewDomainError(domainName, op, shared.ErrInvalidModulus, "operand was not built with New")
	}
	if e.modulus != other.modulus {
		return shared.Errorf(domainName, op, shared.ErrIncompatibleGroup,
			"cannot combine ℤ_%d with ℤ_%d", e.modulus, other.modulus)
	}
	return nil
}

// mod is the mathematical modulo: the result is in [0, n) for any sign of k.
func mod(k, n int) int {
	r := k % n
	if r < 0 {
		r += n
	}
	return r
}
