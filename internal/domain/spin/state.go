// Package spin implements a quantized spin site: a fixed total spin s and a
// magnetic projection sᶻ that can be raised and lowered.
//
// Both quantum numbers are stored doubled (2s, 2sᶻ) so half-integer spins
// stay exact. A projection that leaves [−s, s] is not an error: the state
// becomes invalid and carries no numeric projection from then on. Raising or
// lowering an invalid state keeps it invalid.
package spin

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
	"github.com/gauge-lab/lattice-dof/pkg/numerals"
)

const domainName = "spin"

// maxDoubled bounds doubled quantum numbers so that sums cannot overflow.
const maxDoubled = math.MaxInt32

// State is a spin site. The zero State is invalid; build states with New or
// NewDoubled.
type State struct {
	doubledSpin       int
	doubledProjection int
	valid             bool
}

// New creates a state from s and sᶻ. Both must be integers or half-integers,
// s must be non-negative, and s and sᶻ must both be integers or both be
// half-integers. An sᶻ outside [−s, s] yields an invalid state, not an error.
func New(s, sz float64) (State, error) {
	twoS, ok := double(s)
	if !ok {
		return State{}, shared.Errorf(domainName, "New", shared.ErrInvalidSpin,
			"s=%v is not a multiple of 1/2", s)
	}
	twoSz, ok := double(sz)
	if !ok {
		return State{}, shared.Errorf(domainName, "New", shared.ErrInvalidSpin,
			"sz=%v is not a multiple of 1/2", sz)
	}
	return NewDoubled(twoS, twoSz)
}

// NewDoubled creates a state directly from 2s and 2sᶻ.
func NewDoubled(twoS, twoSz int) (State, error) {
	if twoS < 0 || twoS > maxDoubled {
		return State{}, shared.Errorf(domainName, "NewDoubled", shared.ErrInvalidSpin,
			"2s=%d out of range", twoS)
	}
	if twoSz < -maxDoubled || twoSz > maxDoubled {
		return State{}, shared.Errorf(domainName, "NewDoubled", shared.ErrInvalidSpin,
			"2sz=%d out of range", twoSz)
	}
	if !sameParity(twoS, twoSz) {
		return State{}, shared.Errorf(domainName, "NewDoubled", shared.ErrInvalidSpin,
			"2s=%d and 2sz=%d differ in parity", twoS, twoSz)
	}
	st := State{doubledSpin: twoS, doubledProjection: twoSz, valid: true}
	st.validate()
	return st, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(s, sz float64) State {
	st, err := New(s, sz)
	if err != nil {
		panic(err)
	}
	return st
}

// DoubledSpin returns 2s.
func (st State) DoubledSpin() int {
	return st.doubledSpin
}

// Spin returns s.
func (st State) Spin() float64 {
	return float64(st.doubledSpin) / 2
}

// IsValid reports whether the state carries a projection inside [−s, s].
func (st State) IsValid() bool {
	return st.valid
}

// DoubledProjection returns 2sᶻ and true, or 0 and false for an invalid state.
func (st State) DoubledProjection() (int, bool) {
	if !st.valid {
		return 0, false
	}
	return st.doubledProjection, true
}

// Projection returns sᶻ and true, or 0 and false for an invalid state.
func (st State) Projection() (float64, bool) {
	if !st.valid {
		return 0, false
	}
	return float64(st.doubledProjection) / 2, true
}

// Increment raises sᶻ by one unit (2 in doubled units) in place, keeping the
// parity of 2sᶻ equal to that of 2s.
func (st *State) Increment() {
	st.shift(2)
}

// Decrement lowers sᶻ by one unit (2 in doubled units) in place.
func (st *State) Decrement() {
	st.shift(-2)
}

// Add sums the projections of two states with the same total spin. The
// result is invalid if either operand is invalid or if the sum is not an
// allowed projection for s.
func (st State) Add(other State) (State, error) {
	if st.doubledSpin != other.doubledSpin {
		return State{}, shared.Errorf(domainName, "Add", shared.ErrIncompatibleSpin,
			"cannot combine s=%s with s=%s", half(st.doubledSpin), half(other.doubledSpin))
	}
	sum := State{doubledSpin: st.doubledSpin}
	if !st.valid || !other.valid {
		return sum, nil
	}
	sum.doubledProjection = st.doubledProjection + other.doubledProjection
	sum.valid = sameParity(sum.doubledSpin, sum.doubledProjection)
	sum.validate()
	return sum, nil
}

// Equal reports whether two states have the same spin and the same
// projection. Two invalid states of the same spin are equal.
func (st State) Equal(other State) bool {
	if st.doubledSpin != other.doubledSpin || st.valid != other.valid {
		return false
	}
	return !st.valid || st.doubledProjection == other.doubledProjection
}

// String renders the state for humans, e.g. "spin s=¹⁄₂, sᶻ=-¹⁄₂".
func (st State) String() string {
	if !st.valid {
		return fmt.Sprintf("spin s=%s, invalid sᶻ", fraction(st.doubledSpin))
	}
	return fmt.Sprintf("spin s=%s, sᶻ=%s", fraction(st.doubledSpin), fraction(st.doubledProjection))
}

// GoString implements fmt.GoStringer.
func (st State) GoString() string {
	if !st.valid {
		return fmt.Sprintf("Spin(s=%s, sz=invalid)", half(st.doubledSpin))
	}
	return fmt.Sprintf("Spin(s=%s, sz=%s)", half(st.doubledSpin), half(st.doubledProjection))
}

func (st *State) shift(delta int) {
	if !st.valid {
		return
	}
	st.doubledProjection += delta
	st.validate()
}

// validate applies −2s ≤ 2sᶻ ≤ 2s. Once invalid, the projection is cleared.
func (st *State) validate() {
	if st.doubledProjection < -st.doubledSpin || st.doubledProjection > st.doubledSpin {
		st.valid = false
	}
	if !st.valid {
		st.doubledProjection = 0
	}
}

func double(x float64) (int, bool) {
	d := 2 * x
	if math.IsNaN(d) || math.IsInf(d, 0) || d != math.Trunc(d) {
		return 0, false
	}
	if d > maxDoubled || d < -maxDoubled {
		return 0, false
	}
	return int(d), true
}

func sameParity(a, b int) bool {
	return (a-b)%2 == 0
}

// half formats a doubled quantity as a decimal, e.g. 3 -> "1.5".
func half(d int) string {
	return strconv.FormatFloat(float64(d)/2, 'f', -1, 64)
}

// fraction formats a doubled quantity with numeral glyphs, e.g. 3 -> "³⁄₂".
func fraction(d int) string {
	if d%2 == 0 {
		return strconv.Itoa(d / 2)
	}
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return sign + numerals.Superscript(strconv.Itoa(d)) + "⁄" + numerals.Subscript("2")
}
