package spin

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
)

func TestNew_RangeLaw(t *testing.T) {
	for twoS := 0; twoS <= 6; twoS++ {
		for twoSz := -10; twoSz <= 10; twoSz++ {
			if (twoS-twoSz)%2 != 0 {
				continue
			}
			st, err := New(float64(twoS)/2, float64(twoSz)/2)
			require.NoError(t, err)

			proj, ok := st.DoubledProjection()
			if twoSz < -twoS || twoSz > twoS {
				assert.False(t, ok, "2s=%d 2sz=%d should be invalid", twoS, twoSz)
				assert.False(t, st.IsValid())
				continue
			}
			assert.True(t, ok)
			assert.Equal(t, twoSz, proj)
		}
	}
}

func TestNew_HalfInteger(t *testing.T) {
	st, err := New(1.5, -0.5)
	require.NoError(t, err)

	assert.Equal(t, 3, st.DoubledSpin())
	assert.Equal(t, 1.5, st.Spin())
	sz, ok := st.Projection()
	require.True(t, ok)
	assert.Equal(t, -0.5, sz)
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		s, sz float64
	}{
		{"negative spin", -1, 0},
		{"non half-integer spin", 0.3, 0},
		{"non half-integer projection", 1, 0.25},
		{"parity mismatch", 1, 0.5},
		{"parity mismatch half spin", 0.5, 0},
		{"NaN", math.NaN(), 0},
		{"infinite projection", 1, math.Inf(1)},
		{"huge spin", 1e12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.s, tt.sz)
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrInvalidSpin))
		})
	}
}

func TestIncrement_ConcreteScenario(t *testing.T) {
	st := MustNew(1, 0)

	st.Increment()
	sz, ok := st.Projection()
	require.True(t, ok)
	assert.Equal(t, 1.0, sz)

	st.Increment()
	_, ok = st.Projection()
	assert.False(t, ok)
}

func TestStep_MovesTwoDoubledUnits(t *testing.T) {
	st := MustNew(2, 0)

	st.Increment()
	proj, ok := st.DoubledProjection()
	require.True(t, ok)
	assert.Equal(t, 2, proj)

	st.Decrement()
	st.Decrement()
	proj, ok = st.DoubledProjection()
	require.True(t, ok)
	assert.Equal(t, -2, proj)
}

func TestDecrement_LowersToBoundary(t *testing.T) {
	st := MustNew(1.5, 1.5)
	for _, want := range []int{1, -1, -3} {
		st.Decrement()
		proj, ok := st.DoubledProjection()
		require.True(t, ok)
		assert.Equal(t, want, proj)
	}
	st.Decrement()
	assert.False(t, st.IsValid())
}

func TestInvalidity_IsSticky(t *testing.T) {
	st := MustNew(1, 1)
	st.Increment()
	require.False(t, st.IsValid())

	// lowering back would land on sz=1 if the boundary were re-evaluated
	st.Decrement()
	assert.False(t, st.IsValid())
	st.Decrement()
	assert.False(t, st.IsValid())

	st = MustNew(1, 3)
	require.False(t, st.IsValid())
	st.Decrement()
	assert.False(t, st.IsValid())
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		a, b      State
		wantValid bool
		wantProj  int
	}{
		{"within range", MustNew(2, 1), MustNew(2, -2), true, -2},
		{"upper boundary", MustNew(2, 1), MustNew(2, 1), true, 4},
		{"over upper boundary", MustNew(2, 2), MustNew(2, 1), false, 0},
		{"under lower boundary", MustNew(1, -1), MustNew(1, -1), false, 0},
		{"half spin sum has wrong parity", MustNew(0.5, 0.5), MustNew(0.5, -0.5), false, 0},
		{"invalid operand", MustNew(1, 2), MustNew(1, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := tt.a.Add(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.a.DoubledSpin(), sum.DoubledSpin())
			proj, ok := sum.DoubledProjection()
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.wantProj, proj)
		})
	}
}

func TestAdd_RejectsDifferentSpin(t *testing.T) {
	a, b := MustNew(1, 0), MustNew(2, 0)
	_, err := a.Add(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrIncompatibleSpin))

	_, err = MustNew(0.5, 0.5).Add(MustNew(1.5, 0.5))
	assert.True(t, errors.Is(err, shared.ErrIncompatibleSpin))
}

func TestEqual(t *testing.T) {
	assert.True(t, MustNew(1, 0).Equal(MustNew(1, 0)))
	assert.False(t, MustNew(1, 0).Equal(MustNew(1, 1)))
	assert.False(t, MustNew(1, 0).Equal(MustNew(2, 0)))
	assert.True(t, MustNew(1, 3).Equal(MustNew(1, -3)))
	assert.False(t, MustNew(1, 3).Equal(MustNew(1, 1)))
}

func TestZeroStateIsInvalid(t *testing.T) {
	var st State
	assert.False(t, st.IsValid())
	st.Increment()
	assert.False(t, st.IsValid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "spin s=¹⁄₂, sᶻ=-¹⁄₂", MustNew(0.5, -0.5).String())
	assert.Equal(t, "spin s=1, sᶻ=0", MustNew(1, 0).String())
	assert.Equal(t, "spin s=³⁄₂, invalid sᶻ", MustNew(1.5, 2.5).String())

	assert.Equal(t, "Spin(s=1.5, sz=-0.5)", MustNew(1.5, -0.5).GoString())
	assert.Equal(t, "Spin(s=1, sz=invalid)", MustNew(1, 2).GoString())
}
