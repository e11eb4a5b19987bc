package dof

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauge-lab/lattice-dof/internal/domain/cyclic"
	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
	"github.com/gauge-lab/lattice-dof/internal/domain/spin"
)

func TestPlaquette_LongitudinalPolarization(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				top, bottom := cyclic.MustNew(n, a), cyclic.MustNew(n, b)
				p := NewPlaquette(NewLink(top), NewLink(bottom))

				got, err := p.LongitudinalPolarization()
				require.NoError(t, err)

				want, err := top.Add(bottom)
				require.NoError(t, err)
				assert.True(t, got.Value().Equal(want))
			}
		}
	}
}

func TestPlaquette_IncompatibleLinks(t *testing.T) {
	p := NewPlaquette(NewLink(cyclic.MustNew(4, 1)), NewLink(cyclic.MustNew(5, 1)))

	_, err := p.LongitudinalPolarization()
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrIncompatibleGroup))
}

func TestPlaquette_SpinLinks(t *testing.T) {
	p := NewPlaquette(NewLink(spin.MustNew(1, 1)), NewLink(spin.MustNew(1, 1)))

	pol, err := p.LongitudinalPolarization()
	require.NoError(t, err)
	assert.False(t, pol.Value().IsValid())
}

func TestPlaquette_OwnsCopies(t *testing.T) {
	top := cyclic.MustNew(5, 1)
	p := NewPlaquette(NewLink(top), NewLink(cyclic.MustNew(5, 2)))

	top.Increment()
	assert.Equal(t, 1, p.Top().Value().Value())
	assert.Equal(t, 2, p.Bottom().Value().Value())
}

func TestPurePlaquette_ChargeIsIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		p := NewPurePlaquette(NewLink(cyclic.MustNew(n, n-1)), NewLink(cyclic.MustNew(n, 1)))
		charge := p.Charge()
		assert.Equal(t, n, charge.Modulus())
		assert.Equal(t, 0, charge.Value())
	}

	ip := NewPurePlaquette(NewLink(Integer(4)), NewLink(Integer(9)))
	assert.Equal(t, Integer(0), ip.Charge())

	pol, err := ip.LongitudinalPolarization()
	require.NoError(t, err)
	assert.Equal(t, Integer(13), pol.Value())
}

func TestPurePlaquette_ZeroValueLinksHaveNoGroup(t *testing.T) {
	var top, bottom Link[cyclic.Element]
	p := NewPurePlaquette(top, bottom)

	charge := p.Charge()
	assert.False(t, charge.IsValid())
	assert.Equal(t, 0, charge.Modulus())

	built := NewPurePlaquette(NewLink(cyclic.MustNew(3, 1)), NewLink(cyclic.MustNew(3, 2)))
	assert.True(t, built.Charge().IsValid())
}

func TestPlaquette_String(t *testing.T) {
	p := NewPlaquette(NewLink(Integer(1)), NewLink(Integer(2)))
	assert.Equal(t, "plaquette[top=link(1), bottom=link(2)]", p.String())

	pp := NewPurePlaquette(NewLink(Integer(1)), NewLink(Integer(2)))
	assert.Equal(t, "pure plaquette[top=link(1), bottom=link(2)]", pp.String())
}
