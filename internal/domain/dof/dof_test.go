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

func TestLinkAdd_CyclicPayload(t *testing.T) {
	a := NewLink(cyclic.MustNew(5, 3))
	b := NewLink(cyclic.MustNew(5, 4))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, KindLink, sum.Kind())
	assert.Equal(t, 2, sum.Value().Value())

	// operands are unchanged
	assert.Equal(t, 3, a.Value().Value())
	assert.Equal(t, 4, b.Value().Value())
}

func TestLinkAdd_PropagatesPayloadError(t *testing.T) {
	a := NewLink(cyclic.MustNew(5, 3))
	b := NewLink(cyclic.MustNew(7, 3))

	_, err := a.Add(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrIncompatibleGroup))
	assert.False(t, shared.IsValidation(err))
}

func TestSiteAdd_IntegerPayload(t *testing.T) {
	sum, err := NewSite(Integer(2)).Add(NewSite(Integer(-5)))
	require.NoError(t, err)
	assert.Equal(t, KindSite, sum.Kind())
	assert.Equal(t, Integer(-3), sum.Value())
}

func TestSiteAdd_SpinPayload(t *testing.T) {
	sum, err := NewSite(spin.MustNew(1, 1)).Add(NewSite(spin.MustNew(1, -1)))
	require.NoError(t, err)
	assert.True(t, sum.Value().Equal(spin.MustNew(1, 0)))

	_, err = NewSite(spin.MustNew(1, 1)).Add(NewSite(spin.MustNew(2, 1)))
	assert.True(t, errors.Is(err, shared.ErrIncompatibleSpin))
}

func TestAdd_SameKind(t *testing.T) {
	var a, b DegreeOfFreedom[Integer] = NewLink(Integer(1)), NewLink(Integer(2))

	sum, err := Add(a, b)
	require.NoError(t, err)
	link, ok := sum.(Link[Integer])
	require.True(t, ok)
	assert.Equal(t, Integer(3), link.Value())

	a, b = NewSite(Integer(1)), NewSite(Integer(2))
	sum, err = Add(a, b)
	require.NoError(t, err)
	_, ok = sum.(Site[Integer])
	assert.True(t, ok)
}

func TestAdd_KindMismatch(t *testing.T) {
	var link DegreeOfFreedom[Integer] = NewLink(Integer(1))
	var site DegreeOfFreedom[Integer] = NewSite(Integer(1))

	_, err := Add(link, site)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrKindMismatch))

	_, err = Add(site, link)
	assert.True(t, errors.Is(err, shared.ErrKindMismatch))
}

// lookalikeLink reports KindLink but is not a Link.
type lookalikeLink struct{ v Integer }

func (l lookalikeLink) Kind() Kind         { return KindLink }
func (l lookalikeLink) Value() Integer     { return l.v }
func (l lookalikeLink) String() string     { return "lookalike(" + l.v.String() + ")" }
func (l lookalikeLink) isDegreeOfFreedom() {}

func TestAdd_RejectsSameTagDifferentType(t *testing.T) {
	var link DegreeOfFreedom[Integer] = NewLink(Integer(1))
	var other DegreeOfFreedom[Integer] = lookalikeLink{v: 2}

	sum, err := Add(link, other)
	require.Error(t, err)
	assert.Nil(t, sum)
	assert.True(t, errors.Is(err, shared.ErrKindMismatch))

	_, err = Add(other, link)
	assert.True(t, errors.Is(err, shared.ErrKindMismatch))

	_, err = Add(other, other)
	assert.True(t, errors.Is(err, shared.ErrKindMismatch))
}

func TestAdd_Nil(t *testing.T) {
	_, err := Add[Integer](nil, NewSite(Integer(1)))
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestAdd_PayloadErrorAfterKindCheck(t *testing.T) {
	var a DegreeOfFreedom[cyclic.Element] = NewLink(cyclic.MustNew(3, 1))
	var b DegreeOfFreedom[cyclic.Element] = NewLink(cyclic.MustNew(4, 1))

	_, err := Add(a, b)
	assert.True(t, errors.Is(err, shared.ErrIncompatibleGroup))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "site", KindSite.String())
	assert.Equal(t, "link", KindLink.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "link(ℤ₃ element, value = e^(2πi·1/3))", NewLink(cyclic.MustNew(3, 1)).String())
	assert.Equal(t, "site(7)", NewSite(Integer(7)).String())
}
