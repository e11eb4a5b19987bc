package dof

import (
	"fmt"

	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
)

// Charge site orientations and value symbols.
const (
	OrientationPositive = "+"
	OrientationNegative = "-"

	SymbolPositive = "+"
	SymbolZero     = "0"
	SymbolNegative = "-"
)

// ChargeSite is a two-state fermionic charge. Only four configurations are
// legal:
//
//	type  value  activated
//	 +      +      yes
//	 +      0      no
//	 -      -      no
//	 -      0      yes
type ChargeSite struct {
	positive  bool
	activated bool
}

// NewChargeSite builds a charge site from its orientation and value symbol.
func NewChargeSite(orientation, symbol string) (ChargeSite, error) {
	switch {
	case orientation == OrientationPositive && symbol == SymbolPositive:
		return ChargeSite{positive: true, activated: true}, nil
	case orientation == OrientationPositive && symbol == SymbolZero:
		return ChargeSite{positive: true, activated: false}, nil
	case orientation == OrientationNegative && symbol == SymbolNegative:
		return ChargeSite{positive: false, activated: false}, nil
	case orientation == OrientationNegative && symbol == SymbolZero:
		return ChargeSite{positive: false, activated: true}, nil
	}
	return ChargeSite{}, shared.Errorf(domainName, "NewChargeSite", shared.ErrInvalidCharge,
		"illegal charge configuration type=%q value=%q", orientation, symbol)
}

// Orientation returns "+" or "-".
func (c ChargeSite) Orientation() string {
	if c.positive {
		return OrientationPositive
	}
	return OrientationNegative
}

// IsNegativeType reports whether the site has negative orientation.
func (c ChargeSite) IsNegativeType() bool {
	return !c.positive
}

// Activated reports whether the fermionic mode is occupied.
func (c ChargeSite) Activated() bool {
	return c.activated
}

// Symbol returns the value symbol the site was built from.
func (c ChargeSite) Symbol() string {
	switch {
	case c.positive && c.activated:
		return SymbolPositive
	case !c.positive && !c.activated:
		return SymbolNegative
	default:
		return SymbolZero
	}
}

// Charge returns the signed charge denoted by the value symbol: +1, 0 or −1.
func (c ChargeSite) Charge() int {
	switch c.Symbol() {
	case SymbolPositive:
		return 1
	case SymbolNegative:
		return -1
	default:
		return 0
	}
}

// String renders the site, e.g. "charge(type=-, value=0)".
func (c ChargeSite) String() string {
	return fmt.Sprintf("charge(type=%s, value=%s)", c.Orientation(), c.Symbol())
}
