package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the module configuration set at genesis and mutated only
// through the admin update handlers.
type Params struct {
	// Admin may manage pairs, the whitelist and the configuration.
	Admin string `json:"admin"`
	// RewardAddress receives accumulated protocol commission.
	RewardAddress string `json:"reward_address"`
	// Operator may pause and unpause trading. Empty means admin only.
	Operator string `json:"operator,omitempty"`
	// CommissionRate is deducted from every non-whitelisted fill.
	CommissionRate math.LegacyDec `json:"commission_rate"`
}

// DefaultCommissionRate is 0.1%.
func DefaultCommissionRate() math.LegacyDec {
	return math.LegacyNewDecWithPrec(1, 3)
}

// DefaultParams returns placeholder params; a real chain sets admin and
// reward address in genesis.
func DefaultParams() Params {
	return Params{
		CommissionRate: DefaultCommissionRate(),
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return ErrInvalidAsset.Wrapf("invalid admin address: %v", err)
		}
	}
	if p.RewardAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.RewardAddress); err != nil {
			return ErrInvalidAsset.Wrapf("invalid reward address: %v", err)
		}
	}
	if p.Operator != "" {
		if _, err := sdk.AccAddressFromBech32(p.Operator); err != nil {
			return ErrInvalidAsset.Wrapf("invalid operator address: %v", err)
		}
	}
	if p.CommissionRate.IsNil() || p.CommissionRate.IsNegative() || p.CommissionRate.GTE(math.LegacyOneDec()) {
		return ErrInvalidState.Wrap("commission rate must be in [0, 1)")
	}
	return nil
}
