package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the amm module configuration.
type Params struct {
	// SwapFee is deducted from every swap input. Default 0.3%.
	SwapFee math.LegacyDec `json:"swap_fee"`
	// LpFeeShare is the fraction of the swap fee left in the pool for
	// liquidity providers.
	LpFeeShare math.LegacyDec `json:"lp_fee_share"`
	// ProtocolFeeAddress receives the remainder of the swap fee. Empty
	// means the whole fee stays in the pool.
	ProtocolFeeAddress string `json:"protocol_fee_address,omitempty"`
	// MinLiquidity is the minimum share amount a pool can be created
	// with, guarding against dust pools.
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultParams returns the default amm parameters: 0.3% swap fee with
// five sixths kept in the pool, Uniswap v2 split.
func DefaultParams() Params {
	return Params{
		SwapFee:      math.LegacyNewDecWithPrec(3, 3),
		LpFeeShare:   math.LegacyNewDec(5).Quo(math.LegacyNewDec(6)),
		MinLiquidity: math.NewInt(1000),
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return ErrInvalidState.Wrap("swap fee must be in [0, 1)")
	}
	if p.LpFeeShare.IsNil() || p.LpFeeShare.IsNegative() || p.LpFeeShare.GT(math.LegacyOneDec()) {
		return ErrInvalidState.Wrap("lp fee share must be in [0, 1]")
	}
	if p.ProtocolFeeAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.ProtocolFeeAddress); err != nil {
			return ErrInvalidState.Wrapf("invalid protocol fee address: %v", err)
		}
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return ErrInvalidState.Wrap("min liquidity cannot be negative")
	}
	return nil
}
