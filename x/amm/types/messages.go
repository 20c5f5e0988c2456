package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgSwap            = "swap"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgSwap{}
)

// MsgCreatePool creates a pool for a new token pair and seeds its
// initial reserves.
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	TokenA  string   `json:"token_a"`
	TokenB  string   `json:"token_b"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

func (m *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return fmt.Errorf("invalid creator address: %w", err)
	}
	if err := validateDenomPair(m.TokenA, m.TokenB); err != nil {
		return err
	}
	if err := validatePositive(m.AmountA, "amount A"); err != nil {
		return err
	}
	return validatePositive(m.AmountB, "amount B")
}

func (m *MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// MsgAddLiquidity deposits both tokens of a pool in proportion to its
// current reserves.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolID   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if m.PoolID == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	if err := validatePositive(m.AmountA, "amount A"); err != nil {
		return err
	}
	return validatePositive(m.AmountB, "amount B")
}

func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgRemoveLiquidity burns pool shares for the underlying tokens.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolID   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if m.PoolID == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	return validatePositive(m.Shares, "shares")
}

func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// MsgSwap trades an exact input amount against a pool.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolID       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}
	if m.PoolID == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	if err := validateDenomPair(m.TokenIn, m.TokenOut); err != nil {
		return err
	}
	if err := validatePositive(m.AmountIn, "amount in"); err != nil {
		return err
	}
	if m.MinAmountOut.IsNil() || m.MinAmountOut.IsNegative() {
		return fmt.Errorf("min amount out must be non-negative")
	}
	return nil
}

func (m *MsgSwap) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

func validateDenomPair(tokenA, tokenB string) error {
	if err := sdk.ValidateDenom(tokenA); err != nil {
		return fmt.Errorf("invalid token denom %q: %w", tokenA, err)
	}
	if err := sdk.ValidateDenom(tokenB); err != nil {
		return fmt.Errorf("invalid token denom %q: %w", tokenB, err)
	}
	if tokenA == tokenB {
		return fmt.Errorf("tokens must differ")
	}
	return nil
}

func validatePositive(amount math.Int, name string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
