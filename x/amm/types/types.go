package types

import (
	"cosmossdk.io/math"
)

// Pool is a constant-product liquidity pool. Tokens are stored in
// lexicographic order so the pair lookup is order-independent.
type Pool struct {
	ID          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

// Validate checks structural pool consistency.
func (p Pool) Validate() error {
	if p.ID == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrap("pool tokens must differ")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrapf("tokens out of canonical order: %s > %s", p.TokenA, p.TokenB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool amounts cannot be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("pool amounts cannot be negative")
	}
	// Shares and reserves are zero or non-zero together.
	if p.TotalShares.IsZero() != (p.ReserveA.IsZero() && p.ReserveB.IsZero()) {
		return ErrInvalidPoolState.Wrap("shares and reserves must be drained together")
	}
	return nil
}

// SpotPrice returns reserveOut/reserveIn for the given input token.
func (p Pool) SpotPrice(tokenIn string) (math.LegacyDec, error) {
	reserveIn, reserveOut, err := p.ReservesFor(tokenIn)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyDec{}, ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}

// ReservesFor maps an input token to its (in, out) reserves.
func (p Pool) ReservesFor(tokenIn string) (reserveIn, reserveOut math.Int, err error) {
	switch tokenIn {
	case p.TokenA:
		return p.ReserveA, p.ReserveB, nil
	case p.TokenB:
		return p.ReserveB, p.ReserveA, nil
	default:
		return math.Int{}, math.Int{}, ErrInvalidTokenPair.Wrapf(
			"token %s not in pool %d (%s/%s)", tokenIn, p.ID, p.TokenA, p.TokenB)
	}
}

// LiquidityRecord is one provider's share position, used in genesis.
type LiquidityRecord struct {
	PoolID   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}
