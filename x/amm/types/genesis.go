package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the amm module's genesis state.
type GenesisState struct {
	Params     Params            `json:"params"`
	Pools      []Pool            `json:"pools,omitempty"`
	Liquidity  []LiquidityRecord `json:"liquidity,omitempty"`
	LastPoolID uint64            `json:"last_pool_id"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	poolIDs := make(map[uint64]struct{}, len(gs.Pools))
	pairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.ID > gs.LastPoolID {
			return ErrInvalidState.Wrapf("pool id %d exceeds last pool id %d", pool.ID, gs.LastPoolID)
		}
		if _, ok := poolIDs[pool.ID]; ok {
			return ErrInvalidState.Wrapf("duplicate pool id %d", pool.ID)
		}
		poolIDs[pool.ID] = struct{}{}

		pair := pool.TokenA + "/" + pool.TokenB
		if _, ok := pairs[pair]; ok {
			return ErrInvalidState.Wrapf("duplicate pool for pair %s", pair)
		}
		pairs[pair] = struct{}{}
	}

	shareTotals := make(map[uint64]math.Int)
	perPool := make(map[uint64]map[string]struct{})
	for _, rec := range gs.Liquidity {
		if _, ok := poolIDs[rec.PoolID]; !ok {
			return ErrInvalidState.Wrapf("liquidity record references unknown pool %d", rec.PoolID)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Provider); err != nil {
			return ErrInvalidState.Wrapf("invalid liquidity provider address %q: %v", rec.Provider, err)
		}
		if rec.Shares.IsNil() || !rec.Shares.IsPositive() {
			return ErrInvalidState.Wrapf("liquidity shares must be positive for provider %s", rec.Provider)
		}
		if perPool[rec.PoolID] == nil {
			perPool[rec.PoolID] = map[string]struct{}{}
		}
		if _, ok := perPool[rec.PoolID][rec.Provider]; ok {
			return ErrInvalidState.Wrapf("duplicate liquidity record for pool %d provider %s", rec.PoolID, rec.Provider)
		}
		perPool[rec.PoolID][rec.Provider] = struct{}{}

		total, ok := shareTotals[rec.PoolID]
		if !ok {
			total = math.ZeroInt()
		}
		shareTotals[rec.PoolID] = total.Add(rec.Shares)
	}

	// Positions must account for every pool share.
	for _, pool := range gs.Pools {
		total, ok := shareTotals[pool.ID]
		if !ok {
			total = math.ZeroInt()
		}
		if !total.Equal(pool.TotalShares) {
			return ErrInvalidState.Wrapf(
				"pool %d share mismatch: positions sum to %s, pool has %s",
				pool.ID, total, pool.TotalShares)
		}
	}

	return nil
}
