package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		k.setPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.ID)
	}

	for _, rec := range genState.Liquidity {
		provider, err := sdk.AccAddressFromBech32(rec.Provider)
		if err != nil {
			return types.ErrInvalidState.Wrapf("invalid provider address %q: %v", rec.Provider, err)
		}
		if err := k.SetLiquidity(ctx, rec.PoolID, provider, rec.Shares); err != nil {
			return err
		}
	}

	if genState.LastPoolID > 0 {
		k.SetLastPoolID(ctx, genState.LastPoolID)
	}
	return nil
}

// ExportGenesis exports the amm module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.GenesisState{
		Params:     k.GetParams(ctx),
		LastPoolID: k.GetLastPoolID(ctx),
	}

	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	})
	if err != nil {
		return nil, err
	}

	for _, pool := range genState.Pools {
		err := k.IterateLiquidityByPool(ctx, pool.ID, func(provider sdk.AccAddress, shares math.Int) bool {
			genState.Liquidity = append(genState.Liquidity, types.LiquidityRecord{
				PoolID:   pool.ID,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		if err != nil {
			return nil, err
		}
	}

	return &genState, nil
}
