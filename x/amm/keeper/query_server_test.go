package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/amm/keeper"
	"github.com/oraidex/oraidex/x/amm/types"
)

func TestQueryPool(t *testing.T) {
	k, _, ctx, pool := setupPool(t)
	srv := keeper.NewQueryServerImpl(k)

	resp, err := srv.Pool(ctx, &types.QueryPoolRequest{PoolID: pool.ID})
	require.NoError(t, err)
	require.Equal(t, pool, resp.Pool)

	_, err = srv.Pool(ctx, &types.QueryPoolRequest{PoolID: 42})
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	byTokens, err := srv.PoolByTokens(ctx, &types.QueryPoolByTokensRequest{
		TokenA: tokenUsdt,
		TokenB: tokenOrai,
	})
	require.NoError(t, err)
	require.Equal(t, pool, byTokens.Pool)
}

func TestQueryPools(t *testing.T) {
	k, bank, ctx, _ := setupPool(t)
	srv := keeper.NewQueryServerImpl(k)

	fund(bank, creatorAddr, tokenOrai, 1_000_000)
	fund(bank, creatorAddr, "uatom", 1_000_000)
	_, _, err := k.CreatePool(ctx, creatorAddr, tokenOrai, "uatom",
		math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	resp, err := srv.Pools(ctx, &types.QueryPoolsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Pools, 2)

	limited, err := srv.Pools(ctx, &types.QueryPoolsRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited.Pools, 1)
}

func TestQueryLiquidity(t *testing.T) {
	k, _, ctx, pool := setupPool(t)
	srv := keeper.NewQueryServerImpl(k)

	resp, err := srv.Liquidity(ctx, &types.QueryLiquidityRequest{
		PoolID:   pool.ID,
		Provider: creatorAddr.String(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), resp.Shares)

	empty, err := srv.Liquidity(ctx, &types.QueryLiquidityRequest{
		PoolID:   pool.ID,
		Provider: providerAddr.String(),
	})
	require.NoError(t, err)
	require.True(t, empty.Shares.IsZero())
}

func TestQuerySimulateSwap(t *testing.T) {
	k, _, ctx, pool := setupPool(t)
	srv := keeper.NewQueryServerImpl(k)

	resp, err := srv.SimulateSwap(ctx, &types.QuerySimulateSwapRequest{
		PoolID:   pool.ID,
		TokenIn:  tokenOrai,
		TokenOut: tokenUsdt,
		AmountIn: math.NewInt(100_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(362_644), resp.AmountOut)
	require.Equal(t, math.LegacyNewDec(4), resp.SpotPrice)
}

func TestQueryParams(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	srv := keeper.NewQueryServerImpl(k)

	resp, err := srv.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)
}
