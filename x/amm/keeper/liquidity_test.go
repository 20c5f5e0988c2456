package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/amm/types"
)

func TestAddLiquidityProRata(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, providerAddr, tokenOrai, 500_000)
	fund(bank, providerAddr, tokenUsdt, 2_000_000)

	// Exact reserve ratio 1:4 mints half the existing shares.
	shares, usedA, usedB, err := k.AddLiquidity(ctx, providerAddr, pool.ID,
		math.NewInt(500_000), math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(500_000), usedA)
	require.Equal(t, math.NewInt(2_000_000), usedB)

	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), updated.ReserveA)
	require.Equal(t, math.NewInt(6_000_000), updated.ReserveB)
	require.Equal(t, math.NewInt(3_000_000), updated.TotalShares)

	position, err := k.GetLiquidity(ctx, pool.ID, providerAddr)
	require.NoError(t, err)
	require.Equal(t, shares, position)
}

func TestAddLiquiditySurplusQuote(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, providerAddr, tokenOrai, 500_000)
	fund(bank, providerAddr, tokenUsdt, 3_000_000)

	// The quote side exceeds the 1:4 ratio; only 2,000,000 is taken.
	shares, usedA, usedB, err := k.AddLiquidity(ctx, providerAddr, pool.ID,
		math.NewInt(500_000), math.NewInt(3_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(500_000), usedA)
	require.Equal(t, math.NewInt(2_000_000), usedB)

	// The surplus never left the provider's account.
	require.Equal(t, math.NewInt(1_000_000), balanceOf(bank, providerAddr, tokenUsdt))
	require.True(t, balanceOf(bank, providerAddr, tokenOrai).IsZero())
}

func TestAddLiquiditySurplusBase(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, providerAddr, tokenOrai, 600_000)
	fund(bank, providerAddr, tokenUsdt, 2_000_000)

	// The base side exceeds the ratio; it is scaled back to 500,000.
	shares, usedA, usedB, err := k.AddLiquidity(ctx, providerAddr, pool.ID,
		math.NewInt(600_000), math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(500_000), usedA)
	require.Equal(t, math.NewInt(2_000_000), usedB)

	require.Equal(t, math.NewInt(100_000), balanceOf(bank, providerAddr, tokenOrai))
}

func TestAddLiquidityUnknownPool(t *testing.T) {
	k, _, ctx, _ := setupPool(t)

	_, _, _, err := k.AddLiquidity(ctx, providerAddr, 42,
		math.NewInt(1_000), math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestRemoveLiquidityPartial(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	// Burning half the shares returns half of each reserve.
	amountA, amountB, err := k.RemoveLiquidity(ctx, creatorAddr, pool.ID, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), amountA)
	require.Equal(t, math.NewInt(2_000_000), amountB)

	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), updated.ReserveA)
	require.Equal(t, math.NewInt(2_000_000), updated.ReserveB)
	require.Equal(t, math.NewInt(1_000_000), updated.TotalShares)

	require.Equal(t, math.NewInt(500_000), balanceOf(bank, creatorAddr, tokenOrai))
	require.Equal(t, math.NewInt(2_000_000), balanceOf(bank, creatorAddr, tokenUsdt))
}

func TestRemoveLiquidityAll(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	amountA, amountB, err := k.RemoveLiquidity(ctx, creatorAddr, pool.ID, math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), amountA)
	require.Equal(t, math.NewInt(4_000_000), amountB)

	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.True(t, updated.ReserveA.IsZero())
	require.True(t, updated.ReserveB.IsZero())
	require.True(t, updated.TotalShares.IsZero())
	require.NoError(t, updated.Validate())

	// The position record is deleted on reaching zero.
	position, err := k.GetLiquidity(ctx, pool.ID, creatorAddr)
	require.NoError(t, err)
	require.True(t, position.IsZero())

	require.True(t, balanceOf(bank, k.GetModuleAddress(), tokenOrai).IsZero())
	require.True(t, balanceOf(bank, k.GetModuleAddress(), tokenUsdt).IsZero())
}

func TestRemoveLiquidityInsufficientShares(t *testing.T) {
	k, _, ctx, pool := setupPool(t)

	_, _, err := k.RemoveLiquidity(ctx, providerAddr, pool.ID, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	_, _, err = k.RemoveLiquidity(ctx, creatorAddr, pool.ID, math.NewInt(2_000_001))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}
