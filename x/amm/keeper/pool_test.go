package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/amm/types"
)

func TestCreatePool(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	fund(bank, creatorAddr, tokenOrai, 1_000_000)
	fund(bank, creatorAddr, tokenUsdt, 4_000_000)

	// Tokens passed out of order are stored canonically, amounts follow.
	pool, shares, err := k.CreatePool(ctx, creatorAddr, tokenUsdt, tokenOrai,
		math.NewInt(4_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	require.Equal(t, uint64(1), pool.ID)
	require.Equal(t, tokenOrai, pool.TokenA)
	require.Equal(t, tokenUsdt, pool.TokenB)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(4_000_000), pool.ReserveB)

	// sqrt(1,000,000 * 4,000,000) = 2,000,000.
	require.Equal(t, math.NewInt(2_000_000), shares)
	require.Equal(t, shares, pool.TotalShares)

	position, err := k.GetLiquidity(ctx, pool.ID, creatorAddr)
	require.NoError(t, err)
	require.Equal(t, shares, position)

	// Reserves moved into the module account.
	require.True(t, balanceOf(bank, creatorAddr, tokenOrai).IsZero())
	require.True(t, balanceOf(bank, creatorAddr, tokenUsdt).IsZero())
	require.Equal(t, math.NewInt(1_000_000), balanceOf(bank, k.GetModuleAddress(), tokenOrai))
	require.Equal(t, math.NewInt(4_000_000), balanceOf(bank, k.GetModuleAddress(), tokenUsdt))

	// Pair lookup works in either token order.
	byTokens, err := k.GetPoolByTokens(ctx, tokenUsdt, tokenOrai)
	require.NoError(t, err)
	require.Equal(t, pool, byTokens)

	require.Equal(t, uint64(1), k.GetLastPoolID(ctx))
}

func TestCreatePoolDuplicatePair(t *testing.T) {
	k, bank, ctx, _ := setupPool(t)

	fund(bank, providerAddr, tokenOrai, 1_000_000)
	fund(bank, providerAddr, tokenUsdt, 4_000_000)

	_, _, err := k.CreatePool(ctx, providerAddr, tokenUsdt, tokenOrai,
		math.NewInt(4_000_000), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrPoolExists)
}

func TestCreatePoolIdenticalTokens(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, _, err := k.CreatePool(ctx, creatorAddr, tokenOrai, tokenOrai,
		math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestCreatePoolBelowMinLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	fund(bank, creatorAddr, tokenOrai, 100)
	fund(bank, creatorAddr, tokenUsdt, 100)

	// sqrt(100 * 100) = 100 < the default 1000 minimum.
	_, _, err := k.CreatePool(ctx, creatorAddr, tokenOrai, tokenUsdt,
		math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCreatePoolInsufficientFunds(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, _, err := k.CreatePool(ctx, creatorAddr, tokenOrai, tokenUsdt,
		math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.Error(t, err)

	// The failed create leaves nothing behind.
	_, err = k.GetPoolByTokens(ctx, tokenOrai, tokenUsdt)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestIteratePools(t *testing.T) {
	k, bank, ctx, first := setupPool(t)

	fund(bank, creatorAddr, tokenOrai, 1_000_000)
	fund(bank, creatorAddr, "uatom", 1_000_000)
	second, _, err := k.CreatePool(ctx, creatorAddr, tokenOrai, "uatom",
		math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.ID)

	var seen []uint64
	require.NoError(t, k.IteratePools(ctx, func(pool types.Pool) bool {
		seen = append(seen, pool.ID)
		return false
	}))
	require.Equal(t, []uint64{first.ID, second.ID}, seen)
}
