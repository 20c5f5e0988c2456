package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/bridge/types"
)

func TestAllowTokenGasMonotonic(t *testing.T) {
	k, _, _, ctx := keepertest.BridgeKeeper(t)

	require.NoError(t, k.AllowToken(ctx, "uusdt", 500_000))

	// Raising the limit is fine.
	require.NoError(t, k.AllowToken(ctx, "uusdt", 750_000))

	// Lowering it is not.
	err := k.AllowToken(ctx, "uusdt", 600_000)
	require.ErrorIs(t, err, types.ErrCannotLowerGas)

	// Dropping to unlimited counts as raising.
	require.NoError(t, k.AllowToken(ctx, "uusdt", 0))

	// And going from unlimited back to a finite limit is a decrease.
	err = k.AllowToken(ctx, "uusdt", 1_000_000)
	require.ErrorIs(t, err, types.ErrCannotLowerGas)

	info, ok := k.GetAllowInfo(ctx, "uusdt")
	require.True(t, ok)
	require.Equal(t, uint64(0), info.GasLimit)
}

func TestAllowTokenList(t *testing.T) {
	k, _, _, ctx := keepertest.BridgeKeeper(t)

	require.NoError(t, k.AllowToken(ctx, "orai", 0))
	require.NoError(t, k.AllowToken(ctx, "uusdt", 300_000))

	var denoms []string
	require.NoError(t, k.IterateAllowed(ctx, func(info types.AllowInfo) bool {
		denoms = append(denoms, info.Denom)
		return false
	}))
	require.Equal(t, []string{"orai", "uusdt"}, denoms)

	_, ok := k.GetAllowInfo(ctx, "uatom")
	require.False(t, ok)
}
