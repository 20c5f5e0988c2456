package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/amm/keeper"
)

func TestReserveBackingInvariant(t *testing.T) {
	k, bank, ctx, _ := setupPool(t)
	invariant := keeper.ReserveBackingInvariant(k)

	msg, broken := invariant(ctx)
	require.False(t, broken, msg)

	// Draining the module account below the recorded reserves breaks it.
	bank.Balances[k.GetModuleAddress().String()] = sdk.NewCoins(
		sdk.NewCoin(tokenOrai, math.NewInt(1)))
	msg, broken = invariant(ctx)
	require.True(t, broken, msg)
}
