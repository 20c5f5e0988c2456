package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/bridge/keeper"
	"github.com/oraidex/oraidex/x/bridge/types"
)

const (
	testDenom   = "orai"
	testChannel = "channel-0"
)

func testAddr(i byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20))
}

var (
	adminAddr    = testAddr(0x01)
	senderAddr   = testAddr(0x02)
	receiverAddr = testAddr(0x03)
)

func fund(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string, amount int64) {
	bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
}

func balanceOf(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string) math.Int {
	return bank.SpendableCoins(nil, addr).AmountOf(denom)
}

// setupBridge configures an admin, a registered channel and an allowed
// token.
func setupBridge(t testing.TB) (keeper.Keeper, *keepertest.MockBankKeeper, *keepertest.MockChannelKeeper, sdk.Context) {
	k, bank, channels, ctx := keepertest.BridgeKeeper(t)

	params := types.DefaultParams()
	params.Admin = adminAddr.String()
	require.NoError(t, k.SetParams(ctx, params))

	require.NoError(t, k.SetChannelInfo(ctx, types.ChannelInfo{
		ChannelID:             testChannel,
		PortID:                types.PortID,
		CounterpartyChannelID: "channel-7",
		CounterpartyPortID:    types.PortID,
	}))
	require.NoError(t, k.AllowToken(ctx, testDenom, 0))

	return k, bank, channels, ctx
}

func TestBridgeParams(t *testing.T) {
	k, _, _, ctx := keepertest.BridgeKeeper(t)

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.DefaultParams()
	params.DefaultTimeoutSeconds = 0
	require.Error(t, k.SetParams(ctx, params))
}

func TestPauseFlag(t *testing.T) {
	k, _, _, ctx := keepertest.BridgeKeeper(t)

	require.False(t, k.IsPaused(ctx))
	k.SetPaused(ctx, true)
	require.True(t, k.IsPaused(ctx))
	k.SetPaused(ctx, false)
	require.False(t, k.IsPaused(ctx))
}
