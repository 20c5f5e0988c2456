package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/bridge/keeper"
	"github.com/oraidex/oraidex/x/bridge/types"
)

func TestQueryConfig(t *testing.T) {
	k, _, _, ctx := setupBridge(t)
	srv := keeper.NewQueryServerImpl(k)

	resp, err := srv.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, adminAddr.String(), resp.Params.Admin)
	require.False(t, resp.Paused)

	k.SetPaused(ctx, true)
	resp, err = srv.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.True(t, resp.Paused)
}

func TestQueryChannel(t *testing.T) {
	k, bank, _, ctx := setupBridge(t)
	srv := keeper.NewQueryServerImpl(k)

	fund(bank, senderAddr, testDenom, 200_000)
	_, err := k.SendTransfer(ctx, senderAddr, testChannel, receiverAddr.String(),
		testDenom, math.NewInt(200_000), 0, "")
	require.NoError(t, err)

	resp, err := srv.Channel(ctx, &types.QueryChannelRequest{ChannelID: testChannel})
	require.NoError(t, err)
	require.Equal(t, "channel-7", resp.Info.CounterpartyChannelID)
	require.Len(t, resp.Balances, 1)
	require.Equal(t, testDenom, resp.Balances[0].Denom)
	require.Equal(t, math.NewInt(200_000), resp.Balances[0].Outstanding)

	_, err = srv.Channel(ctx, &types.QueryChannelRequest{ChannelID: "channel-9"})
	require.ErrorIs(t, err, types.ErrChannelNotFound)

	all, err := srv.Channels(ctx, &types.QueryChannelsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Channels, 1)
}

func TestQueryAllowed(t *testing.T) {
	k, _, _, ctx := setupBridge(t)
	srv := keeper.NewQueryServerImpl(k)

	// testDenom is allowed with gas limit 0, which falls back to the
	// configured default.
	resp, err := srv.Allowed(ctx, &types.QueryAllowedRequest{Denom: testDenom})
	require.NoError(t, err)
	require.True(t, resp.Allowed)
	require.Equal(t, k.GetParams(ctx).DefaultGasLimit, resp.GasLimit)

	resp, err = srv.Allowed(ctx, &types.QueryAllowedRequest{Denom: "uatom"})
	require.NoError(t, err)
	require.False(t, resp.Allowed)

	require.NoError(t, k.AllowToken(ctx, "uusdt", 750_000))
	tokens, err := srv.AllowedTokens(ctx, &types.QueryAllowedTokensRequest{})
	require.NoError(t, err)
	require.Len(t, tokens.Tokens, 2)
}
