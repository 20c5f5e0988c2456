package bridge_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/ibc-go/modules/capability/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/bridge"
	"github.com/oraidex/oraidex/x/bridge/keeper"
	"github.com/oraidex/oraidex/x/bridge/types"
)

func testAddr(i byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20))
}

func setupIBCModule(t *testing.T) (bridge.IBCModule, keeper.Keeper, *keepertest.MockBankKeeper, sdk.Context) {
	k, bank, _, ctx := keepertest.BridgeKeeper(t)
	return bridge.NewIBCModule(k), k, bank, ctx
}

func counterparty() channeltypes.Counterparty {
	return channeltypes.Counterparty{PortId: types.PortID, ChannelId: "channel-7"}
}

func TestOnChanOpenInit(t *testing.T) {
	im, _, _, ctx := setupIBCModule(t)

	version, err := im.OnChanOpenInit(ctx, channeltypes.UNORDERED, []string{"connection-0"},
		types.PortID, "channel-0", &capabilitytypes.Capability{}, counterparty(), types.IBCVersion)
	require.NoError(t, err)
	require.Equal(t, types.IBCVersion, version)

	_, err = im.OnChanOpenInit(ctx, channeltypes.ORDERED, []string{"connection-0"},
		types.PortID, "channel-0", &capabilitytypes.Capability{}, counterparty(), types.IBCVersion)
	require.ErrorIs(t, err, channeltypes.ErrInvalidChannelOrdering)

	_, err = im.OnChanOpenInit(ctx, channeltypes.UNORDERED, []string{"connection-0"},
		"transfer", "channel-0", &capabilitytypes.Capability{}, counterparty(), types.IBCVersion)
	require.Error(t, err)

	_, err = im.OnChanOpenInit(ctx, channeltypes.UNORDERED, []string{"connection-0"},
		types.PortID, "channel-0", &capabilitytypes.Capability{}, counterparty(), "ics20-1")
	require.ErrorIs(t, err, types.ErrInvalidChannelInfo)
}

func TestOnChanOpenAckRegistersChannel(t *testing.T) {
	im, k, _, ctx := setupIBCModule(t)

	require.NoError(t, im.OnChanOpenAck(ctx, types.PortID, "channel-0", "channel-7", types.IBCVersion))

	info, err := k.GetChannelInfo(ctx, "channel-0")
	require.NoError(t, err)
	require.Equal(t, "channel-7", info.CounterpartyChannelID)

	err = im.OnChanOpenAck(ctx, types.PortID, "channel-0", "channel-7", "ics20-1")
	require.ErrorIs(t, err, types.ErrInvalidChannelInfo)

	// The channel cannot be closed from this end.
	require.Error(t, im.OnChanCloseInit(ctx, types.PortID, "channel-0"))
}

func TestOnRecvPacketAck(t *testing.T) {
	im, k, bank, ctx := setupIBCModule(t)

	sender := testAddr(0x01)
	receiver := testAddr(0x02)

	require.NoError(t, k.SetChannelInfo(ctx, types.ChannelInfo{
		ChannelID:             "channel-0",
		PortID:                types.PortID,
		CounterpartyChannelID: "channel-7",
		CounterpartyPortID:    types.PortID,
	}))
	require.NoError(t, k.AllowToken(ctx, "orai", 0))

	// Seed escrow with an outbound transfer so the receive has
	// outstanding balance to draw on.
	bank.FundAccount(sender, sdk.NewCoins(sdk.NewCoin("orai", math.NewInt(100_000))))
	_, err := k.SendTransfer(ctx, sender, "channel-0", "remote-receiver", "orai", math.NewInt(100_000), 0, "")
	require.NoError(t, err)

	data := types.TransferPacketData{
		Denom:    "orai",
		Amount:   math.NewInt(40_000),
		Sender:   "remote-sender",
		Receiver: receiver.String(),
	}
	bz, err := data.GetBytes()
	require.NoError(t, err)

	packet := channeltypes.Packet{
		Sequence:           1,
		DestinationPort:    types.PortID,
		DestinationChannel: "channel-0",
		Data:               bz,
	}
	ack := im.OnRecvPacket(ctx, packet, testAddr(0x09))
	require.True(t, ack.Success())
	require.Equal(t, math.NewInt(40_000),
		bank.SpendableCoins(nil, receiver).AmountOf("orai"))

	// Malformed payloads and failed transfers produce error acks.
	packet.Data = []byte("garbage")
	require.False(t, im.OnRecvPacket(ctx, packet, testAddr(0x09)).Success())

	data.Amount = math.NewInt(1_000_000)
	packet.Data, err = data.GetBytes()
	require.NoError(t, err)
	require.False(t, im.OnRecvPacket(ctx, packet, testAddr(0x09)).Success())
}

func TestOnAcknowledgementPacketRefund(t *testing.T) {
	im, k, bank, ctx := setupIBCModule(t)

	sender := testAddr(0x01)
	require.NoError(t, k.SetChannelInfo(ctx, types.ChannelInfo{
		ChannelID: "channel-0",
		PortID:    types.PortID,
	}))
	require.NoError(t, k.AllowToken(ctx, "orai", 0))

	bank.FundAccount(sender, sdk.NewCoins(sdk.NewCoin("orai", math.NewInt(100_000))))
	sequence, err := k.SendTransfer(ctx, sender, "channel-0", "remote-receiver", "orai", math.NewInt(100_000), 0, "")
	require.NoError(t, err)

	packet := channeltypes.Packet{
		Sequence:      sequence,
		SourcePort:    types.PortID,
		SourceChannel: "channel-0",
	}

	errAck := channeltypes.NewErrorAcknowledgement(types.ErrInvalidPacket)
	ackBz := channeltypes.SubModuleCdc.MustMarshalJSON(&errAck)
	require.NoError(t, im.OnAcknowledgementPacket(ctx, packet, ackBz, testAddr(0x09)))
	require.Equal(t, math.NewInt(100_000),
		bank.SpendableCoins(nil, sender).AmountOf("orai"))

	require.Error(t, im.OnAcknowledgementPacket(ctx, packet, []byte("garbage"), testAddr(0x09)))
}
