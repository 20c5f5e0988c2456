package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/bridge/types"
)

func testAddr(i byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20))
}

func validPacket() types.TransferPacketData {
	return types.TransferPacketData{
		Denom:    "orai",
		Amount:   math.NewInt(100_000),
		Sender:   testAddr(0x01).String(),
		Receiver: testAddr(0x02).String(),
	}
}

func TestPacketValidateBasic(t *testing.T) {
	require.NoError(t, validPacket().ValidateBasic())

	p := validPacket()
	p.Denom = ""
	require.ErrorIs(t, p.ValidateBasic(), types.ErrInvalidPacket)

	p = validPacket()
	p.Amount = math.ZeroInt()
	require.ErrorIs(t, p.ValidateBasic(), types.ErrInvalidPacket)

	p = validPacket()
	p.Amount = math.Int{}
	require.ErrorIs(t, p.ValidateBasic(), types.ErrInvalidPacket)

	p = validPacket()
	p.Receiver = ""
	require.ErrorIs(t, p.ValidateBasic(), types.ErrInvalidPacket)
}

func TestPacketRoundTrip(t *testing.T) {
	p := validPacket()
	p.Memo = "hello"

	bz, err := p.GetBytes()
	require.NoError(t, err)

	decoded, err := types.ParsePacketData(bz)
	require.NoError(t, err)
	require.Equal(t, p, decoded)

	_, err = types.ParsePacketData([]byte("not json"))
	require.ErrorIs(t, err, types.ErrInvalidPacket)
}

func validTransferMsg() *types.MsgTransfer {
	return &types.MsgTransfer{
		Sender:    testAddr(0x01).String(),
		ChannelID: "channel-0",
		Receiver:  "remote-receiver",
		Denom:     "orai",
		Amount:    math.NewInt(1),
	}
}

func TestMsgTransferValidateBasic(t *testing.T) {
	require.NoError(t, validTransferMsg().ValidateBasic())

	msg := validTransferMsg()
	msg.Sender = "bad"
	require.Error(t, msg.ValidateBasic())

	msg = validTransferMsg()
	msg.ChannelID = ""
	require.Error(t, msg.ValidateBasic())

	msg = validTransferMsg()
	msg.Denom = "!"
	require.Error(t, msg.ValidateBasic())

	msg = validTransferMsg()
	msg.Amount = math.NewInt(-5)
	require.Error(t, msg.ValidateBasic())

	require.Equal(t, []sdk.AccAddress{testAddr(0x01)}, validTransferMsg().GetSigners())
}

func TestAdminMsgsValidateBasic(t *testing.T) {
	admin := testAddr(0x01).String()

	require.NoError(t, (&types.MsgAllowToken{Admin: admin, Denom: "orai"}).ValidateBasic())
	require.Error(t, (&types.MsgAllowToken{Admin: "bad", Denom: "orai"}).ValidateBasic())
	require.Error(t, (&types.MsgAllowToken{Admin: admin, Denom: ""}).ValidateBasic())

	require.NoError(t, (&types.MsgUpdateConfig{Admin: admin, Params: types.DefaultParams()}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateConfig{Admin: admin, Params: types.Params{}}).ValidateBasic())

	require.NoError(t, (&types.MsgPause{Admin: admin}).ValidateBasic())
	require.Error(t, (&types.MsgPause{}).ValidateBasic())
	require.NoError(t, (&types.MsgUnpause{Admin: admin}).ValidateBasic())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.Admin = "not-bech32"
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.DefaultTimeoutSeconds = 0
	require.Error(t, p.Validate())
}

func TestChannelInfoValidate(t *testing.T) {
	info := types.ChannelInfo{ChannelID: "channel-0", PortID: types.PortID}
	require.NoError(t, info.Validate())

	info.PortID = ""
	require.ErrorIs(t, info.Validate(), types.ErrInvalidChannelInfo)

	info = types.ChannelInfo{PortID: types.PortID}
	require.ErrorIs(t, info.Validate(), types.ErrInvalidChannelInfo)
}

func validGenesis() *types.GenesisState {
	gs := types.DefaultGenesis()
	gs.Channels = []types.ChannelInfo{{ChannelID: "channel-0", PortID: types.PortID}}
	gs.Balances = []types.GenesisBalance{{
		ChannelID: "channel-0",
		Denom:     "orai",
		ChannelState: types.ChannelState{
			Outstanding: math.NewInt(100),
			TotalSent:   math.NewInt(500),
		},
	}}
	gs.Allowed = []types.AllowInfo{{Denom: "orai", GasLimit: 500_000}}
	gs.Pending = []types.PendingTransfer{{
		ChannelID: "channel-0",
		Sequence:  1,
		Sender:    testAddr(0x01).String(),
		Denom:     "orai",
		Amount:    math.NewInt(100),
	}}
	return gs
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, validGenesis().Validate())
	require.NoError(t, types.DefaultGenesis().Validate())

	gs := validGenesis()
	gs.Channels = append(gs.Channels, gs.Channels[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Balances[0].ChannelID = "channel-9"
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Balances[0].TotalSent = math.NewInt(50)
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Balances = append(gs.Balances, gs.Balances[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Allowed = append(gs.Allowed, gs.Allowed[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Pending[0].ChannelID = "channel-9"
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)

	gs = validGenesis()
	gs.Pending = append(gs.Pending, gs.Pending[0])
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidState)
}
