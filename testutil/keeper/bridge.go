package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/ibc-go/modules/capability/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/bridge/keeper"
	"github.com/oraidex/oraidex/x/bridge/types"
)

// SentPacket records one SendPacket call on the mock channel keeper.
type SentPacket struct {
	SourcePort       string
	SourceChannel    string
	TimeoutTimestamp uint64
	Data             []byte
}

// MockChannelKeeper captures outbound packets and hands out sequences.
type MockChannelKeeper struct {
	Sequence uint64
	Sent     []SentPacket
	FailSend bool
}

func NewMockChannelKeeper() *MockChannelKeeper {
	return &MockChannelKeeper{}
}

func (m *MockChannelKeeper) SendPacket(
	_ sdk.Context,
	_ *capabilitytypes.Capability,
	sourcePort string,
	sourceChannel string,
	_ clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (uint64, error) {
	if m.FailSend {
		return 0, types.ErrInvalidPacket.Wrap("send disabled")
	}

	m.Sequence++
	m.Sent = append(m.Sent, SentPacket{
		SourcePort:       sourcePort,
		SourceChannel:    sourceChannel,
		TimeoutTimestamp: timeoutTimestamp,
		Data:             data,
	})
	return m.Sequence, nil
}

// MockScopedKeeper hands out capabilities by name.
type MockScopedKeeper struct {
	Claims map[string]*capabilitytypes.Capability
}

func NewMockScopedKeeper() *MockScopedKeeper {
	return &MockScopedKeeper{Claims: map[string]*capabilitytypes.Capability{}}
}

func (m *MockScopedKeeper) ClaimCapability(_ sdk.Context, cap *capabilitytypes.Capability, name string) error {
	m.Claims[name] = cap
	return nil
}

func (m *MockScopedKeeper) GetCapability(_ sdk.Context, name string) (*capabilitytypes.Capability, bool) {
	if cap, ok := m.Claims[name]; ok {
		return cap, true
	}
	// Channels opened outside the handshake path still need a
	// capability in tests.
	cap := capabilitytypes.NewCapability(uint64(len(m.Claims) + 1))
	m.Claims[name] = cap
	return cap, true
}

// BridgeKeeper creates a test keeper for the bridge module backed by an
// in-memory store and mock bank, channel and capability keepers.
func BridgeKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, *MockChannelKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bankKeeper := NewMockBankKeeper()
	channelKeeper := NewMockChannelKeeper()
	scopedKeeper := NewMockScopedKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		channelKeeper,
		scopedKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bankKeeper, channelKeeper, ctx
}
