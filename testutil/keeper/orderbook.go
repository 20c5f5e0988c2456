package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/keeper"
	"github.com/oraidex/oraidex/x/orderbook/types"
)

// MockBankKeeper is an in-memory bank backing the module escrow in tests.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{Balances: map[string]sdk.Coins{}}
}

// FundAccount credits an address out of thin air.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.Balances[addr.String()] = m.Balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	have := m.Balances[from]
	updated, negative := have.SafeSub(amt...)
	if negative {
		return types.ErrInvalidFunds.Wrapf("insufficient funds: %s < %s", have, amt)
	}
	m.Balances[from] = updated
	m.Balances[to] = m.Balances[to].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balances[addr.String()]
}

// MockTokenKeeper tracks contract token balances per (contract, holder).
type MockTokenKeeper struct {
	Balances map[string]map[string]math.Int
}

func NewMockTokenKeeper() *MockTokenKeeper {
	return &MockTokenKeeper{Balances: map[string]map[string]math.Int{}}
}

// Mint credits a holder's balance on one token contract.
func (m *MockTokenKeeper) Mint(contractAddr string, holder sdk.AccAddress, amount math.Int) {
	if m.Balances[contractAddr] == nil {
		m.Balances[contractAddr] = map[string]math.Int{}
	}
	prev, ok := m.Balances[contractAddr][holder.String()]
	if !ok {
		prev = math.ZeroInt()
	}
	m.Balances[contractAddr][holder.String()] = prev.Add(amount)
}

func (m *MockTokenKeeper) BalanceOf(contractAddr string, holder sdk.AccAddress) math.Int {
	if m.Balances[contractAddr] == nil {
		return math.ZeroInt()
	}
	bal, ok := m.Balances[contractAddr][holder.String()]
	if !ok {
		return math.ZeroInt()
	}
	return bal
}

func (m *MockTokenKeeper) Transfer(_ context.Context, contractAddr string, from, to sdk.AccAddress, amount math.Int) error {
	have := m.BalanceOf(contractAddr, from)
	if have.LT(amount) {
		return types.ErrInvalidFunds.Wrapf("insufficient token funds: %s < %s", have, amount)
	}
	m.Balances[contractAddr][from.String()] = have.Sub(amount)
	m.Mint(contractAddr, to, amount)
	return nil
}

// OrderbookKeeper creates a test keeper for the orderbook module backed by
// an in-memory store and mock bank.
func OrderbookKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, *MockTokenKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bankKeeper := NewMockBankKeeper()
	tokenKeeper := NewMockTokenKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		tokenKeeper,
		nil,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bankKeeper, tokenKeeper, ctx
}
