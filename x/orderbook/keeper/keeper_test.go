package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/orderbook/keeper"
	"github.com/oraidex/oraidex/x/orderbook/types"
)

const (
	baseDenom  = "orai"
	quoteDenom = "uusdt"
)

func testAddr(i byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20))
}

var (
	adminAddr    = testAddr(0x01)
	rewardAddr   = testAddr(0x02)
	operatorAddr = testAddr(0x03)
)

func baseInfo() types.AssetInfo {
	return types.AssetInfo{Denom: baseDenom}
}

func quoteInfo() types.AssetInfo {
	return types.AssetInfo{Denom: quoteDenom}
}

func pairInfos() [2]types.AssetInfo {
	return [2]types.AssetInfo{{Denom: baseDenom}, {Denom: quoteDenom}}
}

// setupBook creates a keeper with admin params and one registered
// base/quote pair.
func setupBook(t testing.TB) (keeper.Keeper, *keepertest.MockBankKeeper, sdk.Context) {
	k, bank, _, ctx := keepertest.OrderbookKeeper(t)

	params := types.Params{
		Admin:          adminAddr.String(),
		RewardAddress:  rewardAddr.String(),
		Operator:       operatorAddr.String(),
		CommissionRate: types.DefaultCommissionRate(),
	}
	require.NoError(t, k.SetParams(ctx, params))

	err := k.CreateOrderBookPair(ctx,
		types.AssetInfo{Denom: baseDenom},
		types.AssetInfo{Denom: quoteDenom},
		nil,
		math.NewInt(10),
	)
	require.NoError(t, err)

	return k, bank, ctx
}

func fund(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string, amount int64) {
	bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
}

func balanceOf(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string) math.Int {
	return bank.SpendableCoins(nil, addr).AmountOf(denom)
}

// submitLimit places a limit order paying offerAmount for askAmount.
func submitLimit(
	t testing.TB,
	k keeper.Keeper,
	ctx sdk.Context,
	sender sdk.AccAddress,
	direction types.OrderDirection,
	offerAmount, askAmount int64,
) *types.MsgSubmitOrderResponse {
	offerDenom, askDenom := quoteDenom, baseDenom
	if direction == types.Sell {
		offerDenom, askDenom = baseDenom, quoteDenom
	}

	resp, err := k.SubmitOrder(ctx, sender, direction, [2]types.Asset{
		types.NewAsset(types.AssetInfo{Denom: offerDenom}, math.NewInt(offerAmount)),
		types.NewAsset(types.AssetInfo{Denom: askDenom}, math.NewInt(askAmount)),
	})
	require.NoError(t, err)
	return resp
}

func pairKey(t testing.TB, k keeper.Keeper, ctx sdk.Context) []byte {
	book, err := k.GetOrderBookByAssets(ctx, pairInfos())
	require.NoError(t, err)
	return book.PairKey()
}
