package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/keeper"
	"github.com/oraidex/oraidex/x/orderbook/types"
)

func submitMarket(
	t testing.TB,
	k keeper.Keeper,
	ctx sdk.Context,
	sender sdk.AccAddress,
	direction types.OrderDirection,
	offerAmount int64,
	slippage *math.LegacyDec,
) (*types.MsgSubmitMarketOrderResponse, error) {
	t.Helper()
	return k.SubmitMarketOrder(ctx, sender, pairInfos(), direction, math.NewInt(offerAmount), slippage)
}

// TestMarketOrder_PartialFillRefundsLeftover buys the whole opposite side
// and gets the unspent offer back instead of resting on the book.
func TestMarketOrder_PartialFillRefundsLeftover(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x30)
	buyer := testAddr(0x31)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 500_000)

	// Sell 100,000 orai at 2.0
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000)

	resp, err := submitMarket(t, k, ctx, buyer, types.Buy, 500_000, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), resp.Received)
	require.Equal(t, math.NewInt(300_000), resp.RefundAmount)

	// Payouts are net of 0.1% commission, the refund is not.
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, buyer, baseDenom))
	require.Equal(t, math.NewInt(300_000), balanceOf(bank, buyer, quoteDenom))
	require.Equal(t, math.NewInt(199_800), balanceOf(bank, seller, quoteDenom))

	// Nothing rests afterwards on either side.
	pk := pairKey(t, k, ctx)
	_, err = k.GetOrder(ctx, pk, resp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)
	_, _, found := k.LowestPrice(ctx, pk, types.Sell)
	require.False(t, found)
	_, _, found = k.HighestPrice(ctx, pk, types.Buy)
	require.False(t, found)
}

// TestMarketOrder_SellSide sells into a resting buy and receives the quote
// asset net of commission.
func TestMarketOrder_SellSide(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x32)
	seller := testAddr(0x33)
	fund(bank, buyer, quoteDenom, 200_000)
	fund(bank, seller, baseDenom, 50_000)

	// Buy 100,000 orai at 2.0
	submitLimit(t, k, ctx, buyer, types.Buy, 200_000, 100_000)

	resp, err := submitMarket(t, k, ctx, seller, types.Sell, 50_000, nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), resp.Received)
	require.True(t, resp.RefundAmount.IsZero())

	require.Equal(t, math.NewInt(99_900), balanceOf(bank, seller, quoteDenom))
	require.Equal(t, math.NewInt(49_950), balanceOf(bank, buyer, baseDenom))

	// The resting buy is half filled.
	pk := pairKey(t, k, ctx)
	orders, err := k.GetOrdersByBidder(ctx, pk, buyer.String(), nil, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, types.OrderStatusPartialFilled, orders[0].Status)
	require.Equal(t, math.NewInt(100_000), orders[0].FilledOfferAmount)
	require.Equal(t, math.NewInt(50_000), orders[0].FilledAskAmount)
}

// TestMarketOrder_SlippageWindow stops matching at ticks priced beyond the
// slippage-stretched best price.
func TestMarketOrder_SlippageWindow(t *testing.T) {
	k, bank, ctx := setupBook(t)

	sellerA := testAddr(0x34)
	sellerB := testAddr(0x35)
	buyer := testAddr(0x36)
	fund(bank, sellerA, baseDenom, 100_000)
	fund(bank, sellerB, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 250_000)

	submitLimit(t, k, ctx, sellerA, types.Sell, 100_000, 100_000) // price 1.0
	respB := submitLimit(t, k, ctx, sellerB, types.Sell, 100_000, 120_000) // price 1.2

	// Threshold 1.0 * 1.1 = 1.1 excludes the 1.2 tick.
	slippage := math.LegacyMustNewDecFromStr("0.1")
	resp, err := submitMarket(t, k, ctx, buyer, types.Buy, 250_000, &slippage)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), resp.Received)
	require.Equal(t, math.NewInt(150_000), resp.RefundAmount)

	require.Equal(t, math.NewInt(99_900), balanceOf(bank, buyer, baseDenom))
	require.Equal(t, math.NewInt(150_000), balanceOf(bank, buyer, quoteDenom))

	// The out-of-window order is untouched.
	pk := pairKey(t, k, ctx)
	orderB, err := k.GetOrder(ctx, pk, respB.OrderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusOpen, orderB.Status)
	price, _, found := k.LowestPrice(ctx, pk, types.Sell)
	require.True(t, found)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.2"), price)
}

func TestMarketOrder_SlippageTooLarge(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x37)
	buyer := testAddr(0x38)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 100_000)
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000)

	slippage := math.LegacyOneDec()
	_, err := submitMarket(t, k, ctx, buyer, types.Buy, 100_000, &slippage)
	require.ErrorIs(t, err, types.ErrSlippageTooLarge)
}

func TestMarketOrder_EmptyOppositeSide(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x39)
	fund(bank, buyer, quoteDenom, 100_000)

	_, err := submitMarket(t, k, ctx, buyer, types.Buy, 100_000, nil)
	require.ErrorIs(t, err, types.ErrCannotCreateMarketOrder)
}

// TestSimulateMarketOrder reports the gross receive and refund without
// touching the book.
func TestSimulateMarketOrder(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x3A)
	fund(bank, seller, baseDenom, 100_000)
	sellResp := submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // price 2.0

	sim, err := k.SimulateMarketOrder(ctx, pairInfos(), types.Buy, math.NewInt(500_000), nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), sim.Receive)
	require.Equal(t, math.NewInt(300_000), sim.Refunds)

	// The resting order and counters are unchanged.
	pk := pairKey(t, k, ctx)
	order, err := k.GetOrder(ctx, pk, sellResp.OrderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusOpen, order.Status)
	require.True(t, order.FilledOfferAmount.IsZero())
	require.Equal(t, sellResp.OrderID, k.LastOrderID(ctx))
	require.Equal(t, math.NewInt(100_000), balanceOf(bank, k.GetModuleAddress(), baseDenom))
}

func TestSimulateMarketOrder_EmptyBook(t *testing.T) {
	k, _, ctx := setupBook(t)

	_, err := k.SimulateMarketOrder(ctx, pairInfos(), types.Sell, math.NewInt(10_000), nil)
	require.ErrorIs(t, err, types.ErrNoMatchedPrice)
}
