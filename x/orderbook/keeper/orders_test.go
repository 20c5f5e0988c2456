package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

func TestSubmitOrder_RestsOpen(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x40)
	fund(bank, buyer, quoteDenom, 150_000)

	resp := submitLimit(t, k, ctx, buyer, types.Buy, 150_000, 100_000) // price 1.5
	require.Equal(t, types.OrderStatusOpen, resp.Status)

	// The offer moved into the module escrow.
	require.True(t, balanceOf(bank, buyer, quoteDenom).IsZero())
	require.Equal(t, math.NewInt(150_000), balanceOf(bank, k.GetModuleAddress(), quoteDenom))

	pk := pairKey(t, k, ctx)
	order, err := k.GetOrder(ctx, pk, resp.OrderID)
	require.NoError(t, err)
	require.Equal(t, buyer.String(), order.BidderAddr)
	require.Equal(t, types.Buy, order.Direction)
	require.Equal(t, math.NewInt(150_000), order.OfferAmount)
	require.Equal(t, math.NewInt(100_000), order.AskAmount)
	require.True(t, order.FilledOfferAmount.IsZero())
	require.True(t, order.FilledAskAmount.IsZero())

	price, total, found := k.HighestPrice(ctx, pk, types.Buy)
	require.True(t, found)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.5"), price)
	require.Equal(t, uint64(1), total)
}

func TestSubmitOrder_IDsAreSequential(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x41)
	fund(bank, buyer, quoteDenom, 300_000)

	first := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)
	second := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)
	require.Equal(t, first.OrderID+1, second.OrderID)
	require.Equal(t, second.OrderID, k.LastOrderID(ctx))
}

func TestSubmitOrder_WrongOfferSide(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x42)
	fund(bank, buyer, baseDenom, 100_000)

	// A buy pays in the quote asset; offering the base asset is rejected.
	_, err := k.SubmitOrder(ctx, buyer, types.Buy, [2]types.Asset{
		types.NewAsset(baseInfo(), math.NewInt(100_000)),
		types.NewAsset(quoteInfo(), math.NewInt(100_000)),
	})
	require.ErrorIs(t, err, types.ErrInvalidFunds)
}

func TestSubmitOrder_QuoteBelowMinimum(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x43)
	fund(bank, buyer, quoteDenom, 9)

	_, err := k.SubmitOrder(ctx, buyer, types.Buy, [2]types.Asset{
		types.NewAsset(quoteInfo(), math.NewInt(9)),
		types.NewAsset(baseInfo(), math.NewInt(9)),
	})
	require.ErrorIs(t, err, types.ErrQuoteBelowMinimum)

	// For sells the minimum applies to the ask side.
	seller := testAddr(0x44)
	fund(bank, seller, baseDenom, 100)
	_, err = k.SubmitOrder(ctx, seller, types.Sell, [2]types.Asset{
		types.NewAsset(baseInfo(), math.NewInt(100)),
		types.NewAsset(quoteInfo(), math.NewInt(9)),
	})
	require.ErrorIs(t, err, types.ErrQuoteBelowMinimum)
}

func TestSubmitOrder_ZeroAmount(t *testing.T) {
	k, _, ctx := setupBook(t)

	_, err := k.SubmitOrder(ctx, testAddr(0x45), types.Buy, [2]types.Asset{
		types.NewAsset(quoteInfo(), math.ZeroInt()),
		types.NewAsset(baseInfo(), math.NewInt(100_000)),
	})
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestSubmitOrder_UnknownPair(t *testing.T) {
	k, _, ctx := setupBook(t)

	_, err := k.SubmitOrder(ctx, testAddr(0x46), types.Buy, [2]types.Asset{
		types.NewAsset(types.AssetInfo{Denom: "unlisted"}, math.NewInt(100_000)),
		types.NewAsset(baseInfo(), math.NewInt(100_000)),
	})
	require.ErrorIs(t, err, types.ErrOrderBookNotFound)
}

func TestCancelOrder_RefundsRemaining(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x47)
	fund(bank, buyer, quoteDenom, 150_000)
	resp := submitLimit(t, k, ctx, buyer, types.Buy, 150_000, 100_000)

	cancelResp, err := k.CancelOrder(ctx, buyer, resp.OrderID, pairInfos())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(150_000), cancelResp.BidderRefund)
	require.Equal(t, math.NewInt(150_000), balanceOf(bank, buyer, quoteDenom))

	pk := pairKey(t, k, ctx)
	_, err = k.GetOrder(ctx, pk, resp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)
	_, _, found := k.HighestPrice(ctx, pk, types.Buy)
	require.False(t, found)
}

func TestCancelOrder_PartiallyFilled(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x48)
	buyer := testAddr(0x49)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 165_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000)       // price 1.0
	resp := submitLimit(t, k, ctx, buyer, types.Buy, 165_000, 150_000) // price 1.1
	require.Equal(t, types.OrderStatusPartialFilled, resp.Status)

	// Only the unfilled part of the offer comes back.
	cancelResp, err := k.CancelOrder(ctx, buyer, resp.OrderID, pairInfos())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(65_000), cancelResp.BidderRefund)
	require.Equal(t, math.NewInt(65_000), balanceOf(bank, buyer, quoteDenom))
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, buyer, baseDenom))
}

func TestCancelOrder_NotOwner(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x4A)
	fund(bank, buyer, quoteDenom, 100_000)
	resp := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)

	_, err := k.CancelOrder(ctx, testAddr(0x4B), resp.OrderID, pairInfos())
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCancelOrder_NotFound(t *testing.T) {
	k, _, ctx := setupBook(t)

	_, err := k.CancelOrder(ctx, testAddr(0x4C), 42, pairInfos())
	require.ErrorIs(t, err, types.ErrOrderNotFound)
}

func TestTicks_BoundsAndPagination(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x4D)
	fund(bank, seller, baseDenom, 400_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000) // 1.0
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 150_000) // 1.5
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0 again

	pk := pairKey(t, k, ctx)

	ticks := k.Ticks(ctx, pk, types.Sell, nil, nil, 0, types.OrderByAscending)
	require.Len(t, ticks, 3)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.0"), ticks[0].Price)
	require.Equal(t, uint64(1), ticks[0].TotalOrders)
	require.Equal(t, math.LegacyMustNewDecFromStr("2.0"), ticks[2].Price)
	require.Equal(t, uint64(2), ticks[2].TotalOrders)

	start := math.LegacyMustNewDecFromStr("1.0")
	ticks = k.Ticks(ctx, pk, types.Sell, &start, nil, 0, types.OrderByAscending)
	require.Len(t, ticks, 2)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.5"), ticks[0].Price)

	end := math.LegacyMustNewDecFromStr("1.5")
	ticks = k.Ticks(ctx, pk, types.Sell, nil, &end, 0, types.OrderByAscending)
	require.Len(t, ticks, 2)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.5"), ticks[1].Price)

	ticks = k.Ticks(ctx, pk, types.Sell, nil, nil, 0, types.OrderByDescending)
	require.Len(t, ticks, 3)
	require.Equal(t, math.LegacyMustNewDecFromStr("2.0"), ticks[0].Price)

	ticks = k.Ticks(ctx, pk, types.Sell, nil, nil, 2, types.OrderByAscending)
	require.Len(t, ticks, 2)

	count, err := k.TickOrderCount(ctx, pk, types.Sell, math.LegacyMustNewDecFromStr("2.0"))
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
}

func TestGetOrders_Pagination(t *testing.T) {
	k, bank, ctx := setupBook(t)

	buyer := testAddr(0x4E)
	fund(bank, buyer, quoteDenom, 300_000)

	first := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 200_000)
	second := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 200_000)
	third := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 200_000)

	pk := pairKey(t, k, ctx)

	orders, err := k.GetOrders(ctx, pk, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, first.OrderID, orders[0].ID)

	orders, err = k.GetOrders(ctx, pk, &first.OrderID, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second.OrderID, orders[0].ID)

	orders, err = k.GetOrders(ctx, pk, nil, 10, types.OrderByDescending)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, third.OrderID, orders[0].ID)

	orders, err = k.GetOrders(ctx, pk, nil, 1, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestGetOrders_IndexQueries(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x4F)
	buyer := testAddr(0x50)
	fund(bank, seller, baseDenom, 200_000)
	fund(bank, buyer, quoteDenom, 100_000)

	sellResp := submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000)  // price 2.0
	sellResp2 := submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // price 2.0
	buyResp := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)     // price 1.0, no cross

	pk := pairKey(t, k, ctx)

	byBidder, err := k.GetOrdersByBidder(ctx, pk, seller.String(), nil, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, byBidder, 2)
	require.Equal(t, sellResp.OrderID, byBidder[0].ID)
	require.Equal(t, sellResp2.OrderID, byBidder[1].ID)

	sell := types.Sell
	byDirection, err := k.GetOrdersByDirection(ctx, pk, sell, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, byDirection, 2)

	buy := types.Buy
	byDirection, err = k.GetOrdersByDirection(ctx, pk, buy, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, byDirection, 1)
	require.Equal(t, buyResp.OrderID, byDirection[0].ID)

	byPrice, err := k.GetOrdersByPrice(ctx, pk, math.LegacyMustNewDecFromStr("2.0"), nil, nil, 10, types.OrderByAscending)
	require.NoError(t, err)
	require.Len(t, byPrice, 2)

	atPrice, err := k.OrdersAtPrice(ctx, pk, math.LegacyMustNewDecFromStr("2.0"), types.Sell, 10)
	require.NoError(t, err)
	require.Len(t, atPrice, 2)
	require.Equal(t, sellResp.OrderID, atPrice[0].ID)
}

func TestMidPrice(t *testing.T) {
	k, bank, ctx := setupBook(t)
	pk := pairKey(t, k, ctx)

	_, err := k.MidPrice(ctx, pk)
	require.ErrorIs(t, err, types.ErrMidPriceUnavailable)

	seller := testAddr(0x51)
	buyer := testAddr(0x52)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 100_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0
	submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)   // 1.0

	mid, err := k.MidPrice(ctx, pk)
	require.NoError(t, err)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.5"), mid)
}

func TestSubmitOrder_PriceOutOfRange(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x48)
	fund(bank, seller, baseDenom, 1)

	// 1 base against 1e30 quote derives a price whose atomics overflow
	// the 16-byte tick key segment.
	hugeAsk := math.NewIntWithDecimal(1, 30)
	_, err := k.SubmitOrder(ctx, seller, types.Sell, [2]types.Asset{
		types.NewAsset(baseInfo(), math.NewInt(1)),
		types.NewAsset(quoteInfo(), hugeAsk),
	})
	require.ErrorIs(t, err, types.ErrPriceOutOfRange)

	// Nothing was escrowed or stored.
	require.Equal(t, math.NewInt(1), balanceOf(bank, seller, baseDenom))
	require.Equal(t, uint64(0), k.LastOrderID(ctx))
}

func TestTickOrderCount_PriceOutOfRange(t *testing.T) {
	k, _, ctx := setupBook(t)
	pk := pairKey(t, k, ctx)

	_, err := k.TickOrderCount(ctx, pk, types.Sell, math.LegacyNewDec(10).Power(30))
	require.ErrorIs(t, err, types.ErrPriceOutOfRange)

	_, err = k.OrdersAtPrice(ctx, pk, math.LegacyNewDec(10).Power(30), types.Sell, 0)
	require.ErrorIs(t, err, types.ErrPriceOutOfRange)
}
