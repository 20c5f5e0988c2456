package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/keeper"
	"github.com/oraidex/oraidex/x/orderbook/types"
)

func TestQueryServer_ContractInfo(t *testing.T) {
	k, _, ctx := setupBook(t)
	q := keeper.NewQueryServerImpl(k)

	info, err := q.ContractInfo(ctx, &types.QueryContractInfoRequest{})
	require.NoError(t, err)
	require.Equal(t, adminAddr.String(), info.Admin)
	require.Equal(t, rewardAddr.String(), info.RewardAddress)
	require.Equal(t, operatorAddr.String(), info.Operator)
	require.Equal(t, types.DefaultCommissionRate(), info.CommissionRate)
	require.False(t, info.IsPaused)

	k.SetPaused(ctx, true)
	info, err = q.ContractInfo(ctx, &types.QueryContractInfoRequest{})
	require.NoError(t, err)
	require.True(t, info.IsPaused)
}

func TestQueryServer_OrderAndOrderBook(t *testing.T) {
	k, bank, ctx := setupBook(t)
	q := keeper.NewQueryServerImpl(k)

	buyer := testAddr(0xA0)
	fund(bank, buyer, quoteDenom, 150_000)
	resp := submitLimit(t, k, ctx, buyer, types.Buy, 150_000, 100_000)

	order, err := q.Order(ctx, &types.QueryOrderRequest{
		AssetInfos: pairInfos(),
		OrderID:    resp.OrderID,
	})
	require.NoError(t, err)
	require.Equal(t, resp.OrderID, order.OrderID)
	require.Equal(t, buyer.String(), order.BidderAddr)
	require.Equal(t, quoteDenom, order.OfferAsset.Info.Denom)
	require.Equal(t, math.NewInt(150_000), order.OfferAsset.Amount)
	require.Equal(t, baseDenom, order.AskAsset.Info.Denom)

	book, err := q.OrderBook(ctx, &types.QueryOrderBookRequest{AssetInfos: pairInfos()})
	require.NoError(t, err)
	require.Equal(t, baseDenom, book.BaseAssetInfo.Denom)
	require.Equal(t, math.NewInt(10), book.MinQuoteAmount)
	require.Equal(t, math.NewIntFromUint64(types.RefundsThreshold), book.RefundThreshold)

	books, err := q.OrderBooks(ctx, &types.QueryOrderBooksRequest{})
	require.NoError(t, err)
	require.Len(t, books.OrderBooks, 1)
}

func TestQueryServer_OrdersFilters(t *testing.T) {
	k, bank, ctx := setupBook(t)
	q := keeper.NewQueryServerImpl(k)

	seller := testAddr(0xA1)
	buyer := testAddr(0xA2)
	fund(bank, seller, baseDenom, 200_000)
	fund(bank, buyer, quoteDenom, 100_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 250_000) // 2.5
	submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)   // 1.0

	all, err := q.Orders(ctx, &types.QueryOrdersRequest{AssetInfos: pairInfos()})
	require.NoError(t, err)
	require.Len(t, all.Orders, 3)

	byBidder, err := q.Orders(ctx, &types.QueryOrdersRequest{
		AssetInfos: pairInfos(),
		Filter:     types.OrderFilter{Bidder: seller.String()},
	})
	require.NoError(t, err)
	require.Len(t, byBidder.Orders, 2)

	price := math.LegacyMustNewDecFromStr("2.5")
	byPrice, err := q.Orders(ctx, &types.QueryOrdersRequest{
		AssetInfos: pairInfos(),
		Filter:     types.OrderFilter{Price: &price},
	})
	require.NoError(t, err)
	require.Len(t, byPrice.Orders, 1)
	require.Equal(t, math.NewInt(250_000), byPrice.Orders[0].AskAsset.Amount)

	buy := types.Buy
	byDirection, err := q.Orders(ctx, &types.QueryOrdersRequest{
		AssetInfos: pairInfos(),
		Direction:  &buy,
	})
	require.NoError(t, err)
	require.Len(t, byDirection.Orders, 1)
	require.Equal(t, buyer.String(), byDirection.Orders[0].BidderAddr)
}

func TestQueryServer_TicksAndMidPrice(t *testing.T) {
	k, bank, ctx := setupBook(t)
	q := keeper.NewQueryServerImpl(k)

	seller := testAddr(0xA3)
	buyer := testAddr(0xA4)
	fund(bank, seller, baseDenom, 200_000)
	fund(bank, buyer, quoteDenom, 100_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 300_000) // 3.0
	submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)   // 1.0

	tick, err := q.Tick(ctx, &types.QueryTickRequest{
		AssetInfos: pairInfos(),
		Direction:  types.Sell,
		Price:      math.LegacyMustNewDecFromStr("2.0"),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), tick.TotalOrders)

	ticks, err := q.Ticks(ctx, &types.QueryTicksRequest{
		AssetInfos: pairInfos(),
		Direction:  types.Sell,
		OrderBy:    types.OrderByAscending,
	})
	require.NoError(t, err)
	require.Len(t, ticks.Ticks, 2)
	require.Equal(t, math.LegacyMustNewDecFromStr("2.0"), ticks.Ticks[0].Price)

	mid, err := q.MidPrice(ctx, &types.QueryMidPriceRequest{AssetInfos: pairInfos()})
	require.NoError(t, err)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.5"), mid.MidPrice)

	last, err := q.LastOrderID(ctx, &types.QueryLastOrderIDRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(3), last.LastOrderID)
}

func TestQueryServer_SimulateAndWhitelist(t *testing.T) {
	k, bank, ctx := setupBook(t)
	q := keeper.NewQueryServerImpl(k)

	seller := testAddr(0xA5)
	fund(bank, seller, baseDenom, 100_000)
	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 200_000) // 2.0

	sim, err := q.SimulateMarketOrder(ctx, &types.QuerySimulateMarketOrderRequest{
		AssetInfos:  pairInfos(),
		Direction:   types.Buy,
		OfferAmount: math.NewInt(100_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), sim.Receive)
	require.True(t, sim.Refunds.IsZero())

	trader := testAddr(0xA6).String()
	k.SetWhitelistedTrader(ctx, trader)
	whitelist, err := q.WhitelistedTraders(ctx, &types.QueryWhitelistedTradersRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{trader}, whitelist.Traders)
}
