package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// TestMatching_FullFillAtSamePrice crosses a buy and a sell at the same
// price and checks payouts net of commission.
func TestMatching_FullFillAtSamePrice(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x10)
	buyer := testAddr(0x11)
	fund(bank, seller, baseDenom, 1_000_000)
	fund(bank, buyer, quoteDenom, 7_520_000)

	// Sell 1,000,000 orai at 7.52
	sellResp := submitLimit(t, k, ctx, seller, types.Sell, 1_000_000, 7_520_000)
	require.Equal(t, types.OrderStatusOpen, sellResp.Status)

	// Matching buy at the same price
	buyResp := submitLimit(t, k, ctx, buyer, types.Buy, 7_520_000, 1_000_000)
	require.Equal(t, types.OrderStatusFulfilled, buyResp.Status)

	// Commission 0.1% is taken from each payout.
	require.Equal(t, math.NewInt(999_000), balanceOf(bank, buyer, baseDenom))
	require.Equal(t, math.NewInt(7_512_480), balanceOf(bank, seller, quoteDenom))
	require.True(t, balanceOf(bank, buyer, quoteDenom).IsZero())
	require.True(t, balanceOf(bank, seller, baseDenom).IsZero())

	// Both orders are gone and their ticks pruned.
	pk := pairKey(t, k, ctx)
	_, err := k.GetOrder(ctx, pk, sellResp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)
	_, err = k.GetOrder(ctx, pk, buyResp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)
	_, _, found := k.LowestPrice(ctx, pk, types.Sell)
	require.False(t, found)

	// Commission stays in the reward bucket below the flush floor.
	params := k.GetParams(ctx)
	reward, found := k.GetReward(ctx, pk, params.RewardAddress)
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000), reward.RewardAssets[0].Amount)
	require.Equal(t, math.NewInt(7_520), reward.RewardAssets[1].Amount)
}

// TestMatching_PricePriority fills the cheapest sell tick first and leaves
// the worse-priced order partially filled.
func TestMatching_PricePriority(t *testing.T) {
	k, bank, ctx := setupBook(t)

	sellerA := testAddr(0x20)
	sellerB := testAddr(0x21)
	buyer := testAddr(0x22)
	fund(bank, sellerA, baseDenom, 100_000)
	fund(bank, sellerB, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 165_000)

	respA := submitLimit(t, k, ctx, sellerA, types.Sell, 100_000, 100_000) // price 1.0
	respB := submitLimit(t, k, ctx, sellerB, types.Sell, 100_000, 110_000) // price 1.1

	buyResp := submitLimit(t, k, ctx, buyer, types.Buy, 165_000, 150_000) // price 1.1
	require.Equal(t, types.OrderStatusFulfilled, buyResp.Status)

	pk := pairKey(t, k, ctx)

	// The 1.0 tick was consumed entirely, the 1.1 order only partially.
	_, err := k.GetOrder(ctx, pk, respA.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)

	orderB, err := k.GetOrder(ctx, pk, respB.OrderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusPartialFilled, orderB.Status)
	require.Equal(t, math.NewInt(50_000), orderB.FilledOfferAmount)
	require.Equal(t, math.NewInt(55_000), orderB.FilledAskAmount)

	// Buyer got the full 150,000 orai minus 0.1% commission. The 10,000
	// unspent quote dust is under the refund threshold and stays behind.
	require.Equal(t, math.NewInt(149_850), balanceOf(bank, buyer, baseDenom))
	require.True(t, balanceOf(bank, buyer, quoteDenom).IsZero())

	require.Equal(t, math.NewInt(99_900), balanceOf(bank, sellerA, quoteDenom))
	require.Equal(t, math.NewInt(54_945), balanceOf(bank, sellerB, quoteDenom))

	// Only the 1.1 tick remains.
	price, total, found := k.LowestPrice(ctx, pk, types.Sell)
	require.True(t, found)
	require.Equal(t, math.LegacyMustNewDecFromStr("1.1"), price)
	require.Equal(t, uint64(1), total)
}

// TestMatching_FIFOWithinTick settles orders at one price level in
// submission order.
func TestMatching_FIFOWithinTick(t *testing.T) {
	k, bank, ctx := setupBook(t)

	first := testAddr(0x30)
	second := testAddr(0x31)
	buyer := testAddr(0x32)
	fund(bank, first, baseDenom, 60_000)
	fund(bank, second, baseDenom, 60_000)
	fund(bank, buyer, quoteDenom, 80_000)

	firstResp := submitLimit(t, k, ctx, first, types.Sell, 60_000, 60_000)
	secondResp := submitLimit(t, k, ctx, second, types.Sell, 60_000, 60_000)

	submitLimit(t, k, ctx, buyer, types.Buy, 80_000, 80_000)

	pk := pairKey(t, k, ctx)

	// First in is fully consumed, second keeps the remainder.
	_, err := k.GetOrder(ctx, pk, firstResp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)

	remaining, err := k.GetOrder(ctx, pk, secondResp.OrderID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(20_000), remaining.FilledOfferAmount)
}

// TestMatching_NoCrossRests verifies a non-crossing order rests untouched.
func TestMatching_NoCrossRests(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x40)
	buyer := testAddr(0x41)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 90_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000) // price 1.0
	buyResp := submitLimit(t, k, ctx, buyer, types.Buy, 90_000, 100_000) // price 0.9

	require.Equal(t, types.OrderStatusOpen, buyResp.Status)

	pk := pairKey(t, k, ctx)
	order, err := k.GetOrder(ctx, pk, buyResp.OrderID)
	require.NoError(t, err)
	require.True(t, order.FilledOfferAmount.IsZero())

	// Escrow holds both offers in full.
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, math.NewInt(100_000), balanceOf(bank, moduleAddr, baseDenom))
	require.Equal(t, math.NewInt(90_000), balanceOf(bank, moduleAddr, quoteDenom))
}

// TestMatching_WhitelistedTraderPaysNoFee exempts a whitelisted bidder
// from commission.
func TestMatching_WhitelistedTraderPaysNoFee(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x50)
	buyer := testAddr(0x51)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 100_000)

	k.SetWhitelistedTrader(ctx, buyer.String())

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000)
	submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)

	// Buyer receives the full fill, the seller still pays commission.
	require.Equal(t, math.NewInt(100_000), balanceOf(bank, buyer, baseDenom))
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, seller, quoteDenom))
}

// TestMatching_DustRemainderFulfills marks an order fulfilled when its
// remainder drops under the fulfillment floor, keeping the dust in escrow.
func TestMatching_DustRemainderFulfills(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x60)
	buyer := testAddr(0x61)
	fund(bank, seller, baseDenom, 100_005)
	fund(bank, buyer, quoteDenom, 100_000)

	// Sell leaves 5 base units unfilled after the cross, under the
	// default floor of 10.
	sellResp := submitLimit(t, k, ctx, seller, types.Sell, 100_005, 100_005)
	submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)

	pk := pairKey(t, k, ctx)
	_, err := k.GetOrder(ctx, pk, sellResp.OrderID)
	require.ErrorIs(t, err, types.ErrOrderNotFound)

	// The 5 unit residue is below the refund threshold, so the seller
	// only gets the matched quote payout.
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, seller, quoteDenom))
	require.True(t, balanceOf(bank, seller, baseDenom).IsZero())
}

// TestMatching_RefundAboveThreshold refunds a fulfilled order's remainder
// once it clears the refund threshold.
func TestMatching_RefundAboveThreshold(t *testing.T) {
	k, bank, ctx := setupBook(t)

	// Tighten the fulfillment floor so a large remainder still counts as
	// fulfilled, forcing the refund path.
	minOffer := math.NewInt(600_000)
	err := k.UpdateOrderBookPair(ctx, &types.MsgUpdateOrderBookPair{
		Sender:          adminAddr.String(),
		AssetInfos:      pairInfos(),
		MinOfferToFulfill: &minOffer,
	})
	require.NoError(t, err)

	seller := testAddr(0x70)
	buyer := testAddr(0x71)
	fund(bank, seller, baseDenom, 1_000_000)
	fund(bank, buyer, quoteDenom, 500_000)

	submitLimit(t, k, ctx, seller, types.Sell, 1_000_000, 1_000_000)
	submitLimit(t, k, ctx, buyer, types.Buy, 500_000, 500_000)

	// Remainder 500,000 base < min offer 600,000 marks the sell
	// fulfilled; at price 1.0 the residue clears the 100,000 quote
	// threshold and is refunded.
	require.Equal(t, math.NewInt(499_500), balanceOf(bank, seller, quoteDenom))
	require.Equal(t, math.NewInt(500_000), balanceOf(bank, seller, baseDenom))

	pk := pairKey(t, k, ctx)
	_, _, found := k.LowestPrice(ctx, pk, types.Sell)
	require.False(t, found)
}

// TestMatching_RewardFlushAtMinFee pays accumulated commission out to the
// reward address once a bucket reaches the minimum fee volume.
func TestMatching_RewardFlushAtMinFee(t *testing.T) {
	k, bank, ctx := setupBook(t)

	seller := testAddr(0x80)
	buyer := testAddr(0x81)
	fund(bank, seller, baseDenom, 2_000_000_000)
	fund(bank, buyer, quoteDenom, 2_000_000_000)

	submitLimit(t, k, ctx, seller, types.Sell, 2_000_000_000, 2_000_000_000)
	submitLimit(t, k, ctx, buyer, types.Buy, 2_000_000_000, 2_000_000_000)

	// 0.1% of 2,000,000,000 clears the 1,000,000 flush floor on both
	// sides.
	require.Equal(t, math.NewInt(2_000_000), balanceOf(bank, rewardAddr, baseDenom))
	require.Equal(t, math.NewInt(2_000_000), balanceOf(bank, rewardAddr, quoteDenom))

	pk := pairKey(t, k, ctx)
	reward, found := k.GetReward(ctx, pk, rewardAddr.String())
	require.True(t, found)
	require.True(t, reward.RewardAssets[0].Amount.IsZero())
	require.True(t, reward.RewardAssets[1].Amount.IsZero())
}

func TestMatching_UnsetRewardAddressAccrues(t *testing.T) {
	k, bank, ctx := setupBook(t)

	// Placeholder config: commission accrues but no reward address is
	// set yet. Trades must still settle as long as no bucket crosses
	// the flush floor.
	params := k.GetParams(ctx)
	params.RewardAddress = ""
	require.NoError(t, k.SetParams(ctx, params))

	seller := testAddr(0x86)
	buyer := testAddr(0x87)
	fund(bank, seller, baseDenom, 100_000)
	fund(bank, buyer, quoteDenom, 100_000)

	submitLimit(t, k, ctx, seller, types.Sell, 100_000, 100_000)
	resp := submitLimit(t, k, ctx, buyer, types.Buy, 100_000, 100_000)
	require.Equal(t, types.OrderStatusFulfilled, resp.Status)

	// 0.1% commission held back on each side, the rest paid out.
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, buyer, baseDenom))
	require.Equal(t, math.NewInt(99_900), balanceOf(bank, seller, quoteDenom))

	pk := pairKey(t, k, ctx)
	reward, found := k.GetReward(ctx, pk, "")
	require.True(t, found)
	require.Equal(t, math.NewInt(100), reward.RewardAssets[0].Amount)
	require.Equal(t, math.NewInt(100), reward.RewardAssets[1].Amount)
}

func TestMatching_AmountsBeyondInt64(t *testing.T) {
	k, bank, ctx := setupBook(t)

	// 1e24 of each side dwarfs the int64 range the volume metrics are
	// fed from.
	amount := math.NewIntWithDecimal(1, 24)
	seller := testAddr(0x88)
	buyer := testAddr(0x89)
	bank.FundAccount(seller, sdk.NewCoins(sdk.NewCoin(baseDenom, amount)))
	bank.FundAccount(buyer, sdk.NewCoins(sdk.NewCoin(quoteDenom, amount)))

	_, err := k.SubmitOrder(ctx, seller, types.Sell, [2]types.Asset{
		types.NewAsset(baseInfo(), amount),
		types.NewAsset(quoteInfo(), amount),
	})
	require.NoError(t, err)

	resp, err := k.SubmitOrder(ctx, buyer, types.Buy, [2]types.Asset{
		types.NewAsset(quoteInfo(), amount),
		types.NewAsset(baseInfo(), amount),
	})
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusFulfilled, resp.Status)

	// 0.1% commission flushes straight to the reward address at this
	// size; both traders keep the other 99.9%.
	expected := amount.Sub(amount.QuoRaw(1000))
	require.Equal(t, expected, balanceOf(bank, buyer, baseDenom))
	require.Equal(t, expected, balanceOf(bank, seller, quoteDenom))
	require.Equal(t, amount.QuoRaw(1000), balanceOf(bank, rewardAddr, baseDenom))
	require.Equal(t, amount.QuoRaw(1000), balanceOf(bank, rewardAddr, quoteDenom))
}
