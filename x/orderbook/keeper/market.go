package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// marketSlippage resolves the effective slippage tolerance: explicit value
// first, then the pair's configured spread, then the module default.
func marketSlippage(book types.OrderBook, slippage *math.LegacyDec) math.LegacyDec {
	if slippage != nil {
		return *slippage
	}
	if book.Spread != nil {
		return *book.Spread
	}
	return math.LegacyMustNewDecFromStr(types.DefaultSpread)
}

// priceInfoForMarketOrder derives the execution window for a market order
// from the current best opposite price. The threshold stretches the best
// price by the slippage tolerance and the ask amount is the most the offer
// can buy at the best price. Returns false when the opposite side is empty.
func (k Keeper) priceInfoForMarketOrder(
	ctx context.Context,
	book types.OrderBook,
	direction types.OrderDirection,
	offerAmount math.Int,
	slippage math.LegacyDec,
) (bestPrice, priceThreshold math.LegacyDec, maxAskAmount math.Int, ok bool) {
	pairKey := book.PairKey()

	switch direction {
	case types.Buy:
		lowestSell, _, found := k.LowestPrice(ctx, pairKey, types.Sell)
		if !found {
			return math.LegacyDec{}, math.LegacyDec{}, math.Int{}, false
		}
		threshold := lowestSell.Mul(math.LegacyOneDec().Add(slippage))
		return lowestSell, threshold, types.DivPriceTruncate(offerAmount, lowestSell), true
	default:
		highestBuy, _, found := k.HighestPrice(ctx, pairKey, types.Buy)
		if !found {
			return math.LegacyDec{}, math.LegacyDec{}, math.Int{}, false
		}
		threshold := highestBuy.Mul(math.LegacyOneDec().Sub(slippage))
		return highestBuy, threshold, types.MulPriceTruncate(offerAmount, highestBuy), true
	}
}

// SubmitMarketOrder executes an order immediately against the book within
// a slippage-bounded price window and refunds whatever part of the offer
// could not be filled. Market orders never rest on the book.
func (k Keeper) SubmitMarketOrder(
	ctx context.Context,
	sender sdk.AccAddress,
	assetInfos [2]types.AssetInfo,
	direction types.OrderDirection,
	offerAmount math.Int,
	slippage *math.LegacyDec,
) (*types.MsgSubmitMarketOrderResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, assetInfos)
	if err != nil {
		return nil, err
	}
	pairKey := book.PairKey()

	if offerAmount.IsNil() || !offerAmount.IsPositive() {
		return nil, types.ErrZeroAmount
	}

	tolerance := marketSlippage(book, slippage)
	if tolerance.GTE(math.LegacyOneDec()) {
		return nil, types.ErrSlippageTooLarge.Wrapf("slippage %s must be less than 1", tolerance)
	}

	_, priceThreshold, maxAskAmount, ok := k.priceInfoForMarketOrder(ctx, book, direction, offerAmount, tolerance)
	if !ok {
		return nil, types.ErrCannotCreateMarketOrder
	}
	if !maxAskAmount.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("offer too small for the best opposite price")
	}

	order := types.NewOrder(0, sender.String(), direction, offerAmount, maxAskAmount)
	if err := types.ValidatePrice(order.Price()); err != nil {
		return nil, err
	}

	offerAsset := types.NewAsset(book.OfferInfo(direction), offerAmount)
	if err := k.lockAsset(ctx, sender, offerAsset); err != nil {
		return nil, err
	}

	order.ID = k.NextOrderID(ctx)
	if err := k.StoreOrder(ctx, pairKey, order, true); err != nil {
		return nil, err
	}

	settled, err := k.processMatching(ctx, book, order.ID, priceThreshold)
	if err != nil {
		return nil, err
	}

	received := math.ZeroInt()
	if settled != nil {
		received = settled.FilledAskAmount
	}

	// Whatever part of the order survived matching is refunded in full;
	// market orders never rest on the book.
	refundAmount := math.ZeroInt()
	if leftover, err := k.GetOrder(ctx, pairKey, order.ID); err == nil {
		refundAmount, err = leftover.RemainingOffer()
		if err != nil {
			return nil, err
		}
		if err := k.RemoveOrder(ctx, pairKey, leftover); err != nil {
			return nil, err
		}
		if refundAmount.IsPositive() {
			refund := types.NewAsset(book.OfferInfo(direction), refundAmount)
			if err := k.payAsset(ctx, sender, refund); err != nil {
				return nil, err
			}
		}
	}

	pairLabel := book.BaseAssetInfo.String() + "/" + book.QuoteAssetInfo.String()
	k.metrics.OrdersSubmitted.WithLabelValues(pairLabel, direction.String(), "market").Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitMarketOrder,
			sdk.NewAttribute(types.AttributeKeyOrderType, "market"),
			sdk.NewAttribute(types.AttributeKeyPair, book.BaseAssetInfo.String()+" - "+book.QuoteAssetInfo.String()),
			sdk.NewAttribute(types.AttributeKeyOrderID, formatUint(order.ID)),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyBidder, sender.String()),
			sdk.NewAttribute(types.AttributeKeyOfferAsset, offerAsset.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAmount, refundAmount.String()),
		),
	)

	return &types.MsgSubmitMarketOrderResponse{
		OrderID:      order.ID,
		Received:     received,
		RefundAmount: refundAmount,
	}, nil
}

// SimulateMarketOrder dry-runs a market order against the current book and
// reports what would be received and refunded. Nothing is written.
func (k Keeper) SimulateMarketOrder(
	ctx context.Context,
	assetInfos [2]types.AssetInfo,
	direction types.OrderDirection,
	offerAmount math.Int,
	slippage *math.LegacyDec,
) (*types.SimulateMarketOrderResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, assetInfos)
	if err != nil {
		return nil, err
	}

	tolerance := marketSlippage(book, slippage)
	if tolerance.GTE(math.LegacyOneDec()) {
		return nil, types.ErrSlippageTooLarge.Wrapf("slippage %s must be less than 1", tolerance)
	}

	_, priceThreshold, maxAskAmount, ok := k.priceInfoForMarketOrder(ctx, book, direction, offerAmount, tolerance)
	if !ok {
		return nil, types.ErrNoMatchedPrice
	}

	params := k.GetParams(ctx)
	phantom := types.NewOrder(0, params.RewardAddress, direction, offerAmount, maxAskAmount)

	settled, _, err := k.matchingOrder(ctx, book, phantom, priceThreshold)
	if err != nil {
		return nil, err
	}

	refunds, err := checkedSubInt(offerAmount, settled.FilledOfferAmount)
	if err != nil {
		return nil, err
	}

	return &types.SimulateMarketOrderResponse{
		Receive: settled.FilledAskAmount,
		Refunds: refunds,
	}, nil
}

func checkedSubInt(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrFillUnderflow.Wrapf("checked sub: %s < %s", a, b)
	}
	return a.Sub(b), nil
}
