package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// SetOrderBook stores a pair config.
func (k Keeper) SetOrderBook(ctx context.Context, book types.OrderBook) error {
	bz, err := json.Marshal(book)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal order book: %v", err)
	}
	k.getStore(ctx).Set(types.OrderBookKey(book.PairKey()), bz)
	return nil
}

// GetOrderBook retrieves a pair config by canonical pair key.
func (k Keeper) GetOrderBook(ctx context.Context, pairKey []byte) (types.OrderBook, error) {
	bz := k.getStore(ctx).Get(types.OrderBookKey(pairKey))
	if bz == nil {
		return types.OrderBook{}, types.ErrOrderBookNotFound
	}

	var book types.OrderBook
	if err := json.Unmarshal(bz, &book); err != nil {
		return types.OrderBook{}, types.ErrInvalidState.Wrapf("failed to unmarshal order book: %v", err)
	}
	return book, nil
}

// GetOrderBookByAssets resolves a pair config from either asset ordering.
func (k Keeper) GetOrderBookByAssets(ctx context.Context, assetInfos [2]types.AssetInfo) (types.OrderBook, error) {
	return k.GetOrderBook(ctx, types.PairKey(assetInfos))
}

// GetOrderBooks returns pair configs with byte-key pagination.
func (k Keeper) GetOrderBooks(ctx context.Context, startAfter []byte, limit uint32, orderBy int32) ([]types.OrderBook, error) {
	store := k.getStore(ctx)

	if limit == 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}

	var iterator storetypes.Iterator
	if orderBy == types.OrderByDescending {
		iterator = storetypes.KVStoreReversePrefixIterator(store, types.OrderBookKeyPrefix)
	} else {
		iterator = storetypes.KVStorePrefixIterator(store, types.OrderBookKeyPrefix)
	}
	defer iterator.Close()

	var books []types.OrderBook
	skipping := len(startAfter) > 0
	for ; iterator.Valid() && uint32(len(books)) < limit; iterator.Next() {
		pairKey := iterator.Key()[len(types.OrderBookKeyPrefix):]
		if skipping {
			if string(pairKey) == string(startAfter) {
				skipping = false
			}
			continue
		}

		var book types.OrderBook
		if err := json.Unmarshal(iterator.Value(), &book); err != nil {
			return nil, types.ErrInvalidState.Wrapf("failed to unmarshal order book: %v", err)
		}
		books = append(books, book)
	}

	return books, nil
}

// CreateOrderBookPair registers a new pair; fails if the canonical pair
// already exists or the spread is not below one.
func (k Keeper) CreateOrderBookPair(
	ctx context.Context,
	base, quote types.AssetInfo,
	spread *math.LegacyDec,
	minQuoteAmount math.Int,
) error {
	if spread != nil && spread.GTE(math.LegacyOneDec()) {
		return types.ErrSpreadTooLarge.Wrapf("spread %s", spread)
	}

	pairKey := types.PairKey([2]types.AssetInfo{base, quote})
	if k.getStore(ctx).Has(types.OrderBookKey(pairKey)) {
		return types.ErrOrderBookAlreadyExists.Wrapf("pair %s/%s", base, quote)
	}

	book := types.OrderBook{
		BaseAssetInfo:  base,
		QuoteAssetInfo: quote,
		Spread:         spread,
		MinQuoteAmount: minQuoteAmount,
	}
	if err := k.SetOrderBook(ctx, book); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePair,
			sdk.NewAttribute(types.AttributeKeyPair, base.String()+" - "+quote.String()),
		),
	)
	return nil
}

// UpdateOrderBookPair adjusts pair configuration. Resting orders are never
// touched.
func (k Keeper) UpdateOrderBookPair(ctx context.Context, msg *types.MsgUpdateOrderBookPair) error {
	pairKey := types.PairKey(msg.AssetInfos)
	book, err := k.GetOrderBook(ctx, pairKey)
	if err != nil {
		return err
	}

	if msg.Spread != nil {
		if msg.Spread.GTE(math.LegacyOneDec()) {
			return types.ErrSpreadTooLarge.Wrapf("spread %s", msg.Spread)
		}
		book.Spread = msg.Spread
	}
	if msg.MinQuoteAmount != nil {
		book.MinQuoteAmount = *msg.MinQuoteAmount
	}
	if msg.RefundThreshold != nil {
		book.RefundThreshold = msg.RefundThreshold
	}
	if msg.MinOfferToFulfill != nil {
		book.MinOfferToFulfill = msg.MinOfferToFulfill
	}
	if msg.MinAskToFulfill != nil {
		book.MinAskToFulfill = msg.MinAskToFulfill
	}

	if err := k.SetOrderBook(ctx, book); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdatePair,
			sdk.NewAttribute(types.AttributeKeyPair, book.BaseAssetInfo.String()+" - "+book.QuoteAssetInfo.String()),
		),
	)
	return nil
}

// RemoveOrderBookPair deletes the pair config and cascades over its
// resting orders. Orders cannot outlive their pair: each one is removed
// from the primary store and all indexes, and its unfilled offer amount
// refunded, so no escrow is left orphaned.
func (k Keeper) RemoveOrderBookPair(ctx context.Context, assetInfos [2]types.AssetInfo) (uint64, error) {
	pairKey := types.PairKey(assetInfos)
	book, err := k.GetOrderBook(ctx, pairKey)
	if err != nil {
		return 0, err
	}

	orders, err := k.GetOrders(ctx, pairKey, nil, types.MaxLimit, types.OrderByAscending)
	var removed uint64
	for err == nil && len(orders) > 0 {
		for _, order := range orders {
			remaining, subErr := order.RemainingOffer()
			if subErr != nil {
				return 0, subErr
			}
			if remaining.IsPositive() {
				bidder, addrErr := sdk.AccAddressFromBech32(order.BidderAddr)
				if addrErr != nil {
					return 0, types.ErrInvalidState.Wrapf("invalid bidder address: %v", addrErr)
				}
				refund := types.NewAsset(book.OfferInfo(order.Direction), remaining)
				if payErr := k.payAsset(ctx, bidder, refund); payErr != nil {
					return 0, payErr
				}
			}
			if rmErr := k.RemoveOrder(ctx, pairKey, order); rmErr != nil {
				return 0, rmErr
			}
			removed++
		}
		orders, err = k.GetOrders(ctx, pairKey, nil, types.MaxLimit, types.OrderByAscending)
	}
	if err != nil {
		return 0, err
	}

	k.getStore(ctx).Delete(types.OrderBookKey(pairKey))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemovePair,
			sdk.NewAttribute(types.AttributeKeyPair, book.BaseAssetInfo.String()+" - "+book.QuoteAssetInfo.String()),
		),
	)
	return removed, nil
}

// MidPrice returns the average of the best buy and best sell prices;
// errors when either side of the book is empty.
func (k Keeper) MidPrice(ctx context.Context, pairKey []byte) (math.LegacyDec, error) {
	bestBuy, _, okBuy := k.BestPrice(ctx, pairKey, types.Buy, types.OrderByDescending)
	bestSell, _, okSell := k.BestPrice(ctx, pairKey, types.Sell, types.OrderByAscending)
	if !okBuy || !okSell {
		return math.LegacyDec{}, types.ErrMidPriceUnavailable
	}
	return bestBuy.Add(bestSell).QuoInt64(2), nil
}
