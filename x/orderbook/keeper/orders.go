package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// NextOrderID returns and increments the global order id counter.
func (k Keeper) NextOrderID(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	var lastID uint64
	if bz := store.Get(types.LastOrderIDKey); bz != nil {
		lastID = binary.BigEndian.Uint64(bz)
	}

	nextID := lastID + 1
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nextID)
	store.Set(types.LastOrderIDKey, bz)

	return nextID
}

// LastOrderID returns the most recently allocated order id.
func (k Keeper) LastOrderID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.LastOrderIDKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetLastOrderID seeds the counter during genesis import.
func (k Keeper) SetLastOrderID(ctx context.Context, id uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	k.getStore(ctx).Set(types.LastOrderIDKey, bz)
}

// StoreOrder persists an order. When inserted is true the tick count is
// incremented and the secondary indexes are written; updates to an already
// resting order only rewrite the primary record, since the price derived
// from the original amounts never changes.
func (k Keeper) StoreOrder(ctx context.Context, pairKey []byte, order types.Order, inserted bool) error {
	store := k.getStore(ctx)

	if inserted {
		if err := types.ValidatePrice(order.Price()); err != nil {
			return err
		}
	}

	bz, err := json.Marshal(order)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal order: %v", err)
	}
	store.Set(types.OrderKey(pairKey, order.ID), bz)

	if !inserted {
		return nil
	}

	price := order.Price()
	store.Set(types.OrderByPriceKey(pairKey, price, order.ID), []byte{order.Direction.Byte()})
	store.Set(types.OrderByBidderKey(pairKey, []byte(order.BidderAddr), order.ID), []byte{order.Direction.Byte()})
	store.Set(types.OrderByDirectionIndexKey(pairKey, order.Direction, order.ID), []byte{1})

	tickKey := types.TickKey(pairKey, order.Direction, price)
	var count uint64
	if tickBz := store.Get(tickKey); tickBz != nil {
		count = binary.BigEndian.Uint64(tickBz)
	}
	countBz := make([]byte, 8)
	binary.BigEndian.PutUint64(countBz, count+1)
	store.Set(tickKey, countBz)

	return nil
}

// GetOrder retrieves an order by pair and id.
func (k Keeper) GetOrder(ctx context.Context, pairKey []byte, orderID uint64) (types.Order, error) {
	bz := k.getStore(ctx).Get(types.OrderKey(pairKey, orderID))
	if bz == nil {
		return types.Order{}, types.ErrOrderNotFound.Wrapf("order %d", orderID)
	}

	var order types.Order
	if err := json.Unmarshal(bz, &order); err != nil {
		return types.Order{}, types.ErrInvalidState.Wrapf("failed to unmarshal order: %v", err)
	}
	return order, nil
}

// RemoveOrder deletes an order and all its index entries, decrementing the
// tick count and dropping the tick once empty.
func (k Keeper) RemoveOrder(ctx context.Context, pairKey []byte, order types.Order) error {
	store := k.getStore(ctx)
	price := order.Price()

	store.Delete(types.OrderKey(pairKey, order.ID))
	store.Delete(types.OrderByPriceKey(pairKey, price, order.ID))
	store.Delete(types.OrderByBidderKey(pairKey, []byte(order.BidderAddr), order.ID))
	store.Delete(types.OrderByDirectionIndexKey(pairKey, order.Direction, order.ID))

	tickKey := types.TickKey(pairKey, order.Direction, price)
	if tickBz := store.Get(tickKey); tickBz != nil {
		count := binary.BigEndian.Uint64(tickBz)
		if count <= 1 {
			store.Delete(tickKey)
		} else {
			countBz := make([]byte, 8)
			binary.BigEndian.PutUint64(countBz, count-1)
			store.Set(tickKey, countBz)
		}
	}

	return nil
}

// BestPrice returns the extreme tick price for one side of the book:
// descending gives the highest, ascending the lowest. ok is false when the
// side is empty.
func (k Keeper) BestPrice(ctx context.Context, pairKey []byte, direction types.OrderDirection, orderBy int32) (math.LegacyDec, uint64, bool) {
	store := k.getStore(ctx)
	prefix := types.TickPrefix(pairKey, direction)

	var iterator storetypes.Iterator
	if orderBy == types.OrderByDescending {
		iterator = storetypes.KVStoreReversePrefixIterator(store, prefix)
	} else {
		iterator = storetypes.KVStorePrefixIterator(store, prefix)
	}
	defer iterator.Close()

	if !iterator.Valid() {
		return math.LegacyDec{}, 0, false
	}

	price := types.DecodePrice(iterator.Key()[len(prefix):])
	total := binary.BigEndian.Uint64(iterator.Value())
	return price, total, true
}

// HighestPrice returns the top tick for a direction.
func (k Keeper) HighestPrice(ctx context.Context, pairKey []byte, direction types.OrderDirection) (math.LegacyDec, uint64, bool) {
	return k.BestPrice(ctx, pairKey, direction, types.OrderByDescending)
}

// LowestPrice returns the bottom tick for a direction.
func (k Keeper) LowestPrice(ctx context.Context, pairKey []byte, direction types.OrderDirection) (math.LegacyDec, uint64, bool) {
	return k.BestPrice(ctx, pairKey, direction, types.OrderByAscending)
}

// TickOrderCount returns the number of orders resting at an exact price.
func (k Keeper) TickOrderCount(ctx context.Context, pairKey []byte, direction types.OrderDirection, price math.LegacyDec) (uint64, error) {
	if err := types.ValidatePrice(price); err != nil {
		return 0, err
	}

	bz := k.getStore(ctx).Get(types.TickKey(pairKey, direction, price))
	if bz == nil {
		return 0, types.ErrOrderBookNotFound.Wrapf("no tick at price %s", price)
	}
	return binary.BigEndian.Uint64(bz), nil
}

// Ticks walks one side's price levels. Ascending scans return prices in
// (startAfter, end]; descending scans mirror the bounds. A zero limit
// falls back to the default page size.
func (k Keeper) Ticks(
	ctx context.Context,
	pairKey []byte,
	direction types.OrderDirection,
	startAfter, end *math.LegacyDec,
	limit uint32,
	orderBy int32,
) []types.TickResponse {
	store := k.getStore(ctx)
	prefix := types.TickPrefix(pairKey, direction)

	if limit == 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}

	ascending := orderBy != types.OrderByDescending
	var iterator storetypes.Iterator
	if ascending {
		iterator = storetypes.KVStorePrefixIterator(store, prefix)
	} else {
		iterator = storetypes.KVStoreReversePrefixIterator(store, prefix)
	}
	defer iterator.Close()

	var ticks []types.TickResponse
	for ; iterator.Valid() && uint32(len(ticks)) < limit; iterator.Next() {
		price := types.DecodePrice(iterator.Key()[len(prefix):])

		if startAfter != nil {
			if ascending && price.LTE(*startAfter) {
				continue
			}
			if !ascending && price.GTE(*startAfter) {
				continue
			}
		}
		if end != nil {
			if ascending && price.GT(*end) {
				break
			}
			if !ascending && price.LT(*end) {
				break
			}
		}

		ticks = append(ticks, types.TickResponse{
			Price:       price,
			TotalOrders: binary.BigEndian.Uint64(iterator.Value()),
		})
	}

	return ticks
}

// OrdersAtPrice returns orders resting at one exact price and direction in
// FIFO storage order (ascending order id).
func (k Keeper) OrdersAtPrice(
	ctx context.Context,
	pairKey []byte,
	price math.LegacyDec,
	direction types.OrderDirection,
	limit uint32,
) ([]types.Order, error) {
	if err := types.ValidatePrice(price); err != nil {
		return nil, err
	}

	store := k.getStore(ctx)
	prefix := types.OrderByPricePrefixKey(pairKey, price)

	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var orders []types.Order
	for ; iterator.Valid(); iterator.Next() {
		if limit > 0 && uint32(len(orders)) >= limit {
			break
		}
		if types.OrderDirection(iterator.Value()[0]) != direction {
			continue
		}
		orderID := types.OrderIDFromBytes(iterator.Key()[len(prefix):])
		order, err := k.GetOrder(ctx, pairKey, orderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GetOrders returns a pair's orders from the primary store with
// start-after pagination.
func (k Keeper) GetOrders(ctx context.Context, pairKey []byte, startAfter *uint64, limit uint32, orderBy int32) ([]types.Order, error) {
	store := k.getStore(ctx)
	prefix := types.OrderPairPrefix(pairKey)

	if limit == 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}

	ascending := orderBy != types.OrderByDescending
	var iterator storetypes.Iterator
	if ascending {
		iterator = storetypes.KVStorePrefixIterator(store, prefix)
	} else {
		iterator = storetypes.KVStoreReversePrefixIterator(store, prefix)
	}
	defer iterator.Close()

	var orders []types.Order
	for ; iterator.Valid() && uint32(len(orders)) < limit; iterator.Next() {
		orderID := types.OrderIDFromBytes(iterator.Key()[len(prefix):])
		if startAfter != nil {
			if ascending && orderID <= *startAfter {
				continue
			}
			if !ascending && orderID >= *startAfter {
				continue
			}
		}

		var order types.Order
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			return nil, types.ErrInvalidState.Wrapf("failed to unmarshal order: %v", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GetOrdersByBidder returns one trader's orders on a pair.
func (k Keeper) GetOrdersByBidder(
	ctx context.Context,
	pairKey []byte,
	bidder string,
	direction *types.OrderDirection,
	startAfter *uint64,
	limit uint32,
	orderBy int32,
) ([]types.Order, error) {
	prefix := types.OrderByBidderPrefixKey(pairKey, []byte(bidder))
	return k.ordersFromIndex(ctx, pairKey, prefix, direction, startAfter, limit, orderBy)
}

// GetOrdersByPrice returns orders at one exact price, optionally filtered
// by direction, with pagination.
func (k Keeper) GetOrdersByPrice(
	ctx context.Context,
	pairKey []byte,
	price math.LegacyDec,
	direction *types.OrderDirection,
	startAfter *uint64,
	limit uint32,
	orderBy int32,
) ([]types.Order, error) {
	prefix := types.OrderByPricePrefixKey(pairKey, price)
	return k.ordersFromIndex(ctx, pairKey, prefix, direction, startAfter, limit, orderBy)
}

// GetOrdersByDirection returns one side's orders across all prices.
func (k Keeper) GetOrdersByDirection(
	ctx context.Context,
	pairKey []byte,
	direction types.OrderDirection,
	startAfter *uint64,
	limit uint32,
	orderBy int32,
) ([]types.Order, error) {
	prefix := types.OrderByDirectionPrefixKey(pairKey, direction)
	return k.ordersFromIndex(ctx, pairKey, prefix, nil, startAfter, limit, orderBy)
}

// ordersFromIndex iterates an index whose keys end in a fixed-width order
// id and whose values carry the order's direction byte.
func (k Keeper) ordersFromIndex(
	ctx context.Context,
	pairKey, prefix []byte,
	direction *types.OrderDirection,
	startAfter *uint64,
	limit uint32,
	orderBy int32,
) ([]types.Order, error) {
	store := k.getStore(ctx)

	if limit == 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}

	ascending := orderBy != types.OrderByDescending
	var iterator storetypes.Iterator
	if ascending {
		iterator = storetypes.KVStorePrefixIterator(store, prefix)
	} else {
		iterator = storetypes.KVStoreReversePrefixIterator(store, prefix)
	}
	defer iterator.Close()

	var orders []types.Order
	for ; iterator.Valid() && uint32(len(orders)) < limit; iterator.Next() {
		orderID := types.OrderIDFromBytes(iterator.Key()[len(iterator.Key())-8:])
		if startAfter != nil {
			if ascending && orderID <= *startAfter {
				continue
			}
			if !ascending && orderID >= *startAfter {
				continue
			}
		}
		if direction != nil && len(iterator.Value()) == 1 &&
			types.OrderDirection(iterator.Value()[0]) != *direction {
			continue
		}

		order, err := k.GetOrder(ctx, pairKey, orderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// SubmitOrder validates a limit order, escrows the offer asset, persists
// the order and runs the matching engine when the price crosses the best
// opposite tick.
func (k Keeper) SubmitOrder(
	ctx context.Context,
	sender sdk.AccAddress,
	direction types.OrderDirection,
	assets [2]types.Asset,
) (*types.MsgSubmitOrderResponse, error) {
	for _, asset := range assets {
		if err := asset.AssertNonZero(); err != nil {
			return nil, err
		}
	}

	offerAsset, askAsset := assets[0], assets[1]

	book, err := k.GetOrderBookByAssets(ctx, [2]types.AssetInfo{offerAsset.Info, askAsset.Info})
	if err != nil {
		return nil, err
	}
	pairKey := book.PairKey()

	// The offer side must be the asset this direction pays in.
	if !offerAsset.Info.Equal(book.OfferInfo(direction)) || !askAsset.Info.Equal(book.AskInfo(direction)) {
		return nil, types.ErrInvalidFunds.Wrapf("direction %s pays %s, got %s", direction, book.OfferInfo(direction), offerAsset.Info)
	}

	quoteAmount := offerAsset.Amount
	if direction == types.Sell {
		quoteAmount = askAsset.Amount
	}
	if quoteAmount.LT(book.MinQuoteAmount) {
		return nil, types.ErrQuoteBelowMinimum.Wrapf("%s < %s", quoteAmount, book.MinQuoteAmount)
	}

	order := types.NewOrder(0, sender.String(), direction, offerAsset.Amount, askAsset.Amount)
	if err := types.ValidatePrice(order.Price()); err != nil {
		return nil, err
	}

	if err := k.lockAsset(ctx, sender, offerAsset); err != nil {
		return nil, err
	}

	order.ID = k.NextOrderID(ctx)
	if err := k.StoreOrder(ctx, pairKey, order, true); err != nil {
		return nil, err
	}

	// Run matching only when the new order crosses the best opposite
	// price; the order's own price is the threshold.
	price := order.Price()
	matched := false
	switch direction {
	case types.Buy:
		if lowestSell, _, ok := k.LowestPrice(ctx, pairKey, types.Sell); ok {
			matched = lowestSell.LTE(price)
		}
	case types.Sell:
		if highestBuy, _, ok := k.HighestPrice(ctx, pairKey, types.Buy); ok {
			matched = highestBuy.GTE(price)
		}
	}

	status := types.OrderStatusOpen
	if matched {
		settled, err := k.processMatching(ctx, book, order.ID, price)
		if err != nil {
			return nil, err
		}
		if settled != nil {
			status = settled.Status
		}
	}

	pairLabel := book.BaseAssetInfo.String() + "/" + book.QuoteAssetInfo.String()
	k.metrics.OrdersSubmitted.WithLabelValues(pairLabel, direction.String(), "limit").Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitOrder,
			sdk.NewAttribute(types.AttributeKeyOrderType, "limit"),
			sdk.NewAttribute(types.AttributeKeyPair, book.BaseAssetInfo.String()+" - "+book.QuoteAssetInfo.String()),
			sdk.NewAttribute(types.AttributeKeyOrderID, formatUint(order.ID)),
			sdk.NewAttribute(types.AttributeKeyStatus, status.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyBidder, sender.String()),
			sdk.NewAttribute(types.AttributeKeyOfferAsset, offerAsset.String()),
			sdk.NewAttribute(types.AttributeKeyAskAsset, askAsset.String()),
		),
	)

	return &types.MsgSubmitOrderResponse{OrderID: order.ID, Status: status}, nil
}

// CancelOrder removes a resting order and refunds the unfilled offer
// remainder to its owner. Only the owner may cancel; a fulfilled order is
// already gone and surfaces as not found.
func (k Keeper) CancelOrder(
	ctx context.Context,
	sender sdk.AccAddress,
	orderID uint64,
	assetInfos [2]types.AssetInfo,
) (*types.MsgCancelOrderResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, assetInfos)
	if err != nil {
		return nil, err
	}
	pairKey := book.PairKey()

	order, err := k.GetOrder(ctx, pairKey, orderID)
	if err != nil {
		return nil, err
	}

	if order.BidderAddr != sender.String() {
		return nil, types.ErrUnauthorized.Wrap("not order owner")
	}

	remaining, err := order.RemainingOffer()
	if err != nil {
		return nil, err
	}

	if remaining.IsPositive() {
		refund := types.NewAsset(book.OfferInfo(order.Direction), remaining)
		if err := k.payAsset(ctx, sender, refund); err != nil {
			return nil, err
		}
	}

	if err := k.RemoveOrder(ctx, pairKey, order); err != nil {
		return nil, err
	}

	pairLabel := book.BaseAssetInfo.String() + "/" + book.QuoteAssetInfo.String()
	k.metrics.OrdersCancelled.WithLabelValues(pairLabel, order.Direction.String()).Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCancelOrder,
			sdk.NewAttribute(types.AttributeKeyPair, book.BaseAssetInfo.String()+" - "+book.QuoteAssetInfo.String()),
			sdk.NewAttribute(types.AttributeKeyOrderID, formatUint(orderID)),
			sdk.NewAttribute(types.AttributeKeyDirection, order.Direction.String()),
			sdk.NewAttribute(types.AttributeKeyBidder, sender.String()),
			sdk.NewAttribute(types.AttributeKeyOfferAmount, order.OfferAmount.String()),
			sdk.NewAttribute(types.AttributeKeyAskAmount, order.AskAmount.String()),
			sdk.NewAttribute(types.AttributeKeyBidderRefund, remaining.String()),
		),
	)

	return &types.MsgCancelOrderResponse{BidderRefund: remaining}, nil
}
