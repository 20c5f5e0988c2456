package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// matchedOrder is the working copy of an order inside one matching round.
// It carries the per-round fill deltas and the commission charged, none of
// which are persisted on the order record itself.
type matchedOrder struct {
	types.Order

	RewardFee            math.Int
	FilledOfferThisRound math.Int
	FilledAskThisRound   math.Int
}

func newMatchedOrder(order types.Order) *matchedOrder {
	return &matchedOrder{
		Order:                order,
		RewardFee:            math.ZeroInt(),
		FilledOfferThisRound: math.ZeroInt(),
		FilledAskThisRound:   math.ZeroInt(),
	}
}

// fill applies one fill to the order and reclassifies its status: once the
// remaining offer or ask drops under its dust floor the order counts as
// fulfilled even though a residue may be left over.
func (m *matchedOrder) fill(askAmount, offerAmount, minAskToFulfill, minOfferToFulfill math.Int) error {
	m.FilledAskAmount = m.FilledAskAmount.Add(askAmount)
	m.FilledOfferAmount = m.FilledOfferAmount.Add(offerAmount)

	m.FilledAskThisRound = askAmount
	m.FilledOfferThisRound = offerAmount

	remainingOffer, err := m.RemainingOffer()
	if err != nil {
		return err
	}
	remainingAsk, err := m.RemainingAsk()
	if err != nil {
		return err
	}

	if remainingOffer.LT(minOfferToFulfill) || remainingAsk.LT(minAskToFulfill) {
		m.Status = types.OrderStatusFulfilled
	} else {
		m.Status = types.OrderStatusPartialFilled
	}
	return nil
}

// isFulfilled reports whether the order has no economically meaningful
// remainder on either side.
func (m *matchedOrder) isFulfilled() bool {
	minVolume := math.NewIntFromUint64(types.MinVolume)
	return m.OfferAmount.LT(m.FilledOfferAmount.Add(minVolume)) ||
		m.AskAmount.LT(m.FilledAskAmount.Add(minVolume))
}

// matchingOrder walks the opposite side of the book from the best price
// toward the taker's threshold, filling resting orders in price-time
// priority. It mutates nothing in the store; the caller settles the
// returned working copies.
func (k Keeper) matchingOrder(
	ctx context.Context,
	book types.OrderBook,
	order types.Order,
	orderPrice math.LegacyDec,
) (*matchedOrder, []*matchedOrder, error) {
	pairKey := book.PairKey()
	matchedDirection := order.Direction.Opposite()

	userOrder := newMatchedOrder(order)
	var ordersMatched []*matchedOrder

	minOffer := book.MinOfferToFulfillOrDefault()
	minAsk := book.MinAskToFulfillOrDefault()

	// The fulfillment floors are expressed in book assets; map them onto
	// the taker's own offer and ask sides.
	userMinOffer, userMinAsk := minOffer, minAsk
	if order.Direction == types.Sell {
		userMinOffer, userMinAsk = minAsk, minOffer
	}

	store := k.getStore(ctx)
	tickPrefix := types.TickPrefix(pairKey, matchedDirection)

	var iterator storetypes.Iterator
	if order.Direction == types.Buy {
		iterator = storetypes.KVStorePrefixIterator(store, tickPrefix)
	} else {
		iterator = storetypes.KVStoreReversePrefixIterator(store, tickPrefix)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		matchPrice := types.DecodePrice(iterator.Key()[len(tickPrefix):])

		// The taker's own price is the strict cutoff on both sides.
		if order.Direction == types.Buy && orderPrice.LT(matchPrice) {
			break
		}
		if order.Direction == types.Sell && orderPrice.GT(matchPrice) {
			break
		}

		if userOrder.isFulfilled() {
			break
		}

		restingOrders, err := k.OrdersAtPrice(ctx, pairKey, matchPrice, matchedDirection, 0)
		if err != nil {
			return nil, nil, err
		}

		for _, resting := range restingOrders {
			if userOrder.isFulfilled() {
				break
			}
			matchOrder := newMatchedOrder(resting)

			userRemainingAsk, err := userOrder.RemainingAsk()
			if err != nil {
				return nil, nil, err
			}
			userRemainingOffer, err := userOrder.RemainingOffer()
			if err != nil {
				return nil, nil, err
			}
			matchRemainingOffer, err := matchOrder.RemainingOffer()
			if err != nil {
				return nil, nil, err
			}
			matchRemainingAsk, err := matchOrder.RemainingAsk()
			if err != nil {
				return nil, nil, err
			}

			// The fill executes at the resting tick price. Cap the
			// taker's ask by the resting offer, then re-derive when
			// the implied offer would overrun the resting ask.
			userAskAmount := math.MinInt(userRemainingAsk, matchRemainingOffer)
			var userOfferAmount math.Int
			if order.Direction == types.Buy {
				userOfferAmount = types.MulPriceTruncate(userAskAmount, matchPrice)
			} else {
				userOfferAmount = types.DivPriceTruncate(userAskAmount, matchPrice)
			}

			minUserOfferAmount := math.MinInt(userRemainingOffer, matchRemainingAsk)
			if userOfferAmount.GT(minUserOfferAmount) {
				userOfferAmount = minUserOfferAmount
				if order.Direction == types.Buy {
					userAskAmount = types.DivPriceTruncate(userOfferAmount, matchPrice)
				} else {
					userAskAmount = types.MulPriceTruncate(userOfferAmount, matchPrice)
				}
			}

			// The resting side's offer is the taker's ask and vice
			// versa, so the fill arguments swap.
			if err := matchOrder.fill(userOfferAmount, userAskAmount, userMinOffer, userMinAsk); err != nil {
				return nil, nil, err
			}
			if err := userOrder.fill(userAskAmount, userOfferAmount, userMinAsk, userMinOffer); err != nil {
				return nil, nil, err
			}

			ordersMatched = append(ordersMatched, matchOrder)
		}
	}

	// Reclassify the taker once more so a dust remainder left by the last
	// fill still marks it fulfilled.
	if err := userOrder.fill(math.ZeroInt(), math.ZeroInt(), userMinAsk, userMinOffer); err != nil {
		return nil, nil, err
	}
	userOrder.FilledOfferThisRound = userOrder.FilledOfferAmount
	userOrder.FilledAskThisRound = userOrder.FilledAskAmount

	return userOrder, ordersMatched, nil
}
