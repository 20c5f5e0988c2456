package keeper

import (
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// RegisterInvariants registers all orderbook invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "order-fill-bounds", OrderFillBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "tick-counts", TickCountsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "escrow-balance", EscrowBalanceInvariant(k))
}

// AllInvariants runs all invariants of the orderbook module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := OrderFillBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = TickCountsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return EscrowBalanceInvariant(k)(ctx)
	}
}

// allBooks walks every registered pair.
func (k Keeper) allBooks(ctx sdk.Context) ([]types.OrderBook, error) {
	var books []types.OrderBook
	var startAfter []byte
	for {
		batch, err := k.GetOrderBooks(ctx, startAfter, types.MaxLimit, types.OrderByAscending)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return books, nil
		}
		books = append(books, batch...)
		startAfter = batch[len(batch)-1].PairKey()
	}
}

// allOrders walks every resting order of one pair.
func (k Keeper) allOrders(ctx sdk.Context, pairKey []byte) ([]types.Order, error) {
	var orders []types.Order
	var startAfter *uint64
	for {
		batch, err := k.GetOrders(ctx, pairKey, startAfter, types.MaxLimit, types.OrderByAscending)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return orders, nil
		}
		orders = append(orders, batch...)
		lastID := batch[len(batch)-1].ID
		startAfter = &lastID
	}
}

// OrderFillBoundsInvariant checks that no resting order is filled past its
// offer or ask amount.
func OrderFillBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		books, err := k.allBooks(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "order-fill-bounds", err.Error()), true
		}

		for _, book := range books {
			orders, err := k.allOrders(ctx, book.PairKey())
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "order-fill-bounds", err.Error()), true
			}
			for _, order := range orders {
				if order.FilledOfferAmount.GT(order.OfferAmount) {
					count++
					msg += fmt.Sprintf("order %d: filled offer %s > offer %s\n",
						order.ID, order.FilledOfferAmount, order.OfferAmount)
				}
				if order.FilledAskAmount.GT(order.AskAmount) {
					count++
					msg += fmt.Sprintf("order %d: filled ask %s > ask %s\n",
						order.ID, order.FilledAskAmount, order.AskAmount)
				}
				if order.Status == types.OrderStatusFulfilled {
					count++
					msg += fmt.Sprintf("order %d: fulfilled order still resting\n", order.ID)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "order-fill-bounds",
			fmt.Sprintf("found %d over-filled or stale orders\n%s", count, msg),
		), broken
	}
}

// TickCountsInvariant checks that every tick's order count matches the
// orders actually resting at that price and direction.
func TickCountsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		books, err := k.allBooks(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "tick-counts", err.Error()), true
		}

		store := k.getStore(ctx)
		for _, book := range books {
			pairKey := book.PairKey()
			for _, direction := range []types.OrderDirection{types.Buy, types.Sell} {
				prefix := types.TickPrefix(pairKey, direction)
				iterator := storetypes.KVStorePrefixIterator(store, prefix)
				for ; iterator.Valid(); iterator.Next() {
					price := types.DecodePrice(iterator.Key()[len(prefix):])
					recorded := binary.BigEndian.Uint64(iterator.Value())

					orders, err := k.OrdersAtPrice(ctx, pairKey, price, direction, 0)
					if err != nil {
						iterator.Close()
						return sdk.FormatInvariant(types.ModuleName, "tick-counts", err.Error()), true
					}
					if recorded != uint64(len(orders)) {
						count++
						msg += fmt.Sprintf("tick %s %s: recorded %d orders, found %d\n",
							direction, price, recorded, len(orders))
					}
					if recorded == 0 {
						count++
						msg += fmt.Sprintf("tick %s %s: empty tick not pruned\n", direction, price)
					}
				}
				iterator.Close()
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "tick-counts",
			fmt.Sprintf("found %d inconsistent ticks\n%s", count, msg),
		), broken
	}
}

// EscrowBalanceInvariant checks that the module account holds at least the
// unfilled native offer amounts of every resting order.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		books, err := k.allBooks(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrow-balance", err.Error()), true
		}

		required := sdk.NewCoins()
		for _, book := range books {
			orders, err := k.allOrders(ctx, book.PairKey())
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "escrow-balance", err.Error()), true
			}
			for _, order := range orders {
				info := book.OfferInfo(order.Direction)
				if !info.IsNative() {
					continue
				}
				remaining, err := order.RemainingOffer()
				if err != nil {
					count++
					msg += fmt.Sprintf("order %d: %v\n", order.ID, err)
					continue
				}
				if remaining.IsPositive() {
					required = required.Add(sdk.NewCoin(info.Denom, remaining))
				}
			}
		}

		balance := k.bankKeeper.SpendableCoins(ctx, k.GetModuleAddress())
		for _, coin := range required {
			if balance.AmountOf(coin.Denom).LT(coin.Amount) {
				count++
				msg += fmt.Sprintf("escrow short of %s: have %s, need %s\n",
					coin.Denom, balance.AmountOf(coin.Denom), coin.Amount)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "escrow-balance",
			fmt.Sprintf("found %d escrow shortfalls\n%s", count, msg),
		), broken
	}
}
