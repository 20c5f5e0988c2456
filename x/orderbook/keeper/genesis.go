package keeper

import (
	"context"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// InitGenesis seeds the module state from a genesis snapshot. Escrowed
// funds backing resting orders are expected to be present in the module
// account balance already.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetPaused(ctx, genState.IsPaused)
	k.SetLastOrderID(ctx, genState.LastOrderID)

	for _, gb := range genState.OrderBooks {
		if err := k.SetOrderBook(ctx, gb.Book); err != nil {
			return err
		}
		pairKey := gb.Book.PairKey()
		for _, order := range gb.Orders {
			if err := k.StoreOrder(ctx, pairKey, order, true); err != nil {
				return err
			}
		}
	}

	for _, reward := range genState.Rewards {
		pairKey := types.PairKey([2]types.AssetInfo{
			reward.RewardAssets[0].Info,
			reward.RewardAssets[1].Info,
		})
		if err := k.SetReward(ctx, pairKey, reward); err != nil {
			return err
		}
	}

	for _, trader := range genState.Whitelist {
		k.SetWhitelistedTrader(ctx, trader)
	}

	return nil
}

// ExportGenesis dumps the full module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	var books []types.OrderBook
	var startAfterPair []byte
	for {
		batch, err := k.GetOrderBooks(ctx, startAfterPair, types.MaxLimit, types.OrderByAscending)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		books = append(books, batch...)
		startAfterPair = batch[len(batch)-1].PairKey()
	}

	genBooks := make([]types.GenesisOrderBook, 0, len(books))
	for _, book := range books {
		pairKey := book.PairKey()

		var orders []types.Order
		var startAfter *uint64
		for {
			batch, err := k.GetOrders(ctx, pairKey, startAfter, types.MaxLimit, types.OrderByAscending)
			if err != nil {
				return nil, err
			}
			if len(batch) == 0 {
				break
			}
			orders = append(orders, batch...)
			lastID := batch[len(batch)-1].ID
			startAfter = &lastID
		}

		genBooks = append(genBooks, types.GenesisOrderBook{Book: book, Orders: orders})
	}

	return &types.GenesisState{
		Params:      k.GetParams(ctx),
		IsPaused:    k.IsPaused(ctx),
		LastOrderID: k.LastOrderID(ctx),
		OrderBooks:  genBooks,
		Rewards:     k.GetRewards(ctx),
		Whitelist:   k.GetWhitelistedTraders(ctx),
	}, nil
}
