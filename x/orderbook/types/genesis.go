package types

import (
	"fmt"
)

// GenesisOrderBook bundles one pair config with its resting orders.
type GenesisOrderBook struct {
	Book   OrderBook `json:"book"`
	Orders []Order   `json:"orders"`
}

// GenesisState is the full module state.
type GenesisState struct {
	Params      Params             `json:"params"`
	IsPaused    bool               `json:"is_paused"`
	LastOrderID uint64             `json:"last_order_id"`
	OrderBooks  []GenesisOrderBook `json:"order_books"`
	Rewards     []Executor         `json:"rewards"`
	Whitelist   []string           `json:"whitelist"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenPairs := map[string]bool{}
	for _, gb := range gs.OrderBooks {
		pairKey := string(gb.Book.PairKey())
		if seenPairs[pairKey] {
			return fmt.Errorf("duplicate order book for pair %s/%s",
				gb.Book.BaseAssetInfo, gb.Book.QuoteAssetInfo)
		}
		seenPairs[pairKey] = true

		if gb.Book.BaseAssetInfo.Equal(gb.Book.QuoteAssetInfo) {
			return fmt.Errorf("order book base and quote assets must differ")
		}

		for _, order := range gb.Orders {
			if order.ID == 0 || order.ID > gs.LastOrderID {
				return fmt.Errorf("order %d outside allocated id range (last %d)", order.ID, gs.LastOrderID)
			}
			if !order.Direction.Valid() {
				return fmt.Errorf("order %d has invalid direction", order.ID)
			}
			if order.Status != OrderStatusOpen && order.Status != OrderStatusPartialFilled {
				return fmt.Errorf("order %d must be resting (open or partial filled)", order.ID)
			}
			if order.FilledOfferAmount.GT(order.OfferAmount) || order.FilledAskAmount.GT(order.AskAmount) {
				return fmt.Errorf("order %d is over-filled", order.ID)
			}
		}
	}

	for _, trader := range gs.Whitelist {
		if trader == "" {
			return fmt.Errorf("empty whitelist entry")
		}
	}

	return nil
}
