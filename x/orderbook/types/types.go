package types

import (
	"cosmossdk.io/math"
)

// OrderDirection is the side of the book an order rests on.
type OrderDirection uint8

const (
	// Buy offers the quote asset and asks for the base asset.
	Buy OrderDirection = 1

	// Sell offers the base asset and asks for the quote asset.
	Sell OrderDirection = 2
)

func (d OrderDirection) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Byte returns the single-byte index key segment for the direction.
func (d OrderDirection) Byte() byte { return byte(d) }

// Opposite returns the other side of the book.
func (d OrderDirection) Opposite() OrderDirection {
	if d == Buy {
		return Sell
	}
	return Buy
}

// Valid reports whether d is a known direction.
func (d OrderDirection) Valid() bool { return d == Buy || d == Sell }

// OrderStatus tracks the order lifecycle.
//
//	Open → PartialFilled → Fulfilled
//
// Fulfilled orders are removed from storage; cancellation removes the
// record directly, there is no persisted Cancelled state.
type OrderStatus uint8

const (
	OrderStatusOpen          OrderStatus = 1
	OrderStatusPartialFilled OrderStatus = 2
	OrderStatusFulfilled     OrderStatus = 3
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusOpen:
		return "open"
	case OrderStatusPartialFilled:
		return "partial_filled"
	case OrderStatusFulfilled:
		return "fulfilled"
	default:
		return "unknown"
	}
}

// Order is a resting or in-flight limit order. The price is never stored;
// it is derived from the original offer/ask sizes.
type Order struct {
	ID                uint64         `json:"id"`
	Direction         OrderDirection `json:"direction"`
	BidderAddr        string         `json:"bidder_addr"`
	OfferAmount       math.Int       `json:"offer_amount"`
	AskAmount         math.Int       `json:"ask_amount"`
	FilledOfferAmount math.Int       `json:"filled_offer_amount"`
	FilledAskAmount   math.Int       `json:"filled_ask_amount"`
	Status            OrderStatus    `json:"status"`
}

// NewOrder returns an open order with zero fill amounts.
func NewOrder(id uint64, bidder string, direction OrderDirection, offerAmount, askAmount math.Int) Order {
	return Order{
		ID:                id,
		Direction:         direction,
		BidderAddr:        bidder,
		OfferAmount:       offerAmount,
		AskAmount:         askAmount,
		FilledOfferAmount: math.ZeroInt(),
		FilledAskAmount:   math.ZeroInt(),
		Status:            OrderStatusOpen,
	}
}

// Price is always quote-per-base: offer/ask for a buy, ask/offer for a sell.
func (o Order) Price() math.LegacyDec {
	if o.Direction == Buy {
		return math.LegacyNewDecFromInt(o.OfferAmount).Quo(math.LegacyNewDecFromInt(o.AskAmount))
	}
	return math.LegacyNewDecFromInt(o.AskAmount).Quo(math.LegacyNewDecFromInt(o.OfferAmount))
}

// RemainingOffer returns the unfilled part of the offer side.
func (o Order) RemainingOffer() (math.Int, error) {
	return checkedSub(o.OfferAmount, o.FilledOfferAmount)
}

// RemainingAsk returns the unfilled part of the ask side.
func (o Order) RemainingAsk() (math.Int, error) {
	return checkedSub(o.AskAmount, o.FilledAskAmount)
}

func checkedSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, ErrFillUnderflow.Wrapf("checked sub: %s < %s", a, b)
	}
	return a.Sub(b), nil
}

// OrderBook is the per-pair configuration record. Thresholds default to
// the module constants when left nil.
type OrderBook struct {
	BaseAssetInfo     AssetInfo       `json:"base_asset_info"`
	QuoteAssetInfo    AssetInfo       `json:"quote_asset_info"`
	Spread            *math.LegacyDec `json:"spread,omitempty"`
	MinQuoteAmount    math.Int        `json:"min_quote_amount"`
	RefundThreshold   *math.Int       `json:"refund_threshold,omitempty"`
	MinOfferToFulfill *math.Int       `json:"min_offer_to_fulfilled,omitempty"`
	MinAskToFulfill   *math.Int       `json:"min_ask_to_fulfilled,omitempty"`
}

// PairKey returns the canonical storage key for the pair.
func (ob OrderBook) PairKey() []byte {
	return PairKey([2]AssetInfo{ob.BaseAssetInfo, ob.QuoteAssetInfo})
}

// OfferInfo returns the asset a given direction pays in.
func (ob OrderBook) OfferInfo(direction OrderDirection) AssetInfo {
	if direction == Buy {
		return ob.QuoteAssetInfo
	}
	return ob.BaseAssetInfo
}

// AskInfo returns the asset a given direction receives.
func (ob OrderBook) AskInfo(direction OrderDirection) AssetInfo {
	if direction == Buy {
		return ob.BaseAssetInfo
	}
	return ob.QuoteAssetInfo
}

// RefundThresholdOrDefault returns the dust refund floor for the pair.
func (ob OrderBook) RefundThresholdOrDefault() math.Int {
	if ob.RefundThreshold != nil {
		return *ob.RefundThreshold
	}
	return math.NewIntFromUint64(RefundsThreshold)
}

// MinOfferToFulfillOrDefault returns the offer-side dust fulfillment floor.
func (ob OrderBook) MinOfferToFulfillOrDefault() math.Int {
	if ob.MinOfferToFulfill != nil {
		return *ob.MinOfferToFulfill
	}
	return math.NewIntFromUint64(MinVolume)
}

// MinAskToFulfillOrDefault returns the ask-side dust fulfillment floor.
func (ob OrderBook) MinAskToFulfillOrDefault() math.Int {
	if ob.MinAskToFulfill != nil {
		return *ob.MinAskToFulfill
	}
	return math.NewIntFromUint64(MinVolume)
}

// Executor is the accumulated, not yet transferred commission for one
// beneficiary on one pair. Index 0 holds the base asset, index 1 the quote.
type Executor struct {
	Address      string   `json:"address"`
	RewardAssets [2]Asset `json:"reward_assets"`
}

// NewExecutor returns an executor with zeroed reward buckets.
func NewExecutor(address string, base, quote AssetInfo) Executor {
	return Executor{
		Address: address,
		RewardAssets: [2]Asset{
			{Info: base, Amount: math.ZeroInt()},
			{Info: quote, Amount: math.ZeroInt()},
		},
	}
}

// Payment is an ephemeral settlement transfer; payments to the same
// (address, asset) pair are netted before any bank send is made.
type Payment struct {
	Address string `json:"address"`
	Asset   Asset  `json:"asset"`
}

// MulPriceTruncate converts an amount through a price with integer
// truncation, never rounding up.
func MulPriceTruncate(amount math.Int, price math.LegacyDec) math.Int {
	return price.MulInt(amount).TruncateInt()
}

// DivPriceTruncate divides an amount by a price with integer truncation.
func DivPriceTruncate(amount math.Int, price math.LegacyDec) math.Int {
	return math.LegacyNewDecFromInt(amount).QuoTruncate(price).TruncateInt()
}
