package types

import (
	"context"

	"cosmossdk.io/math"
)

// Iteration direction for range queries.
const (
	OrderByAscending  int32 = 1
	OrderByDescending int32 = 2
)

// Pagination defaults shared by the list queries.
const (
	DefaultLimit uint32 = 10
	MaxLimit     uint32 = 100
)

// OrderFilter narrows an Orders query. Zero value means no filter.
type OrderFilter struct {
	// Bidder restricts to one trader's orders.
	Bidder string `json:"bidder,omitempty"`
	// Price restricts to orders resting at one exact price.
	Price *math.LegacyDec `json:"price,omitempty"`
	// Tick iterates the tick index instead of the primary records.
	Tick bool `json:"tick,omitempty"`
}

// QueryServer defines the query server interface
type QueryServer interface {
	ContractInfo(context.Context, *QueryContractInfoRequest) (*ContractInfoResponse, error)
	Order(context.Context, *QueryOrderRequest) (*OrderResponse, error)
	OrderBook(context.Context, *QueryOrderBookRequest) (*OrderBookResponse, error)
	OrderBooks(context.Context, *QueryOrderBooksRequest) (*OrderBooksResponse, error)
	Orders(context.Context, *QueryOrdersRequest) (*OrdersResponse, error)
	Tick(context.Context, *QueryTickRequest) (*TickResponse, error)
	Ticks(context.Context, *QueryTicksRequest) (*TicksResponse, error)
	LastOrderID(context.Context, *QueryLastOrderIDRequest) (*LastOrderIDResponse, error)
	MidPrice(context.Context, *QueryMidPriceRequest) (*MidPriceResponse, error)
	SimulateMarketOrder(context.Context, *QuerySimulateMarketOrderRequest) (*SimulateMarketOrderResponse, error)
	WhitelistedTraders(context.Context, *QueryWhitelistedTradersRequest) (*WhitelistedTradersResponse, error)
}

type QueryContractInfoRequest struct{}

// ContractInfoResponse reports the module configuration and pause state.
type ContractInfoResponse struct {
	Admin          string         `json:"admin"`
	RewardAddress  string         `json:"reward_address"`
	Operator       string         `json:"operator,omitempty"`
	CommissionRate math.LegacyDec `json:"commission_rate"`
	IsPaused       bool           `json:"is_paused"`
}

type QueryOrderRequest struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
	OrderID    uint64       `json:"order_id"`
}

// OrderResponse resolves the order's offer/ask sides to concrete assets.
type OrderResponse struct {
	OrderID           uint64         `json:"order_id"`
	Status            OrderStatus    `json:"status"`
	Direction         OrderDirection `json:"direction"`
	BidderAddr        string         `json:"bidder_addr"`
	OfferAsset        Asset          `json:"offer_asset"`
	AskAsset          Asset          `json:"ask_asset"`
	FilledOfferAmount math.Int       `json:"filled_offer_amount"`
	FilledAskAmount   math.Int       `json:"filled_ask_amount"`
}

type QueryOrderBookRequest struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

// OrderBookResponse materializes the pair defaults.
type OrderBookResponse struct {
	BaseAssetInfo     AssetInfo       `json:"base_asset_info"`
	QuoteAssetInfo    AssetInfo       `json:"quote_asset_info"`
	Spread            *math.LegacyDec `json:"spread,omitempty"`
	MinQuoteAmount    math.Int        `json:"min_quote_amount"`
	RefundThreshold   math.Int        `json:"refund_threshold"`
	MinOfferToFulfill math.Int        `json:"min_offer_to_fulfilled"`
	MinAskToFulfill   math.Int        `json:"min_ask_to_fulfilled"`
}

type QueryOrderBooksRequest struct {
	StartAfter []byte `json:"start_after,omitempty"`
	Limit      uint32 `json:"limit,omitempty"`
	OrderBy    int32  `json:"order_by,omitempty"`
}

type OrderBooksResponse struct {
	OrderBooks []OrderBookResponse `json:"order_books"`
}

type QueryOrdersRequest struct {
	AssetInfos [2]AssetInfo    `json:"asset_infos"`
	Direction  *OrderDirection `json:"direction,omitempty"`
	Filter     OrderFilter     `json:"filter"`
	StartAfter *uint64         `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	OrderBy    int32           `json:"order_by,omitempty"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type QueryTickRequest struct {
	AssetInfos [2]AssetInfo   `json:"asset_infos"`
	Direction  OrderDirection `json:"direction"`
	Price      math.LegacyDec `json:"price"`
}

type TickResponse struct {
	Price       math.LegacyDec `json:"price"`
	TotalOrders uint64         `json:"total_orders"`
}

type QueryTicksRequest struct {
	AssetInfos [2]AssetInfo    `json:"asset_infos"`
	Direction  OrderDirection  `json:"direction"`
	StartAfter *math.LegacyDec `json:"start_after,omitempty"`
	End        *math.LegacyDec `json:"end,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	OrderBy    int32           `json:"order_by,omitempty"`
}

type TicksResponse struct {
	Ticks []TickResponse `json:"ticks"`
}

type QueryLastOrderIDRequest struct{}

type LastOrderIDResponse struct {
	LastOrderID uint64 `json:"last_order_id"`
}

type QueryMidPriceRequest struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

type MidPriceResponse struct {
	MidPrice math.LegacyDec `json:"mid_price"`
}

type QuerySimulateMarketOrderRequest struct {
	AssetInfos  [2]AssetInfo    `json:"asset_infos"`
	Direction   OrderDirection  `json:"direction"`
	OfferAmount math.Int        `json:"offer_amount"`
	Slippage    *math.LegacyDec `json:"slippage,omitempty"`
}

// SimulateMarketOrderResponse previews a market order without mutating
// state.
type SimulateMarketOrderResponse struct {
	Receive math.Int `json:"receive"`
	Refunds math.Int `json:"refunds"`
}

type QueryWhitelistedTradersRequest struct{}

type WhitelistedTradersResponse struct {
	Traders []string `json:"traders"`
}
