package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreateOrderBookPair(context.Context, *MsgCreateOrderBookPair) (*MsgCreateOrderBookPairResponse, error)
	UpdateOrderBookPair(context.Context, *MsgUpdateOrderBookPair) (*MsgUpdateOrderBookPairResponse, error)
	RemoveOrderBookPair(context.Context, *MsgRemoveOrderBookPair) (*MsgRemoveOrderBookPairResponse, error)
	SubmitOrder(context.Context, *MsgSubmitOrder) (*MsgSubmitOrderResponse, error)
	SubmitMarketOrder(context.Context, *MsgSubmitMarketOrder) (*MsgSubmitMarketOrderResponse, error)
	CancelOrder(context.Context, *MsgCancelOrder) (*MsgCancelOrderResponse, error)
	WhitelistTrader(context.Context, *MsgWhitelistTrader) (*MsgWhitelistTraderResponse, error)
	RemoveTrader(context.Context, *MsgRemoveTrader) (*MsgRemoveTraderResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
	WithdrawToken(context.Context, *MsgWithdrawToken) (*MsgWithdrawTokenResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	UpdateOperator(context.Context, *MsgUpdateOperator) (*MsgUpdateOperatorResponse, error)
}

// Response types

type MsgCreateOrderBookPairResponse struct{}

type MsgUpdateOrderBookPairResponse struct{}

type MsgRemoveOrderBookPairResponse struct {
	// RemovedOrders is the number of resting orders cleaned up.
	RemovedOrders uint64 `json:"removed_orders"`
}

type MsgSubmitOrderResponse struct {
	OrderID uint64      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

type MsgSubmitMarketOrderResponse struct {
	OrderID      uint64   `json:"order_id"`
	Received     math.Int `json:"received"`
	RefundAmount math.Int `json:"refund_amount"`
}

type MsgCancelOrderResponse struct {
	BidderRefund math.Int `json:"bidder_refund"`
}

type MsgWhitelistTraderResponse struct{}

type MsgRemoveTraderResponse struct{}

type MsgPauseResponse struct{}

type MsgUnpauseResponse struct{}

type MsgWithdrawTokenResponse struct{}

type MsgUpdateConfigResponse struct{}

type MsgUpdateOperatorResponse struct{}
