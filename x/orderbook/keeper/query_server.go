package keeper

import (
	"context"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func toOrderResponse(book types.OrderBook, order types.Order) types.OrderResponse {
	return types.OrderResponse{
		OrderID:           order.ID,
		Status:            order.Status,
		Direction:         order.Direction,
		BidderAddr:        order.BidderAddr,
		OfferAsset:        types.NewAsset(book.OfferInfo(order.Direction), order.OfferAmount),
		AskAsset:          types.NewAsset(book.AskInfo(order.Direction), order.AskAmount),
		FilledOfferAmount: order.FilledOfferAmount,
		FilledAskAmount:   order.FilledAskAmount,
	}
}

func toOrderBookResponse(book types.OrderBook) types.OrderBookResponse {
	return types.OrderBookResponse{
		BaseAssetInfo:     book.BaseAssetInfo,
		QuoteAssetInfo:    book.QuoteAssetInfo,
		Spread:            book.Spread,
		MinQuoteAmount:    book.MinQuoteAmount,
		RefundThreshold:   book.RefundThresholdOrDefault(),
		MinOfferToFulfill: book.MinOfferToFulfillOrDefault(),
		MinAskToFulfill:   book.MinAskToFulfillOrDefault(),
	}
}

func (k queryServer) ContractInfo(ctx context.Context, _ *types.QueryContractInfoRequest) (*types.ContractInfoResponse, error) {
	params := k.GetParams(ctx)
	return &types.ContractInfoResponse{
		Admin:          params.Admin,
		RewardAddress:  params.RewardAddress,
		Operator:       params.Operator,
		CommissionRate: params.CommissionRate,
		IsPaused:       k.IsPaused(ctx),
	}, nil
}

func (k queryServer) Order(ctx context.Context, req *types.QueryOrderRequest) (*types.OrderResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}
	order, err := k.GetOrder(ctx, book.PairKey(), req.OrderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(book, order)
	return &resp, nil
}

func (k queryServer) OrderBook(ctx context.Context, req *types.QueryOrderBookRequest) (*types.OrderBookResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}
	resp := toOrderBookResponse(book)
	return &resp, nil
}

func (k queryServer) OrderBooks(ctx context.Context, req *types.QueryOrderBooksRequest) (*types.OrderBooksResponse, error) {
	books, err := k.GetOrderBooks(ctx, req.StartAfter, req.Limit, req.OrderBy)
	if err != nil {
		return nil, err
	}

	resp := make([]types.OrderBookResponse, 0, len(books))
	for _, book := range books {
		resp = append(resp, toOrderBookResponse(book))
	}
	return &types.OrderBooksResponse{OrderBooks: resp}, nil
}

func (k queryServer) Orders(ctx context.Context, req *types.QueryOrdersRequest) (*types.OrdersResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}
	pairKey := book.PairKey()

	var orders []types.Order
	switch {
	case req.Filter.Bidder != "":
		orders, err = k.GetOrdersByBidder(ctx, pairKey, req.Filter.Bidder, req.Direction, req.StartAfter, req.Limit, req.OrderBy)
	case req.Filter.Price != nil:
		orders, err = k.GetOrdersByPrice(ctx, pairKey, *req.Filter.Price, req.Direction, req.StartAfter, req.Limit, req.OrderBy)
	case req.Filter.Tick || req.Direction != nil:
		direction := types.Buy
		if req.Direction != nil {
			direction = *req.Direction
		}
		orders, err = k.GetOrdersByDirection(ctx, pairKey, direction, req.StartAfter, req.Limit, req.OrderBy)
	default:
		orders, err = k.GetOrders(ctx, pairKey, req.StartAfter, req.Limit, req.OrderBy)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]types.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(book, order))
	}
	return &types.OrdersResponse{Orders: resp}, nil
}

func (k queryServer) Tick(ctx context.Context, req *types.QueryTickRequest) (*types.TickResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}

	total, err := k.TickOrderCount(ctx, book.PairKey(), req.Direction, req.Price)
	if err != nil {
		return nil, err
	}
	return &types.TickResponse{Price: req.Price, TotalOrders: total}, nil
}

func (k queryServer) Ticks(ctx context.Context, req *types.QueryTicksRequest) (*types.TicksResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}

	ticks := k.Keeper.Ticks(ctx, book.PairKey(), req.Direction, req.StartAfter, req.End, req.Limit, req.OrderBy)
	return &types.TicksResponse{Ticks: ticks}, nil
}

func (k queryServer) LastOrderID(ctx context.Context, _ *types.QueryLastOrderIDRequest) (*types.LastOrderIDResponse, error) {
	return &types.LastOrderIDResponse{LastOrderID: k.Keeper.LastOrderID(ctx)}, nil
}

func (k queryServer) MidPrice(ctx context.Context, req *types.QueryMidPriceRequest) (*types.MidPriceResponse, error) {
	book, err := k.GetOrderBookByAssets(ctx, req.AssetInfos)
	if err != nil {
		return nil, err
	}

	mid, err := k.Keeper.MidPrice(ctx, book.PairKey())
	if err != nil {
		return nil, err
	}
	return &types.MidPriceResponse{MidPrice: mid}, nil
}

func (k queryServer) SimulateMarketOrder(ctx context.Context, req *types.QuerySimulateMarketOrderRequest) (*types.SimulateMarketOrderResponse, error) {
	return k.Keeper.SimulateMarketOrder(ctx, req.AssetInfos, req.Direction, req.OfferAmount, req.Slippage)
}

func (k queryServer) WhitelistedTraders(ctx context.Context, _ *types.QueryWhitelistedTradersRequest) (*types.WhitelistedTradersResponse, error) {
	return &types.WhitelistedTradersResponse{Traders: k.GetWhitelistedTraders(ctx)}, nil
}
