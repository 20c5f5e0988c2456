package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryServiceName is the fully-qualified name of the query service.
const QueryServiceName = "oraidex.orderbook.v1.Query"

// QueryClient is the client API for Query service.
type QueryClient interface {
	ContractInfo(ctx context.Context, in *QueryContractInfoRequest, opts ...grpc.CallOption) (*ContractInfoResponse, error)
	Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error)
	OrderBook(ctx context.Context, in *QueryOrderBookRequest, opts ...grpc.CallOption) (*OrderBookResponse, error)
	OrderBooks(ctx context.Context, in *QueryOrderBooksRequest, opts ...grpc.CallOption) (*OrderBooksResponse, error)
	Orders(ctx context.Context, in *QueryOrdersRequest, opts ...grpc.CallOption) (*OrdersResponse, error)
	Tick(ctx context.Context, in *QueryTickRequest, opts ...grpc.CallOption) (*TickResponse, error)
	Ticks(ctx context.Context, in *QueryTicksRequest, opts ...grpc.CallOption) (*TicksResponse, error)
	LastOrderID(ctx context.Context, in *QueryLastOrderIDRequest, opts ...grpc.CallOption) (*LastOrderIDResponse, error)
	MidPrice(ctx context.Context, in *QueryMidPriceRequest, opts ...grpc.CallOption) (*MidPriceResponse, error)
	SimulateMarketOrder(ctx context.Context, in *QuerySimulateMarketOrderRequest, opts ...grpc.CallOption) (*SimulateMarketOrderResponse, error)
	WhitelistedTraders(ctx context.Context, in *QueryWhitelistedTradersRequest, opts ...grpc.CallOption) (*WhitelistedTradersResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) ContractInfo(ctx context.Context, in *QueryContractInfoRequest, opts ...grpc.CallOption) (*ContractInfoResponse, error) {
	out := new(ContractInfoResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/ContractInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/Order", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OrderBook(ctx context.Context, in *QueryOrderBookRequest, opts ...grpc.CallOption) (*OrderBookResponse, error) {
	out := new(OrderBookResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/OrderBook", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OrderBooks(ctx context.Context, in *QueryOrderBooksRequest, opts ...grpc.CallOption) (*OrderBooksResponse, error) {
	out := new(OrderBooksResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/OrderBooks", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Orders(ctx context.Context, in *QueryOrdersRequest, opts ...grpc.CallOption) (*OrdersResponse, error) {
	out := new(OrdersResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/Orders", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Tick(ctx context.Context, in *QueryTickRequest, opts ...grpc.CallOption) (*TickResponse, error) {
	out := new(TickResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/Tick", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Ticks(ctx context.Context, in *QueryTicksRequest, opts ...grpc.CallOption) (*TicksResponse, error) {
	out := new(TicksResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/Ticks", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastOrderID(ctx context.Context, in *QueryLastOrderIDRequest, opts ...grpc.CallOption) (*LastOrderIDResponse, error) {
	out := new(LastOrderIDResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/LastOrderID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MidPrice(ctx context.Context, in *QueryMidPriceRequest, opts ...grpc.CallOption) (*MidPriceResponse, error) {
	out := new(MidPriceResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/MidPrice", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateMarketOrder(ctx context.Context, in *QuerySimulateMarketOrderRequest, opts ...grpc.CallOption) (*SimulateMarketOrderResponse, error) {
	out := new(SimulateMarketOrderResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/SimulateMarketOrder", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) WhitelistedTraders(ctx context.Context, in *QueryWhitelistedTradersRequest, opts ...grpc.CallOption) (*WhitelistedTradersResponse, error) {
	out := new(WhitelistedTradersResponse)
	err := c.cc.Invoke(ctx, "/oraidex.orderbook.v1.Query/WhitelistedTraders", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
