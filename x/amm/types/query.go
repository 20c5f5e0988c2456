package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	PoolByTokens(context.Context, *QueryPoolByTokensRequest) (*QueryPoolResponse, error)
	Liquidity(context.Context, *QueryLiquidityRequest) (*QueryLiquidityResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct {
	PoolID uint64 `json:"pool_id"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryPoolsRequest struct {
	Limit uint32 `json:"limit,omitempty"`
}

type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

type QueryPoolByTokensRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

type QueryLiquidityRequest struct {
	PoolID   uint64 `json:"pool_id"`
	Provider string `json:"provider"`
}

type QueryLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

type QuerySimulateSwapRequest struct {
	PoolID   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	AmountIn math.Int `json:"amount_in"`
}

type QuerySimulateSwapResponse struct {
	AmountOut math.Int       `json:"amount_out"`
	SpotPrice math.LegacyDec `json:"spot_price"`
}
