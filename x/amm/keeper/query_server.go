package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
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

func (k queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k queryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	pool, err := k.GetPool(ctx, req.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (k queryServer) Pools(ctx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	limit := req.Limit
	if limit == 0 || limit > 100 {
		limit = 100
	}

	resp := &types.QueryPoolsResponse{}
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		resp.Pools = append(resp.Pools, pool)
		return uint32(len(resp.Pools)) >= limit
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (k queryServer) PoolByTokens(ctx context.Context, req *types.QueryPoolByTokensRequest) (*types.QueryPoolResponse, error) {
	pool, err := k.GetPoolByTokens(ctx, req.TokenA, req.TokenB)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (k queryServer) Liquidity(ctx context.Context, req *types.QueryLiquidityRequest) (*types.QueryLiquidityResponse, error) {
	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidState.Wrapf("invalid provider address: %v", err)
	}

	shares, err := k.GetLiquidity(ctx, req.PoolID, provider)
	if err != nil {
		return nil, err
	}
	return &types.QueryLiquidityResponse{Shares: shares}, nil
}

func (k queryServer) SimulateSwap(ctx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	amountOut, err := k.Keeper.SimulateSwap(ctx, req.PoolID, req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return nil, err
	}

	pool, err := k.GetPool(ctx, req.PoolID)
	if err != nil {
		return nil, err
	}
	spot, err := pool.SpotPrice(req.TokenIn)
	if err != nil {
		return nil, err
	}

	return &types.QuerySimulateSwapResponse{AmountOut: amountOut, SpotPrice: spot}, nil
}
