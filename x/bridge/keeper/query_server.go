package keeper

import (
	"context"

	"github.com/oraidex/oraidex/x/bridge/types"
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

func (k queryServer) Config(ctx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	return &types.QueryConfigResponse{
		Params: k.GetParams(ctx),
		Paused: k.IsPaused(ctx),
	}, nil
}

func (k queryServer) Channel(ctx context.Context, req *types.QueryChannelRequest) (*types.QueryChannelResponse, error) {
	info, err := k.GetChannelInfo(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}

	resp := &types.QueryChannelResponse{Info: info}
	err = k.IterateChannelStates(ctx, req.ChannelID, func(denom string, state types.ChannelState) bool {
		resp.Balances = append(resp.Balances, types.ChannelBalance{
			Denom:        denom,
			ChannelState: state,
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (k queryServer) Channels(ctx context.Context, _ *types.QueryChannelsRequest) (*types.QueryChannelsResponse, error) {
	resp := &types.QueryChannelsResponse{}
	err := k.IterateChannels(ctx, func(info types.ChannelInfo) bool {
		resp.Channels = append(resp.Channels, info)
		return false
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (k queryServer) Allowed(ctx context.Context, req *types.QueryAllowedRequest) (*types.QueryAllowedResponse, error) {
	gasLimit, err := k.checkAllowed(ctx, req.Denom)
	if err != nil {
		return &types.QueryAllowedResponse{Allowed: false}, nil
	}
	return &types.QueryAllowedResponse{Allowed: true, GasLimit: gasLimit}, nil
}

func (k queryServer) AllowedTokens(ctx context.Context, _ *types.QueryAllowedTokensRequest) (*types.QueryAllowedTokensResponse, error) {
	resp := &types.QueryAllowedTokensResponse{}
	err := k.IterateAllowed(ctx, func(info types.AllowInfo) bool {
		resp.Tokens = append(resp.Tokens, info)
		return false
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
