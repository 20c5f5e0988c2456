package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/bridge/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidState.Wrapf("invalid sender address: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sequence, err := k.SendTransfer(sdkCtx, sender, msg.ChannelID, msg.Receiver,
		msg.Denom, msg.Amount, msg.TimeoutSeconds, msg.Memo)
	if err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{Sequence: sequence}, nil
}

func (k msgServer) AllowToken(ctx context.Context, msg *types.MsgAllowToken) (*types.MsgAllowTokenResponse, error) {
	if err := k.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	if err := k.Keeper.AllowToken(ctx, msg.Denom, msg.GasLimit); err != nil {
		return nil, err
	}
	return &types.MsgAllowTokenResponse{}, nil
}

func (k msgServer) UpdateConfig(ctx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := k.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

func (k msgServer) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := k.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	k.SetPaused(ctx, true)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePause,
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
	))
	return &types.MsgPauseResponse{}, nil
}

func (k msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := k.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	k.SetPaused(ctx, false)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnpause,
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
	))
	return &types.MsgUnpauseResponse{}, nil
}
