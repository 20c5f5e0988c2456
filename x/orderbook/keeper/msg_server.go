package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
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

func (k msgServer) requireAdmin(ctx context.Context, sender string) error {
	params := k.GetParams(ctx)
	if params.Admin == "" || params.Admin != sender {
		return types.ErrUnauthorized.Wrap("admin only")
	}
	return nil
}

func (k msgServer) requireAdminOrOperator(ctx context.Context, sender string) error {
	params := k.GetParams(ctx)
	if params.Admin != "" && params.Admin == sender {
		return nil
	}
	if params.Operator != "" && params.Operator == sender {
		return nil
	}
	return types.ErrUnauthorized.Wrap("admin or operator only")
}

// requireActive rejects trading messages while the module is paused.
// Configuration and pause control remain available.
func (k msgServer) requireActive(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused
	}
	return nil
}

func (k msgServer) CreateOrderBookPair(ctx context.Context, msg *types.MsgCreateOrderBookPair) (*types.MsgCreateOrderBookPairResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}
	if err := k.Keeper.CreateOrderBookPair(ctx, msg.BaseAssetInfo, msg.QuoteAssetInfo, msg.Spread, msg.MinQuoteAmount); err != nil {
		return nil, err
	}
	return &types.MsgCreateOrderBookPairResponse{}, nil
}

func (k msgServer) UpdateOrderBookPair(ctx context.Context, msg *types.MsgUpdateOrderBookPair) (*types.MsgUpdateOrderBookPairResponse, error) {
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}
	if err := k.Keeper.UpdateOrderBookPair(ctx, msg); err != nil {
		return nil, err
	}
	return &types.MsgUpdateOrderBookPairResponse{}, nil
}

func (k msgServer) RemoveOrderBookPair(ctx context.Context, msg *types.MsgRemoveOrderBookPair) (*types.MsgRemoveOrderBookPairResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}
	removed, err := k.Keeper.RemoveOrderBookPair(ctx, msg.AssetInfos)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveOrderBookPairResponse{RemovedOrders: removed}, nil
}

func (k msgServer) SubmitOrder(ctx context.Context, msg *types.MsgSubmitOrder) (*types.MsgSubmitOrderResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidFunds.Wrapf("sender: %v", err)
	}
	return k.Keeper.SubmitOrder(ctx, sender, msg.Direction, msg.Assets)
}

func (k msgServer) SubmitMarketOrder(ctx context.Context, msg *types.MsgSubmitMarketOrder) (*types.MsgSubmitMarketOrderResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidFunds.Wrapf("sender: %v", err)
	}
	return k.Keeper.SubmitMarketOrder(ctx, sender, msg.AssetInfos, msg.Direction, msg.OfferAmount, msg.Slippage)
}

func (k msgServer) CancelOrder(ctx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidFunds.Wrapf("sender: %v", err)
	}
	return k.Keeper.CancelOrder(ctx, sender, msg.OrderID, msg.AssetInfos)
}

func (k msgServer) WhitelistTrader(ctx context.Context, msg *types.MsgWhitelistTrader) (*types.MsgWhitelistTraderResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}
	k.SetWhitelistedTrader(ctx, msg.Trader)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelistTrader,
			sdk.NewAttribute(types.AttributeKeyTrader, msg.Trader),
		),
	)
	return &types.MsgWhitelistTraderResponse{}, nil
}

func (k msgServer) RemoveTrader(ctx context.Context, msg *types.MsgRemoveTrader) (*types.MsgRemoveTraderResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}
	k.RemoveWhitelistedTrader(ctx, msg.Trader)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveTrader,
			sdk.NewAttribute(types.AttributeKeyTrader, msg.Trader),
		),
	)
	return &types.MsgRemoveTraderResponse{}, nil
}

func (k msgServer) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := k.requireAdminOrOperator(ctx, msg.Sender); err != nil {
		return nil, err
	}
	k.SetPaused(ctx, true)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(types.EventTypePause))
	return &types.MsgPauseResponse{}, nil
}

func (k msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := k.requireAdminOrOperator(ctx, msg.Sender); err != nil {
		return nil, err
	}
	k.SetPaused(ctx, false)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUnpause))
	return &types.MsgUnpauseResponse{}, nil
}

// WithdrawToken moves module-held funds to the admin. It exists to rescue
// stranded balances; escrow backing live orders is not checked here.
func (k msgServer) WithdrawToken(ctx context.Context, msg *types.MsgWithdrawToken) (*types.MsgWithdrawTokenResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}

	admin, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidFunds.Wrapf("sender: %v", err)
	}
	if err := k.payAsset(ctx, admin, msg.Asset); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawToken,
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Asset.String()),
		),
	)
	return &types.MsgWithdrawTokenResponse{}, nil
}

func (k msgServer) UpdateConfig(ctx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	if msg.RewardAddress != "" {
		params.RewardAddress = msg.RewardAddress
	}
	if msg.CommissionRate != nil {
		params.CommissionRate = *msg.CommissionRate
	}
	if err := k.SetParams(ctx, params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeyAdmin, params.Admin),
		),
	)
	return &types.MsgUpdateConfigResponse{}, nil
}

func (k msgServer) UpdateOperator(ctx context.Context, msg *types.MsgUpdateOperator) (*types.MsgUpdateOperatorResponse, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireAdmin(ctx, msg.Sender); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	params.Operator = msg.Operator
	if err := k.SetParams(ctx, params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateOperator,
			sdk.NewAttribute(types.AttributeKeyOperator, msg.Operator),
		),
	)
	return &types.MsgUpdateOperatorResponse{}, nil
}
