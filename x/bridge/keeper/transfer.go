package keeper

import (
	"context"
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// SendTransfer escrows the sender's tokens and emits an IBC packet on
// the given channel. The channel balance is updated optimistically; an
// error acknowledgement or timeout reverses it.
func (k Keeper) SendTransfer(
	ctx sdk.Context,
	sender sdk.AccAddress,
	channelID, receiver string,
	denom string,
	amount math.Int,
	timeoutSeconds uint64,
	memo string,
) (uint64, error) {
	if k.IsPaused(ctx) {
		return 0, types.ErrPaused
	}
	if _, err := k.checkAllowed(ctx, denom); err != nil {
		return 0, err
	}
	if _, err := k.GetChannelInfo(ctx, channelID); err != nil {
		return 0, err
	}

	escrow := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, escrow); err != nil {
		return 0, err
	}
	if err := k.increaseChannelBalance(ctx, channelID, denom, amount); err != nil {
		return 0, err
	}

	packetData := types.TransferPacketData{
		Denom:    denom,
		Amount:   amount,
		Sender:   sender.String(),
		Receiver: receiver,
		Memo:     memo,
	}
	data, err := packetData.GetBytes()
	if err != nil {
		return 0, types.ErrInvalidPacket.Wrapf("failed to encode packet: %v", err)
	}

	chanCap, found := k.GetChannelCapability(ctx, types.PortID, channelID)
	if !found {
		return 0, channeltypes.ErrChannelCapabilityNotFound.Wrapf("port %s, channel %s", types.PortID, channelID)
	}

	if timeoutSeconds == 0 {
		timeoutSeconds = k.GetParams(ctx).DefaultTimeoutSeconds
	}
	timeoutTimestamp := uint64(ctx.BlockTime().Add(time.Duration(timeoutSeconds) * time.Second).UnixNano())

	sequence, err := k.channelKeeper.SendPacket(
		ctx,
		chanCap,
		types.PortID,
		channelID,
		clienttypes.ZeroHeight(),
		timeoutTimestamp,
		data,
	)
	if err != nil {
		return 0, err
	}

	if err := k.setPendingTransfer(ctx, types.PendingTransfer{
		ChannelID: channelID,
		Sequence:  sequence,
		Sender:    sender.String(),
		Denom:     denom,
		Amount:    amount,
	}); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransfer,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		sdk.NewAttribute(types.AttributeKeySequence, formatUint(sequence)),
	))

	return sequence, nil
}

// OnRecvPacket releases previously sent tokens to the packet receiver.
// The transfer fails (error acknowledgement, no state change) when the
// bridge is paused, the token is not allowed, or the channel never sent
// enough of the denom out.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet, data types.TransferPacketData) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused
	}
	if _, err := k.checkAllowed(ctx, data.Denom); err != nil {
		return err
	}

	receiver, err := sdk.AccAddressFromBech32(data.Receiver)
	if err != nil {
		return types.ErrInvalidPacket.Wrapf("invalid receiver address: %v", err)
	}

	if err := k.reduceChannelBalance(ctx, packet.DestinationChannel, data.Denom, data.Amount); err != nil {
		return err
	}

	release := sdk.NewCoins(sdk.NewCoin(data.Denom, data.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, release); err != nil {
		// Put the outstanding balance back so state stays consistent
		// with the escrow account.
		if undoErr := k.increaseChannelBalance(ctx, packet.DestinationChannel, data.Denom, data.Amount); undoErr != nil {
			return undoErr
		}
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReceive,
		sdk.NewAttribute(types.AttributeKeyReceiver, data.Receiver),
		sdk.NewAttribute(types.AttributeKeyDenom, data.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, data.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyChannelID, packet.DestinationChannel),
	))

	return nil
}

// OnAcknowledgementPacket finalizes or reverses an outbound transfer
// depending on the acknowledgement outcome.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet channeltypes.Packet, ack channeltypes.Acknowledgement) error {
	if ack.Success() {
		// The transfer is settled; the pending record is no longer
		// needed for refunds.
		k.deletePendingTransfer(ctx, packet.SourceChannel, packet.Sequence)
		return nil
	}
	return k.refundTransfer(ctx, packet.SourceChannel, packet.Sequence)
}

// OnTimeoutPacket reverses an outbound transfer whose packet expired.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	return k.refundTransfer(ctx, packet.SourceChannel, packet.Sequence)
}

// refundTransfer undoes the optimistic balance update and returns the
// escrowed tokens to the original sender.
func (k Keeper) refundTransfer(ctx sdk.Context, channelID string, sequence uint64) error {
	pending, err := k.getPendingTransfer(ctx, channelID, sequence)
	if err != nil {
		return err
	}

	sender, err := sdk.AccAddressFromBech32(pending.Sender)
	if err != nil {
		return types.ErrInvalidState.Wrapf("invalid pending sender address: %v", err)
	}

	if err := k.reduceChannelBalance(ctx, channelID, pending.Denom, pending.Amount); err != nil {
		return err
	}

	refund := sdk.NewCoins(sdk.NewCoin(pending.Denom, pending.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sender, refund); err != nil {
		return err
	}

	k.deletePendingTransfer(ctx, channelID, sequence)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRefund,
		sdk.NewAttribute(types.AttributeKeySender, pending.Sender),
		sdk.NewAttribute(types.AttributeKeyDenom, pending.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, pending.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		sdk.NewAttribute(types.AttributeKeySequence, formatUint(sequence)),
	))

	return nil
}

// getPendingTransfer loads the refund record of an unacknowledged
// transfer.
func (k Keeper) getPendingTransfer(ctx context.Context, channelID string, sequence uint64) (types.PendingTransfer, error) {
	bz := k.getStore(ctx).Get(types.PendingKey(channelID, sequence))
	if bz == nil {
		return types.PendingTransfer{}, types.ErrPendingNotFound.Wrapf("channel %s sequence %d", channelID, sequence)
	}

	var pending types.PendingTransfer
	if err := json.Unmarshal(bz, &pending); err != nil {
		return types.PendingTransfer{}, types.ErrInvalidState.Wrapf("failed to unmarshal pending transfer: %v", err)
	}
	return pending, nil
}

func (k Keeper) setPendingTransfer(ctx context.Context, pending types.PendingTransfer) error {
	bz, err := json.Marshal(pending)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal pending transfer: %v", err)
	}
	k.getStore(ctx).Set(types.PendingKey(pending.ChannelID, pending.Sequence), bz)
	return nil
}

func (k Keeper) deletePendingTransfer(ctx context.Context, channelID string, sequence uint64) {
	k.getStore(ctx).Delete(types.PendingKey(channelID, sequence))
}

// IteratePendingTransfers walks all unacknowledged outbound transfers.
func (k Keeper) IteratePendingTransfers(ctx context.Context, cb func(pending types.PendingTransfer) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PendingKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pending types.PendingTransfer
		if err := json.Unmarshal(iterator.Value(), &pending); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal pending transfer: %v", err)
		}
		if cb(pending) {
			break
		}
	}
	return nil
}
