package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// GetChannelInfo retrieves a channel record.
func (k Keeper) GetChannelInfo(ctx context.Context, channelID string) (types.ChannelInfo, error) {
	bz := k.getStore(ctx).Get(types.ChannelInfoKey(channelID))
	if bz == nil {
		return types.ChannelInfo{}, types.ErrChannelNotFound.Wrapf("channel %s not registered", channelID)
	}

	var info types.ChannelInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.ChannelInfo{}, types.ErrInvalidState.Wrapf("failed to unmarshal channel %s: %v", channelID, err)
	}
	return info, nil
}

// SetChannelInfo persists a channel record.
func (k Keeper) SetChannelInfo(ctx context.Context, info types.ChannelInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(info)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal channel %s: %v", info.ChannelID, err)
	}
	k.getStore(ctx).Set(types.ChannelInfoKey(info.ChannelID), bz)
	return nil
}

// RegisterChannel writes the channel record produced by a completed
// handshake. An already-registered channel keeps its existing record
// unless the counterparty channel id was previously unknown.
func (k Keeper) RegisterChannel(ctx context.Context, portID, channelID, counterpartyChannelID string) error {
	if existing, err := k.GetChannelInfo(ctx, channelID); err == nil {
		if existing.CounterpartyChannelID != "" || counterpartyChannelID == "" {
			return nil
		}
		existing.CounterpartyChannelID = counterpartyChannelID
		return k.SetChannelInfo(ctx, existing)
	}

	return k.SetChannelInfo(ctx, types.ChannelInfo{
		ChannelID:             channelID,
		PortID:                portID,
		CounterpartyChannelID: counterpartyChannelID,
		CounterpartyPortID:    types.PortID,
	})
}

// IterateChannels walks all registered channels.
func (k Keeper) IterateChannels(ctx context.Context, cb func(info types.ChannelInfo) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ChannelInfoKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var info types.ChannelInfo
		if err := json.Unmarshal(iterator.Value(), &info); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal channel: %v", err)
		}
		if cb(info) {
			break
		}
	}
	return nil
}

// GetChannelState returns a channel's balance in one denom. A missing
// record reads as zero.
func (k Keeper) GetChannelState(ctx context.Context, channelID, denom string) (types.ChannelState, error) {
	bz := k.getStore(ctx).Get(types.ChannelStateKey(channelID, denom))
	if bz == nil {
		return types.NewChannelState(), nil
	}

	var state types.ChannelState
	if err := json.Unmarshal(bz, &state); err != nil {
		return types.ChannelState{}, types.ErrInvalidState.Wrapf(
			"failed to unmarshal channel state %s/%s: %v", channelID, denom, err)
	}
	return state, nil
}

// SetChannelState writes a channel's balance in one denom.
func (k Keeper) SetChannelState(ctx context.Context, channelID, denom string, state types.ChannelState) error {
	bz, err := json.Marshal(state)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal channel state: %v", err)
	}
	k.getStore(ctx).Set(types.ChannelStateKey(channelID, denom), bz)
	return nil
}

// IterateChannelStates walks one channel's balances by denom.
func (k Keeper) IterateChannelStates(ctx context.Context, channelID string, cb func(denom string, state types.ChannelState) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := types.ChannelStatePrefix(channelID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var state types.ChannelState
		if err := json.Unmarshal(iterator.Value(), &state); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal channel state: %v", err)
		}

		denom := string(iterator.Key()[len(prefix):])
		if cb(denom, state) {
			break
		}
	}
	return nil
}

// increaseChannelBalance records an outbound amount optimistically,
// before the packet is acknowledged.
func (k Keeper) increaseChannelBalance(ctx context.Context, channelID, denom string, amount math.Int) error {
	state, err := k.GetChannelState(ctx, channelID, denom)
	if err != nil {
		return err
	}

	state.Outstanding = state.Outstanding.Add(amount)
	state.TotalSent = state.TotalSent.Add(amount)
	return k.SetChannelState(ctx, channelID, denom, state)
}

// reduceChannelBalance reverses an outbound amount on refund, or
// consumes outstanding balance on an inbound transfer.
func (k Keeper) reduceChannelBalance(ctx context.Context, channelID, denom string, amount math.Int) error {
	state, err := k.GetChannelState(ctx, channelID, denom)
	if err != nil {
		return err
	}

	if state.Outstanding.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf(
			"channel %s holds %s %s outstanding, need %s", channelID, state.Outstanding, denom, amount)
	}
	state.Outstanding = state.Outstanding.Sub(amount)
	return k.SetChannelState(ctx, channelID, denom, state)
}
