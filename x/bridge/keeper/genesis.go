package keeper

import (
	"context"
	"encoding/json"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// InitGenesis initializes the bridge module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetPaused(ctx, genState.Paused)

	for _, info := range genState.Channels {
		if err := k.SetChannelInfo(ctx, info); err != nil {
			return err
		}
	}

	for _, bal := range genState.Balances {
		if err := k.SetChannelState(ctx, bal.ChannelID, bal.Denom, bal.ChannelState); err != nil {
			return err
		}
	}

	for _, allow := range genState.Allowed {
		bz, err := json.Marshal(allow)
		if err != nil {
			return types.ErrInvalidState.Wrapf("failed to marshal allowlist entry: %v", err)
		}
		k.getStore(ctx).Set(types.AllowKey(allow.Denom), bz)
	}

	for _, pending := range genState.Pending {
		if err := k.setPendingTransfer(ctx, pending); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the bridge module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.GenesisState{
		Params: k.GetParams(ctx),
		Paused: k.IsPaused(ctx),
	}

	err := k.IterateChannels(ctx, func(info types.ChannelInfo) bool {
		genState.Channels = append(genState.Channels, info)
		return false
	})
	if err != nil {
		return nil, err
	}

	for _, info := range genState.Channels {
		err := k.IterateChannelStates(ctx, info.ChannelID, func(denom string, state types.ChannelState) bool {
			genState.Balances = append(genState.Balances, types.GenesisBalance{
				ChannelID:    info.ChannelID,
				Denom:        denom,
				ChannelState: state,
			})
			return false
		})
		if err != nil {
			return nil, err
		}
	}

	err = k.IterateAllowed(ctx, func(info types.AllowInfo) bool {
		genState.Allowed = append(genState.Allowed, info)
		return false
	})
	if err != nil {
		return nil, err
	}

	err = k.IteratePendingTransfers(ctx, func(pending types.PendingTransfer) bool {
		genState.Pending = append(genState.Pending, pending)
		return false
	})
	if err != nil {
		return nil, err
	}

	return &genState, nil
}
