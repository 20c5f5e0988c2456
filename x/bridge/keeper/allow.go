package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// GetAllowInfo returns a token's allowlist entry.
func (k Keeper) GetAllowInfo(ctx context.Context, denom string) (types.AllowInfo, bool) {
	bz := k.getStore(ctx).Get(types.AllowKey(denom))
	if bz == nil {
		return types.AllowInfo{}, false
	}

	var info types.AllowInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		panic(types.ErrInvalidState.Wrapf("failed to unmarshal allowlist entry %s: %v", denom, err))
	}
	return info, true
}

// AllowToken adds a token to the allowlist or updates its gas limit.
// An existing limit can only be raised: zero means unlimited, so a
// zero-to-nonzero change and any decrease are both rejected.
func (k Keeper) AllowToken(ctx context.Context, denom string, gasLimit uint64) error {
	if old, ok := k.GetAllowInfo(ctx, denom); ok {
		if old.GasLimit == 0 && gasLimit != 0 {
			return types.ErrCannotLowerGas.Wrapf("token %s has no gas limit", denom)
		}
		if old.GasLimit != 0 && gasLimit != 0 && gasLimit < old.GasLimit {
			return types.ErrCannotLowerGas.Wrapf("token %s limit %d > %d", denom, old.GasLimit, gasLimit)
		}
	}

	info := types.AllowInfo{Denom: denom, GasLimit: gasLimit}
	bz, err := json.Marshal(info)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal allowlist entry: %v", err)
	}
	k.getStore(ctx).Set(types.AllowKey(denom), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAllowToken,
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyGasLimit, formatUint(gasLimit)),
	))
	return nil
}

// checkAllowed verifies a token may cross the bridge and resolves its
// effective gas limit.
func (k Keeper) checkAllowed(ctx context.Context, denom string) (uint64, error) {
	info, ok := k.GetAllowInfo(ctx, denom)
	if !ok {
		return 0, types.ErrNotOnAllowList.Wrapf("token %s", denom)
	}
	if info.GasLimit != 0 {
		return info.GasLimit, nil
	}
	return k.GetParams(ctx).DefaultGasLimit, nil
}

// IterateAllowed walks all allowlist entries.
func (k Keeper) IterateAllowed(ctx context.Context, cb func(info types.AllowInfo) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AllowKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var info types.AllowInfo
		if err := json.Unmarshal(iterator.Value(), &info); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal allowlist entry: %v", err)
		}
		if cb(info) {
			break
		}
	}
	return nil
}
