package keeper

import (
	"context"
	"encoding/json"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	capabilitytypes "github.com/cosmos/ibc-go/modules/capability/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// Keeper of the bridge store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.BinaryCodec
	bankKeeper    types.BankKeeper
	channelKeeper types.ChannelKeeper
	scopedKeeper  types.ScopedKeeper
}

// NewKeeper creates a new bridge Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	channelKeeper types.ChannelKeeper,
	scopedKeeper types.ScopedKeeper,
) Keeper {
	return Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		channelKeeper: channelKeeper,
		scopedKeeper:  scopedKeeper,
	}
}

// getStore returns the KVStore for the bridge module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the escrow account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// ClaimCapability claims a channel capability for later authentication.
func (k Keeper) ClaimCapability(ctx sdk.Context, cap *capabilitytypes.Capability, name string) error {
	return k.scopedKeeper.ClaimCapability(ctx, cap, name)
}

// GetChannelCapability retrieves a previously claimed channel capability.
func (k Keeper) GetChannelCapability(ctx sdk.Context, portID, channelID string) (*capabilitytypes.Capability, bool) {
	return k.scopedKeeper.GetCapability(ctx, host.ChannelCapabilityPath(portID, channelID))
}

// GetParams returns the module configuration.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(types.ErrInvalidState.Wrapf("failed to unmarshal params: %v", err))
	}
	return params
}

// SetParams stores the module configuration.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal params: %v", err)
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// IsPaused reports whether bridge transfers are halted.
func (k Keeper) IsPaused(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.PausedKey)
}

// SetPaused flips the pause flag.
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(types.PausedKey, []byte{1})
	} else {
		store.Delete(types.PausedKey)
	}
}

// requireAdmin checks the sender against the configured admin.
func (k Keeper) requireAdmin(ctx context.Context, sender string) error {
	params := k.GetParams(ctx)
	if params.Admin == "" || sender != params.Admin {
		return types.ErrUnauthorized.Wrapf("sender %s is not the bridge admin", sender)
	}
	return nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
