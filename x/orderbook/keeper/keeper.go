package keeper

import (
	"context"
	"encoding/json"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// Keeper of the orderbook store
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          codec.BinaryCodec
	bankKeeper   types.BankKeeper
	tokenKeeper  types.TokenKeeper
	traderPolicy types.TraderPolicy
	metrics      *OrderbookMetrics
}

// NewKeeper creates a new orderbook Keeper instance. A nil traderPolicy
// falls back to the keeper's own whitelist store.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	tokenKeeper types.TokenKeeper,
	traderPolicy types.TraderPolicy,
) Keeper {
	k := Keeper{
		storeKey:     key,
		cdc:          cdc,
		bankKeeper:   bankKeeper,
		tokenKeeper:  tokenKeeper,
		traderPolicy: traderPolicy,
		metrics:      NewOrderbookMetrics(),
	}
	if k.traderPolicy == nil {
		k.traderPolicy = whitelistPolicy{k: &k}
	}
	return k
}

// getStore returns the KVStore for the orderbook module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the module escrow account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns the module configuration.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
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

// IsPaused reports whether trading is halted.
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

// lockAsset escrows an offer asset from a trader into the module account.
func (k Keeper) lockAsset(ctx context.Context, from sdk.AccAddress, asset types.Asset) error {
	if asset.Info.IsNative() {
		coin := sdk.NewCoin(asset.Info.Denom, asset.Amount)
		return k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, sdk.NewCoins(coin))
	}
	return k.tokenKeeper.Transfer(ctx, asset.Info.ContractAddr, from, k.GetModuleAddress(), asset.Amount)
}

// payAsset releases module-held funds to a recipient.
func (k Keeper) payAsset(ctx context.Context, to sdk.AccAddress, asset types.Asset) error {
	if asset.Info.IsNative() {
		coin := sdk.NewCoin(asset.Info.Denom, asset.Amount)
		return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, sdk.NewCoins(coin))
	}
	return k.tokenKeeper.Transfer(ctx, asset.Info.ContractAddr, k.GetModuleAddress(), to, asset.Amount)
}

// whitelistPolicy is the default TraderPolicy backed by the keeper's
// whitelist store.
type whitelistPolicy struct {
	k *Keeper
}

func (p whitelistPolicy) IsExemptFromFee(ctx context.Context, addr string) bool {
	return p.k.IsWhitelistedTrader(ctx, addr)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
