package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// IsWhitelistedTrader reports whether an address trades commission-free.
func (k Keeper) IsWhitelistedTrader(ctx context.Context, addr string) bool {
	return k.getStore(ctx).Has(types.WhitelistKey(addr))
}

// SetWhitelistedTrader marks an address as exempt from commission.
func (k Keeper) SetWhitelistedTrader(ctx context.Context, addr string) {
	k.getStore(ctx).Set(types.WhitelistKey(addr), []byte{1})
}

// RemoveWhitelistedTrader drops an address from the whitelist.
func (k Keeper) RemoveWhitelistedTrader(ctx context.Context, addr string) {
	k.getStore(ctx).Delete(types.WhitelistKey(addr))
}

// GetWhitelistedTraders returns all exempt addresses.
func (k Keeper) GetWhitelistedTraders(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.WhitelistKeyPrefix)
	defer iterator.Close()

	var traders []string
	for ; iterator.Valid(); iterator.Next() {
		traders = append(traders, string(iterator.Key()[len(types.WhitelistKeyPrefix):]))
	}
	return traders
}
