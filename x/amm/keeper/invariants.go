package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
)

// RegisterInvariants registers the amm module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// ReserveBackingInvariant checks that the module account holds at least
// the sum of all pool reserves per denom.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := sdk.NewCoins()
		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			required = required.Add(
				sdk.NewCoin(pool.TokenA, pool.ReserveA),
				sdk.NewCoin(pool.TokenB, pool.ReserveB),
			)
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
				fmt.Sprintf("failed to iterate pools: %v", err)), true
		}

		held := k.bankKeeper.SpendableCoins(ctx, k.GetModuleAddress())
		if !held.IsAllGTE(required) {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
				fmt.Sprintf("module account underfunded: holds %s, reserves require %s", held, required)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", "all pool reserves backed"), false
	}
}
