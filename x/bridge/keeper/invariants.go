package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/bridge/types"
)

// RegisterInvariants registers the bridge module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-backing", EscrowBackingInvariant(k))
}

// EscrowBackingInvariant checks that the escrow account holds at least
// the outstanding balance of every channel per denom.
func EscrowBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := sdk.NewCoins()
		err := k.IterateChannels(ctx, func(info types.ChannelInfo) bool {
			innerErr := k.IterateChannelStates(ctx, info.ChannelID, func(denom string, state types.ChannelState) bool {
				if state.Outstanding.IsPositive() {
					required = required.Add(sdk.NewCoin(denom, state.Outstanding))
				}
				return false
			})
			return innerErr != nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "escrow-backing",
				fmt.Sprintf("failed to iterate channels: %v", err)), true
		}

		held := k.bankKeeper.SpendableCoins(ctx, k.GetModuleAddress())
		if !held.IsAllGTE(required) {
			return sdk.FormatInvariant(types.ModuleName, "escrow-backing",
				fmt.Sprintf("escrow underfunded: holds %s, outstanding requires %s", held, required)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "escrow-backing", "all outstanding balances backed"), false
	}
}
