package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module used for native coin escrow
// and settlement payouts.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// TokenKeeper moves balances held by fungible token contracts. The token
// standard itself is outside this module; it is consumed as an opaque
// transfer capability.
type TokenKeeper interface {
	Transfer(ctx context.Context, contractAddr string, from, to sdk.AccAddress, amount math.Int) error
}

// TraderPolicy decides whether a trader is exempt from commission. The
// keeper's default implementation reads the whitelist store; the legacy
// engine variant used an always-false policy.
type TraderPolicy interface {
	IsExemptFromFee(ctx context.Context, addr string) bool
}
