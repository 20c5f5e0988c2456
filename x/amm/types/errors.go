package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/amm sentinel errors
var (
	ErrPoolExists            = errorsmod.Register(ModuleName, 2, "pool already exists")
	ErrPoolNotFound          = errorsmod.Register(ModuleName, 3, "pool not found")
	ErrInvalidTokenPair      = errorsmod.Register(ModuleName, 4, "invalid token pair")
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientLiquidity = errorsmod.Register(ModuleName, 6, "insufficient liquidity")
	ErrInsufficientShares    = errorsmod.Register(ModuleName, 7, "insufficient shares")
	ErrSlippageExceeded      = errorsmod.Register(ModuleName, 8, "slippage tolerance exceeded")
	ErrInvalidPoolState      = errorsmod.Register(ModuleName, 9, "invalid pool state")
	ErrInvalidState          = errorsmod.Register(ModuleName, 10, "invalid module state")
)
