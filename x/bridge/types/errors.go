package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrPaused             = errorsmod.Register(ModuleName, 2, "bridge is paused")
	ErrNotOnAllowList     = errorsmod.Register(ModuleName, 3, "token not on allow list")
	ErrCannotLowerGas     = errorsmod.Register(ModuleName, 4, "gas limit can only be raised")
	ErrChannelNotFound    = errorsmod.Register(ModuleName, 5, "channel not found")
	ErrInvalidPacket      = errorsmod.Register(ModuleName, 6, "invalid packet")
	ErrInsufficientFunds  = errorsmod.Register(ModuleName, 7, "insufficient channel balance")
	ErrPendingNotFound    = errorsmod.Register(ModuleName, 8, "pending transfer not found")
	ErrUnauthorized       = errorsmod.Register(ModuleName, 9, "unauthorized")
	ErrInvalidState       = errorsmod.Register(ModuleName, 10, "invalid stored state")
	ErrInvalidChannelInfo = errorsmod.Register(ModuleName, 11, "invalid channel info")
)
