package types

import (
	"cosmossdk.io/errors"
)

// Orderbook module sentinel errors
var (
	ErrUnauthorized            = errors.Register(ModuleName, 1, "unauthorized")
	ErrPaused                  = errors.Register(ModuleName, 2, "contract is paused")
	ErrInvalidAsset            = errors.Register(ModuleName, 3, "invalid asset")
	ErrZeroAmount              = errors.Register(ModuleName, 4, "amount must not be zero")
	ErrOrderBookAlreadyExists  = errors.Register(ModuleName, 5, "order book already exists")
	ErrOrderBookNotFound       = errors.Register(ModuleName, 6, "order book not found")
	ErrOrderNotFound           = errors.Register(ModuleName, 7, "order not found")
	ErrInvalidFunds            = errors.Register(ModuleName, 8, "sent funds do not match declared assets")
	ErrQuoteBelowMinimum       = errors.Register(ModuleName, 9, "quote amount below pair minimum")
	ErrSlippageTooLarge        = errors.Register(ModuleName, 10, "slippage must be less than 1")
	ErrSpreadTooLarge          = errors.Register(ModuleName, 11, "spread must be less than 1")
	ErrCannotCreateMarketOrder = errors.Register(ModuleName, 12, "cannot create market order: no resting liquidity")
	ErrNoMatchedPrice          = errors.Register(ModuleName, 13, "no matched price")
	ErrFillUnderflow           = errors.Register(ModuleName, 14, "fill amount underflow")
	ErrInvalidState            = errors.Register(ModuleName, 15, "invalid stored state")
	ErrMidPriceUnavailable     = errors.Register(ModuleName, 16, "mid price requires both sides of the book")
	ErrPriceOutOfRange         = errors.Register(ModuleName, 17, "price outside the representable tick range")
)
