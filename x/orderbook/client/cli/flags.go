package cli

// Flag names shared by the orderbook commands.
const (
	flagSpread    = "spread"
	flagSlippage  = "slippage"
	flagDirection = "direction"
	flagBidder    = "bidder"
	flagPrice     = "price"
	flagLimit     = "limit"
)
