package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
)

// Swap trades an exact input amount against a pool using the constant
// product formula. The swap fee is taken from the input: the LP part
// stays in the reserves, the protocol part is forwarded to the
// configured fee address. Fails if the output falls below minAmountOut.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if tokenIn == tokenOut {
		return math.Int{}, types.ErrInvalidTokenPair.Wrap("cannot swap identical tokens")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if tokenOut != pool.TokenA && tokenOut != pool.TokenB {
		return math.Int{}, types.ErrInvalidTokenPair.Wrapf(
			"token %s not in pool %d (%s/%s)", tokenOut, poolID, pool.TokenA, pool.TokenB)
	}
	reserveIn, reserveOut, err := pool.ReservesFor(tokenIn)
	if err != nil {
		return math.Int{}, err
	}

	params := k.GetParams(ctx)
	feeAmount, protocolFee := splitFee(amountIn, params)

	effectiveIn := amountIn.Sub(feeAmount)
	if !effectiveIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap amount too small after fees")
	}

	amountOut, err := constantProductOut(effectiveIn, reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf("expected at least %s, got %s", minAmountOut, amountOut)
	}

	coinIn := sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coinIn); err != nil {
		return math.Int{}, err
	}
	coinOut := sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, coinOut); err != nil {
		return math.Int{}, err
	}

	// The LP fee share stays in the reserves; only the protocol part
	// leaves the pool.
	retainedIn := amountIn.Sub(protocolFee)
	if tokenIn == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Add(retainedIn)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(retainedIn)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	if protocolFee.IsPositive() && params.ProtocolFeeAddress != "" {
		feeAddr, err := sdk.AccAddressFromBech32(params.ProtocolFeeAddress)
		if err != nil {
			return math.Int{}, types.ErrInvalidState.Wrapf("invalid protocol fee address: %v", err)
		}
		feeCoins := sdk.NewCoins(sdk.NewCoin(tokenIn, protocolFee))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, feeAddr, feeCoins); err != nil {
			return math.Int{}, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeyPoolID, formatUint(poolID)),
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
		sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		sdk.NewAttribute(types.AttributeKeyFee, feeAmount.String()),
	))

	return amountOut, nil
}

// SimulateSwap computes the output of a swap without touching state.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if tokenIn == tokenOut {
		return math.Int{}, types.ErrInvalidTokenPair.Wrap("cannot swap identical tokens")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if tokenOut != pool.TokenA && tokenOut != pool.TokenB {
		return math.Int{}, types.ErrInvalidTokenPair.Wrapf(
			"token %s not in pool %d (%s/%s)", tokenOut, poolID, pool.TokenA, pool.TokenB)
	}
	reserveIn, reserveOut, err := pool.ReservesFor(tokenIn)
	if err != nil {
		return math.Int{}, err
	}

	feeAmount, _ := splitFee(amountIn, k.GetParams(ctx))
	effectiveIn := amountIn.Sub(feeAmount)
	if !effectiveIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap amount too small after fees")
	}

	return constantProductOut(effectiveIn, reserveIn, reserveOut)
}

// splitFee returns the total swap fee and the protocol's slice of it.
func splitFee(amountIn math.Int, params types.Params) (feeAmount, protocolFee math.Int) {
	feeAmount = math.LegacyNewDecFromInt(amountIn).Mul(params.SwapFee).TruncateInt()
	lpFee := math.LegacyNewDecFromInt(feeAmount).Mul(params.LpFeeShare).TruncateInt()
	protocolFee = feeAmount.Sub(lpFee)
	if params.ProtocolFeeAddress == "" {
		protocolFee = math.ZeroInt()
	}
	return feeAmount, protocolFee
}

// constantProductOut solves x*y=k for the output amount, truncating in
// the pool's favor.
func constantProductOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	numerator := amountIn.Mul(reserveOut)
	denominator := reserveIn.Add(amountIn)
	amountOut := numerator.Quo(denominator)

	if amountOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("output amount too small")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}
