package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
)

// GetLiquidity returns a provider's share position in a pool. A missing
// position reads as zero.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	bz := k.getStore(ctx).Get(types.LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.Int{}, types.ErrInvalidState.Wrapf("failed to unmarshal shares: %v", err)
	}
	return shares, nil
}

// SetLiquidity writes a provider's share position. Zero shares delete
// the record.
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(types.LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal shares: %v", err)
	}
	store.Set(types.LiquidityKey(poolID, provider), bz)
	return nil
}

// IterateLiquidityByPool walks all share positions of one pool.
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := types.LiquidityByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal shares: %v", err)
		}

		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// AddLiquidity deposits both tokens in proportion to the pool's current
// reserves. The deposit is capped at the smaller side: the other
// token's amount is scaled down to keep the reserve ratio, and shares
// are minted pro rata against the scaled amounts.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (shares, usedA, usedB math.Int, err error) {
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if pool.TotalShares.IsZero() || pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidPoolState.Wrap("pool has no reserves")
	}

	// amountA/reserveA == amountB/reserveB must hold for the accepted
	// deposit; the surplus side is reduced.
	optimalB := amountA.Mul(pool.ReserveB).Quo(pool.ReserveA)
	if optimalB.LTE(amountB) {
		usedA, usedB = amountA, optimalB
	} else {
		usedA = amountB.Mul(pool.ReserveA).Quo(pool.ReserveB)
		usedB = amountB
	}
	if !usedA.IsPositive() || !usedB.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("deposit too small for pool ratio")
	}

	// Pro-rata mint, truncated in the pool's favor.
	shares = usedA.Mul(pool.TotalShares).Quo(pool.ReserveA)
	if shares.IsZero() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrap("deposit mints zero shares")
	}

	deposit := sdk.NewCoins(sdk.NewCoin(pool.TokenA, usedA), sdk.NewCoin(pool.TokenB, usedB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	pool.ReserveA = pool.ReserveA.Add(usedA)
	pool.ReserveB = pool.ReserveB.Add(usedB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	current, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if err := k.SetLiquidity(ctx, poolID, provider, current.Add(shares)); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddLiquidity,
		sdk.NewAttribute(types.AttributeKeyPoolID, formatUint(poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, usedA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, usedB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	return shares, usedA, usedB, nil
}

// RemoveLiquidity burns shares for the provider's proportional part of
// both reserves.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (amountA, amountB math.Int, err error) {
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.TotalShares.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInvalidPoolState.Wrap("pool has zero total shares")
	}

	position, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if shares.GT(position) {
		return math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf("have %s, need %s", position, shares)
	}

	amountA = shares.Mul(pool.ReserveA).Quo(pool.TotalShares)
	amountB = shares.Mul(pool.ReserveB).Quo(pool.TotalShares)
	if amountA.IsZero() || amountB.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("withdrawal amounts too small")
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.SetLiquidity(ctx, poolID, provider, position.Sub(shares)); err != nil {
		return math.Int{}, math.Int{}, err
	}

	withdrawal := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, withdrawal); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveLiquidity,
		sdk.NewAttribute(types.AttributeKeyPoolID, formatUint(poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	return amountA, amountB, nil
}
