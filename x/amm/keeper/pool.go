package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/amm/types"
)

// NextPoolID allocates the next pool id.
func (k Keeper) NextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	last := uint64(0)
	if bz := store.Get(types.PoolCountKey); bz != nil {
		last = binary.BigEndian.Uint64(bz)
	}

	next := last + 1
	store.Set(types.PoolCountKey, types.PoolIDBytes(next))
	return next
}

// GetLastPoolID returns the highest allocated pool id.
func (k Keeper) GetLastPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetLastPoolID seeds the pool id counter, used on genesis import.
func (k Keeper) SetLastPoolID(ctx context.Context, poolID uint64) {
	k.getStore(ctx).Set(types.PoolCountKey, types.PoolIDBytes(poolID))
}

// GetPool retrieves a pool by id.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	bz := k.getStore(ctx).Get(types.PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, types.ErrInvalidState.Wrapf("failed to unmarshal pool %d: %v", poolID, err)
	}
	return pool, nil
}

// SetPool persists a pool record.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal pool %d: %v", pool.ID, err)
	}
	k.getStore(ctx).Set(types.PoolKey(pool.ID), bz)
	return nil
}

// GetPoolByTokens resolves a pool through the token-pair index. Token
// order does not matter.
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (types.Pool, error) {
	tokenA, tokenB = types.SortTokens(tokenA, tokenB)

	bz := k.getStore(ctx).Get(types.PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", tokenA, tokenB)
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

func (k Keeper) setPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) {
	tokenA, tokenB = types.SortTokens(tokenA, tokenB)
	k.getStore(ctx).Set(types.PoolByTokensKey(tokenA, tokenB), types.PoolIDBytes(poolID))
}

// IteratePools walks all pools in id order.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return types.ErrInvalidState.Wrapf("failed to unmarshal pool: %v", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// CreatePool registers a pool for a new token pair, pulls the initial
// reserves into the module account and mints the creator's shares using
// the geometric mean of the deposits.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (types.Pool, math.Int, error) {
	if tokenA == tokenB {
		return types.Pool{}, math.Int{}, types.ErrInvalidTokenPair.Wrap("cannot create pool with identical tokens")
	}
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return types.Pool{}, math.Int{}, types.ErrInvalidAmount.Wrap("initial amounts must be positive")
	}

	// Canonical token order; amounts follow their tokens.
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
		amountA, amountB = amountB, amountA
	}

	if k.getStore(ctx).Has(types.PoolByTokensKey(tokenA, tokenB)) {
		return types.Pool{}, math.Int{}, types.ErrPoolExists.Wrapf("pool for pair %s/%s already exists", tokenA, tokenB)
	}

	// Initial shares are sqrt(amountA * amountB), which makes the first
	// deposit's share price independent of the token ratio.
	shares, err := initialShares(amountA, amountB)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}

	params := k.GetParams(ctx)
	if shares.LT(params.MinLiquidity) {
		return types.Pool{}, math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"initial liquidity %s below minimum %s", shares, params.MinLiquidity)
	}

	deposit := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, deposit); err != nil {
		return types.Pool{}, math.Int{}, err
	}

	pool := types.Pool{
		ID:          k.NextPoolID(ctx),
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    amountA,
		ReserveB:    amountB,
		TotalShares: shares,
		Creator:     creator.String(),
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, math.Int{}, err
	}
	k.setPoolByTokens(ctx, tokenA, tokenB, pool.ID)

	if err := k.SetLiquidity(ctx, pool.ID, creator, shares); err != nil {
		return types.Pool{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreatePool,
		sdk.NewAttribute(types.AttributeKeyPoolID, formatUint(pool.ID)),
		sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
		sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
	))

	return pool, shares, nil
}

func initialShares(amountA, amountB math.Int) (math.Int, error) {
	product := amountA.Mul(amountB)
	sqrt, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
	if err != nil {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("failed to compute initial shares: %v", err)
	}
	return sqrt.TruncateInt(), nil
}
