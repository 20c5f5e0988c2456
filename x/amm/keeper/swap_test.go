package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/amm/types"
)

func TestSwapConstantProduct(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, traderAddr, tokenOrai, 100_000)

	// Fee: 100,000 * 0.003 = 300, effective input 99,700.
	// Output: 99,700 * 4,000,000 / (1,000,000 + 99,700) = 362,644.
	amountOut, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, tokenUsdt,
		math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(362_644), amountOut)

	require.True(t, balanceOf(bank, traderAddr, tokenOrai).IsZero())
	require.Equal(t, amountOut, balanceOf(bank, traderAddr, tokenUsdt))

	// With no protocol fee address the whole fee stays in the reserves.
	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), updated.ReserveA)
	require.Equal(t, math.NewInt(3_637_356), updated.ReserveB)

	// The product never decreases across a swap.
	before := pool.ReserveA.Mul(pool.ReserveB)
	after := updated.ReserveA.Mul(updated.ReserveB)
	require.True(t, after.GTE(before))
}

func TestSwapReverseDirection(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, traderAddr, tokenUsdt, 400_000)

	// Fee: 400,000 * 0.003 = 1,200, effective input 398,800.
	// Output: 398,800 * 1,000,000 / (4,000,000 + 398,800) = 90,661.
	amountOut, err := k.Swap(ctx, traderAddr, pool.ID, tokenUsdt, tokenOrai,
		math.NewInt(400_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), amountOut)

	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(909_339), updated.ReserveA)
	require.Equal(t, math.NewInt(4_400_000), updated.ReserveB)
}

func TestSwapSlippageExceeded(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, traderAddr, tokenOrai, 100_000)

	_, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, tokenUsdt,
		math.NewInt(100_000), math.NewInt(362_645))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing moved.
	require.Equal(t, math.NewInt(100_000), balanceOf(bank, traderAddr, tokenOrai))
	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, pool.ReserveA, updated.ReserveA)
	require.Equal(t, pool.ReserveB, updated.ReserveB)
}

func TestSwapProtocolFee(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	params := k.GetParams(ctx)
	params.ProtocolFeeAddress = feeAddr.String()
	require.NoError(t, k.SetParams(ctx, params))

	fund(bank, traderAddr, tokenOrai, 100_000)

	// Fee 300 splits 250 to the pool and 50 to the protocol address.
	amountOut, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, tokenUsdt,
		math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(362_644), amountOut)

	require.Equal(t, math.NewInt(50), balanceOf(bank, feeAddr, tokenOrai))

	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_099_950), updated.ReserveA)
	require.Equal(t, math.NewInt(3_637_356), updated.ReserveB)
}

func TestSwapTokenNotInPool(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	fund(bank, traderAddr, tokenOrai, 100_000)

	_, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, "uatom",
		math.NewInt(100_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.Swap(ctx, traderAddr, pool.ID, "uatom", tokenUsdt,
		math.NewInt(100_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestSwapDrainRejected(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	// No finite input can take the whole opposing reserve.
	fund(bank, traderAddr, tokenOrai, 1_000_000_000_000)
	amountOut, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, tokenUsdt,
		math.NewInt(1_000_000_000_000), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, amountOut.LT(pool.ReserveB))
}

func TestSimulateSwap(t *testing.T) {
	k, bank, ctx, pool := setupPool(t)

	simulated, err := k.SimulateSwap(ctx, pool.ID, tokenOrai, tokenUsdt, math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(362_644), simulated)

	// Simulation does not touch the pool.
	updated, err := k.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, pool, updated)

	// And it matches the executed swap exactly.
	fund(bank, traderAddr, tokenOrai, 100_000)
	executed, err := k.Swap(ctx, traderAddr, pool.ID, tokenOrai, tokenUsdt,
		math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, simulated, executed)
}
