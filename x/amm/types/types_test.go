package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/amm/types"
)

func testAddr(i byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20)).String()
}

func validPool() types.Pool {
	return types.Pool{
		ID:          1,
		TokenA:      "orai",
		TokenB:      "uusdt",
		ReserveA:    math.NewInt(1_000_000),
		ReserveB:    math.NewInt(4_000_000),
		TotalShares: math.NewInt(2_000_000),
		Creator:     testAddr(0x01),
	}
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, validPool().Validate())

	pool := validPool()
	pool.ID = 0
	require.Error(t, pool.Validate())

	pool = validPool()
	pool.TokenA, pool.TokenB = pool.TokenB, pool.TokenA
	require.Error(t, pool.Validate())

	pool = validPool()
	pool.ReserveA = math.NewInt(-1)
	require.Error(t, pool.Validate())

	// Zero shares with live reserves is inconsistent.
	pool = validPool()
	pool.TotalShares = math.ZeroInt()
	require.Error(t, pool.Validate())

	// A fully drained pool is valid.
	pool = validPool()
	pool.ReserveA = math.ZeroInt()
	pool.ReserveB = math.ZeroInt()
	pool.TotalShares = math.ZeroInt()
	require.NoError(t, pool.Validate())
}

func TestPoolSpotPrice(t *testing.T) {
	pool := validPool()

	// 4,000,000 quote per 1,000,000 base.
	price, err := pool.SpotPrice("orai")
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(4), price)

	inverse, err := pool.SpotPrice("uusdt")
	require.NoError(t, err)
	require.Equal(t, math.LegacyMustNewDecFromStr("0.25"), inverse)

	_, err = pool.SpotPrice("uatom")
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestSortTokens(t *testing.T) {
	a, b := types.SortTokens("uusdt", "orai")
	require.Equal(t, "orai", a)
	require.Equal(t, "uusdt", b)

	a, b = types.SortTokens("orai", "uusdt")
	require.Equal(t, "orai", a)
	require.Equal(t, "uusdt", b)
}

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	msg := types.MsgCreatePool{
		Creator: testAddr(0x01),
		TokenA:  "orai",
		TokenB:  "uusdt",
		AmountA: math.NewInt(1_000_000),
		AmountB: math.NewInt(4_000_000),
	}
	require.NoError(t, msg.ValidateBasic())

	bad := msg
	bad.Creator = "not-an-address"
	require.Error(t, bad.ValidateBasic())

	bad = msg
	bad.TokenB = bad.TokenA
	require.Error(t, bad.ValidateBasic())

	bad = msg
	bad.AmountA = math.ZeroInt()
	require.Error(t, bad.ValidateBasic())
}

func TestMsgSwapValidateBasic(t *testing.T) {
	msg := types.MsgSwap{
		Trader:       testAddr(0x01),
		PoolID:       1,
		TokenIn:      "orai",
		TokenOut:     "uusdt",
		AmountIn:     math.NewInt(100_000),
		MinAmountOut: math.ZeroInt(),
	}
	require.NoError(t, msg.ValidateBasic())

	bad := msg
	bad.PoolID = 0
	require.Error(t, bad.ValidateBasic())

	bad = msg
	bad.MinAmountOut = math.NewInt(-1)
	require.Error(t, bad.ValidateBasic())

	bad = msg
	bad.AmountIn = math.Int{}
	require.Error(t, bad.ValidateBasic())
}

func TestMsgLiquidityValidateBasic(t *testing.T) {
	add := types.MsgAddLiquidity{
		Provider: testAddr(0x01),
		PoolID:   1,
		AmountA:  math.NewInt(1),
		AmountB:  math.NewInt(1),
	}
	require.NoError(t, add.ValidateBasic())

	add.PoolID = 0
	require.Error(t, add.ValidateBasic())

	remove := types.MsgRemoveLiquidity{
		Provider: testAddr(0x01),
		PoolID:   1,
		Shares:   math.NewInt(1),
	}
	require.NoError(t, remove.ValidateBasic())

	remove.Shares = math.ZeroInt()
	require.Error(t, remove.ValidateBasic())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.SwapFee = math.LegacyOneDec()
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.LpFeeShare = math.LegacyNewDec(2)
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.ProtocolFeeAddress = "not-an-address"
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.ProtocolFeeAddress = testAddr(0x04)
	require.NoError(t, params.Validate())
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Pools:  []types.Pool{validPool()},
		Liquidity: []types.LiquidityRecord{{
			PoolID:   1,
			Provider: testAddr(0x01),
			Shares:   math.NewInt(2_000_000),
		}},
		LastPoolID: 1,
	}
	require.NoError(t, genState.Validate())

	// Unknown pool reference.
	bad := genState
	bad.Liquidity = []types.LiquidityRecord{{
		PoolID:   7,
		Provider: testAddr(0x01),
		Shares:   math.NewInt(1),
	}}
	require.Error(t, bad.Validate())

	// Duplicate provider in one pool.
	bad = genState
	bad.Liquidity = []types.LiquidityRecord{
		{PoolID: 1, Provider: testAddr(0x01), Shares: math.NewInt(1_000_000)},
		{PoolID: 1, Provider: testAddr(0x01), Shares: math.NewInt(1_000_000)},
	}
	require.Error(t, bad.Validate())

	// Pool id past the counter.
	bad = genState
	bad.LastPoolID = 0
	require.Error(t, bad.Validate())
}
