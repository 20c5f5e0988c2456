package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/oraidex/oraidex/testutil/keeper"
	"github.com/oraidex/oraidex/x/amm/keeper"
	"github.com/oraidex/oraidex/x/amm/types"
)

const (
	tokenOrai = "orai"
	tokenUsdt = "uusdt"
)

func testAddr(i byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{i}, 20))
}

var (
	creatorAddr  = testAddr(0x01)
	providerAddr = testAddr(0x02)
	traderAddr   = testAddr(0x03)
	feeAddr      = testAddr(0x04)
)

func fund(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string, amount int64) {
	bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
}

func balanceOf(bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string) math.Int {
	return bank.SpendableCoins(nil, addr).AmountOf(denom)
}

// setupPool creates a 1,000,000 orai / 4,000,000 uusdt pool. The
// geometric mean of the deposits mints 2,000,000 creator shares.
func setupPool(t testing.TB) (keeper.Keeper, *keepertest.MockBankKeeper, sdk.Context, types.Pool) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	fund(bank, creatorAddr, tokenOrai, 1_000_000)
	fund(bank, creatorAddr, tokenUsdt, 4_000_000)

	pool, shares, err := k.CreatePool(ctx, creatorAddr, tokenOrai, tokenUsdt,
		math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), shares)

	return k, bank, ctx, pool
}

func TestParamsRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.DefaultParams()
	params.SwapFee = math.LegacyNewDecWithPrec(1, 2)
	params.ProtocolFeeAddress = feeAddr.String()
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	params.SwapFee = math.LegacyNewDec(2)
	require.Error(t, k.SetParams(ctx, params))
}
