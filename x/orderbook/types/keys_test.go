package types_test

import (
	"bytes"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

func TestEncodePrice_Roundtrip(t *testing.T) {
	prices := []string{
		"0.000000000000000001",
		"0.01",
		"1.0",
		"7.52",
		"123456.789",
		"999999999999.999999",
	}
	for _, s := range prices {
		price := math.LegacyMustNewDecFromStr(s)
		decoded := types.DecodePrice(types.EncodePrice(price))
		require.True(t, price.Equal(decoded), "roundtrip of %s gave %s", price, decoded)
	}
}

func TestEncodePrice_PreservesOrdering(t *testing.T) {
	// Lexicographic byte order must equal numeric order so range scans
	// over the tick index walk prices in order.
	prices := []string{"0.5", "0.99", "1.0", "1.000000000000000001", "2.0", "10.0", "100.5"}
	for i := 1; i < len(prices); i++ {
		lo := types.EncodePrice(math.LegacyMustNewDecFromStr(prices[i-1]))
		hi := types.EncodePrice(math.LegacyMustNewDecFromStr(prices[i]))
		require.Negative(t, bytes.Compare(lo, hi), "%s should sort before %s", prices[i-1], prices[i])
	}
}

func TestPairKey_Canonical(t *testing.T) {
	a := types.NewNativeInfo("orai")
	b := types.NewNativeInfo("uusdt")

	require.Equal(t, types.PairKey([2]types.AssetInfo{a, b}), types.PairKey([2]types.AssetInfo{b, a}))
	require.NotEqual(t,
		types.PairKey([2]types.AssetInfo{a, b}),
		types.PairKey([2]types.AssetInfo{a, types.NewNativeInfo("uatom")}),
	)
}

func TestValidatePrice_Bounds(t *testing.T) {
	require.NoError(t, types.ValidatePrice(math.LegacyMustNewDecFromStr("7.52")))

	// The largest price whose atomics still fit the 16-byte key segment.
	maxAtomics := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxPrice := math.LegacyNewDecFromBigIntWithPrec(maxAtomics, math.LegacyPrecision)
	require.NoError(t, types.ValidatePrice(maxPrice))
	require.Len(t, types.EncodePrice(maxPrice), 16)

	overflow := math.LegacyNewDecFromBigIntWithPrec(
		new(big.Int).Lsh(big.NewInt(1), 128), math.LegacyPrecision)
	require.ErrorIs(t, types.ValidatePrice(overflow), types.ErrPriceOutOfRange)

	// 1e30 quote per 1 base, the kind of ratio a raw order can produce.
	require.ErrorIs(t,
		types.ValidatePrice(math.LegacyNewDec(10).Power(30)),
		types.ErrPriceOutOfRange)

	require.ErrorIs(t, types.ValidatePrice(math.LegacyDec{}), types.ErrPriceOutOfRange)
	require.ErrorIs(t, types.ValidatePrice(math.LegacyZeroDec()), types.ErrPriceOutOfRange)
}

func TestPairKey_NoConcatenationCollision(t *testing.T) {
	// Without length prefixes abc+defx and abcd+efx would both
	// concatenate to abcdefx.
	left := types.PairKey([2]types.AssetInfo{types.NewNativeInfo("abc"), types.NewNativeInfo("defx")})
	right := types.PairKey([2]types.AssetInfo{types.NewNativeInfo("abcd"), types.NewNativeInfo("efx")})
	require.NotEqual(t, left, right)
}

func TestOrderIDBytes_Roundtrip(t *testing.T) {
	for _, id := range []uint64{0, 1, 255, 1 << 32, ^uint64(0)} {
		require.Equal(t, id, types.OrderIDFromBytes(types.OrderIDBytes(id)))
	}
	require.Len(t, types.OrderIDBytes(1), 8)
}
