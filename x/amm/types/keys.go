package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// KV store prefixes.
var (
	PoolKeyPrefix         = []byte{0x01}
	PoolByTokensKeyPrefix = []byte{0x02}
	LiquidityKeyPrefix    = []byte{0x03}
	PoolCountKey          = []byte{0x04}
	ParamsKey             = []byte{0x05}
)

// PoolKey returns the primary store key of a pool.
func PoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, PoolIDBytes(poolID)...)
}

// PoolByTokensKey returns the token-pair lookup key. Callers must pass
// the tokens in canonical (sorted) order.
func PoolByTokensKey(tokenA, tokenB string) []byte {
	key := append(PoolByTokensKeyPrefix, []byte(tokenA)...)
	key = append(key, 0x00)
	return append(key, []byte(tokenB)...)
}

// LiquidityByPoolPrefix returns the prefix under which all of one pool's
// liquidity positions live.
func LiquidityByPoolPrefix(poolID uint64) []byte {
	return append(LiquidityKeyPrefix, PoolIDBytes(poolID)...)
}

// LiquidityKey returns the store key of one provider's position.
func LiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	return append(LiquidityByPoolPrefix(poolID), provider.Bytes()...)
}

// PoolIDBytes returns the big-endian encoding of a pool id.
func PoolIDBytes(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return bz
}

// SortTokens returns the pair in canonical lexicographic order.
func SortTokens(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}
