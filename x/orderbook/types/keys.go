package types

import (
	"encoding/binary"
	"math/big"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "orderbook"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Matching and settlement thresholds.
const (
	// MinVolume is the default dust floor below which a remainder forces
	// an order to Fulfilled.
	MinVolume uint64 = 10

	// MinFee is the floor an accumulated reward bucket must reach before
	// a transfer is emitted.
	MinFee uint64 = 1_000_000

	// RefundsThreshold is the default floor for dust refunds on
	// force-fulfilled orders.
	RefundsThreshold uint64 = 100_000

	// DefaultSpread is the market-order slippage used when neither the
	// caller nor the pair config provides one.
	DefaultSpread = "0.01"
)

// Store key prefixes
var (
	ParamsKey            = []byte{0x01} // module config
	PausedKey            = []byte{0x02} // pause flag
	LastOrderIDKey       = []byte{0x03} // global order id counter
	OrderBookKeyPrefix   = []byte{0x04} // pairKey -> OrderBook
	OrderKeyPrefix       = []byte{0x05} // pairKey || orderID -> Order
	TickKeyPrefix        = []byte{0x06} // pairKey || direction || price -> order count
	OrderByPricePrefix   = []byte{0x07} // pairKey || price || orderID -> direction
	OrderByBidderPrefix  = []byte{0x08} // pairKey || bidder || orderID -> direction
	OrderByDirectionKey  = []byte{0x09} // pairKey || direction || orderID -> {1}
	RewardKeyPrefix      = []byte{0x0A} // pairKey || address -> Executor
	WhitelistKeyPrefix   = []byte{0x0B} // address -> {1}
)

// OrderIDBytes returns a big-endian fixed-width order id segment.
func OrderIDBytes(orderID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, orderID)
	return bz
}

// OrderIDFromBytes decodes a big-endian order id segment.
func OrderIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// MaxPriceBits bounds a price's 18-decimal atomic representation to the
// 16-byte tick key segment.
const MaxPriceBits = 128

// ValidatePrice rejects prices the tick key encoding cannot carry. Callers
// must run this on any externally supplied or derived price before building
// a price-indexed store key.
func ValidatePrice(price math.LegacyDec) error {
	if price.IsNil() || !price.IsPositive() {
		return ErrPriceOutOfRange.Wrap("price must be positive")
	}
	if price.BigInt().BitLen() > MaxPriceBits {
		return ErrPriceOutOfRange.Wrapf("price %s exceeds %d-bit atomics", price, MaxPriceBits)
	}
	return nil
}

// EncodePrice encodes a decimal price as 16 fixed-width big-endian bytes of
// its 18-decimal atomic representation, so lexicographic key order equals
// numeric order during range scans. The price must satisfy ValidatePrice.
func EncodePrice(price math.LegacyDec) []byte {
	bz := make([]byte, 16)
	b := price.BigInt().Bytes()
	copy(bz[16-len(b):], b)
	return bz
}

// DecodePrice reverses EncodePrice.
func DecodePrice(bz []byte) math.LegacyDec {
	return math.LegacyNewDecFromBigIntWithPrec(new(big.Int).SetBytes(bz), math.LegacyPrecision)
}

// OrderBookKey returns the store key for a pair's order book config.
func OrderBookKey(pairKey []byte) []byte {
	return append(OrderBookKeyPrefix, pairKey...)
}

// OrderKey returns the primary store key for an order.
func OrderKey(pairKey []byte, orderID uint64) []byte {
	return append(append(OrderKeyPrefix, pairKey...), OrderIDBytes(orderID)...)
}

// OrderPairPrefix returns the prefix covering all orders of a pair.
func OrderPairPrefix(pairKey []byte) []byte {
	return append(OrderKeyPrefix, pairKey...)
}

// TickKey returns the store key for one price level on one side of a pair.
func TickKey(pairKey []byte, direction OrderDirection, price math.LegacyDec) []byte {
	key := append(append(TickKeyPrefix, pairKey...), direction.Byte())
	return append(key, EncodePrice(price)...)
}

// TickPrefix returns the prefix covering all price levels on one side.
func TickPrefix(pairKey []byte, direction OrderDirection) []byte {
	return append(append(TickKeyPrefix, pairKey...), direction.Byte())
}

// OrderByPriceKey returns the index key for orders resting at a price.
func OrderByPriceKey(pairKey []byte, price math.LegacyDec, orderID uint64) []byte {
	key := append(append(OrderByPricePrefix, pairKey...), EncodePrice(price)...)
	return append(key, OrderIDBytes(orderID)...)
}

// OrderByPricePrefixKey returns the prefix covering all orders at a price.
func OrderByPricePrefixKey(pairKey []byte, price math.LegacyDec) []byte {
	return append(append(OrderByPricePrefix, pairKey...), EncodePrice(price)...)
}

// OrderByBidderKey returns the index key for a bidder's order on a pair.
func OrderByBidderKey(pairKey, bidder []byte, orderID uint64) []byte {
	key := append(append(OrderByBidderPrefix, pairKey...), bidder...)
	return append(key, OrderIDBytes(orderID)...)
}

// OrderByBidderPrefixKey returns the prefix covering a bidder's orders.
func OrderByBidderPrefixKey(pairKey, bidder []byte) []byte {
	return append(append(OrderByBidderPrefix, pairKey...), bidder...)
}

// OrderByDirectionIndexKey returns the index key for orders by direction.
func OrderByDirectionIndexKey(pairKey []byte, direction OrderDirection, orderID uint64) []byte {
	key := append(append(OrderByDirectionKey, pairKey...), direction.Byte())
	return append(key, OrderIDBytes(orderID)...)
}

// OrderByDirectionPrefixKey returns the prefix covering one side's orders.
func OrderByDirectionPrefixKey(pairKey []byte, direction OrderDirection) []byte {
	return append(append(OrderByDirectionKey, pairKey...), direction.Byte())
}

// RewardKey returns the store key for a beneficiary's reward bucket.
func RewardKey(pairKey []byte, address string) []byte {
	return append(append(RewardKeyPrefix, pairKey...), []byte(address)...)
}

// WhitelistKey returns the store key marking a commission-exempt trader.
func WhitelistKey(address string) []byte {
	return append(WhitelistKeyPrefix, []byte(address)...)
}
