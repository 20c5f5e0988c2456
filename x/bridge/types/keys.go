package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "bridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// PortID is the default port the bridge binds to
	PortID = ModuleName

	// IBCVersion is the expected channel version string
	IBCVersion = "oraidex-bridge-1"
)

// KV store prefixes.
var (
	ChannelInfoKeyPrefix  = []byte{0x01}
	ChannelStateKeyPrefix = []byte{0x02}
	AllowKeyPrefix        = []byte{0x03}
	PendingKeyPrefix      = []byte{0x04}
	ParamsKey             = []byte{0x05}
	PausedKey             = []byte{0x06}
)

// ChannelInfoKey returns the store key of a channel record.
func ChannelInfoKey(channelID string) []byte {
	return append(ChannelInfoKeyPrefix, []byte(channelID)...)
}

// ChannelStateKey returns the store key of a channel's balance in one
// denom. A 0x00 separator keeps channel ids from shadowing each other.
func ChannelStateKey(channelID, denom string) []byte {
	key := append(ChannelStateKeyPrefix, []byte(channelID)...)
	key = append(key, 0x00)
	return append(key, []byte(denom)...)
}

// ChannelStatePrefix returns the prefix under which all of one
// channel's balances live.
func ChannelStatePrefix(channelID string) []byte {
	key := append(ChannelStateKeyPrefix, []byte(channelID)...)
	return append(key, 0x00)
}

// AllowKey returns the store key of a token allowlist entry.
func AllowKey(denom string) []byte {
	return append(AllowKeyPrefix, []byte(denom)...)
}

// PendingKey returns the store key of an unacknowledged outbound
// transfer, addressed by source channel and packet sequence.
func PendingKey(channelID string, sequence uint64) []byte {
	key := append(PendingKeyPrefix, []byte(channelID)...)
	key = append(key, 0x00)
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, sequence)
	return append(key, seq...)
}
