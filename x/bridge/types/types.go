package types

import (
	"cosmossdk.io/math"
)

// ChannelInfo is the static record of one bridge channel, written
// during the handshake.
type ChannelInfo struct {
	ChannelID             string `json:"channel_id"`
	PortID                string `json:"port_id"`
	CounterpartyChannelID string `json:"counterparty_channel_id"`
	CounterpartyPortID    string `json:"counterparty_port_id"`
	ConnectionID          string `json:"connection_id"`
}

// Validate checks structural channel info consistency.
func (c ChannelInfo) Validate() error {
	if c.ChannelID == "" {
		return ErrInvalidChannelInfo.Wrap("channel id cannot be empty")
	}
	if c.PortID == "" {
		return ErrInvalidChannelInfo.Wrap("port id cannot be empty")
	}
	return nil
}

// ChannelState tracks a channel's balance in one denom. Outstanding is
// what currently lives on the remote chain; TotalSent only ever grows.
type ChannelState struct {
	Outstanding math.Int `json:"outstanding"`
	TotalSent   math.Int `json:"total_sent"`
}

// NewChannelState returns an empty balance record.
func NewChannelState() ChannelState {
	return ChannelState{Outstanding: math.ZeroInt(), TotalSent: math.ZeroInt()}
}

// AllowInfo is one token allowlist entry. A zero gas limit means no
// limit is enforced for this token.
type AllowInfo struct {
	Denom    string `json:"denom"`
	GasLimit uint64 `json:"gas_limit,omitempty"`
}

// PendingTransfer is an outbound transfer awaiting acknowledgement,
// kept so an error ack or timeout can refund the sender.
type PendingTransfer struct {
	ChannelID string   `json:"channel_id"`
	Sequence  uint64   `json:"sequence"`
	Sender    string   `json:"sender"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}
