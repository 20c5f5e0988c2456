package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// TransferPacketData is the JSON wire form of one bridge transfer,
// following the ICS20 fungible token packet shape.
type TransferPacketData struct {
	Denom    string   `json:"denom"`
	Amount   math.Int `json:"amount"`
	Sender   string   `json:"sender"`
	Receiver string   `json:"receiver"`
	Memo     string   `json:"memo,omitempty"`
}

// ValidateBasic checks the packet fields that can be checked without
// state access.
func (p TransferPacketData) ValidateBasic() error {
	if p.Denom == "" {
		return ErrInvalidPacket.Wrap("denom cannot be empty")
	}
	if p.Amount.IsNil() || !p.Amount.IsPositive() {
		return ErrInvalidPacket.Wrap("amount must be positive")
	}
	if p.Sender == "" {
		return ErrInvalidPacket.Wrap("sender cannot be empty")
	}
	if p.Receiver == "" {
		return ErrInvalidPacket.Wrap("receiver cannot be empty")
	}
	return nil
}

// GetBytes returns the JSON encoding carried in the IBC packet.
func (p TransferPacketData) GetBytes() ([]byte, error) {
	return json.Marshal(p)
}

// ParsePacketData decodes a received packet payload.
func ParsePacketData(bz []byte) (TransferPacketData, error) {
	var data TransferPacketData
	if err := json.Unmarshal(bz, &data); err != nil {
		return TransferPacketData{}, ErrInvalidPacket.Wrapf("failed to decode packet data: %v", err)
	}
	return data, nil
}
