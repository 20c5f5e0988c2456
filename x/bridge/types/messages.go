package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgTransfer     = "transfer"
	TypeMsgAllowToken   = "allow_token"
	TypeMsgUpdateConfig = "update_config"
	TypeMsgPause        = "pause"
	TypeMsgUnpause      = "unpause"
)

var (
	_ sdk.Msg = &MsgTransfer{}
	_ sdk.Msg = &MsgAllowToken{}
	_ sdk.Msg = &MsgUpdateConfig{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
)

// MsgTransfer sends tokens to a remote chain over a bridge channel.
type MsgTransfer struct {
	Sender         string   `json:"sender"`
	ChannelID      string   `json:"channel_id"`
	Receiver       string   `json:"receiver"`
	Denom          string   `json:"denom"`
	Amount         math.Int `json:"amount"`
	TimeoutSeconds uint64   `json:"timeout_seconds,omitempty"`
	Memo           string   `json:"memo,omitempty"`
}

func (m *MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if m.ChannelID == "" {
		return fmt.Errorf("channel id cannot be empty")
	}
	if m.Receiver == "" {
		return fmt.Errorf("receiver cannot be empty")
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom %q: %w", m.Denom, err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

func (m *MsgTransfer) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgAllowToken adds a token to the bridge allowlist or raises an
// existing entry's gas limit.
type MsgAllowToken struct {
	Admin    string `json:"admin"`
	Denom    string `json:"denom"`
	GasLimit uint64 `json:"gas_limit,omitempty"`
}

func (m *MsgAllowToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return fmt.Errorf("invalid denom %q: %w", m.Denom, err)
	}
	return nil
}

func (m *MsgAllowToken) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgUpdateConfig replaces the bridge configuration.
type MsgUpdateConfig struct {
	Admin  string `json:"admin"`
	Params Params `json:"params"`
}

func (m *MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	return m.Params.Validate()
}

func (m *MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgPause halts all bridge transfers.
type MsgPause struct {
	Admin string `json:"admin"`
}

func (m *MsgPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	return nil
}

func (m *MsgPause) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// MsgUnpause resumes bridge transfers.
type MsgUnpause struct {
	Admin string `json:"admin"`
}

func (m *MsgUnpause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	return nil
}

func (m *MsgUnpause) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}
