package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	AllowToken(context.Context, *MsgAllowToken) (*MsgAllowTokenResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
}

// Response types

type MsgTransferResponse struct {
	// Sequence identifies the sent packet on the source channel.
	Sequence uint64 `json:"sequence"`
}

type MsgAllowTokenResponse struct{}

type MsgUpdateConfigResponse struct{}

type MsgPauseResponse struct{}

type MsgUnpauseResponse struct{}
