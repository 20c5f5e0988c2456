package types

import (
	"context"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Channel(context.Context, *QueryChannelRequest) (*QueryChannelResponse, error)
	Channels(context.Context, *QueryChannelsRequest) (*QueryChannelsResponse, error)
	Allowed(context.Context, *QueryAllowedRequest) (*QueryAllowedResponse, error)
	AllowedTokens(context.Context, *QueryAllowedTokensRequest) (*QueryAllowedTokensResponse, error)
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Params Params `json:"params"`
	Paused bool   `json:"paused"`
}

type QueryChannelRequest struct {
	ChannelID string `json:"channel_id"`
}

// ChannelBalance pairs a denom with its outstanding/total-sent state.
type ChannelBalance struct {
	Denom string `json:"denom"`
	ChannelState
}

type QueryChannelResponse struct {
	Info     ChannelInfo      `json:"info"`
	Balances []ChannelBalance `json:"balances,omitempty"`
}

type QueryChannelsRequest struct{}

type QueryChannelsResponse struct {
	Channels []ChannelInfo `json:"channels,omitempty"`
}

type QueryAllowedRequest struct {
	Denom string `json:"denom"`
}

type QueryAllowedResponse struct {
	Allowed bool `json:"allowed"`
	// GasLimit falls back to the configured default when the entry
	// carries none.
	GasLimit uint64 `json:"gas_limit,omitempty"`
}

type QueryAllowedTokensRequest struct{}

type QueryAllowedTokensResponse struct {
	Tokens []AllowInfo `json:"tokens,omitempty"`
}
