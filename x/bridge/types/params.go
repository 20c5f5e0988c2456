package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultTimeoutSeconds is applied to outbound packets when the
// transfer names no timeout.
const DefaultTimeoutSeconds = 600

// Params is the bridge module configuration.
type Params struct {
	// Admin manages the allowlist, pause switch and config updates.
	Admin string `json:"admin"`
	// DefaultTimeoutSeconds bounds how long an outbound packet may stay
	// unrelayed before it times out.
	DefaultTimeoutSeconds uint64 `json:"default_timeout_seconds"`
	// DefaultGasLimit applies to allowlist entries without their own
	// limit. Zero means unlimited.
	DefaultGasLimit uint64 `json:"default_gas_limit,omitempty"`
}

// DefaultParams returns the default bridge parameters.
func DefaultParams() Params {
	return Params{
		DefaultTimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return ErrInvalidState.Wrapf("invalid admin address: %v", err)
		}
	}
	if p.DefaultTimeoutSeconds == 0 {
		return ErrInvalidState.Wrap("default timeout cannot be zero")
	}
	return nil
}
