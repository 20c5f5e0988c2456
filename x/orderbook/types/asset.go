package types

import (
	"bytes"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetInfo identifies either a native chain coin or a fungible token
// contract balance. Exactly one of Denom / ContractAddr is set.
type AssetInfo struct {
	Denom        string `json:"denom,omitempty"`
	ContractAddr string `json:"contract_addr,omitempty"`
}

// NewNativeInfo returns an AssetInfo for a native coin denom.
func NewNativeInfo(denom string) AssetInfo {
	return AssetInfo{Denom: denom}
}

// NewTokenInfo returns an AssetInfo for a token contract address.
func NewTokenInfo(contractAddr string) AssetInfo {
	return AssetInfo{ContractAddr: contractAddr}
}

// IsNative reports whether the asset is a native chain coin.
func (info AssetInfo) IsNative() bool {
	return info.Denom != ""
}

// Equal is structural equality: same tag and same denom/address.
func (info AssetInfo) Equal(other AssetInfo) bool {
	return info.Denom == other.Denom && info.ContractAddr == other.ContractAddr
}

// Key returns the raw bytes used to build pair keys and indexes.
func (info AssetInfo) Key() []byte {
	if info.IsNative() {
		return []byte(info.Denom)
	}
	return []byte(info.ContractAddr)
}

func (info AssetInfo) String() string {
	if info.IsNative() {
		return info.Denom
	}
	return info.ContractAddr
}

// Validate checks that exactly one variant is set and it is well formed.
func (info AssetInfo) Validate() error {
	if info.Denom != "" && info.ContractAddr != "" {
		return ErrInvalidAsset.Wrap("asset info must be native or token, not both")
	}
	if info.Denom != "" {
		if err := sdk.ValidateDenom(info.Denom); err != nil {
			return ErrInvalidAsset.Wrapf("invalid denom: %v", err)
		}
		return nil
	}
	if info.ContractAddr == "" {
		return ErrInvalidAsset.Wrap("empty asset info")
	}
	if _, err := sdk.AccAddressFromBech32(info.ContractAddr); err != nil {
		return ErrInvalidAsset.Wrapf("invalid contract address: %v", err)
	}
	return nil
}

// Asset is an amount of a native coin or token contract balance.
// Immutable value type.
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Int  `json:"amount"`
}

// NewAsset returns an Asset for the given info and amount.
func NewAsset(info AssetInfo, amount math.Int) Asset {
	return Asset{Info: info, Amount: amount}
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %s", a.Amount, a.Info)
}

// Equal is structural equality on both info and amount.
func (a Asset) Equal(other Asset) bool {
	return a.Info.Equal(other.Info) && a.Amount.Equal(other.Amount)
}

// AssertNonZero fails if the asset amount is zero or nil.
func (a Asset) AssertNonZero() error {
	if a.Amount.IsNil() || a.Amount.IsZero() {
		return ErrZeroAmount.Wrapf("asset %s must not be zero", a.Info)
	}
	return nil
}

// PairKey builds the canonical order book key for two assets. The two raw
// keys are sorted so that (A, B) and (B, A) map to the same book, and each
// segment is length-prefixed so distinct pairs can never concatenate to
// the same key. Denoms and bech32 addresses both fit a single length byte.
func PairKey(infos [2]AssetInfo) []byte {
	keys := [][]byte{infos[0].Key(), infos[1].Key()}
	if bytes.Compare(keys[0], keys[1]) > 0 {
		keys[0], keys[1] = keys[1], keys[0]
	}

	key := make([]byte, 0, len(keys[0])+len(keys[1])+2)
	key = append(key, byte(len(keys[0])))
	key = append(key, keys[0]...)
	key = append(key, byte(len(keys[1])))
	key = append(key, keys[1]...)
	return key
}
