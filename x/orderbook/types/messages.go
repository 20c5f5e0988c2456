package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateOrderBookPair = "create_orderbook_pair"
	TypeMsgUpdateOrderBookPair = "update_orderbook_pair"
	TypeMsgRemoveOrderBookPair = "remove_orderbook_pair"
	TypeMsgSubmitOrder         = "submit_order"
	TypeMsgSubmitMarketOrder   = "submit_market_order"
	TypeMsgCancelOrder         = "cancel_order"
	TypeMsgWhitelistTrader     = "whitelist_trader"
	TypeMsgRemoveTrader        = "remove_trader"
	TypeMsgPause               = "pause"
	TypeMsgUnpause             = "unpause"
	TypeMsgWithdrawToken       = "withdraw_token"
	TypeMsgUpdateConfig        = "update_config"
	TypeMsgUpdateOperator      = "update_operator"
)

var (
	_ sdk.Msg = &MsgCreateOrderBookPair{}
	_ sdk.Msg = &MsgUpdateOrderBookPair{}
	_ sdk.Msg = &MsgRemoveOrderBookPair{}
	_ sdk.Msg = &MsgSubmitOrder{}
	_ sdk.Msg = &MsgSubmitMarketOrder{}
	_ sdk.Msg = &MsgCancelOrder{}
	_ sdk.Msg = &MsgWhitelistTrader{}
	_ sdk.Msg = &MsgRemoveTrader{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
	_ sdk.Msg = &MsgWithdrawToken{}
	_ sdk.Msg = &MsgUpdateConfig{}
	_ sdk.Msg = &MsgUpdateOperator{}
)

// MsgCreateOrderBookPair registers a new trading pair.
type MsgCreateOrderBookPair struct {
	Sender         string          `json:"sender"`
	BaseAssetInfo  AssetInfo       `json:"base_asset_info"`
	QuoteAssetInfo AssetInfo       `json:"quote_asset_info"`
	Spread         *math.LegacyDec `json:"spread,omitempty"`
	MinQuoteAmount math.Int        `json:"min_quote_amount"`
}

func (m *MsgCreateOrderBookPair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.BaseAssetInfo.Validate(); err != nil {
		return err
	}
	if err := m.QuoteAssetInfo.Validate(); err != nil {
		return err
	}
	if m.BaseAssetInfo.Equal(m.QuoteAssetInfo) {
		return fmt.Errorf("base and quote assets must differ")
	}
	if m.Spread != nil && m.Spread.GTE(math.LegacyOneDec()) {
		return ErrSpreadTooLarge
	}
	if m.MinQuoteAmount.IsNil() || m.MinQuoteAmount.IsNegative() {
		return fmt.Errorf("min quote amount must be non-negative")
	}
	return nil
}

func (m *MsgCreateOrderBookPair) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgUpdateOrderBookPair adjusts pair configuration without touching
// resting orders.
type MsgUpdateOrderBookPair struct {
	Sender            string          `json:"sender"`
	AssetInfos        [2]AssetInfo    `json:"asset_infos"`
	Spread            *math.LegacyDec `json:"spread,omitempty"`
	MinQuoteAmount    *math.Int       `json:"min_quote_amount,omitempty"`
	RefundThreshold   *math.Int       `json:"refund_threshold,omitempty"`
	MinOfferToFulfill *math.Int       `json:"min_offer_to_fulfilled,omitempty"`
	MinAskToFulfill   *math.Int       `json:"min_ask_to_fulfilled,omitempty"`
}

func (m *MsgUpdateOrderBookPair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	for _, info := range m.AssetInfos {
		if err := info.Validate(); err != nil {
			return err
		}
	}
	if m.Spread != nil && m.Spread.GTE(math.LegacyOneDec()) {
		return ErrSpreadTooLarge
	}
	return nil
}

func (m *MsgUpdateOrderBookPair) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgRemoveOrderBookPair deletes a pair and cascades over its resting
// orders; admin only.
type MsgRemoveOrderBookPair struct {
	Sender     string       `json:"sender"`
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

func (m *MsgRemoveOrderBookPair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	for _, info := range m.AssetInfos {
		if err := info.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgRemoveOrderBookPair) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgSubmitOrder places a limit order. Assets[0] is the offer side,
// Assets[1] the ask side.
type MsgSubmitOrder struct {
	Sender    string         `json:"sender"`
	Direction OrderDirection `json:"direction"`
	Assets    [2]Asset       `json:"assets"`
}

func (m *MsgSubmitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if !m.Direction.Valid() {
		return fmt.Errorf("invalid order direction: %d", m.Direction)
	}
	for _, asset := range m.Assets {
		if err := asset.Info.Validate(); err != nil {
			return err
		}
		if err := asset.AssertNonZero(); err != nil {
			return err
		}
	}
	derived := NewOrder(0, m.Sender, m.Direction, m.Assets[0].Amount, m.Assets[1].Amount)
	return ValidatePrice(derived.Price())
}

func (m *MsgSubmitOrder) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgSubmitMarketOrder places a slippage-bounded market order paying
// OfferAmount of the direction's offer asset.
type MsgSubmitMarketOrder struct {
	Sender      string          `json:"sender"`
	AssetInfos  [2]AssetInfo    `json:"asset_infos"`
	Direction   OrderDirection  `json:"direction"`
	OfferAmount math.Int        `json:"offer_amount"`
	Slippage    *math.LegacyDec `json:"slippage,omitempty"`
}

func (m *MsgSubmitMarketOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if !m.Direction.Valid() {
		return fmt.Errorf("invalid order direction: %d", m.Direction)
	}
	for _, info := range m.AssetInfos {
		if err := info.Validate(); err != nil {
			return err
		}
	}
	if m.OfferAmount.IsNil() || !m.OfferAmount.IsPositive() {
		return ErrZeroAmount.Wrap("offer amount must be positive")
	}
	if m.Slippage != nil && m.Slippage.GTE(math.LegacyOneDec()) {
		return ErrSlippageTooLarge.Wrapf("slippage %s", m.Slippage)
	}
	return nil
}

func (m *MsgSubmitMarketOrder) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgCancelOrder removes a resting order and refunds the remainder.
type MsgCancelOrder struct {
	Sender     string       `json:"sender"`
	OrderID    uint64       `json:"order_id"`
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

func (m *MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	for _, info := range m.AssetInfos {
		if err := info.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgCancelOrder) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgWhitelistTrader marks a trader as commission exempt; admin only.
type MsgWhitelistTrader struct {
	Sender string `json:"sender"`
	Trader string `json:"trader"`
}

func (m *MsgWhitelistTrader) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}
	return nil
}

func (m *MsgWhitelistTrader) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgRemoveTrader removes a trader from the whitelist; admin only.
type MsgRemoveTrader struct {
	Sender string `json:"sender"`
	Trader string `json:"trader"`
}

func (m *MsgRemoveTrader) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}
	return nil
}

func (m *MsgRemoveTrader) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgPause halts trading; admin or operator.
type MsgPause struct {
	Sender string `json:"sender"`
}

func (m *MsgPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	return nil
}

func (m *MsgPause) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgUnpause resumes trading; admin or operator.
type MsgUnpause struct {
	Sender string `json:"sender"`
}

func (m *MsgUnpause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	return nil
}

func (m *MsgUnpause) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgWithdrawToken rescues module-held funds; admin only.
type MsgWithdrawToken struct {
	Sender string `json:"sender"`
	Asset  Asset  `json:"asset"`
}

func (m *MsgWithdrawToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.Asset.Info.Validate(); err != nil {
		return err
	}
	return m.Asset.AssertNonZero()
}

func (m *MsgWithdrawToken) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgUpdateConfig changes reward address and commission rate; admin only.
type MsgUpdateConfig struct {
	Sender         string          `json:"sender"`
	RewardAddress  string          `json:"reward_address,omitempty"`
	CommissionRate *math.LegacyDec `json:"commission_rate,omitempty"`
}

func (m *MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if m.RewardAddress != "" {
		if _, err := sdk.AccAddressFromBech32(m.RewardAddress); err != nil {
			return fmt.Errorf("invalid reward address: %w", err)
		}
	}
	if m.CommissionRate != nil &&
		(m.CommissionRate.IsNegative() || m.CommissionRate.GTE(math.LegacyOneDec())) {
		return fmt.Errorf("commission rate must be in [0, 1)")
	}
	return nil
}

func (m *MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}

// MsgUpdateOperator replaces or clears the operator; admin only.
type MsgUpdateOperator struct {
	Sender   string `json:"sender"`
	Operator string `json:"operator,omitempty"`
}

func (m *MsgUpdateOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if m.Operator != "" {
		if _, err := sdk.AccAddressFromBech32(m.Operator); err != nil {
			return fmt.Errorf("invalid operator address: %w", err)
		}
	}
	return nil
}

func (m *MsgUpdateOperator) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(m.Sender)
	return []sdk.AccAddress{sender}
}
