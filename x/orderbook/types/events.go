package types

// Event types for the orderbook module
const (
	EventTypeSubmitOrder       = "submit_order"
	EventTypeSubmitMarketOrder = "submit_market_order"
	EventTypeCancelOrder       = "cancel_order"
	EventTypeMatchedOrder      = "matched_order"
	EventTypeCreatePair        = "create_orderbook_pair"
	EventTypeUpdatePair        = "update_orderbook_pair"
	EventTypeRemovePair        = "remove_orderbook_pair"
	EventTypeWhitelistTrader   = "whitelist_trader"
	EventTypeRemoveTrader      = "remove_trader"
	EventTypePause             = "pause"
	EventTypeUnpause           = "unpause"
	EventTypeWithdrawToken     = "withdraw_token"
	EventTypeRewardTransfer    = "executor_reward"
	EventTypeUpdateConfig      = "update_config"
	EventTypeUpdateOperator    = "update_operator"

	AttributeKeyOrderID          = "order_id"
	AttributeKeyOrderType        = "order_type"
	AttributeKeyPair             = "pair"
	AttributeKeyDirection        = "direction"
	AttributeKeyStatus           = "status"
	AttributeKeyBidder           = "bidder_addr"
	AttributeKeyOfferAsset       = "offer_asset"
	AttributeKeyAskAsset         = "ask_asset"
	AttributeKeyOfferAmount      = "offer_amount"
	AttributeKeyAskAmount        = "ask_amount"
	AttributeKeyFilledOffer      = "filled_offer_amount"
	AttributeKeyFilledAsk        = "filled_ask_amount"
	AttributeKeyFilledOfferRound = "filled_offer_this_round"
	AttributeKeyFilledAskRound   = "filled_ask_this_round"
	AttributeKeyRewardFee        = "reward_fee"
	AttributeKeyRefundAmount     = "refund_amount"
	AttributeKeyBidderRefund     = "bidder_refund"
	AttributeKeyTotalMatched     = "total_matched_orders"
	AttributeKeyTrader           = "trader"
	AttributeKeyExecutorReward   = "executor_reward"
	AttributeKeyAdmin            = "admin"
	AttributeKeyOperator         = "operator"
	AttributeKeyAmount           = "amount"
)
