package types

// Event types emitted by the bridge module.
const (
	EventTypeTransfer    = "bridge_transfer"
	EventTypeReceive     = "bridge_receive"
	EventTypeRefund      = "bridge_refund"
	EventTypeAck         = "bridge_ack"
	EventTypeAllowToken  = "bridge_allow_token"
	EventTypePause       = "bridge_pause"
	EventTypeUnpause     = "bridge_unpause"
	EventTypeChannelOpen = "bridge_channel_open"
)

// Event attribute keys.
const (
	AttributeKeySender    = "sender"
	AttributeKeyReceiver  = "receiver"
	AttributeKeyDenom     = "denom"
	AttributeKeyAmount    = "amount"
	AttributeKeyChannelID = "channel_id"
	AttributeKeyPortID    = "port_id"
	AttributeKeySequence  = "sequence"
	AttributeKeySuccess   = "success"
	AttributeKeyGasLimit  = "gas_limit"
	AttributeKeyAdmin     = "admin"
)
