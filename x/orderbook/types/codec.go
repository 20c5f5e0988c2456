package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the
// legacy amino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateOrderBookPair{}, "orderbook/MsgCreateOrderBookPair", nil)
	cdc.RegisterConcrete(&MsgUpdateOrderBookPair{}, "orderbook/MsgUpdateOrderBookPair", nil)
	cdc.RegisterConcrete(&MsgRemoveOrderBookPair{}, "orderbook/MsgRemoveOrderBookPair", nil)
	cdc.RegisterConcrete(&MsgSubmitOrder{}, "orderbook/MsgSubmitOrder", nil)
	cdc.RegisterConcrete(&MsgSubmitMarketOrder{}, "orderbook/MsgSubmitMarketOrder", nil)
	cdc.RegisterConcrete(&MsgCancelOrder{}, "orderbook/MsgCancelOrder", nil)
	cdc.RegisterConcrete(&MsgWhitelistTrader{}, "orderbook/MsgWhitelistTrader", nil)
	cdc.RegisterConcrete(&MsgRemoveTrader{}, "orderbook/MsgRemoveTrader", nil)
	cdc.RegisterConcrete(&MsgPause{}, "orderbook/MsgPause", nil)
	cdc.RegisterConcrete(&MsgUnpause{}, "orderbook/MsgUnpause", nil)
	cdc.RegisterConcrete(&MsgWithdrawToken{}, "orderbook/MsgWithdrawToken", nil)
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "orderbook/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgUpdateOperator{}, "orderbook/MsgUpdateOperator", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
