package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the
// legacy amino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgTransfer{}, "bridge/MsgTransfer", nil)
	cdc.RegisterConcrete(&MsgAllowToken{}, "bridge/MsgAllowToken", nil)
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "bridge/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgPause{}, "bridge/MsgPause", nil)
	cdc.RegisterConcrete(&MsgUnpause{}, "bridge/MsgUnpause", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
