package types

import "encoding/json"

// Minimal proto.Message implementations for the hand-written message and
// query types, JSON-backed through the gogoproto Marshaler, Unmarshaler
// and Sizer fast paths.

func protoString(v any) string {
	bz, _ := json.Marshal(v)
	return string(bz)
}

func (m *MsgCreatePool) Reset()                    { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string            { return protoString(m) }
func (*MsgCreatePool) ProtoMessage()               {}
func (m *MsgCreatePool) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCreatePool) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreatePool) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgAddLiquidity) Reset()                    { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string            { return protoString(m) }
func (*MsgAddLiquidity) ProtoMessage()               {}
func (m *MsgAddLiquidity) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgAddLiquidity) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAddLiquidity) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveLiquidity) Reset()                    { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string            { return protoString(m) }
func (*MsgRemoveLiquidity) ProtoMessage()               {}
func (m *MsgRemoveLiquidity) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveLiquidity) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveLiquidity) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSwap) Reset()                    { *m = MsgSwap{} }
func (m *MsgSwap) String() string            { return protoString(m) }
func (*MsgSwap) ProtoMessage()               {}
func (m *MsgSwap) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSwap) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSwap) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgCreatePoolResponse) Reset()                    { *m = MsgCreatePoolResponse{} }
func (m *MsgCreatePoolResponse) String() string            { return protoString(m) }
func (*MsgCreatePoolResponse) ProtoMessage()               {}
func (m *MsgCreatePoolResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCreatePoolResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreatePoolResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgAddLiquidityResponse) Reset()                    { *m = MsgAddLiquidityResponse{} }
func (m *MsgAddLiquidityResponse) String() string            { return protoString(m) }
func (*MsgAddLiquidityResponse) ProtoMessage()               {}
func (m *MsgAddLiquidityResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgAddLiquidityResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAddLiquidityResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveLiquidityResponse) Reset()                    { *m = MsgRemoveLiquidityResponse{} }
func (m *MsgRemoveLiquidityResponse) String() string            { return protoString(m) }
func (*MsgRemoveLiquidityResponse) ProtoMessage()               {}
func (m *MsgRemoveLiquidityResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveLiquidityResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveLiquidityResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSwapResponse) Reset()                    { *m = MsgSwapResponse{} }
func (m *MsgSwapResponse) String() string            { return protoString(m) }
func (*MsgSwapResponse) ProtoMessage()               {}
func (m *MsgSwapResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSwapResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSwapResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryParamsRequest) Reset()                    { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string            { return protoString(m) }
func (*QueryParamsRequest) ProtoMessage()               {}
func (m *QueryParamsRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryParamsRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryParamsRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryParamsResponse) Reset()                    { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string            { return protoString(m) }
func (*QueryParamsResponse) ProtoMessage()               {}
func (m *QueryParamsResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryParamsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryParamsResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryPoolRequest) Reset()                    { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string            { return protoString(m) }
func (*QueryPoolRequest) ProtoMessage()               {}
func (m *QueryPoolRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryPoolRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPoolRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryPoolResponse) Reset()                    { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string            { return protoString(m) }
func (*QueryPoolResponse) ProtoMessage()               {}
func (m *QueryPoolResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryPoolResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPoolResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryPoolsRequest) Reset()                    { *m = QueryPoolsRequest{} }
func (m *QueryPoolsRequest) String() string            { return protoString(m) }
func (*QueryPoolsRequest) ProtoMessage()               {}
func (m *QueryPoolsRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryPoolsRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPoolsRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryPoolsResponse) Reset()                    { *m = QueryPoolsResponse{} }
func (m *QueryPoolsResponse) String() string            { return protoString(m) }
func (*QueryPoolsResponse) ProtoMessage()               {}
func (m *QueryPoolsResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryPoolsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPoolsResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryPoolByTokensRequest) Reset()                    { *m = QueryPoolByTokensRequest{} }
func (m *QueryPoolByTokensRequest) String() string            { return protoString(m) }
func (*QueryPoolByTokensRequest) ProtoMessage()               {}
func (m *QueryPoolByTokensRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryPoolByTokensRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPoolByTokensRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryLiquidityRequest) Reset()                    { *m = QueryLiquidityRequest{} }
func (m *QueryLiquidityRequest) String() string            { return protoString(m) }
func (*QueryLiquidityRequest) ProtoMessage()               {}
func (m *QueryLiquidityRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryLiquidityRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryLiquidityRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryLiquidityResponse) Reset()                    { *m = QueryLiquidityResponse{} }
func (m *QueryLiquidityResponse) String() string            { return protoString(m) }
func (*QueryLiquidityResponse) ProtoMessage()               {}
func (m *QueryLiquidityResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryLiquidityResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryLiquidityResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QuerySimulateSwapRequest) Reset()                    { *m = QuerySimulateSwapRequest{} }
func (m *QuerySimulateSwapRequest) String() string            { return protoString(m) }
func (*QuerySimulateSwapRequest) ProtoMessage()               {}
func (m *QuerySimulateSwapRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QuerySimulateSwapRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QuerySimulateSwapRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QuerySimulateSwapResponse) Reset()                    { *m = QuerySimulateSwapResponse{} }
func (m *QuerySimulateSwapResponse) String() string            { return protoString(m) }
func (*QuerySimulateSwapResponse) ProtoMessage()               {}
func (m *QuerySimulateSwapResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QuerySimulateSwapResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QuerySimulateSwapResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *GenesisState) Reset()                    { *m = GenesisState{} }
func (m *GenesisState) String() string            { return protoString(m) }
func (*GenesisState) ProtoMessage()               {}
func (m *GenesisState) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *GenesisState) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *GenesisState) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }
