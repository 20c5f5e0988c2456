package types

import "encoding/json"

// Minimal proto.Message implementations for the hand-written message and
// query types. Marshal/Unmarshal/Size hit the gogoproto Marshaler,
// Unmarshaler and Sizer fast paths, so the SDK's proto codec moves these
// types as their JSON encoding instead of reflecting over absent
// protobuf field tags.

func protoString(v any) string {
	bz, _ := json.Marshal(v)
	return string(bz)
}

func (m *MsgCreateOrderBookPair) Reset()                    { *m = MsgCreateOrderBookPair{} }
func (m *MsgCreateOrderBookPair) String() string            { return protoString(m) }
func (*MsgCreateOrderBookPair) ProtoMessage()               {}
func (m *MsgCreateOrderBookPair) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCreateOrderBookPair) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateOrderBookPair) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateOrderBookPair) Reset()                    { *m = MsgUpdateOrderBookPair{} }
func (m *MsgUpdateOrderBookPair) String() string            { return protoString(m) }
func (*MsgUpdateOrderBookPair) ProtoMessage()               {}
func (m *MsgUpdateOrderBookPair) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateOrderBookPair) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateOrderBookPair) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveOrderBookPair) Reset()                    { *m = MsgRemoveOrderBookPair{} }
func (m *MsgRemoveOrderBookPair) String() string            { return protoString(m) }
func (*MsgRemoveOrderBookPair) ProtoMessage()               {}
func (m *MsgRemoveOrderBookPair) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveOrderBookPair) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveOrderBookPair) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSubmitOrder) Reset()                    { *m = MsgSubmitOrder{} }
func (m *MsgSubmitOrder) String() string            { return protoString(m) }
func (*MsgSubmitOrder) ProtoMessage()               {}
func (m *MsgSubmitOrder) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSubmitOrder) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitOrder) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSubmitMarketOrder) Reset()                    { *m = MsgSubmitMarketOrder{} }
func (m *MsgSubmitMarketOrder) String() string            { return protoString(m) }
func (*MsgSubmitMarketOrder) ProtoMessage()               {}
func (m *MsgSubmitMarketOrder) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSubmitMarketOrder) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitMarketOrder) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgCancelOrder) Reset()                    { *m = MsgCancelOrder{} }
func (m *MsgCancelOrder) String() string            { return protoString(m) }
func (*MsgCancelOrder) ProtoMessage()               {}
func (m *MsgCancelOrder) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCancelOrder) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCancelOrder) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgWhitelistTrader) Reset()                    { *m = MsgWhitelistTrader{} }
func (m *MsgWhitelistTrader) String() string            { return protoString(m) }
func (*MsgWhitelistTrader) ProtoMessage()               {}
func (m *MsgWhitelistTrader) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgWhitelistTrader) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgWhitelistTrader) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveTrader) Reset()                    { *m = MsgRemoveTrader{} }
func (m *MsgRemoveTrader) String() string            { return protoString(m) }
func (*MsgRemoveTrader) ProtoMessage()               {}
func (m *MsgRemoveTrader) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveTrader) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveTrader) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgPause) Reset()                    { *m = MsgPause{} }
func (m *MsgPause) String() string            { return protoString(m) }
func (*MsgPause) ProtoMessage()               {}
func (m *MsgPause) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgPause) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgPause) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUnpause) Reset()                    { *m = MsgUnpause{} }
func (m *MsgUnpause) String() string            { return protoString(m) }
func (*MsgUnpause) ProtoMessage()               {}
func (m *MsgUnpause) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUnpause) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUnpause) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgWithdrawToken) Reset()                    { *m = MsgWithdrawToken{} }
func (m *MsgWithdrawToken) String() string            { return protoString(m) }
func (*MsgWithdrawToken) ProtoMessage()               {}
func (m *MsgWithdrawToken) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgWithdrawToken) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgWithdrawToken) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateConfig) Reset()                    { *m = MsgUpdateConfig{} }
func (m *MsgUpdateConfig) String() string            { return protoString(m) }
func (*MsgUpdateConfig) ProtoMessage()               {}
func (m *MsgUpdateConfig) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateConfig) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateConfig) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateOperator) Reset()                    { *m = MsgUpdateOperator{} }
func (m *MsgUpdateOperator) String() string            { return protoString(m) }
func (*MsgUpdateOperator) ProtoMessage()               {}
func (m *MsgUpdateOperator) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateOperator) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateOperator) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

// Query service wire types.

func (m *QueryContractInfoRequest) Reset()                    { *m = QueryContractInfoRequest{} }
func (m *QueryContractInfoRequest) String() string            { return protoString(m) }
func (*QueryContractInfoRequest) ProtoMessage()               {}
func (m *QueryContractInfoRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryContractInfoRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryContractInfoRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *ContractInfoResponse) Reset()                    { *m = ContractInfoResponse{} }
func (m *ContractInfoResponse) String() string            { return protoString(m) }
func (*ContractInfoResponse) ProtoMessage()               {}
func (m *ContractInfoResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *ContractInfoResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *ContractInfoResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryOrderRequest) Reset()                    { *m = QueryOrderRequest{} }
func (m *QueryOrderRequest) String() string            { return protoString(m) }
func (*QueryOrderRequest) ProtoMessage()               {}
func (m *QueryOrderRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryOrderRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryOrderRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *OrderResponse) Reset()                    { *m = OrderResponse{} }
func (m *OrderResponse) String() string            { return protoString(m) }
func (*OrderResponse) ProtoMessage()               {}
func (m *OrderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *OrderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *OrderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryOrderBookRequest) Reset()                    { *m = QueryOrderBookRequest{} }
func (m *QueryOrderBookRequest) String() string            { return protoString(m) }
func (*QueryOrderBookRequest) ProtoMessage()               {}
func (m *QueryOrderBookRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryOrderBookRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryOrderBookRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *OrderBookResponse) Reset()                    { *m = OrderBookResponse{} }
func (m *OrderBookResponse) String() string            { return protoString(m) }
func (*OrderBookResponse) ProtoMessage()               {}
func (m *OrderBookResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *OrderBookResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *OrderBookResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryOrderBooksRequest) Reset()                    { *m = QueryOrderBooksRequest{} }
func (m *QueryOrderBooksRequest) String() string            { return protoString(m) }
func (*QueryOrderBooksRequest) ProtoMessage()               {}
func (m *QueryOrderBooksRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryOrderBooksRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryOrderBooksRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *OrderBooksResponse) Reset()                    { *m = OrderBooksResponse{} }
func (m *OrderBooksResponse) String() string            { return protoString(m) }
func (*OrderBooksResponse) ProtoMessage()               {}
func (m *OrderBooksResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *OrderBooksResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *OrderBooksResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryOrdersRequest) Reset()                    { *m = QueryOrdersRequest{} }
func (m *QueryOrdersRequest) String() string            { return protoString(m) }
func (*QueryOrdersRequest) ProtoMessage()               {}
func (m *QueryOrdersRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryOrdersRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryOrdersRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *OrdersResponse) Reset()                    { *m = OrdersResponse{} }
func (m *OrdersResponse) String() string            { return protoString(m) }
func (*OrdersResponse) ProtoMessage()               {}
func (m *OrdersResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *OrdersResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *OrdersResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryTickRequest) Reset()                    { *m = QueryTickRequest{} }
func (m *QueryTickRequest) String() string            { return protoString(m) }
func (*QueryTickRequest) ProtoMessage()               {}
func (m *QueryTickRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryTickRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryTickRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *TickResponse) Reset()                    { *m = TickResponse{} }
func (m *TickResponse) String() string            { return protoString(m) }
func (*TickResponse) ProtoMessage()               {}
func (m *TickResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *TickResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *TickResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryTicksRequest) Reset()                    { *m = QueryTicksRequest{} }
func (m *QueryTicksRequest) String() string            { return protoString(m) }
func (*QueryTicksRequest) ProtoMessage()               {}
func (m *QueryTicksRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryTicksRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryTicksRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *TicksResponse) Reset()                    { *m = TicksResponse{} }
func (m *TicksResponse) String() string            { return protoString(m) }
func (*TicksResponse) ProtoMessage()               {}
func (m *TicksResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *TicksResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *TicksResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryLastOrderIDRequest) Reset()                    { *m = QueryLastOrderIDRequest{} }
func (m *QueryLastOrderIDRequest) String() string            { return protoString(m) }
func (*QueryLastOrderIDRequest) ProtoMessage()               {}
func (m *QueryLastOrderIDRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryLastOrderIDRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryLastOrderIDRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *LastOrderIDResponse) Reset()                    { *m = LastOrderIDResponse{} }
func (m *LastOrderIDResponse) String() string            { return protoString(m) }
func (*LastOrderIDResponse) ProtoMessage()               {}
func (m *LastOrderIDResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *LastOrderIDResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *LastOrderIDResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryMidPriceRequest) Reset()                    { *m = QueryMidPriceRequest{} }
func (m *QueryMidPriceRequest) String() string            { return protoString(m) }
func (*QueryMidPriceRequest) ProtoMessage()               {}
func (m *QueryMidPriceRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryMidPriceRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryMidPriceRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MidPriceResponse) Reset()                    { *m = MidPriceResponse{} }
func (m *MidPriceResponse) String() string            { return protoString(m) }
func (*MidPriceResponse) ProtoMessage()               {}
func (m *MidPriceResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MidPriceResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MidPriceResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QuerySimulateMarketOrderRequest) Reset()                    { *m = QuerySimulateMarketOrderRequest{} }
func (m *QuerySimulateMarketOrderRequest) String() string            { return protoString(m) }
func (*QuerySimulateMarketOrderRequest) ProtoMessage()               {}
func (m *QuerySimulateMarketOrderRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QuerySimulateMarketOrderRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QuerySimulateMarketOrderRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *SimulateMarketOrderResponse) Reset()                    { *m = SimulateMarketOrderResponse{} }
func (m *SimulateMarketOrderResponse) String() string            { return protoString(m) }
func (*SimulateMarketOrderResponse) ProtoMessage()               {}
func (m *SimulateMarketOrderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *SimulateMarketOrderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *SimulateMarketOrderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryWhitelistedTradersRequest) Reset()                    { *m = QueryWhitelistedTradersRequest{} }
func (m *QueryWhitelistedTradersRequest) String() string            { return protoString(m) }
func (*QueryWhitelistedTradersRequest) ProtoMessage()               {}
func (m *QueryWhitelistedTradersRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryWhitelistedTradersRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryWhitelistedTradersRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *WhitelistedTradersResponse) Reset()                    { *m = WhitelistedTradersResponse{} }
func (m *WhitelistedTradersResponse) String() string            { return protoString(m) }
func (*WhitelistedTradersResponse) ProtoMessage()               {}
func (m *WhitelistedTradersResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *WhitelistedTradersResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *WhitelistedTradersResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

// Message response wire types.

func (m *MsgCreateOrderBookPairResponse) Reset()                    { *m = MsgCreateOrderBookPairResponse{} }
func (m *MsgCreateOrderBookPairResponse) String() string            { return protoString(m) }
func (*MsgCreateOrderBookPairResponse) ProtoMessage()               {}
func (m *MsgCreateOrderBookPairResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCreateOrderBookPairResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCreateOrderBookPairResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateOrderBookPairResponse) Reset()                    { *m = MsgUpdateOrderBookPairResponse{} }
func (m *MsgUpdateOrderBookPairResponse) String() string            { return protoString(m) }
func (*MsgUpdateOrderBookPairResponse) ProtoMessage()               {}
func (m *MsgUpdateOrderBookPairResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateOrderBookPairResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateOrderBookPairResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveOrderBookPairResponse) Reset()                    { *m = MsgRemoveOrderBookPairResponse{} }
func (m *MsgRemoveOrderBookPairResponse) String() string            { return protoString(m) }
func (*MsgRemoveOrderBookPairResponse) ProtoMessage()               {}
func (m *MsgRemoveOrderBookPairResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveOrderBookPairResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveOrderBookPairResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSubmitOrderResponse) Reset()                    { *m = MsgSubmitOrderResponse{} }
func (m *MsgSubmitOrderResponse) String() string            { return protoString(m) }
func (*MsgSubmitOrderResponse) ProtoMessage()               {}
func (m *MsgSubmitOrderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSubmitOrderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitOrderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgSubmitMarketOrderResponse) Reset()                    { *m = MsgSubmitMarketOrderResponse{} }
func (m *MsgSubmitMarketOrderResponse) String() string            { return protoString(m) }
func (*MsgSubmitMarketOrderResponse) ProtoMessage()               {}
func (m *MsgSubmitMarketOrderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgSubmitMarketOrderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitMarketOrderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgCancelOrderResponse) Reset()                    { *m = MsgCancelOrderResponse{} }
func (m *MsgCancelOrderResponse) String() string            { return protoString(m) }
func (*MsgCancelOrderResponse) ProtoMessage()               {}
func (m *MsgCancelOrderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgCancelOrderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgCancelOrderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgWhitelistTraderResponse) Reset()                    { *m = MsgWhitelistTraderResponse{} }
func (m *MsgWhitelistTraderResponse) String() string            { return protoString(m) }
func (*MsgWhitelistTraderResponse) ProtoMessage()               {}
func (m *MsgWhitelistTraderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgWhitelistTraderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgWhitelistTraderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgRemoveTraderResponse) Reset()                    { *m = MsgRemoveTraderResponse{} }
func (m *MsgRemoveTraderResponse) String() string            { return protoString(m) }
func (*MsgRemoveTraderResponse) ProtoMessage()               {}
func (m *MsgRemoveTraderResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgRemoveTraderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgRemoveTraderResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgPauseResponse) Reset()                    { *m = MsgPauseResponse{} }
func (m *MsgPauseResponse) String() string            { return protoString(m) }
func (*MsgPauseResponse) ProtoMessage()               {}
func (m *MsgPauseResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgPauseResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgPauseResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUnpauseResponse) Reset()                    { *m = MsgUnpauseResponse{} }
func (m *MsgUnpauseResponse) String() string            { return protoString(m) }
func (*MsgUnpauseResponse) ProtoMessage()               {}
func (m *MsgUnpauseResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUnpauseResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUnpauseResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgWithdrawTokenResponse) Reset()                    { *m = MsgWithdrawTokenResponse{} }
func (m *MsgWithdrawTokenResponse) String() string            { return protoString(m) }
func (*MsgWithdrawTokenResponse) ProtoMessage()               {}
func (m *MsgWithdrawTokenResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgWithdrawTokenResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgWithdrawTokenResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateConfigResponse) Reset()                    { *m = MsgUpdateConfigResponse{} }
func (m *MsgUpdateConfigResponse) String() string            { return protoString(m) }
func (*MsgUpdateConfigResponse) ProtoMessage()               {}
func (m *MsgUpdateConfigResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateConfigResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateConfigResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateOperatorResponse) Reset()                    { *m = MsgUpdateOperatorResponse{} }
func (m *MsgUpdateOperatorResponse) String() string            { return protoString(m) }
func (*MsgUpdateOperatorResponse) ProtoMessage()               {}
func (m *MsgUpdateOperatorResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateOperatorResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateOperatorResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *GenesisState) Reset()                    { *m = GenesisState{} }
func (m *GenesisState) String() string            { return protoString(m) }
func (*GenesisState) ProtoMessage()               {}
func (m *GenesisState) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *GenesisState) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *GenesisState) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }
