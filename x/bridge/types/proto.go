package types

import "encoding/json"

// Minimal proto.Message implementations for the hand-written message and
// query types, JSON-backed through the gogoproto Marshaler, Unmarshaler
// and Sizer fast paths.

func protoString(v any) string {
	bz, _ := json.Marshal(v)
	return string(bz)
}

// Message wire types.

func (m *MsgTransfer) Reset()                    { *m = MsgTransfer{} }
func (m *MsgTransfer) String() string            { return protoString(m) }
func (*MsgTransfer) ProtoMessage()               {}
func (m *MsgTransfer) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgTransfer) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgTransfer) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgAllowToken) Reset()                    { *m = MsgAllowToken{} }
func (m *MsgAllowToken) String() string            { return protoString(m) }
func (*MsgAllowToken) ProtoMessage()               {}
func (m *MsgAllowToken) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgAllowToken) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAllowToken) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateConfig) Reset()                    { *m = MsgUpdateConfig{} }
func (m *MsgUpdateConfig) String() string            { return protoString(m) }
func (*MsgUpdateConfig) ProtoMessage()               {}
func (m *MsgUpdateConfig) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateConfig) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateConfig) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

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

// Message response wire types.

func (m *MsgTransferResponse) Reset()                    { *m = MsgTransferResponse{} }
func (m *MsgTransferResponse) String() string            { return protoString(m) }
func (*MsgTransferResponse) ProtoMessage()               {}
func (m *MsgTransferResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgTransferResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgTransferResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgAllowTokenResponse) Reset()                    { *m = MsgAllowTokenResponse{} }
func (m *MsgAllowTokenResponse) String() string            { return protoString(m) }
func (*MsgAllowTokenResponse) ProtoMessage()               {}
func (m *MsgAllowTokenResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgAllowTokenResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAllowTokenResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *MsgUpdateConfigResponse) Reset()                    { *m = MsgUpdateConfigResponse{} }
func (m *MsgUpdateConfigResponse) String() string            { return protoString(m) }
func (*MsgUpdateConfigResponse) ProtoMessage()               {}
func (m *MsgUpdateConfigResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *MsgUpdateConfigResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateConfigResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

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

// Query service wire types.

func (m *QueryConfigRequest) Reset()                    { *m = QueryConfigRequest{} }
func (m *QueryConfigRequest) String() string            { return protoString(m) }
func (*QueryConfigRequest) ProtoMessage()               {}
func (m *QueryConfigRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryConfigRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryConfigRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryConfigResponse) Reset()                    { *m = QueryConfigResponse{} }
func (m *QueryConfigResponse) String() string            { return protoString(m) }
func (*QueryConfigResponse) ProtoMessage()               {}
func (m *QueryConfigResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryConfigResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryConfigResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryChannelRequest) Reset()                    { *m = QueryChannelRequest{} }
func (m *QueryChannelRequest) String() string            { return protoString(m) }
func (*QueryChannelRequest) ProtoMessage()               {}
func (m *QueryChannelRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryChannelRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryChannelRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryChannelResponse) Reset()                    { *m = QueryChannelResponse{} }
func (m *QueryChannelResponse) String() string            { return protoString(m) }
func (*QueryChannelResponse) ProtoMessage()               {}
func (m *QueryChannelResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryChannelResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryChannelResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryChannelsRequest) Reset()                    { *m = QueryChannelsRequest{} }
func (m *QueryChannelsRequest) String() string            { return protoString(m) }
func (*QueryChannelsRequest) ProtoMessage()               {}
func (m *QueryChannelsRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryChannelsRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryChannelsRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryChannelsResponse) Reset()                    { *m = QueryChannelsResponse{} }
func (m *QueryChannelsResponse) String() string            { return protoString(m) }
func (*QueryChannelsResponse) ProtoMessage()               {}
func (m *QueryChannelsResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryChannelsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryChannelsResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryAllowedRequest) Reset()                    { *m = QueryAllowedRequest{} }
func (m *QueryAllowedRequest) String() string            { return protoString(m) }
func (*QueryAllowedRequest) ProtoMessage()               {}
func (m *QueryAllowedRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryAllowedRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryAllowedRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryAllowedResponse) Reset()                    { *m = QueryAllowedResponse{} }
func (m *QueryAllowedResponse) String() string            { return protoString(m) }
func (*QueryAllowedResponse) ProtoMessage()               {}
func (m *QueryAllowedResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryAllowedResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryAllowedResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryAllowedTokensRequest) Reset()                    { *m = QueryAllowedTokensRequest{} }
func (m *QueryAllowedTokensRequest) String() string            { return protoString(m) }
func (*QueryAllowedTokensRequest) ProtoMessage()               {}
func (m *QueryAllowedTokensRequest) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryAllowedTokensRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryAllowedTokensRequest) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *QueryAllowedTokensResponse) Reset()                    { *m = QueryAllowedTokensResponse{} }
func (m *QueryAllowedTokensResponse) String() string            { return protoString(m) }
func (*QueryAllowedTokensResponse) ProtoMessage()               {}
func (m *QueryAllowedTokensResponse) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *QueryAllowedTokensResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryAllowedTokensResponse) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }

func (m *GenesisState) Reset()                    { *m = GenesisState{} }
func (m *GenesisState) String() string            { return protoString(m) }
func (*GenesisState) ProtoMessage()               {}
func (m *GenesisState) Marshal() ([]byte, error)  { return json.Marshal(m) }
func (m *GenesisState) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *GenesisState) Size() int                 { bz, _ := json.Marshal(m); return len(bz) }
