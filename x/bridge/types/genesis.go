package types

// GenesisState is the bridge module's genesis state.
type GenesisState struct {
	Params   Params            `json:"params"`
	Paused   bool              `json:"paused,omitempty"`
	Channels []ChannelInfo     `json:"channels,omitempty"`
	Balances []GenesisBalance  `json:"balances,omitempty"`
	Allowed  []AllowInfo       `json:"allowed,omitempty"`
	Pending  []PendingTransfer `json:"pending,omitempty"`
}

// GenesisBalance is one channel's balance in one denom.
type GenesisBalance struct {
	ChannelID string `json:"channel_id"`
	Denom     string `json:"denom"`
	ChannelState
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	channels := make(map[string]struct{}, len(gs.Channels))
	for _, info := range gs.Channels {
		if err := info.Validate(); err != nil {
			return err
		}
		if _, ok := channels[info.ChannelID]; ok {
			return ErrInvalidState.Wrapf("duplicate channel %s", info.ChannelID)
		}
		channels[info.ChannelID] = struct{}{}
	}

	balanceKeys := make(map[string]struct{}, len(gs.Balances))
	for _, bal := range gs.Balances {
		if _, ok := channels[bal.ChannelID]; !ok {
			return ErrInvalidState.Wrapf("balance references unknown channel %s", bal.ChannelID)
		}
		if bal.Denom == "" {
			return ErrInvalidState.Wrap("balance denom cannot be empty")
		}
		if bal.Outstanding.IsNil() || bal.Outstanding.IsNegative() {
			return ErrInvalidState.Wrapf("negative outstanding for %s on %s", bal.Denom, bal.ChannelID)
		}
		if bal.TotalSent.IsNil() || bal.TotalSent.LT(bal.Outstanding) {
			return ErrInvalidState.Wrapf("total sent below outstanding for %s on %s", bal.Denom, bal.ChannelID)
		}
		key := bal.ChannelID + "/" + bal.Denom
		if _, ok := balanceKeys[key]; ok {
			return ErrInvalidState.Wrapf("duplicate balance for %s", key)
		}
		balanceKeys[key] = struct{}{}
	}

	allowed := make(map[string]struct{}, len(gs.Allowed))
	for _, allow := range gs.Allowed {
		if allow.Denom == "" {
			return ErrInvalidState.Wrap("allowlist denom cannot be empty")
		}
		if _, ok := allowed[allow.Denom]; ok {
			return ErrInvalidState.Wrapf("duplicate allowlist entry %s", allow.Denom)
		}
		allowed[allow.Denom] = struct{}{}
	}

	pending := make(map[string]struct{}, len(gs.Pending))
	for _, transfer := range gs.Pending {
		if _, ok := channels[transfer.ChannelID]; !ok {
			return ErrInvalidState.Wrapf("pending transfer references unknown channel %s", transfer.ChannelID)
		}
		if transfer.Amount.IsNil() || !transfer.Amount.IsPositive() {
			return ErrInvalidState.Wrapf("pending transfer amount must be positive on %s", transfer.ChannelID)
		}
		key := PendingKey(transfer.ChannelID, transfer.Sequence)
		if _, ok := pending[string(key)]; ok {
			return ErrInvalidState.Wrapf("duplicate pending transfer %s/%d", transfer.ChannelID, transfer.Sequence)
		}
		pending[string(key)] = struct{}{}
	}

	return nil
}
