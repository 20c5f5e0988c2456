package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// GetTxCmd returns the transaction commands for the orderbook module
func GetTxCmd() *cobra.Command {
	orderbookTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Orderbook transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	orderbookTxCmd.AddCommand(
		CmdCreatePair(),
		CmdSubmitOrder(),
		CmdSubmitMarketOrder(),
		CmdCancelOrder(),
		CmdWhitelistTrader(),
		CmdRemoveTrader(),
		CmdPause(),
		CmdUnpause(),
	)

	return orderbookTxCmd
}

// parseAssetInfo reads either a bech32 token contract address or a native
// coin denom.
func parseAssetInfo(s string) types.AssetInfo {
	if _, err := sdk.AccAddressFromBech32(s); err == nil {
		return types.NewTokenInfo(s)
	}
	return types.NewNativeInfo(s)
}

func parseDirection(s string) (types.OrderDirection, error) {
	switch s {
	case "buy":
		return types.Buy, nil
	case "sell":
		return types.Sell, nil
	default:
		return 0, fmt.Errorf("direction must be buy or sell, got %q", s)
	}
}

// CmdCreatePair returns a CLI command handler for registering a trading pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [base-asset] [quote-asset] [min-quote-amount]",
		Short: "Register a new order book pair (admin only)",
		Long: `Register a new order book trading pair.

Example:
  $ oraid tx orderbook create-pair orai uusdt 10 --from admin`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minQuote, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min-quote-amount: %s (must be integer)", args[2])
			}

			msg := &types.MsgCreateOrderBookPair{
				Sender:         clientCtx.GetFromAddress().String(),
				BaseAssetInfo:  parseAssetInfo(args[0]),
				QuoteAssetInfo: parseAssetInfo(args[1]),
				MinQuoteAmount: minQuote,
			}

			if spreadStr, _ := cmd.Flags().GetString(flagSpread); spreadStr != "" {
				spread, err := math.LegacyNewDecFromStr(spreadStr)
				if err != nil {
					return fmt.Errorf("invalid spread: %w", err)
				}
				msg.Spread = &spread
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagSpread, "", "market order slippage default for the pair, e.g. 0.01")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitOrder returns a CLI command handler for placing a limit order
func CmdSubmitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-order [direction] [offer-asset] [offer-amount] [ask-asset] [ask-amount]",
		Short: "Place a limit order",
		Long: `Place a limit order. A buy offers the quote asset, a sell offers the base asset.

Example:
  $ oraid tx orderbook submit-order buy uusdt 7520000 orai 1000000 --from mykey
  $ oraid tx orderbook submit-order sell orai 1000000 uusdt 7520000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}

			offerAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid offer-amount: %s (must be integer)", args[2])
			}
			askAmount, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid ask-amount: %s (must be integer)", args[4])
			}

			msg := &types.MsgSubmitOrder{
				Sender:    clientCtx.GetFromAddress().String(),
				Direction: direction,
				Assets: [2]types.Asset{
					types.NewAsset(parseAssetInfo(args[1]), offerAmount),
					types.NewAsset(parseAssetInfo(args[3]), askAmount),
				},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitMarketOrder returns a CLI command handler for placing a market order
func CmdSubmitMarketOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-market-order [direction] [base-asset] [quote-asset] [offer-amount]",
		Short: "Execute an order at the best available price",
		Long: `Execute an order immediately within a slippage-bounded price window.
The unfilled part of the offer is refunded; market orders never rest on the book.

Example:
  $ oraid tx orderbook submit-market-order buy orai uusdt 500000 --slippage 0.02 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}

			offerAmount, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid offer-amount: %s (must be integer)", args[3])
			}

			msg := &types.MsgSubmitMarketOrder{
				Sender:      clientCtx.GetFromAddress().String(),
				AssetInfos:  [2]types.AssetInfo{parseAssetInfo(args[1]), parseAssetInfo(args[2])},
				Direction:   direction,
				OfferAmount: offerAmount,
			}

			if slippageStr, _ := cmd.Flags().GetString(flagSlippage); slippageStr != "" {
				slippage, err := math.LegacyNewDecFromStr(slippageStr)
				if err != nil {
					return fmt.Errorf("invalid slippage: %w", err)
				}
				msg.Slippage = &slippage
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagSlippage, "", "maximum price slippage, e.g. 0.02 (default: pair spread)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelOrder returns a CLI command handler for cancelling an order
func CmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-id] [base-asset] [quote-asset]",
		Short: "Cancel a resting order and refund the unfilled offer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order ID: %w", err)
			}

			msg := &types.MsgCancelOrder{
				Sender:     clientCtx.GetFromAddress().String(),
				OrderID:    orderID,
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[1]), parseAssetInfo(args[2])},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWhitelistTrader returns a CLI command handler for adding a fee-exempt trader
func CmdWhitelistTrader() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist-trader [address]",
		Short: "Exempt a trader from commission (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWhitelistTrader{
				Sender: clientCtx.GetFromAddress().String(),
				Trader: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveTrader returns a CLI command handler for removing a fee-exempt trader
func CmdRemoveTrader() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-trader [address]",
		Short: "Remove a trader's commission exemption (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveTrader{
				Sender: clientCtx.GetFromAddress().String(),
				Trader: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPause returns a CLI command handler for halting trading
func CmdPause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Halt trading (admin or operator only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgPause{Sender: clientCtx.GetFromAddress().String()}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnpause returns a CLI command handler for resuming trading
func CmdUnpause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Resume trading (admin or operator only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUnpause{Sender: clientCtx.GetFromAddress().String()}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
