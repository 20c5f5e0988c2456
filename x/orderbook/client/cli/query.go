package cli

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// GetQueryCmd returns the cli query commands for the orderbook module
func GetQueryCmd() *cobra.Command {
	orderbookQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the orderbook module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	orderbookQueryCmd.AddCommand(
		GetCmdQueryContractInfo(),
		GetCmdQueryOrder(),
		GetCmdQueryOrderBook(),
		GetCmdQueryOrders(),
		GetCmdQueryTicks(),
		GetCmdQueryMidPrice(),
		GetCmdQueryLastOrderID(),
		GetCmdQuerySimulateMarketOrder(),
		GetCmdQueryWhitelistedTraders(),
	)

	return orderbookQueryCmd
}

// GetCmdQueryContractInfo returns the command to query the module configuration
func GetCmdQueryContractInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract-info",
		Short: "Query the orderbook configuration and pause state",
		Long: `Query the orderbook admin, reward address, operator, commission rate
and whether trading is currently paused.

Example:
  $ oraid query orderbook contract-info`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ContractInfo(context.Background(), &types.QueryContractInfoRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrder returns the command to query one order
func GetCmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [base-asset] [quote-asset] [order-id]",
		Short: "Query a resting order by id",
		Long: `Query one order of a trading pair by its id.

Example:
  $ oraid query orderbook order orai uusdt 42`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Order(context.Background(), &types.QueryOrderRequest{
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				OrderID:    orderID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrderBook returns the command to query a pair's configuration
func GetCmdQueryOrderBook() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order-book [base-asset] [quote-asset]",
		Short: "Query one trading pair's order book configuration",
		Long: `Query a pair's spread, minimum quote amount and fulfillment thresholds.

Example:
  $ oraid query orderbook order-book orai uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.OrderBook(context.Background(), &types.QueryOrderBookRequest{
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrders returns the command to list orders with optional filters
func GetCmdQueryOrders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [base-asset] [quote-asset]",
		Short: "List resting orders, optionally filtered by bidder, price or direction",
		Long: `List resting orders of a trading pair.

Example:
  $ oraid query orderbook orders orai uusdt
  $ oraid query orderbook orders orai uusdt --bidder orai1... --limit 50
  $ oraid query orderbook orders orai uusdt --direction sell --price 7.52`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := types.QueryOrdersRequest{
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
			}

			if bidder, _ := cmd.Flags().GetString(flagBidder); bidder != "" {
				req.Filter.Bidder = bidder
			}
			if priceStr, _ := cmd.Flags().GetString(flagPrice); priceStr != "" {
				price, err := math.LegacyNewDecFromStr(priceStr)
				if err != nil {
					return fmt.Errorf("invalid price: %w", err)
				}
				req.Filter.Price = &price
			}
			if directionStr, _ := cmd.Flags().GetString(flagDirection); directionStr != "" {
				direction, err := parseDirection(directionStr)
				if err != nil {
					return err
				}
				req.Direction = &direction
			}
			req.Limit, _ = cmd.Flags().GetUint32(flagLimit)

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Orders(context.Background(), &req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(flagBidder, "", "filter by bidder address")
	cmd.Flags().String(flagPrice, "", "filter by exact price")
	cmd.Flags().String(flagDirection, "", "filter by direction (buy|sell)")
	cmd.Flags().Uint32(flagLimit, 0, "maximum number of results")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTicks returns the command to list price levels
func GetCmdQueryTicks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticks [base-asset] [quote-asset] [direction]",
		Short: "List one side's price levels and their order counts",
		Long: `List the populated price levels of one side of the book.

Example:
  $ oraid query orderbook ticks orai uusdt buy
  $ oraid query orderbook ticks orai uusdt sell --limit 20`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			direction, err := parseDirection(args[2])
			if err != nil {
				return err
			}

			req := types.QueryTicksRequest{
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
				Direction:  direction,
				OrderBy:    types.OrderByAscending,
			}
			req.Limit, _ = cmd.Flags().GetUint32(flagLimit)

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Ticks(context.Background(), &req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().Uint32(flagLimit, 0, "maximum number of results")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMidPrice returns the command to query the pair mid price
func GetCmdQueryMidPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mid-price [base-asset] [quote-asset]",
		Short: "Query the average of the best buy and sell prices",
		Long: `Query the mid price of a pair. Fails when either side of the book is empty.

Example:
  $ oraid query orderbook mid-price orai uusdt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MidPrice(context.Background(), &types.QueryMidPriceRequest{
				AssetInfos: [2]types.AssetInfo{parseAssetInfo(args[0]), parseAssetInfo(args[1])},
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLastOrderID returns the command to query the order id counter
func GetCmdQueryLastOrderID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last-order-id",
		Short: "Query the last allocated order id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.LastOrderID(context.Background(), &types.QueryLastOrderIDRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySimulateMarketOrder returns the command to dry-run a market order
func GetCmdQuerySimulateMarketOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-market-order [direction] [base-asset] [quote-asset] [offer-amount]",
		Short: "Dry-run a market order against the current book",
		Long: `Preview the receive and refund amounts of a market order without
executing it.

Example:
  $ oraid query orderbook simulate-market-order buy orai uusdt 1000000
  $ oraid query orderbook simulate-market-order sell orai uusdt 500000 --slippage 0.02`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
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

			req := types.QuerySimulateMarketOrderRequest{
				AssetInfos:  [2]types.AssetInfo{parseAssetInfo(args[1]), parseAssetInfo(args[2])},
				Direction:   direction,
				OfferAmount: offerAmount,
			}

			if slippageStr, _ := cmd.Flags().GetString(flagSlippage); slippageStr != "" {
				slippage, err := math.LegacyNewDecFromStr(slippageStr)
				if err != nil {
					return fmt.Errorf("invalid slippage: %w", err)
				}
				req.Slippage = &slippage
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateMarketOrder(context.Background(), &req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(flagSlippage, "", "maximum price slippage, e.g. 0.02")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryWhitelistedTraders returns the command to list fee-exempt traders
func GetCmdQueryWhitelistedTraders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelisted-traders",
		Short: "List traders exempt from trading commission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.WhitelistedTraders(context.Background(), &types.QueryWhitelistedTradersRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
