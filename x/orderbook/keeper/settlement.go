package keeper

import (
	"context"
	"encoding/json"
	"strings"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/oraidex/oraidex/x/orderbook/types"
)

// GetReward loads the accumulated commission bucket for one beneficiary on
// one pair.
func (k Keeper) GetReward(ctx context.Context, pairKey []byte, address string) (types.Executor, bool) {
	bz := k.getStore(ctx).Get(types.RewardKey(pairKey, address))
	if bz == nil {
		return types.Executor{}, false
	}

	var executor types.Executor
	if err := json.Unmarshal(bz, &executor); err != nil {
		return types.Executor{}, false
	}
	return executor, true
}

// SetReward persists a commission bucket.
func (k Keeper) SetReward(ctx context.Context, pairKey []byte, executor types.Executor) error {
	bz, err := json.Marshal(executor)
	if err != nil {
		return types.ErrInvalidState.Wrapf("failed to marshal executor: %v", err)
	}
	k.getStore(ctx).Set(types.RewardKey(pairKey, executor.Address), bz)
	return nil
}

// GetRewards returns all commission buckets, for genesis export.
func (k Keeper) GetRewards(ctx context.Context) []types.Executor {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RewardKeyPrefix)
	defer iterator.Close()

	var rewards []types.Executor
	for ; iterator.Valid(); iterator.Next() {
		var executor types.Executor
		if err := json.Unmarshal(iterator.Value(), &executor); err != nil {
			continue
		}
		rewards = append(rewards, executor)
	}
	return rewards
}

// calculateFee charges the taker commission on an outgoing ask payment,
// accumulating it into the pair's reward bucket. Buy sides pay commission
// in the base asset, sell sides in the quote asset.
func calculateFee(
	commissionRate math.LegacyDec,
	direction types.OrderDirection,
	payout *types.Asset,
	reward *types.Executor,
) math.Int {
	rewardFee := types.MulPriceTruncate(payout.Amount, commissionRate)

	if direction == types.Buy {
		reward.RewardAssets[0].Amount = reward.RewardAssets[0].Amount.Add(rewardFee)
	} else {
		reward.RewardAssets[1].Amount = reward.RewardAssets[1].Amount.Add(rewardFee)
	}

	if payout.Amount.GTE(rewardFee) {
		payout.Amount = payout.Amount.Sub(rewardFee)
	} else {
		payout.Amount = math.ZeroInt()
	}
	return rewardFee
}

// buildTraderPayments turns each matched order's per-round ask fill into a
// payment to its bidder, net of commission unless the trader is exempt.
func (k Keeper) buildTraderPayments(
	ctx context.Context,
	commissionRate math.LegacyDec,
	book types.OrderBook,
	orders []*matchedOrder,
	reward *types.Executor,
) []types.Payment {
	var payments []types.Payment
	for _, order := range orders {
		if order.FilledAskThisRound.IsZero() || order.FilledOfferThisRound.IsZero() {
			continue
		}

		payout := types.NewAsset(book.AskInfo(order.Direction), order.FilledAskThisRound)

		if !k.traderPolicy.IsExemptFromFee(ctx, order.BidderAddr) {
			order.RewardFee = calculateFee(commissionRate, order.Direction, &payout, reward)
		}

		if !payout.Amount.IsZero() {
			payments = append(payments, types.Payment{Address: order.BidderAddr, Asset: payout})
		}
	}
	return payments
}

// settleOrder persists a matched order's outcome. Fulfilled orders are
// removed and leave an offer-side refund when the residue clears the dust
// threshold; partially filled orders are written back in place.
func (k Keeper) settleOrder(
	ctx context.Context,
	pairKey []byte,
	order *matchedOrder,
	refundThreshold math.Int,
) (math.Int, error) {
	if order.Status != types.OrderStatusFulfilled {
		if err := k.StoreOrder(ctx, pairKey, order.Order, false); err != nil {
			return math.Int{}, err
		}
		return math.ZeroInt(), nil
	}

	remaining, err := order.RemainingOffer()
	if err != nil {
		return math.Int{}, err
	}

	// The threshold is quoted in the quote asset; a sell order's offer is
	// the base asset, so convert through the order price.
	minOfferRefund := refundThreshold
	if order.Direction == types.Sell {
		minOfferRefund = types.DivPriceTruncate(refundThreshold, order.Price())
	}

	refund := math.ZeroInt()
	if remaining.GTE(minOfferRefund) {
		refund = remaining
	}

	if err := k.RemoveOrder(ctx, pairKey, order.Order); err != nil {
		return math.Int{}, err
	}
	return refund, nil
}

// payTraders nets payments by (address, asset) and releases them from the
// module escrow.
func (k Keeper) payTraders(ctx context.Context, payments []types.Payment) error {
	var netted []types.Payment
outer:
	for _, payment := range payments {
		for i := range netted {
			if netted[i].Address == payment.Address && netted[i].Asset.Info.Equal(payment.Asset.Info) {
				netted[i].Asset.Amount = netted[i].Asset.Amount.Add(payment.Asset.Amount)
				continue outer
			}
		}
		netted = append(netted, payment)
	}

	for _, payment := range netted {
		if payment.Asset.Amount.IsZero() {
			continue
		}
		addr, err := sdk.AccAddressFromBech32(payment.Address)
		if err != nil {
			return types.ErrInvalidState.Wrapf("payment address: %v", err)
		}
		if err := k.payAsset(ctx, addr, payment.Asset); err != nil {
			return err
		}
	}
	return nil
}

// transferReward flushes any reward bucket that has reached the minimum
// fee volume to the executor and zeroes it. Returns a description of what
// was paid out for the settlement event.
func (k Keeper) transferReward(ctx context.Context, executor *types.Executor) ([]string, error) {
	minFee := math.NewIntFromUint64(types.MinFee)
	var transferred []string

	for i := range executor.RewardAssets {
		if executor.RewardAssets[i].Amount.LT(minFee) {
			continue
		}

		// The address is only needed once a bucket actually flushes, so
		// an unset reward address keeps accruing instead of failing every
		// settlement.
		addr, err := sdk.AccAddressFromBech32(executor.Address)
		if err != nil {
			return nil, types.ErrInvalidState.Wrapf("reward address: %v", err)
		}
		if err := k.payAsset(ctx, addr, executor.RewardAssets[i]); err != nil {
			return nil, err
		}
		k.metrics.RewardsFlushed.WithLabelValues(executor.RewardAssets[i].Info.String()).
			Add(metricAmount(executor.RewardAssets[i].Amount))
		transferred = append(transferred, executor.RewardAssets[i].String())
		executor.RewardAssets[i].Amount = math.ZeroInt()
	}
	return transferred, nil
}

// processMatching runs one matching round for a newly stored order and
// settles everything it touched: fills, commissions, dust refunds and
// reward flushes. A round that matches nothing leaves the book untouched
// and returns nil. Otherwise the settled taker copy is returned.
func (k Keeper) processMatching(
	ctx context.Context,
	book types.OrderBook,
	orderID uint64,
	priceThreshold math.LegacyDec,
) (*matchedOrder, error) {
	params := k.GetParams(ctx)
	commissionRate := params.CommissionRate
	pairKey := book.PairKey()

	reward, found := k.GetReward(ctx, pairKey, params.RewardAddress)
	if !found {
		reward = types.NewExecutor(params.RewardAddress, book.BaseAssetInfo, book.QuoteAssetInfo)
	}

	order, err := k.GetOrder(ctx, pairKey, orderID)
	if err != nil {
		return nil, err
	}

	userOrder, matchedOrders, err := k.matchingOrder(ctx, book, order, priceThreshold)
	if err != nil {
		return nil, err
	}
	if len(matchedOrders) == 0 {
		return nil, nil
	}

	matchedOrders = append(matchedOrders, userOrder)

	payments := k.buildTraderPayments(ctx, commissionRate, book, matchedOrders, &reward)

	refundThreshold := book.RefundThresholdOrDefault()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	settled := 0

	for _, matched := range matchedOrders {
		if matched.Status == types.OrderStatusOpen {
			continue
		}

		refund, err := k.settleOrder(ctx, pairKey, matched, refundThreshold)
		if err != nil {
			return nil, err
		}
		if !refund.IsZero() {
			payments = append(payments, types.Payment{
				Address: matched.BidderAddr,
				Asset:   types.NewAsset(book.OfferInfo(matched.Direction), refund),
			})
		}

		settled++
		pairLabel := book.BaseAssetInfo.String() + "/" + book.QuoteAssetInfo.String()
		k.metrics.OrdersMatched.WithLabelValues(pairLabel, matched.Status.String()).Inc()
		if matched.Direction == types.Buy {
			k.metrics.MatchedVolume.WithLabelValues(pairLabel, book.BaseAssetInfo.String()).
				Add(metricAmount(matched.FilledAskThisRound))
		}
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMatchedOrder,
				sdk.NewAttribute(types.AttributeKeyStatus, matched.Status.String()),
				sdk.NewAttribute(types.AttributeKeyBidder, matched.BidderAddr),
				sdk.NewAttribute(types.AttributeKeyOrderID, formatUint(matched.ID)),
				sdk.NewAttribute(types.AttributeKeyDirection, matched.Direction.String()),
				sdk.NewAttribute(types.AttributeKeyOfferAmount, matched.OfferAmount.String()),
				sdk.NewAttribute(types.AttributeKeyFilledOffer, matched.FilledOfferAmount.String()),
				sdk.NewAttribute(types.AttributeKeyAskAmount, matched.AskAmount.String()),
				sdk.NewAttribute(types.AttributeKeyFilledAsk, matched.FilledAskAmount.String()),
				sdk.NewAttribute(types.AttributeKeyRewardFee, matched.RewardFee.String()),
				sdk.NewAttribute(types.AttributeKeyFilledOfferRound, matched.FilledOfferThisRound.String()),
				sdk.NewAttribute(types.AttributeKeyFilledAskRound, matched.FilledAskThisRound.String()),
			),
		)
	}

	if err := k.payTraders(ctx, payments); err != nil {
		return nil, err
	}

	transferred, err := k.transferReward(ctx, &reward)
	if err != nil {
		return nil, err
	}
	if err := k.SetReward(ctx, pairKey, reward); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardTransfer,
			sdk.NewAttribute(types.AttributeKeyTotalMatched, formatUint(uint64(settled))),
			sdk.NewAttribute(types.AttributeKeyExecutorReward, strings.Join(transferred, ",")),
		),
	)

	return userOrder, nil
}
