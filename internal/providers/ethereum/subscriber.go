package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/messaging"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
)

const (
	// backfillChunkSize bounds the block range of one eth_getLogs call
	backfillChunkSize = 2000

	// headPollInterval is how often the live loop checks for new blocks when
	// deciding whether a price tick boundary has been crossed
	headPollInterval = 15 * time.Second

	// timestampCacheSize bounds the block timestamp cache
	timestampCacheSize = 4096
)

// SatelliteSource returns the dynamically discovered contract addresses that
// must be monitored in addition to the static registry (StakeDAO receipt
// tokens and gauges recorded by the ownership resolver). It is re-evaluated
// on every (re)subscription.
type SatelliteSource func(ctx context.Context) ([]string, error)

// Subscriber implements messaging.Subscriber over an Ethereum node
type Subscriber struct {
	eth      adapter.EthClient
	registry registry.ProtocolRegistry
	sats     SatelliteSource

	mu         sync.Mutex
	timestamps map[uint64]time.Time
	tsOrder    []uint64
	lastTick   uint64
}

// NewSubscriber creates an Ethereum log subscriber. sats may be nil when no
// dynamic addresses are tracked.
func NewSubscriber(eth adapter.EthClient, reg registry.ProtocolRegistry, sats SatelliteSource) *Subscriber {
	return &Subscriber{
		eth:        eth,
		registry:   reg,
		sats:       sats,
		timestamps: make(map[uint64]time.Time),
	}
}

// topicFilter lists every event signature the decoder understands
func topicFilter() [][]common.Hash {
	return [][]common.Hash{{
		transferEventSignature,
		depositOperationEventSignature,
		troveOperationEventSignature,
		troveUpdatedEventSignature,
		redemptionEventSignature,
		liquidationEventSignature,
		boosterDepositedEventSignature,
		boosterWithdrawnEventSignature,
		gaugeWithdrawEventSignature,
		addUserVaultEventSignature,
		penpiePoolAddedEventSignature,
		eqbPoolAddedEventSignature,
		vaultDeployedEventSignature,
		gaugeDeployedEventSignature,
		lockCreatedEventSignature,
		lockExtendedEventSignature,
		locksCreatedEventSignature,
		locksExtendedEventSignature,
		locksFrozenEventSignature,
		locksUnfrozenEventSignature,
	}}
}

// addresses merges the static registry addresses with the satellite set
func (s *Subscriber) addresses(ctx context.Context) ([]common.Address, error) {
	static := s.registry.Addresses()

	merged := make([]common.Address, 0, len(static))
	seen := make(map[common.Address]bool, len(static))
	add := func(addr string) {
		a := common.HexToAddress(addr)
		if !seen[a] {
			seen[a] = true
			merged = append(merged, a)
		}
	}

	for _, addr := range static {
		add(addr)
	}

	if s.sats != nil {
		sats, err := s.sats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load satellite addresses: %w", err)
		}
		for _, addr := range sats {
			add(addr)
		}
	}

	return merged, nil
}

func (s *Subscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest header: %w", err)
	}
	return header.Number.Uint64(), nil
}

// SubscribeEvents backfills historical logs from fromBlock, then follows the
// chain head. The subscription resubscribes with a fresh address set after
// transient failures, so satellites discovered mid-run join the filter.
func (s *Subscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	if fromBlock == 0 {
		latest, err := s.GetLatestBlock(ctx)
		if err != nil {
			return err
		}
		fromBlock = latest
	}
	s.mu.Lock()
	s.lastTick = s.tickBoundary(fromBlock)
	s.mu.Unlock()

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = 0

	for {
		next, err := s.runOnce(ctx, fromBlock, handler)
		if err == nil || ctx.Err() != nil {
			return ctx.Err()
		}
		fromBlock = next

		logger.ErrorCtx(ctx, err, zap.Uint64("resumeBlock", fromBlock))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.NextBackOff()):
		}
	}
}

// runOnce performs one backfill plus live-follow cycle. It returns the block
// to resume from when the cycle ends with an error.
func (s *Subscriber) runOnce(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) (uint64, error) {
	addrs, err := s.addresses(ctx)
	if err != nil {
		return fromBlock, err
	}

	latest, err := s.GetLatestBlock(ctx)
	if err != nil {
		return fromBlock, err
	}

	cursor := fromBlock
	for cursor <= latest {
		end := cursor + backfillChunkSize - 1
		if end > latest {
			end = latest
		}
		if err := s.processRange(ctx, addrs, cursor, end, handler); err != nil {
			return cursor, err
		}
		cursor = end + 1
	}

	return s.followHead(ctx, addrs, cursor, handler)
}

// processRange fetches and dispatches one bounded log range, then emits any
// price ticks whose boundary falls inside it
func (s *Subscriber) processRange(ctx context.Context, addrs []common.Address, from, to uint64, handler messaging.EventHandler) error {
	logs, err := s.eth.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: addrs,
		Topics:    topicFilter(),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch logs [%d, %d]: %w", from, to, err)
	}

	for _, vLog := range logs {
		if err := s.handleLog(ctx, vLog, handler); err != nil {
			return err
		}
	}

	return s.emitTicks(ctx, to, handler)
}

// followHead subscribes to live logs and dispatches them until the
// subscription fails or the context ends
func (s *Subscriber) followHead(ctx context.Context, addrs []common.Address, fromBlock uint64, handler messaging.EventHandler) (uint64, error) {
	logs := make(chan types.Log, 256)
	sub, err := s.eth.SubscribeFilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: addrs,
		Topics:    topicFilter(),
	}, logs)
	if err != nil {
		return fromBlock, fmt.Errorf("failed to subscribe to logs: %w", err)
	}
	defer sub.Unsubscribe()

	logger.InfoCtx(ctx, "subscribed to protocol logs",
		zap.Uint64("fromBlock", fromBlock),
		zap.Int("addresses", len(addrs)))

	ticker := time.NewTicker(headPollInterval)
	defer ticker.Stop()

	resume := fromBlock
	for {
		select {
		case <-ctx.Done():
			return resume, ctx.Err()

		case err := <-sub.Err():
			return resume, fmt.Errorf("log subscription failed: %w", err)

		case vLog := <-logs:
			if err := s.handleLog(ctx, vLog, handler); err != nil {
				return resume, err
			}
			if vLog.BlockNumber > resume {
				resume = vLog.BlockNumber
			}

		case <-ticker.C:
			latest, err := s.GetLatestBlock(ctx)
			if err != nil {
				return resume, err
			}
			if err := s.emitTicks(ctx, latest, handler); err != nil {
				return resume, err
			}
			if latest > resume {
				resume = latest
			}
		}
	}
}

// handleLog decodes one raw log and hands it to the event handler
func (s *Subscriber) handleLog(ctx context.Context, vLog types.Log, handler messaging.EventHandler) error {
	if vLog.Removed {
		logger.WarnCtx(ctx, "skipping removed log",
			zap.String("txHash", vLog.TxHash.Hex()),
			zap.Uint("logIndex", vLog.Index))
		return nil
	}

	timestamp, err := s.blockTimestamp(ctx, vLog.BlockNumber)
	if err != nil {
		return err
	}

	event, err := ParseEventLog(vLog, timestamp)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("txHash", vLog.TxHash.Hex()),
			zap.Uint("logIndex", vLog.Index))
		return nil
	}
	if event == nil {
		return nil
	}

	return handler(event)
}

// tickBoundary returns the highest tick block at or below blockNumber
func (s *Subscriber) tickBoundary(blockNumber uint64) uint64 {
	interval := s.registry.PriceTickInterval()
	if interval == 0 {
		return 0
	}
	return blockNumber - blockNumber%interval
}

// emitTicks emits a synthetic price tick for every interval boundary crossed
// since the last one, up to upTo
func (s *Subscriber) emitTicks(ctx context.Context, upTo uint64, handler messaging.EventHandler) error {
	interval := s.registry.PriceTickInterval()
	if interval == 0 {
		return nil
	}

	s.mu.Lock()
	last := s.lastTick
	s.mu.Unlock()

	for boundary := last + interval; boundary <= upTo; boundary += interval {
		timestamp, err := s.blockTimestamp(ctx, boundary)
		if err != nil {
			return err
		}

		if err := handler(&domain.ProtocolEvent{
			Kind:        domain.EventKindPriceTick,
			BlockNumber: boundary,
			Timestamp:   timestamp,
		}); err != nil {
			return err
		}

		s.mu.Lock()
		s.lastTick = boundary
		s.mu.Unlock()
	}
	return nil
}

// blockTimestamp resolves a block timestamp through a small bounded cache.
// Logs arrive in block order, so hits dominate.
func (s *Subscriber) blockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	s.mu.Lock()
	if ts, ok := s.timestamps[blockNumber]; ok {
		s.mu.Unlock()
		return ts, nil
	}
	s.mu.Unlock()

	header, err := s.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch header %d: %w", blockNumber, err)
	}
	ts := time.Unix(int64(header.Time), 0).UTC()

	s.mu.Lock()
	s.timestamps[blockNumber] = ts
	s.tsOrder = append(s.tsOrder, blockNumber)
	if len(s.tsOrder) > timestampCacheSize {
		delete(s.timestamps, s.tsOrder[0])
		s.tsOrder = s.tsOrder[1:]
	}
	s.mu.Unlock()

	return ts, nil
}

func (s *Subscriber) Close() {
	s.eth.Close()
}
