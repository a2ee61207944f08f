package processor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/mocks"
	"github.com/asymmetryfinance/usdaf-indexer/internal/processor"
)

const (
	testStreamName   = "usdaf-events"
	testConsumerName = "ledger-processor"
	testNatsURL      = "nats://127.0.0.1:4222"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// fakeMsg is a JetStream message that records its acknowledgement
type fakeMsg struct {
	data []byte

	mu     sync.Mutex
	acked  int
	naked  int
	termed int
}

func (m *fakeMsg) Data() []byte { return m.data }

func (m *fakeMsg) Metadata() (*jetstream.MsgMetadata, error) {
	return &jetstream.MsgMetadata{NumDelivered: 1}, nil
}

func (m *fakeMsg) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked++
	return nil
}

func (m *fakeMsg) Nak() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.naked++
	return nil
}

func (m *fakeMsg) Term() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.termed++
	return nil
}

func (m *fakeMsg) counts() (acked, naked, termed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acked, m.naked, m.termed
}

// testProcessor wires a processor against NATS mocks and a fake store,
// runs it in the background, and exposes the captured message handler
type testProcessor struct {
	ctrl   *gomock.Controller
	router *mocks.MockEventRouter
	proc   processor.Processor

	handlers chan adapter.MessageHandler
	done     chan error
}

func startTestProcessor(t *testing.T, ctx context.Context, st *fakeStore) *testProcessor {
	ctrl := gomock.NewController(t)

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	consumer := mocks.NewMockNatsConsumer(ctrl)
	consumeCtx := mocks.NewMockConsumeContext(ctrl)

	tp := &testProcessor{
		ctrl:     ctrl,
		router:   mocks.NewMockEventRouter(ctrl),
		handlers: make(chan adapter.MessageHandler, 1),
		done:     make(chan error, 1),
	}

	natsJS.EXPECT().Connect(testNatsURL, gomock.Any()).Return(nc, js, nil)
	js.EXPECT().CreateOrUpdateConsumer(gomock.Any(), testStreamName, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, cfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, testConsumerName, cfg.Durable)
			assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
			assert.Equal(t, "events.usdaf.>", cfg.FilterSubject)
			return consumer, nil
		})
	consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: testConsumerName}, nil)
	consumer.EXPECT().Consume(gomock.Any()).DoAndReturn(
		func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			tp.handlers <- handler
			return consumeCtx, nil
		})
	consumeCtx.EXPECT().Stop()
	nc.EXPECT().Close()

	proc, err := processor.NewProcessor(processor.Config{
		URL:            testNatsURL,
		StreamName:     testStreamName,
		ConsumerName:   testConsumerName,
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "ledger-processor-test",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     5,
	}, natsJS, st, tp.router, adapter.NewJSON())
	require.NoError(t, err)
	tp.proc = proc

	go func() {
		tp.done <- proc.Run(ctx)
	}()

	return tp
}

// handler waits for the processor to install its consume callback
func (tp *testProcessor) handler(t *testing.T) adapter.MessageHandler {
	select {
	case h := <-tp.handlers:
		return h
	case <-time.After(2 * time.Second):
		t.Fatal("processor never started consuming")
		return nil
	}
}

// stop cancels the run context and verifies a clean shutdown
func (tp *testProcessor) stop(t *testing.T, cancel context.CancelFunc) {
	cancel()
	select {
	case err := <-tp.done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("processor did not shut down")
	}
	tp.proc.Close()
	tp.ctrl.Finish()
}

func streamEvent(t *testing.T, txHash string, logIndex uint) (*domain.ProtocolEvent, []byte) {
	event := &domain.ProtocolEvent{
		Kind:        domain.EventKindTokenTransfer,
		Contract:    "0x83e5bde77d7477086f9c9e76a1f4156e1c0e955b",
		TxHash:      txHash,
		LogIndex:    logIndex,
		BlockNumber: 23100000,
		Timestamp:   testTime,
		TokenTransfer: &domain.TransferPayload{
			From:  testAlice,
			To:    testBob,
			Value: domain.NewBigInt(big.NewInt(1000)),
		},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	return event, data
}

func TestProcessorAcksAppliedEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := newFakeStore()
	tp := startTestProcessor(t, ctx, st)
	handle := tp.handler(t)

	event, data := streamEvent(t, "0xfeed", 2)
	tp.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, got *domain.ProtocolEvent) error {
			assert.Equal(t, event.Kind, got.Kind)
			assert.Equal(t, event.TxHash, got.TxHash)
			return nil
		})

	msg := &fakeMsg{data: data}
	handle(msg)

	require.Eventually(t, func() bool {
		acked, _, _ := msg.counts()
		return acked == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.True(t, st.processed["0xfeed/2"])
	tp.stop(t, cancel)
}

func TestProcessorSkipsDuplicateDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := newFakeStore()
	st.processed["0xfeed/2"] = true

	tp := startTestProcessor(t, ctx, st)
	handle := tp.handler(t)

	// No Route expectation: routing a journaled event fails the test
	_, data := streamEvent(t, "0xfeed", 2)
	msg := &fakeMsg{data: data}
	handle(msg)

	require.Eventually(t, func() bool {
		acked, _, _ := msg.counts()
		return acked == 1
	}, 2*time.Second, 10*time.Millisecond)

	tp.stop(t, cancel)
}

func TestProcessorTermsMalformedMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := startTestProcessor(t, ctx, newFakeStore())
	handle := tp.handler(t)

	msg := &fakeMsg{data: []byte("{not json")}
	handle(msg)

	require.Eventually(t, func() bool {
		acked, naked, termed := msg.counts()
		return termed == 1 && acked == 0 && naked == 0
	}, 2*time.Second, 10*time.Millisecond)

	tp.stop(t, cancel)
}

func TestProcessorTermsUndecodableEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := startTestProcessor(t, ctx, newFakeStore())
	handle := tp.handler(t)

	_, data := streamEvent(t, "0xbad", 1)
	tp.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: transfer payload missing", domain.ErrInvalidEventData))

	msg := &fakeMsg{data: data}
	handle(msg)

	require.Eventually(t, func() bool {
		_, _, termed := msg.counts()
		return termed == 1
	}, 2*time.Second, 10*time.Millisecond)

	tp.stop(t, cancel)
}

func TestProcessorDropsRegistryMiss(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := startTestProcessor(t, ctx, newFakeStore())
	handle := tp.handler(t)

	_, data := streamEvent(t, "0xcafe", 7)
	tp.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: lp token not configured", domain.ErrConfigurationMiss))

	msg := &fakeMsg{data: data}
	handle(msg)

	require.Eventually(t, func() bool {
		acked, naked, termed := msg.counts()
		return acked == 1 && naked == 0 && termed == 0
	}, 2*time.Second, 10*time.Millisecond)

	tp.stop(t, cancel)
}

func TestProcessorNaksTransientFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := startTestProcessor(t, ctx, newFakeStore())
	handle := tp.handler(t)

	_, data := streamEvent(t, "0xdead", 4)
	tp.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: trace transaction 0xdead: rpc timeout", domain.ErrProviderUnavailable))

	msg := &fakeMsg{data: data}
	handle(msg)

	require.Eventually(t, func() bool {
		acked, naked, termed := msg.counts()
		return naked == 1 && acked == 0 && termed == 0
	}, 2*time.Second, 10*time.Millisecond)

	tp.stop(t, cancel)
}

func TestProcessorHaltsOnIntegrityViolation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := startTestProcessor(t, ctx, newFakeStore())
	handle := tp.handler(t)

	_, data := streamEvent(t, "0xbeef", 9)
	tp.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: balance for %s would go negative", domain.ErrIntegrityViolation, testAlice))

	msg := &fakeMsg{data: data}
	handle(msg)

	select {
	case err := <-tp.done:
		assert.ErrorIs(t, err, domain.ErrIntegrityViolation)
	case <-time.After(2 * time.Second):
		t.Fatal("processor did not halt")
	}

	// The message stays unacked so the stream redelivers after restart
	acked, naked, termed := msg.counts()
	assert.Zero(t, acked)
	assert.Zero(t, naked)
	assert.Zero(t, termed)

	tp.proc.Close()
	tp.ctrl.Finish()
}
