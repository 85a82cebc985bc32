package stopline_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-network/internal/config"
	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository/mocks"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/usecase/dto"
	"github.com/transit-network/internal/worker/stopline"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) Create(ctx context.Context, req dto.StopLineRequest) (*dto.StopLineResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.StopLineResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

var testConfig = config.WorkerConfig{
	ConsumerGroup: "test-group",
	ConsumerName:  "test-consumer",
	BatchSize:     5,
	MaxRetries:    2,
}

func newWorker(stream *mocks.StreamRepository, creator *mockCreator) *stopline.ImportWorker {
	return stopline.NewImportWorker(stream, creator, testConfig, zap.NewNop()).
		WithRetryInterval(time.Millisecond)
}

func message(t *testing.T, id string, event domain.StopLineImportEvent) domain.StreamMessage {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Values: map[string]interface{}{"data": string(raw)}}
}

func eightAM() *domain.TimeOfDay {
	t := domain.MustParseTimeOfDay("08:00")
	return &t
}

func TestImportWorker_CreatesAndPublishes(t *testing.T) {
	stream := &mocks.StreamRepository{}
	creator := &mockCreator{}
	requestID := uuid.New()

	stream.On("ConsumeBatch", mock.Anything, domain.StreamStopLineImport, "test-group", "test-consumer", 5).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.StopLineImportEvent{RequestID: requestID, StopID: 1, LineID: 7, EstimatedTime: eightAM()}),
		}, nil)

	creator.On("Create", mock.Anything, mock.MatchedBy(func(req dto.StopLineRequest) bool {
		return req.StopID == 1 && req.LineID == 7 && req.EstimatedTime != nil && req.EstimatedTime.String() == "08:00:00"
	})).Return(&dto.StopLineResponse{ID: 42, StopID: 1, LineID: 7, EstimatedTime: *eightAM()}, nil)

	stream.On("PublishToStream", mock.Anything, domain.StreamStopLineDone, mock.MatchedBy(func(r *domain.StopLineImportResult) bool {
		return r.RequestID == requestID && r.Succeeded() && r.StopLine.ID == 42
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, domain.StreamStopLineImport, "test-group", []string{"1-0"}).Return(nil)

	processed, err := newWorker(stream, creator).ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	stream.AssertExpectations(t)
	creator.AssertExpectations(t)
}

func TestImportWorker_BusinessRejectionIsNotRetried(t *testing.T) {
	stream := &mocks.StreamRepository{}
	creator := &mockCreator{}

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.StopLineImportEvent{RequestID: uuid.New(), StopID: 1, LineID: 7, EstimatedTime: eightAM()}),
		}, nil)
	creator.On("Create", mock.Anything, mock.Anything).Return(nil, errors.ErrDuplicateAssociation)

	var published *domain.StopLineImportResult
	stream.On("PublishToStream", mock.Anything, domain.StreamStopLineDone, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(2).(*domain.StopLineImportResult) }).
		Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, []string{"1-0"}).Return(nil)

	_, err := newWorker(stream, creator).ProcessBatch(context.Background())
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.False(t, published.Succeeded())
	assert.Equal(t, errors.ErrDuplicateAssociation.Code, published.ErrorCode)
	creator.AssertNumberOfCalls(t, "Create", 1)
}

func TestImportWorker_TransientErrorRetried(t *testing.T) {
	stream := &mocks.StreamRepository{}
	creator := &mockCreator{}

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.StopLineImportEvent{RequestID: uuid.New(), StopID: 1, LineID: 7, EstimatedTime: eightAM()}),
		}, nil)
	creator.On("Create", mock.Anything, mock.Anything).Return(nil, stderrors.New("connection reset")).Once()
	creator.On("Create", mock.Anything, mock.Anything).Return(&dto.StopLineResponse{ID: 5}, nil).Once()

	stream.On("PublishToStream", mock.Anything, domain.StreamStopLineDone, mock.MatchedBy(func(r *domain.StopLineImportResult) bool {
		return r.Succeeded()
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := newWorker(stream, creator).ProcessBatch(context.Background())
	require.NoError(t, err)
	creator.AssertNumberOfCalls(t, "Create", 2)
	stream.AssertExpectations(t)
}

func TestImportWorker_TransientErrorExhausted(t *testing.T) {
	stream := &mocks.StreamRepository{}
	creator := &mockCreator{}

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			message(t, "1-0", domain.StopLineImportEvent{RequestID: uuid.New(), StopID: 1, LineID: 7, EstimatedTime: eightAM()}),
		}, nil)
	creator.On("Create", mock.Anything, mock.Anything).Return(nil, stderrors.New("connection reset"))

	stream.On("PublishToStream", mock.Anything, domain.StreamStopLineDone, mock.MatchedBy(func(r *domain.StopLineImportResult) bool {
		return r.ErrorCode == errors.ErrInternalServer.Code
	})).Return(nil)
	stream.On("AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := newWorker(stream, creator).ProcessBatch(context.Background())
	require.NoError(t, err)

	// первая попытка + MaxRetries
	creator.AssertNumberOfCalls(t, "Create", 3)
	stream.AssertExpectations(t)
}

func TestImportWorker_UnparsableMessageAckedAndSkipped(t *testing.T) {
	stream := &mocks.StreamRepository{}
	creator := &mockCreator{}

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{
			{ID: "1-0", Values: map[string]interface{}{"data": "{not json"}},
			{ID: "2-0", Values: map[string]interface{}{"other": "x"}},
		}, nil)
	stream.On("AckMessages", mock.Anything, domain.StreamStopLineImport, "test-group", []string{"1-0", "2-0"}).Return(nil)

	processed, err := newWorker(stream, creator).ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	stream.AssertExpectations(t)
}

func TestImportWorker_EmptyQueue(t *testing.T) {
	stream := &mocks.StreamRepository{}
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	processed, err := newWorker(stream, &mockCreator{}).ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportWorker_StartAndStop(t *testing.T) {
	stream := &mocks.StreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamStopLineImport, "test-group").Return(nil)
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	w := newWorker(stream, &mockCreator{})
	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, "stopline-import", w.Name())
}

func TestImportWorker_ConsumerGroupFailure(t *testing.T) {
	stream := &mocks.StreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(stderrors.New("redis down"))

	err := newWorker(stream, &mockCreator{}).Start(context.Background())
	assert.Error(t, err)
}
