package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"campusdelivery/internal/core/application/usecases/queries"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLowStockReader struct {
	mock.Mock
}

func (m *MockLowStockReader) Handle(
	ctx context.Context,
	query queries.GetLowStockQuery,
) ([]queries.InventoryItemResponse, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.InventoryItemResponse)
	return items, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLowStockReportJob_Run(t *testing.T) {
	ctx := context.Background()
	reader := &MockLowStockReader{}
	reader.On("Handle", ctx, mock.MatchedBy(func(q queries.GetLowStockQuery) bool {
		return !q.OutOfStockOnly()
	})).Return([]queries.InventoryItemResponse{
		{ProductID: kernel.NewUUID(), ProductName: "Cold brew", Quantity: 1, MinQuantity: 5},
		{ProductID: kernel.NewUUID(), ProductName: "Bagel", Quantity: 0, MinQuantity: 3},
	}, nil).Once()

	count, err := NewLowStockReportJob(reader, "", discardLogger()).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	reader.AssertExpectations(t)
}

func TestLowStockReportJob_RunReturnsQueryError(t *testing.T) {
	ctx := context.Background()
	reader := &MockLowStockReader{}
	dbErr := errors.New("connection refused")
	reader.On("Handle", ctx, mock.Anything).Return(nil, dbErr).Once()

	count, err := NewLowStockReportJob(reader, "", discardLogger()).Run(ctx)

	require.ErrorIs(t, err, dbErr)
	assert.Zero(t, count)
}

func TestLowStockReportJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewLowStockReportJob(&MockLowStockReader{}, "every quarter hour", discardLogger())

	assert.Error(t, job.Start())
}

func TestLowStockReportJob_DefaultSchedule(t *testing.T) {
	job := NewLowStockReportJob(&MockLowStockReader{}, "", discardLogger())
	assert.Equal(t, DefaultLowStockSchedule, job.schedule)

	require.NoError(t, job.Start())
	job.Stop()
}

type recordingJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j recordingJob) Start() error {
	*j.log = append(*j.log, "start "+j.name)
	return j.startErr
}

func (j recordingJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestJobManager_StopsInReverseOrder(t *testing.T) {
	var log []string
	jm := NewJobManager(discardLogger(),
		recordingJob{name: "a", log: &log},
		recordingJob{name: "b", log: &log})

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	var log []string
	jm := NewJobManager(discardLogger(),
		recordingJob{name: "a", log: &log},
		recordingJob{name: "b", log: &log, startErr: errors.New("bad schedule")},
		recordingJob{name: "c", log: &log})

	err := jm.StartAll()

	require.Error(t, err)
	assert.Equal(t, []string{"start a", "start b", "stop a"}, log)
}
