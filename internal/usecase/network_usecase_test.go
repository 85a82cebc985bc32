package usecase_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository/mocks"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/usecase"
	"github.com/transit-network/internal/usecase/dto"
)

func newNetwork(stopRepo *mocks.BusStopRepository, lineRepo *mocks.BusLineRepository, stopLineRepo *memoryStopLineRepository) *usecase.NetworkUseCase {
	logger := zap.NewNop()
	companyRepo := &mocks.CompanyRepository{}
	return usecase.NewNetworkUseCase(
		usecase.NewBusStopUseCase(stopRepo, stopLineRepo, logger),
		usecase.NewBusLineUseCase(lineRepo, companyRepo, stopLineRepo, logger),
		usecase.NewStopLineUseCase(stopLineRepo, stopRepo, lineRepo, logger),
		usecase.NewScheduleUseCase(&mocks.ScheduleRepository{}, logger),
		usecase.NewCompanyUseCase(companyRepo, lineRepo, logger),
		logger,
	)
}

func TestNetworkUseCase_StopBoard(t *testing.T) {
	ctx := context.Background()
	stopRepo := &mocks.BusStopRepository{}
	lineRepo := &mocks.BusLineRepository{}
	stopLineRepo := newMemoryStopLineRepository()
	network := newNetwork(stopRepo, lineRepo, stopLineRepo)

	central := &domain.BusStop{ID: centralStopID, Name: "Central", Status: domain.StopStatusActive, Geometry: orb.Point{-56.18, -34.90}}
	stopRepo.On("GetByID", ctx, centralStopID).Return(central, nil)
	stopRepo.On("Exists", ctx, centralStopID).Return(true, nil)
	lineRepo.On("Exists", ctx, mock.Anything).Return(true, nil)
	lineRepo.On("GetByIDs", ctx, mock.Anything).Return([]*domain.BusLine{
		{ID: 7, Number: "101", Origin: "Ciudad Vieja", Destination: "Carrasco"},
		{ID: 8, Number: "D10", Origin: "Centro", Destination: "Malvín"},
	}, nil)

	for _, req := range []dto.StopLineRequest{
		{StopID: centralStopID, LineID: 7, EstimatedTime: tod("08:00"), IsEnabled: boolPtr(true)},
		{StopID: centralStopID, LineID: 8, EstimatedTime: tod("08:10")},
		{StopID: centralStopID, LineID: 7, EstimatedTime: tod("08:30")},
		{StopID: centralStopID, LineID: 7, EstimatedTime: tod("11:00")},
	} {
		_, err := network.StopLines.Create(ctx, req)
		require.NoError(t, err)
	}

	board, err := network.StopBoard(ctx, centralStopID, *tod("08:00"), *tod("09:00"))
	require.NoError(t, err)

	assert.Equal(t, "Central", board.Stop.Name)
	require.Len(t, board.Entries, 3)

	numbers := map[string]int{}
	for _, e := range board.Entries {
		numbers[e.LineNumber]++
	}
	assert.Equal(t, map[string]int{"101": 2, "D10": 1}, numbers)

	// каждая линия запрашивается один раз
	lineRepo.AssertCalled(t, "GetByIDs", ctx, []int64{7, 8})
}

func TestNetworkUseCase_StopBoard_UnknownStop(t *testing.T) {
	ctx := context.Background()
	stopRepo := &mocks.BusStopRepository{}
	stopRepo.On("GetByID", ctx, int64(404)).Return(nil, errors.ErrBusStopNotFound)

	network := newNetwork(stopRepo, &mocks.BusLineRepository{}, newMemoryStopLineRepository())
	_, err := network.StopBoard(ctx, 404, *tod("08:00"), *tod("09:00"))
	assert.ErrorIs(t, err, errors.ErrBusStopNotFound)
}

func TestNetworkUseCase_StopBoard_EmptyWindow(t *testing.T) {
	ctx := context.Background()
	stopRepo := &mocks.BusStopRepository{}
	lineRepo := &mocks.BusLineRepository{}
	stopRepo.On("GetByID", ctx, centralStopID).Return(&domain.BusStop{ID: centralStopID, Name: "Central"}, nil)

	network := newNetwork(stopRepo, lineRepo, newMemoryStopLineRepository())
	board, err := network.StopBoard(ctx, centralStopID, *tod("10:00"), *tod("09:00"))
	require.NoError(t, err)
	assert.Empty(t, board.Entries)
	lineRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
