package usecase_test

import (
	"context"
	"testing"

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

func TestCompanyUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		companyRepo := &mocks.CompanyRepository{}
		companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Company).ID = 3 }).
			Return(nil)

		uc := usecase.NewCompanyUseCase(companyRepo, &mocks.BusLineRepository{}, zap.NewNop())
		resp, err := uc.Create(ctx, dto.CompanyRequest{Name: "CUTCSA"})
		require.NoError(t, err)
		assert.Equal(t, dto.CompanyResponse{ID: 3, Name: "CUTCSA"}, *resp)
	})

	t.Run("create blank name", func(t *testing.T) {
		uc := usecase.NewCompanyUseCase(&mocks.CompanyRepository{}, &mocks.BusLineRepository{}, zap.NewNop())
		_, err := uc.Create(ctx, dto.CompanyRequest{Name: ""})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("delete with lines", func(t *testing.T) {
		companyRepo := &mocks.CompanyRepository{}
		lineRepo := &mocks.BusLineRepository{}
		companyRepo.On("GetByID", ctx, int64(3)).Return(&domain.Company{ID: 3}, nil)
		lineRepo.On("ExistsByCompany", ctx, int64(3)).Return(true, nil)

		uc := usecase.NewCompanyUseCase(companyRepo, lineRepo, zap.NewNop())
		assert.ErrorIs(t, uc.Delete(ctx, 3), errors.ErrHasDependents)
		companyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete missing", func(t *testing.T) {
		companyRepo := &mocks.CompanyRepository{}
		companyRepo.On("GetByID", ctx, int64(8)).Return(nil, errors.ErrCompanyNotFound)

		uc := usecase.NewCompanyUseCase(companyRepo, &mocks.BusLineRepository{}, zap.NewNop())
		assert.ErrorIs(t, uc.Delete(ctx, 8), errors.ErrCompanyNotFound)
	})
}

func TestScheduleUseCase(t *testing.T) {
	ctx := context.Background()
	day, err := domain.ParseDate("2024-03-18")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		scheduleRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.BusLineSchedule) bool {
			return s.OperatingDay.String() == "2024-03-18" && s.ArrivalTime.String() == "08:45:00"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.BusLineSchedule).ID = 11
		}).Return(nil)

		uc := usecase.NewScheduleUseCase(scheduleRepo, zap.NewNop())
		resp, err := uc.Create(ctx, dto.BusLineScheduleRequest{
			OperatingDay:  &day,
			DepartureTime: tod("07:30"),
			ArrivalTime:   tod("08:45"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("create missing times", func(t *testing.T) {
		uc := usecase.NewScheduleUseCase(&mocks.ScheduleRepository{}, zap.NewNop())
		_, err := uc.Create(ctx, dto.BusLineScheduleRequest{OperatingDay: &day})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("update missing", func(t *testing.T) {
		scheduleRepo := &mocks.ScheduleRepository{}
		scheduleRepo.On("GetByID", ctx, int64(5)).Return(nil, errors.ErrScheduleNotFound)

		uc := usecase.NewScheduleUseCase(scheduleRepo, zap.NewNop())
		_, err := uc.Update(ctx, 5, dto.BusLineScheduleRequest{
			OperatingDay:  &day,
			DepartureTime: tod("07:30"),
			ArrivalTime:   tod("08:45"),
		})
		assert.ErrorIs(t, err, errors.ErrScheduleNotFound)
	})
}
