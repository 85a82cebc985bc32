package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/validator"
	"github.com/transit-network/internal/usecase/dto"
)

// ScheduleUseCase - рейсы; с линиями не связаны
type ScheduleUseCase struct {
	scheduleRepo repository.ScheduleRepository
	logger       *zap.Logger
}

func NewScheduleUseCase(scheduleRepo repository.ScheduleRepository, logger *zap.Logger) *ScheduleUseCase {
	return &ScheduleUseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

func (uc *ScheduleUseCase) Create(ctx context.Context, req dto.BusLineScheduleRequest) (*dto.BusLineScheduleResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	schedule := &domain.BusLineSchedule{
		OperatingDay:  *req.OperatingDay,
		DepartureTime: *req.DepartureTime,
		ArrivalTime:   *req.ArrivalTime,
	}
	if err := uc.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	uc.logger.Info("Schedule created", zap.Int64("id", schedule.ID), zap.Stringer("operating_day", schedule.OperatingDay))
	resp := dto.NewBusLineScheduleResponse(schedule)
	return &resp, nil
}

func (uc *ScheduleUseCase) Update(ctx context.Context, id int64, req dto.BusLineScheduleRequest) (*dto.BusLineScheduleResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	schedule, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule.OperatingDay = *req.OperatingDay
	schedule.DepartureTime = *req.DepartureTime
	schedule.ArrivalTime = *req.ArrivalTime

	if err := uc.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	resp := dto.NewBusLineScheduleResponse(schedule)
	return &resp, nil
}

func (uc *ScheduleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.scheduleRepo.Delete(ctx, id)
}

func (uc *ScheduleUseCase) FindByID(ctx context.Context, id int64) (*dto.BusLineScheduleResponse, error) {
	schedule, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBusLineScheduleResponse(schedule)
	return &resp, nil
}

func (uc *ScheduleUseCase) FindAll(ctx context.Context) ([]dto.BusLineScheduleResponse, error) {
	schedules, err := uc.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBusLineScheduleResponses(schedules), nil
}
