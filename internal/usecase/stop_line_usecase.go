package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/validator"
	"github.com/transit-network/internal/usecase/dto"
)

// StopLineUseCase управляет связями остановка-линия.
// Тройка (остановка, линия, время) уникальна: проверка здесь, гарантия - ограничение uq_stop_line_triple.
type StopLineUseCase struct {
	stopLineRepo repository.StopLineRepository
	stopRepo     repository.BusStopRepository
	lineRepo     repository.BusLineRepository
	logger       *zap.Logger
}

func NewStopLineUseCase(
	stopLineRepo repository.StopLineRepository,
	stopRepo repository.BusStopRepository,
	lineRepo repository.BusLineRepository,
	logger *zap.Logger,
) *StopLineUseCase {
	return &StopLineUseCase{
		stopLineRepo: stopLineRepo,
		stopRepo:     stopRepo,
		lineRepo:     lineRepo,
		logger:       logger,
	}
}

// Create сохраняет связь только после проверки остановки, линии и уникальности тройки
func (uc *StopLineUseCase) Create(ctx context.Context, req dto.StopLineRequest) (*dto.StopLineResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	stopExists, err := uc.stopRepo.Exists(ctx, req.StopID)
	if err != nil {
		return nil, err
	}
	if !stopExists {
		return nil, errors.ErrBusStopNotFound
	}

	lineExists, err := uc.lineRepo.Exists(ctx, req.LineID)
	if err != nil {
		return nil, err
	}
	if !lineExists {
		return nil, errors.ErrBusLineNotFound
	}

	estimatedTime := *req.EstimatedTime
	duplicate, err := uc.stopLineRepo.ExistsByTriple(ctx, req.StopID, req.LineID, estimatedTime, 0)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, errors.ErrDuplicateAssociation
	}

	stopLine := &domain.StopLine{
		BusStopID:     req.StopID,
		BusLineID:     req.LineID,
		EstimatedTime: estimatedTime,
	}
	if req.IsEnabled != nil {
		stopLine.IsEnabled = *req.IsEnabled
	}

	// параллельный create той же тройки отсекает ограничение в БД
	if err := uc.stopLineRepo.Create(ctx, stopLine); err != nil {
		return nil, err
	}

	uc.logger.Info("Stop line created",
		zap.Int64("id", stopLine.ID),
		zap.Int64("stop_id", stopLine.BusStopID),
		zap.Int64("line_id", stopLine.BusLineID),
		zap.Stringer("estimated_time", stopLine.EstimatedTime))

	resp := dto.NewStopLineResponse(stopLine)
	return &resp, nil
}

// Update меняет только время и флаг. Уникальность перепроверяется без учёта самой записи.
func (uc *StopLineUseCase) Update(ctx context.Context, id int64, req dto.StopLineUpdateRequest) (*dto.StopLineResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	stopLine, err := uc.stopLineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	estimatedTime := *req.EstimatedTime
	duplicate, err := uc.stopLineRepo.ExistsByTriple(ctx, stopLine.BusStopID, stopLine.BusLineID, estimatedTime, id)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, errors.ErrDuplicateAssociation
	}

	stopLine.EstimatedTime = estimatedTime
	stopLine.IsEnabled = req.IsEnabled

	if err := uc.stopLineRepo.Update(ctx, stopLine); err != nil {
		return nil, err
	}

	resp := dto.NewStopLineResponse(stopLine)
	return &resp, nil
}

func (uc *StopLineUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.stopLineRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Stop line deleted", zap.Int64("id", id))
	return nil
}

func (uc *StopLineUseCase) FindByID(ctx context.Context, id int64) (*dto.StopLineResponse, error) {
	stopLine, err := uc.stopLineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStopLineResponse(stopLine)
	return &resp, nil
}

func (uc *StopLineUseCase) FindAll(ctx context.Context) ([]dto.StopLineResponse, error) {
	stopLines, err := uc.stopLineRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStopLineResponses(stopLines), nil
}

func (uc *StopLineUseCase) FindByStop(ctx context.Context, stopID int64) ([]dto.StopLineResponse, error) {
	stopLines, err := uc.stopLineRepo.GetByStop(ctx, stopID)
	if err != nil {
		return nil, err
	}
	return dto.NewStopLineResponses(stopLines), nil
}

func (uc *StopLineUseCase) FindByLine(ctx context.Context, lineID int64) ([]dto.StopLineResponse, error) {
	stopLines, err := uc.stopLineRepo.GetByLine(ctx, lineID)
	if err != nil {
		return nil, err
	}
	return dto.NewStopLineResponses(stopLines), nil
}

// FindByStopAndTimeRange - связи остановки со временем в [from, to].
// При from > to результат пуст, перехода через полночь нет.
func (uc *StopLineUseCase) FindByStopAndTimeRange(ctx context.Context, stopID int64, from, to domain.TimeOfDay) ([]dto.StopLineResponse, error) {
	if from > to {
		return []dto.StopLineResponse{}, nil
	}

	stopLines, err := uc.stopLineRepo.GetByStopAndTimeRange(ctx, stopID, from, to)
	if err != nil {
		return nil, err
	}
	return dto.NewStopLineResponses(stopLines), nil
}
