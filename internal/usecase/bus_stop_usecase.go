package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/geojson"
	"github.com/transit-network/internal/pkg/utils"
	"github.com/transit-network/internal/pkg/validator"
	"github.com/transit-network/internal/usecase/dto"
)

type BusStopUseCase struct {
	stopRepo     repository.BusStopRepository
	stopLineRepo repository.StopLineRepository
	logger       *zap.Logger
}

func NewBusStopUseCase(
	stopRepo repository.BusStopRepository,
	stopLineRepo repository.StopLineRepository,
	logger *zap.Logger,
) *BusStopUseCase {
	return &BusStopUseCase{
		stopRepo:     stopRepo,
		stopLineRepo: stopLineRepo,
		logger:       logger,
	}
}

func (uc *BusStopUseCase) Create(ctx context.Context, req dto.BusStopRequest) (*dto.BusStopResponse, error) {
	stop := &domain.BusStop{}
	if err := uc.apply(stop, req); err != nil {
		return nil, err
	}

	if err := uc.stopRepo.Create(ctx, stop); err != nil {
		return nil, err
	}

	uc.logger.Info("Bus stop created", zap.Int64("id", stop.ID), zap.String("name", stop.Name))
	resp := dto.NewBusStopResponse(stop)
	return &resp, nil
}

// Update - полная замена полей остановки
func (uc *BusStopUseCase) Update(ctx context.Context, id int64, req dto.BusStopRequest) (*dto.BusStopResponse, error) {
	stop, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(stop, req); err != nil {
		return nil, err
	}

	if err := uc.stopRepo.Update(ctx, stop); err != nil {
		return nil, err
	}

	resp := dto.NewBusStopResponse(stop)
	return &resp, nil
}

// Delete запрещён, пока на остановку ссылаются связи
func (uc *BusStopUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.stopRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrBusStopNotFound
	}

	hasStopLines, err := uc.stopLineRepo.ExistsByStop(ctx, id)
	if err != nil {
		return err
	}
	if hasStopLines {
		return errors.ErrHasDependents.WithMessage("Bus stop still has stop line associations")
	}

	if err := uc.stopRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Bus stop deleted", zap.Int64("id", id))
	return nil
}

func (uc *BusStopUseCase) FindByID(ctx context.Context, id int64) (*dto.BusStopResponse, error) {
	stop, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBusStopResponse(stop)
	return &resp, nil
}

func (uc *BusStopUseCase) FindAll(ctx context.Context) ([]dto.BusStopResponse, error) {
	stops, err := uc.stopRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBusStopResponses(stops), nil
}

// FindNearby - остановки в радиусе req.Radius метров, ближайшие первыми
func (uc *BusStopUseCase) FindNearby(ctx context.Context, req dto.NearbyStopsRequest) ([]dto.BusStopResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidRadius
	}

	stops, err := uc.stopRepo.GetNearby(ctx, req.Lat, req.Lon, req.Radius)
	if err != nil {
		uc.logger.Error("Failed to get nearby stops",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Float64("radius", req.Radius),
			zap.Error(err))
		return nil, err
	}
	return dto.NewBusStopResponses(stops), nil
}

func (uc *BusStopUseCase) apply(stop *domain.BusStop, req dto.BusStopRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	point, err := geojson.ParsePoint(req.Geometry)
	if err != nil {
		return invalidGeometry(err)
	}

	stop.Name = req.Name
	stop.Description = req.Description
	stop.Status = req.Status
	stop.HasShelter = req.HasShelter
	stop.Geometry = point
	return nil
}
