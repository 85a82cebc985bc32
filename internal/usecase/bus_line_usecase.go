package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/pkg/geojson"
	"github.com/transit-network/internal/pkg/validator"
	"github.com/transit-network/internal/usecase/dto"
)

type BusLineUseCase struct {
	lineRepo     repository.BusLineRepository
	companyRepo  repository.CompanyRepository
	stopLineRepo repository.StopLineRepository
	logger       *zap.Logger
}

func NewBusLineUseCase(
	lineRepo repository.BusLineRepository,
	companyRepo repository.CompanyRepository,
	stopLineRepo repository.StopLineRepository,
	logger *zap.Logger,
) *BusLineUseCase {
	return &BusLineUseCase{
		lineRepo:     lineRepo,
		companyRepo:  companyRepo,
		stopLineRepo: stopLineRepo,
		logger:       logger,
	}
}

func (uc *BusLineUseCase) Create(ctx context.Context, req dto.BusLineRequest) (*dto.BusLineResponse, error) {
	line := &domain.BusLine{}
	if err := uc.apply(ctx, line, req); err != nil {
		return nil, err
	}

	if err := uc.lineRepo.Create(ctx, line); err != nil {
		return nil, err
	}

	uc.logger.Info("Bus line created",
		zap.Int64("id", line.ID),
		zap.String("number", line.Number),
		zap.Int64("company_id", line.CompanyID))
	resp := dto.NewBusLineResponse(line)
	return &resp, nil
}

// Update - полная замена; компания проверяется заново
func (uc *BusLineUseCase) Update(ctx context.Context, id int64, req dto.BusLineRequest) (*dto.BusLineResponse, error) {
	line, err := uc.lineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, line, req); err != nil {
		return nil, err
	}

	if err := uc.lineRepo.Update(ctx, line); err != nil {
		return nil, err
	}

	resp := dto.NewBusLineResponse(line)
	return &resp, nil
}

func (uc *BusLineUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.lineRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrBusLineNotFound
	}

	hasStopLines, err := uc.stopLineRepo.ExistsByLine(ctx, id)
	if err != nil {
		return err
	}
	if hasStopLines {
		return errors.ErrHasDependents.WithMessage("Bus line still has stop line associations")
	}

	if err := uc.lineRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Bus line deleted", zap.Int64("id", id))
	return nil
}

func (uc *BusLineUseCase) FindByID(ctx context.Context, id int64) (*dto.BusLineResponse, error) {
	line, err := uc.lineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBusLineResponse(line)
	return &resp, nil
}

func (uc *BusLineUseCase) FindAll(ctx context.Context) ([]dto.BusLineResponse, error) {
	lines, err := uc.lineRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBusLineResponses(lines), nil
}

// FindByIDs - линии по списку ID; отсутствующие пропускаются
func (uc *BusLineUseCase) FindByIDs(ctx context.Context, ids []int64) ([]dto.BusLineResponse, error) {
	lines, err := uc.lineRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dto.NewBusLineResponses(lines), nil
}

// FindIntersecting - линии, пересекающие GeoJSON полигон
func (uc *BusLineUseCase) FindIntersecting(ctx context.Context, rawPolygon []byte) ([]dto.BusLineResponse, error) {
	area, err := geojson.ParsePolygon(rawPolygon)
	if err != nil {
		return nil, invalidGeometry(err)
	}

	lines, err := uc.lineRepo.GetIntersecting(ctx, area)
	if err != nil {
		uc.logger.Error("Failed to get intersecting lines", zap.Error(err))
		return nil, err
	}
	return dto.NewBusLineResponses(lines), nil
}

func (uc *BusLineUseCase) apply(ctx context.Context, line *domain.BusLine, req dto.BusLineRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	path, err := geojson.ParseLineString(req.Geometry)
	if err != nil {
		return invalidGeometry(err)
	}

	company, err := uc.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return err
	}

	line.Number = req.Number
	line.Description = req.Description
	line.Status = req.Status
	line.Origin = req.Origin
	line.Destination = req.Destination
	line.Schedule = *req.Schedule
	line.Geometry = path
	line.CompanyID = company.ID
	return nil
}
