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

type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	lineRepo    repository.BusLineRepository
	logger      *zap.Logger
}

func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	lineRepo repository.BusLineRepository,
	logger *zap.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		lineRepo:    lineRepo,
		logger:      logger,
	}
}

func (uc *CompanyUseCase) Create(ctx context.Context, req dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	company := &domain.Company{Name: req.Name}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	uc.logger.Info("Company created", zap.Int64("id", company.ID), zap.String("name", company.Name))
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (uc *CompanyUseCase) Update(ctx context.Context, id int64, req dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// Delete запрещён, пока у компании есть линии
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasLines, err := uc.lineRepo.ExistsByCompany(ctx, id)
	if err != nil {
		return err
	}
	if hasLines {
		return errors.ErrHasDependents.WithMessage("Company still operates bus lines")
	}

	return uc.companyRepo.Delete(ctx, id)
}

func (uc *CompanyUseCase) FindByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (uc *CompanyUseCase) FindAll(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyResponses(companies), nil
}
