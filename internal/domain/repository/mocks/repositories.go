// Package mocks содержит testify моки репозиториев для тестов use case и хендлеров.
package mocks

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"

	"github.com/transit-network/internal/domain"
)

func stops(args mock.Arguments, i int) []*domain.BusStop {
	if v := args.Get(i); v != nil {
		return v.([]*domain.BusStop)
	}
	return nil
}

func lines(args mock.Arguments, i int) []*domain.BusLine {
	if v := args.Get(i); v != nil {
		return v.([]*domain.BusLine)
	}
	return nil
}

func stopLines(args mock.Arguments, i int) []*domain.StopLine {
	if v := args.Get(i); v != nil {
		return v.([]*domain.StopLine)
	}
	return nil
}

// ============================================================================
// BusStopRepository
// ============================================================================

type BusStopRepository struct {
	mock.Mock
}

func (m *BusStopRepository) Create(ctx context.Context, stop *domain.BusStop) error {
	return m.Called(ctx, stop).Error(0)
}

func (m *BusStopRepository) Update(ctx context.Context, stop *domain.BusStop) error {
	return m.Called(ctx, stop).Error(0)
}

func (m *BusStopRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BusStopRepository) GetByID(ctx context.Context, id int64) (*domain.BusStop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusStop), args.Error(1)
}

func (m *BusStopRepository) GetAll(ctx context.Context) ([]*domain.BusStop, error) {
	args := m.Called(ctx)
	return stops(args, 0), args.Error(1)
}

func (m *BusStopRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BusStopRepository) GetNearby(ctx context.Context, lat, lon, radiusM float64) ([]*domain.BusStop, error) {
	args := m.Called(ctx, lat, lon, radiusM)
	return stops(args, 0), args.Error(1)
}

// ============================================================================
// BusLineRepository
// ============================================================================

type BusLineRepository struct {
	mock.Mock
}

func (m *BusLineRepository) Create(ctx context.Context, line *domain.BusLine) error {
	return m.Called(ctx, line).Error(0)
}

func (m *BusLineRepository) Update(ctx context.Context, line *domain.BusLine) error {
	return m.Called(ctx, line).Error(0)
}

func (m *BusLineRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BusLineRepository) GetByID(ctx context.Context, id int64) (*domain.BusLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusLine), args.Error(1)
}

func (m *BusLineRepository) GetAll(ctx context.Context) ([]*domain.BusLine, error) {
	args := m.Called(ctx)
	return lines(args, 0), args.Error(1)
}

func (m *BusLineRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BusLineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.BusLine, error) {
	args := m.Called(ctx, ids)
	return lines(args, 0), args.Error(1)
}

func (m *BusLineRepository) GetIntersecting(ctx context.Context, area orb.Polygon) ([]*domain.BusLine, error) {
	args := m.Called(ctx, area)
	return lines(args, 0), args.Error(1)
}

func (m *BusLineRepository) ExistsByCompany(ctx context.Context, companyID int64) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

// ============================================================================
// StopLineRepository
// ============================================================================

type StopLineRepository struct {
	mock.Mock
}

func (m *StopLineRepository) Create(ctx context.Context, sl *domain.StopLine) error {
	return m.Called(ctx, sl).Error(0)
}

func (m *StopLineRepository) Update(ctx context.Context, sl *domain.StopLine) error {
	return m.Called(ctx, sl).Error(0)
}

func (m *StopLineRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StopLineRepository) GetByID(ctx context.Context, id int64) (*domain.StopLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StopLine), args.Error(1)
}

func (m *StopLineRepository) GetAll(ctx context.Context) ([]*domain.StopLine, error) {
	args := m.Called(ctx)
	return stopLines(args, 0), args.Error(1)
}

func (m *StopLineRepository) GetByStop(ctx context.Context, stopID int64) ([]*domain.StopLine, error) {
	args := m.Called(ctx, stopID)
	return stopLines(args, 0), args.Error(1)
}

func (m *StopLineRepository) GetByLine(ctx context.Context, lineID int64) ([]*domain.StopLine, error) {
	args := m.Called(ctx, lineID)
	return stopLines(args, 0), args.Error(1)
}

func (m *StopLineRepository) GetByStopAndTimeRange(ctx context.Context, stopID int64, from, to domain.TimeOfDay) ([]*domain.StopLine, error) {
	args := m.Called(ctx, stopID, from, to)
	return stopLines(args, 0), args.Error(1)
}

func (m *StopLineRepository) ExistsByTriple(ctx context.Context, stopID, lineID int64, estimatedTime domain.TimeOfDay, excludeID int64) (bool, error) {
	args := m.Called(ctx, stopID, lineID, estimatedTime, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *StopLineRepository) ExistsByStop(ctx context.Context, stopID int64) (bool, error) {
	args := m.Called(ctx, stopID)
	return args.Bool(0), args.Error(1)
}

func (m *StopLineRepository) ExistsByLine(ctx context.Context, lineID int64) (bool, error) {
	args := m.Called(ctx, lineID)
	return args.Bool(0), args.Error(1)
}

// ============================================================================
// ScheduleRepository, CompanyRepository
// ============================================================================

type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) Create(ctx context.Context, s *domain.BusLineSchedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ScheduleRepository) Update(ctx context.Context, s *domain.BusLineSchedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.BusLineSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusLineSchedule), args.Error(1)
}

func (m *ScheduleRepository) GetAll(ctx context.Context) ([]*domain.BusLineSchedule, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.BusLineSchedule), args.Error(1)
	}
	return nil, args.Error(1)
}

type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CompanyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *CompanyRepository) GetAll(ctx context.Context) ([]*domain.Company, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Company), args.Error(1)
	}
	return nil, args.Error(1)
}
