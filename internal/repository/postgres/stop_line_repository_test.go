package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/suite"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/repository/postgres/testhelpers"
)

// StopLineRepositoryTestSuite tests StopLineRepository against PostGIS
type StopLineRepositoryTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	fixtures *testhelpers.Fixtures
	repo     repository.StopLineRepository
	ctx      context.Context

	stop *domain.BusStop
	line *domain.BusLine
}

func (s *StopLineRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(s.testDB.ApplyMigrations(context.Background()))
	s.repo = s.testDB.StopLineRepository()
}

func (s *StopLineRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *StopLineRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	s.fixtures = s.testDB.Fixtures(s.T())
	company := s.fixtures.Company(s.ctx, "CUTCSA")
	s.stop = s.fixtures.Stop(s.ctx, "Plaza Independencia", -56.1990, -34.9065)
	s.line = s.fixtures.Line(s.ctx, "121", company.ID, orb.LineString{{-56.20, -34.91}, {-56.15, -34.89}})
}

func (s *StopLineRepositoryTestSuite) newStopLine(at string) *domain.StopLine {
	return &domain.StopLine{
		BusStopID:     s.stop.ID,
		BusLineID:     s.line.ID,
		EstimatedTime: domain.MustParseTimeOfDay(at),
	}
}

func (s *StopLineRepositoryTestSuite) TestCreate_AndGetByID() {
	sl := s.newStopLine("08:15")
	s.Require().NoError(s.repo.Create(s.ctx, sl))
	s.NotZero(sl.ID)

	got, err := s.repo.GetByID(s.ctx, sl.ID)
	s.Require().NoError(err)
	s.Equal(s.stop.ID, got.BusStopID)
	s.Equal(s.line.ID, got.BusLineID)
	s.Equal("08:15:00", got.EstimatedTime.String())
	s.False(got.IsEnabled)
}

func (s *StopLineRepositoryTestSuite) TestCreate_DuplicateTriple() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newStopLine("08:15")))

	err := s.repo.Create(s.ctx, s.newStopLine("08:15"))
	s.ErrorIs(err, errors.ErrDuplicateAssociation)

	// та же пара, другое время - допустимо
	s.NoError(s.repo.Create(s.ctx, s.newStopLine("08:30")))
}

func (s *StopLineRepositoryTestSuite) TestCreate_ConcurrentDuplicates() {
	const workers = 8

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.repo.Create(s.ctx, s.newStopLine("09:00"))
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, errors.ErrDuplicateAssociation)
	}
	s.Equal(1, succeeded)

	all, err := s.repo.GetByStop(s.ctx, s.stop.ID)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StopLineRepositoryTestSuite) TestCreate_UnknownStop() {
	sl := s.newStopLine("10:00")
	sl.BusStopID = 999999
	s.ErrorIs(s.repo.Create(s.ctx, sl), errors.ErrBusStopNotFound)
}

func (s *StopLineRepositoryTestSuite) TestUpdate() {
	sl := s.newStopLine("08:15")
	s.Require().NoError(s.repo.Create(s.ctx, sl))
	other := s.newStopLine("08:30")
	s.Require().NoError(s.repo.Create(s.ctx, other))

	sl.EstimatedTime = domain.MustParseTimeOfDay("08:20")
	sl.IsEnabled = true
	s.Require().NoError(s.repo.Update(s.ctx, sl))

	got, err := s.repo.GetByID(s.ctx, sl.ID)
	s.Require().NoError(err)
	s.Equal("08:20:00", got.EstimatedTime.String())
	s.True(got.IsEnabled)

	// занять время другой записи той же пары нельзя
	sl.EstimatedTime = other.EstimatedTime
	s.ErrorIs(s.repo.Update(s.ctx, sl), errors.ErrDuplicateAssociation)

	missing := s.newStopLine("11:00")
	missing.ID = 999999
	s.ErrorIs(s.repo.Update(s.ctx, missing), errors.ErrStopLineNotFound)
}

func (s *StopLineRepositoryTestSuite) TestDelete() {
	sl := s.newStopLine("08:15")
	s.Require().NoError(s.repo.Create(s.ctx, sl))

	s.NoError(s.repo.Delete(s.ctx, sl.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, sl.ID), errors.ErrStopLineNotFound)

	_, err := s.repo.GetByID(s.ctx, sl.ID)
	s.ErrorIs(err, errors.ErrStopLineNotFound)
}

func (s *StopLineRepositoryTestSuite) TestGetByStopAndTimeRange_Inclusive() {
	for _, at := range []string{"07:59", "08:00", "08:30", "09:00", "09:01"} {
		s.Require().NoError(s.repo.Create(s.ctx, s.newStopLine(at)))
	}

	got, err := s.repo.GetByStopAndTimeRange(s.ctx, s.stop.ID,
		domain.MustParseTimeOfDay("08:00"), domain.MustParseTimeOfDay("09:00"))
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("08:00:00", got[0].EstimatedTime.String())
	s.Equal("09:00:00", got[2].EstimatedTime.String())

	got, err = s.repo.GetByStopAndTimeRange(s.ctx, s.stop.ID+1,
		domain.MustParseTimeOfDay("00:00"), domain.MustParseTimeOfDay("23:59"))
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StopLineRepositoryTestSuite) TestExistsQueries() {
	sl := s.newStopLine("08:15")
	s.Require().NoError(s.repo.Create(s.ctx, sl))

	exists, err := s.repo.ExistsByTriple(s.ctx, s.stop.ID, s.line.ID, sl.EstimatedTime, 0)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByTriple(s.ctx, s.stop.ID, s.line.ID, sl.EstimatedTime, sl.ID)
	s.Require().NoError(err)
	s.False(exists, "record itself is excluded")

	exists, err = s.repo.ExistsByStop(s.ctx, s.stop.ID)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByLine(s.ctx, s.line.ID+100)
	s.Require().NoError(err)
	s.False(exists)

	byLine, err := s.repo.GetByLine(s.ctx, s.line.ID)
	s.Require().NoError(err)
	s.Len(byLine, 1)
}

func (s *StopLineRepositoryTestSuite) TestDeleteReferencedStopIsRestricted() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newStopLine("08:15")))

	err := s.testDB.BusStopRepository().Delete(s.ctx, s.stop.ID)
	s.ErrorIs(err, errors.ErrHasDependents)

	err = s.testDB.BusLineRepository().Delete(s.ctx, s.line.ID)
	s.ErrorIs(err, errors.ErrHasDependents)
}

func TestStopLineRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StopLineRepositoryTestSuite))
}
