package testhelpers

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/repository/postgres"
)

// Fixtures создаёт минимальную сеть через репозитории
type Fixtures struct {
	t  *testing.T
	db *postgres.DB
}

func (tdb *TestDB) Fixtures(t *testing.T) *Fixtures {
	return &Fixtures{t: t, db: tdb.Wrap()}
}

func (f *Fixtures) Company(ctx context.Context, name string) *domain.Company {
	c := &domain.Company{Name: name}
	require.NoError(f.t, postgres.NewCompanyRepository(f.db).Create(ctx, c))
	return c
}

func (f *Fixtures) Stop(ctx context.Context, name string, lon, lat float64) *domain.BusStop {
	s := &domain.BusStop{
		Name:     name,
		Status:   domain.StopStatusActive,
		Geometry: orb.Point{lon, lat},
	}
	require.NoError(f.t, postgres.NewBusStopRepository(f.db).Create(ctx, s))
	return s
}

func (f *Fixtures) Line(ctx context.Context, number string, companyID int64, path orb.LineString) *domain.BusLine {
	l := &domain.BusLine{
		Number:      number,
		Status:      domain.LineStatusActive,
		Origin:      "Ciudad Vieja",
		Destination: "Pocitos",
		Schedule:    domain.MustParseTimeOfDay("06:00"),
		Geometry:    path,
		CompanyID:   companyID,
	}
	require.NoError(f.t, postgres.NewBusLineRepository(f.db).Create(ctx, l))
	return l
}

func (f *Fixtures) StopLine(ctx context.Context, stopID, lineID int64, at string) *domain.StopLine {
	sl := &domain.StopLine{
		BusStopID:     stopID,
		BusLineID:     lineID,
		EstimatedTime: domain.MustParseTimeOfDay(at),
	}
	require.NoError(f.t, postgres.NewStopLineRepository(f.db).Create(ctx, sl))
	return sl
}
