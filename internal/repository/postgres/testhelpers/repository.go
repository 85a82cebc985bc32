package testhelpers

import (
	"github.com/transit-network/internal/domain/repository"
	"github.com/transit-network/internal/repository/postgres"
)

// Wrap оборачивает тестовое подключение в postgres.DB
func (tdb *TestDB) Wrap() *postgres.DB {
	return postgres.Wrap(tdb.DB, tdb.Logger)
}

func (tdb *TestDB) BusStopRepository() repository.BusStopRepository {
	return postgres.NewBusStopRepository(tdb.Wrap())
}

func (tdb *TestDB) BusLineRepository() repository.BusLineRepository {
	return postgres.NewBusLineRepository(tdb.Wrap())
}

func (tdb *TestDB) StopLineRepository() repository.StopLineRepository {
	return postgres.NewStopLineRepository(tdb.Wrap())
}

func (tdb *TestDB) ScheduleRepository() repository.ScheduleRepository {
	return postgres.NewScheduleRepository(tdb.Wrap())
}

func (tdb *TestDB) CompanyRepository() repository.CompanyRepository {
	return postgres.NewCompanyRepository(tdb.Wrap())
}
