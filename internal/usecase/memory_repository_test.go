package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/pkg/errors"
)

// memoryStopLineRepository - in-memory StopLineRepository с тем же ограничением уникальности тройки
type memoryStopLineRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.StopLine
}

func newMemoryStopLineRepository() *memoryStopLineRepository {
	return &memoryStopLineRepository{rows: make(map[int64]domain.StopLine)}
}

func (r *memoryStopLineRepository) conflicts(sl *domain.StopLine) bool {
	for id, row := range r.rows {
		if id != sl.ID && row.BusStopID == sl.BusStopID && row.BusLineID == sl.BusLineID && row.EstimatedTime == sl.EstimatedTime {
			return true
		}
	}
	return false
}

func (r *memoryStopLineRepository) Create(_ context.Context, sl *domain.StopLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts(sl) {
		return errors.ErrDuplicateAssociation
	}
	r.nextID++
	sl.ID = r.nextID
	r.rows[sl.ID] = *sl
	return nil
}

func (r *memoryStopLineRepository) Update(_ context.Context, sl *domain.StopLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[sl.ID]; !ok {
		return errors.ErrStopLineNotFound
	}
	if r.conflicts(sl) {
		return errors.ErrDuplicateAssociation
	}
	r.rows[sl.ID] = *sl
	return nil
}

func (r *memoryStopLineRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return errors.ErrStopLineNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memoryStopLineRepository) GetByID(_ context.Context, id int64) (*domain.StopLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, errors.ErrStopLineNotFound
	}
	return &row, nil
}

func (r *memoryStopLineRepository) filter(keep func(domain.StopLine) bool) []*domain.StopLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.StopLine{}
	for _, row := range r.rows {
		if keep(row) {
			row := row
			result = append(result, &row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *memoryStopLineRepository) GetAll(context.Context) ([]*domain.StopLine, error) {
	return r.filter(func(domain.StopLine) bool { return true }), nil
}

func (r *memoryStopLineRepository) GetByStop(_ context.Context, stopID int64) ([]*domain.StopLine, error) {
	return r.filter(func(sl domain.StopLine) bool { return sl.BusStopID == stopID }), nil
}

func (r *memoryStopLineRepository) GetByLine(_ context.Context, lineID int64) ([]*domain.StopLine, error) {
	return r.filter(func(sl domain.StopLine) bool { return sl.BusLineID == lineID }), nil
}

func (r *memoryStopLineRepository) GetByStopAndTimeRange(_ context.Context, stopID int64, from, to domain.TimeOfDay) ([]*domain.StopLine, error) {
	return r.filter(func(sl domain.StopLine) bool {
		return sl.BusStopID == stopID && sl.EstimatedTime.Within(from, to)
	}), nil
}

func (r *memoryStopLineRepository) ExistsByTriple(_ context.Context, stopID, lineID int64, t domain.TimeOfDay, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conflicts(&domain.StopLine{ID: excludeID, BusStopID: stopID, BusLineID: lineID, EstimatedTime: t}), nil
}

func (r *memoryStopLineRepository) ExistsByStop(ctx context.Context, stopID int64) (bool, error) {
	rows, _ := r.GetByStop(ctx, stopID)
	return len(rows) > 0, nil
}

func (r *memoryStopLineRepository) ExistsByLine(ctx context.Context, lineID int64) (bool, error) {
	rows, _ := r.GetByLine(ctx, lineID)
	return len(rows) > 0, nil
}
