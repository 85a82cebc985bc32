package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/usecase/dto"
)

// NetworkUseCase - единая точка доступа к сети: сущности, связи и составные выборки
type NetworkUseCase struct {
	Stops     *BusStopUseCase
	Lines     *BusLineUseCase
	StopLines *StopLineUseCase
	Schedules *ScheduleUseCase
	Companies *CompanyUseCase
	logger    *zap.Logger
}

func NewNetworkUseCase(
	stops *BusStopUseCase,
	lines *BusLineUseCase,
	stopLines *StopLineUseCase,
	schedules *ScheduleUseCase,
	companies *CompanyUseCase,
	logger *zap.Logger,
) *NetworkUseCase {
	return &NetworkUseCase{
		Stops:     stops,
		Lines:     lines,
		StopLines: stopLines,
		Schedules: schedules,
		Companies: companies,
		logger:    logger,
	}
}

// StopBoard - прохождения линий через остановку в окне [from, to]
func (uc *NetworkUseCase) StopBoard(ctx context.Context, stopID int64, from, to domain.TimeOfDay) (*dto.StopBoardResponse, error) {
	stop, err := uc.Stops.FindByID(ctx, stopID)
	if err != nil {
		return nil, err
	}

	stopLines, err := uc.StopLines.FindByStopAndTimeRange(ctx, stopID, from, to)
	if err != nil {
		return nil, err
	}

	board := &dto.StopBoardResponse{
		Stop:    *stop,
		From:    from,
		To:      to,
		Entries: make([]dto.StopBoardEntry, 0, len(stopLines)),
	}
	if len(stopLines) == 0 {
		return board, nil
	}

	lineIDs := make([]int64, 0, len(stopLines))
	seen := make(map[int64]struct{}, len(stopLines))
	for _, sl := range stopLines {
		if _, ok := seen[sl.LineID]; !ok {
			seen[sl.LineID] = struct{}{}
			lineIDs = append(lineIDs, sl.LineID)
		}
	}

	lines, err := uc.Lines.FindByIDs(ctx, lineIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]dto.BusLineResponse, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	for _, sl := range stopLines {
		line, ok := byID[sl.LineID]
		if !ok {
			// линия удалена между запросами
			uc.logger.Warn("Stop line references missing bus line",
				zap.Int64("stop_line_id", sl.ID),
				zap.Int64("line_id", sl.LineID))
			continue
		}
		board.Entries = append(board.Entries, dto.StopBoardEntry{
			StopLineID:    sl.ID,
			LineID:        line.ID,
			LineNumber:    line.Number,
			Origin:        line.Origin,
			Destination:   line.Destination,
			EstimatedTime: sl.EstimatedTime,
			IsEnabled:     sl.IsEnabled,
		})
	}

	return board, nil
}
