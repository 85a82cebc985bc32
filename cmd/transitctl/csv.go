package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/transit-network/internal/domain"
)

type stopLineRow struct {
	StopID        int64  `csv:"stop_id"`
	LineID        int64  `csv:"line_id"`
	EstimatedTime string `csv:"estimated_time"`
	IsEnabled     string `csv:"is_enabled"`
}

// ReadStopLineEvents разбирает CSV и выдаёт по заявке на строку с новым request_id.
// Ошибка в любой строке прерывает разбор целиком.
func ReadStopLineEvents(r io.Reader) ([]*domain.StopLineImportEvent, error) {
	var rows []*stopLineRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	events := make([]*domain.StopLineImportEvent, 0, len(rows))
	for i, row := range rows {
		// строка 1 - заголовок
		line := i + 2

		estimated, err := domain.ParseTimeOfDay(row.EstimatedTime)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		event := &domain.StopLineImportEvent{
			RequestID:     uuid.New(),
			StopID:        row.StopID,
			LineID:        row.LineID,
			EstimatedTime: &estimated,
		}

		if v := strings.TrimSpace(row.IsEnabled); v != "" {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid is_enabled %q", line, v)
			}
			event.IsEnabled = &enabled
		}

		events = append(events, event)
	}
	return events, nil
}
