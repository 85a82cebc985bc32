package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamStopLineImport = "stream:transit:stopline:import"
	StreamStopLineDone   = "stream:transit:stopline:done"
)

// StopLineImportEvent - входящая заявка на создание связи остановка-линия
type StopLineImportEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	StopID        int64     `json:"stop_id"`
	LineID        int64     `json:"line_id"`
	EstimatedTime *TimeOfDay `json:"estimated_time"`
	IsEnabled     *bool     `json:"is_enabled,omitempty"`
}

// StopLineImportResult - результат обработки заявки
type StopLineImportResult struct {
	RequestID uuid.UUID `json:"request_id"`
	StopLine  *StopLine `json:"stop_line,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Succeeded - заявка обработана без ошибки
func (r *StopLineImportResult) Succeeded() bool {
	return r.Error == "" && r.StopLine != nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID     string
	Values map[string]interface{}
}
