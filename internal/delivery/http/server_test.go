package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-network/internal/config"
	httpdelivery "github.com/transit-network/internal/delivery/http"
	"github.com/transit-network/internal/delivery/http/handler"
	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/domain/repository/mocks"
	"github.com/transit-network/internal/pkg/errors"
	"github.com/transit-network/internal/usecase"
)

type fakeHealth struct{ err error }

func (f fakeHealth) Health(ctx context.Context) error { return f.err }

type testServer struct {
	server       *httpdelivery.Server
	stopRepo     *mocks.BusStopRepository
	lineRepo     *mocks.BusLineRepository
	stopLineRepo *mocks.StopLineRepository
	scheduleRepo *mocks.ScheduleRepository
	companyRepo  *mocks.CompanyRepository
}

func newTestServer(t *testing.T, health error) *testServer {
	t.Helper()

	ts := &testServer{
		stopRepo:     &mocks.BusStopRepository{},
		lineRepo:     &mocks.BusLineRepository{},
		stopLineRepo: &mocks.StopLineRepository{},
		scheduleRepo: &mocks.ScheduleRepository{},
		companyRepo:  &mocks.CompanyRepository{},
	}

	logger := zap.NewNop()
	network := usecase.NewNetworkUseCase(
		usecase.NewBusStopUseCase(ts.stopRepo, ts.stopLineRepo, logger),
		usecase.NewBusLineUseCase(ts.lineRepo, ts.companyRepo, ts.stopLineRepo, logger),
		usecase.NewStopLineUseCase(ts.stopLineRepo, ts.stopRepo, ts.lineRepo, logger),
		usecase.NewScheduleUseCase(ts.scheduleRepo, logger),
		usecase.NewCompanyUseCase(ts.companyRepo, ts.lineRepo, logger),
		logger,
	)

	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 0}}
	ts.server = httpdelivery.NewServer(cfg, logger, httpdelivery.Handlers{
		Health:    handler.NewHealthHandler(fakeHealth{err: health}, logger),
		BusStops:  handler.NewBusStopHandler(network, logger),
		BusLines:  handler.NewBusLineHandler(network, logger),
		StopLines: handler.NewStopLineHandler(network, logger),
		Schedules: handler.NewScheduleHandler(network, logger),
		Companies: handler.NewCompanyHandler(network, logger),
	})
	return ts
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func (ts *testServer) do(t *testing.T, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	status, env := newTestServer(t, nil).do(t, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, string(env.Data))

	status, env = newTestServer(t, stderrors.New("down")).do(t, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)
}

func TestStopLines_Create(t *testing.T) {
	ts := newTestServer(t, nil)
	at := domain.MustParseTimeOfDay("08:00")

	ts.stopRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	ts.lineRepo.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	ts.stopLineRepo.On("ExistsByTriple", mock.Anything, int64(1), int64(7), at, int64(0)).Return(false, nil)
	ts.stopLineRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.StopLine")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.StopLine).ID = 42 }).
		Return(nil)

	status, env := ts.do(t, http.MethodPost, "/api/v1/stop-lines",
		`{"stopId":1,"lineId":7,"estimatedTime":"08:00","isEnabled":true}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":42,"stopId":1,"lineId":7,"estimatedTime":"08:00:00","isEnabled":true}`, string(env.Data))
	ts.stopLineRepo.AssertExpectations(t)
}

func TestStopLines_CreateDuplicate(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.stopRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	ts.lineRepo.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	ts.stopLineRepo.On("ExistsByTriple", mock.Anything, int64(1), int64(7), mock.Anything, int64(0)).Return(true, nil)

	status, env := ts.do(t, http.MethodPost, "/api/v1/stop-lines", `{"stopId":1,"lineId":7,"estimatedTime":"08:00"}`)

	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, errors.ErrDuplicateAssociation.Code, env.Error.Code)
	ts.stopLineRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStopLines_CreateUnknownStop(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.stopRepo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	status, env := ts.do(t, http.MethodPost, "/api/v1/stop-lines", `{"stopId":99,"lineId":7,"estimatedTime":"08:00"}`)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, errors.ErrBusStopNotFound.Code, env.Error.Code)
}

func TestStopLines_CreateBadInput(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "malformed json", body: `{"stopId":`, code: errors.ErrInvalidRequest.Code},
		{name: "bad time", body: `{"stopId":1,"lineId":7,"estimatedTime":"25:99"}`, code: errors.ErrInvalidRequest.Code},
		{name: "missing time", body: `{"stopId":1,"lineId":7}`, code: errors.ErrValidation.Code},
		{name: "zero stop", body: `{"stopId":0,"lineId":7,"estimatedTime":"08:00"}`, code: errors.ErrValidation.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := ts.do(t, http.MethodPost, "/api/v1/stop-lines", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestStopLines_TimeRange(t *testing.T) {
	ts := newTestServer(t, nil)
	from, to := domain.MustParseTimeOfDay("08:00"), domain.MustParseTimeOfDay("09:00")

	ts.stopLineRepo.On("GetByStopAndTimeRange", mock.Anything, int64(1), from, to).Return([]*domain.StopLine{
		{ID: 1, BusStopID: 1, BusLineID: 7, EstimatedTime: from, IsEnabled: true},
		{ID: 2, BusStopID: 1, BusLineID: 8, EstimatedTime: to},
	}, nil)

	status, env := ts.do(t, http.MethodGet, "/api/v1/stop-lines/by-stop/1/time-range?startTime=08:00&endTime=09:00", "")
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)

	// перевёрнутый интервал: пусто, хранилище не трогаем
	status, env = ts.do(t, http.MethodGet, "/api/v1/stop-lines/by-stop/1/time-range?startTime=10:00&endTime=09:00", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
	ts.stopLineRepo.AssertNumberOfCalls(t, "GetByStopAndTimeRange", 1)

	status, env = ts.do(t, http.MethodGet, "/api/v1/stop-lines/by-stop/1/time-range?startTime=8am&endTime=09:00", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errors.ErrInvalidTimeRange.Code, env.Error.Code)

	status, _ = ts.do(t, http.MethodGet, "/api/v1/stop-lines/by-stop/1/time-range?startTime=08:00", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStopLines_DeleteAndNotFound(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.stopLineRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	ts.stopLineRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.ErrStopLineNotFound)

	status, _ := ts.do(t, http.MethodDelete, "/api/v1/stop-lines/5", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, env := ts.do(t, http.MethodGet, "/api/v1/stop-lines/5", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, errors.ErrStopLineNotFound.Code, env.Error.Code)
}

func TestInvalidPathID(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, target := range []string{"/api/v1/bus-stops/abc", "/api/v1/bus-lines/-1", "/api/v1/companies/0"} {
		status, env := ts.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.Equal(t, errors.ErrInvalidRequest.Code, env.Error.Code, target)
	}
}

func TestBusStops_DeleteWithDependents(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.stopRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	ts.stopLineRepo.On("ExistsByStop", mock.Anything, int64(1)).Return(true, nil)

	status, env := ts.do(t, http.MethodDelete, "/api/v1/bus-stops/1", "")

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, errors.ErrHasDependents.Code, env.Error.Code)
	ts.stopRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBusStops_Nearby(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.stopRepo.On("GetNearby", mock.Anything, -34.9, -56.16, 500.0).Return([]*domain.BusStop{
		{ID: 1, Name: "Central"},
	}, nil)

	status, env := ts.do(t, http.MethodGet, "/api/v1/bus-stops/nearby?lat=-34.9&lon=-56.16&radius=500", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Meta.Total)

	status, env = ts.do(t, http.MethodGet, "/api/v1/bus-stops/nearby?lat=-34.9&lon=-56.16&radius=90000", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errors.ErrInvalidRadius.Code, env.Error.Code)
}

func TestBusLines_IntersectingRejectsNonPolygon(t *testing.T) {
	ts := newTestServer(t, nil)

	status, env := ts.do(t, http.MethodPost, "/api/v1/bus-lines/intersecting", `{"type":"Point","coordinates":[0,0]}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errors.ErrInvalidGeometry.Code, env.Error.Code)
	ts.lineRepo.AssertNotCalled(t, "GetIntersecting", mock.Anything, mock.Anything)
}

func TestUnknownRoute(t *testing.T) {
	status, env := newTestServer(t, nil).do(t, http.MethodGet, "/api/v1/trains", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
}
