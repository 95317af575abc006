package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_admin/internal/aggregate"
	"github.com/shenikar/incident_admin/internal/config"
	"github.com/shenikar/incident_admin/internal/filter"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/shenikar/incident_admin/internal/service/mocks"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:  []string{"test-api-key"},
		Location: time.UTC,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	_, _, router := newTestHandler(t)
	id := "6f1c3c6e-3f0b-4b7e-9a55-5f2f0c1f9d11"

	w := makeRequest(router, "GET", "/api/v1/system/health", nil, map[string]string{requestIDHeader: id})

	assert.Equal(t, id, w.Header().Get(requestIDHeader))
}

func TestAuth_MissingKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Page(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?source=mobile", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents?source=mobile", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Page(gomock.Any(), gomock.Any()).Return(&table.Page{Page: 1, PerPage: 10, LastPage: 1}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?source=cctv", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		Page(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q table.Query) (*table.Page, error) {
			assert.Equal(t, models.SourceMobile, q.Criteria.Source)
			assert.Equal(t, "fire", q.Criteria.Type)
			assert.Equal(t, period.KindMonth, q.Criteria.Window.Kind)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), q.Criteria.Window.Start)
			assert.Equal(t, table.Sort{Field: "severity", Direction: "asc"}, q.Sort)
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 5, q.PerPage)
			return &table.Page{
				Rows:     []*models.Incident{{ID: 7, Source: models.SourceMobile, Type: "fire", Timestamp: ts}},
				Total:    6,
				Page:     2,
				PerPage:  5,
				LastPage: 2,
				Types:    []string{"fire"},
				Years:    []int{2024},
			}, nil
		})

	url := "/api/v1/incidents?source=mobile&period=month&date=2024-03-05&typeFilter=fire&sortField=severity&sortDirection=asc&page=2&perPage=5"
	w := makeRequest(router, "GET", url, nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, int64(7), resp.Rows[0].ID)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 2, resp.LastPage)
	assert.Equal(t, []int{2024}, resp.Years)
}

func TestListIncidents_DefaultsToToday(t *testing.T) {
	h, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Page(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q table.Query) (*table.Page, error) {
			assert.Equal(t, period.KindExactDay, q.Criteria.Window.Kind)
			assert.Equal(t, h.cfg.Today(), q.Criteria.Window.Start.Format("2006-01-02"))
			return &table.Page{Page: 1, PerPage: 10, LastPage: 1}, nil
		})

	w := makeRequest(router, "GET", "/api/v1/incidents?source=cctv", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_InvalidDate(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Page(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?source=mobile&date=2024-13-45", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Page(gomock.Any(), gomock.Any()).Times(0)

	tests := []string{
		"/api/v1/incidents",
		"/api/v1/incidents?source=radio",
		"/api/v1/incidents?source=mobile&period=decade",
		"/api/v1/incidents?source=mobile&perPage=1000",
		"/api/v1/incidents?source=mobile&page=922337203685477580",
	}
	for _, url := range tests {
		w := makeRequest(router, "GET", url, nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Page(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("db down"))

	w := makeRequest(router, "GET", "/api/v1/incidents?source=mobile", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ResolveIncident(gomock.Any(), "abc123").Return(&models.NormalizedIncident{
		ID:     "abc123",
		Source: models.SourceMobile,
		Type:   "fire",
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/abc123", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.NormalizedIncident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp.ID)
	assert.Equal(t, "fire", resp.Type)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ResolveIncident(gomock.Any(), "42").Return(nil, models.ErrNotFound)

	w := makeRequest(router, "GET", "/api/v1/incidents/42", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestIncidentReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GenerateSingleReport(gomock.Any(), "42").Return(&report.Document{
		Filename:    "incident-42-20240305_100000.pdf",
		ContentType: report.ContentTypePDF,
		Data:        []byte("%PDF-1.4"),
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/42/report", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentTypePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incident-42-20240305_100000.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestHideIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().HideIncidents(gomock.Any(), []int64{1, 2}).Return(int64(2), nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/hide", jsonBody(t, BulkRequest{IDs: []int64{1, 2}}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp BulkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Affected)
	assert.Equal(t, table.StatusMessage(table.ActionHide), resp.Message)
}

func TestUnhideIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UnhideIncidents(gomock.Any(), []int64{3}).Return(int64(1), nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/unhide", jsonBody(t, BulkRequest{IDs: []int64{3}}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), table.StatusMessage(table.ActionUnhide))
}

func TestHideIncidents_EmptySelection(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().HideIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents/hide", bytes.NewBufferString(`{"ids":[]}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHideIncidents_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().HideIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents/hide", bytes.NewBufferString(`{"ids": [1`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestDeleteIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().DeleteIncidents(gomock.Any(), []int64{1, 2}).Return(&models.DeletionResult{
		Requested:     2,
		Deleted:       2,
		RemoteDeleted: []string{"fb1"},
		RemoteFailed:  []string{"fb2"},
	}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/delete", jsonBody(t, BulkRequest{IDs: []int64{1, 2}}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DeletionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Deleted)
	assert.Equal(t, []string{"fb2"}, resp.RemoteFailed)
	assert.Equal(t, table.StatusMessage(table.ActionDelete), resp.Message)
}

func TestDeleteIncidents_TransactionFailed(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().DeleteIncidents(gomock.Any(), []int64{1}).
		Return(nil, fmt.Errorf("%w: %w", models.ErrTransactionFailed, fmt.Errorf("fk violation")))

	w := makeRequest(router, "POST", "/api/v1/incidents/delete", jsonBody(t, BulkRequest{IDs: []int64{1}}), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no incidents were deleted")
}

func TestReportSummary_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	w := period.Window{Period: period.Week, Kind: period.KindWeek}

	mockService.EXPECT().
		Summarize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c filter.Criteria, s table.Sort) (*aggregate.Report, error) {
			assert.Equal(t, models.SourceCCTV, c.Source)
			assert.Equal(t, period.KindWeek, c.Window.Kind)
			assert.Empty(t, s.Field)
			return &aggregate.Report{
				Source: models.SourceCCTV,
				Window: w,
				Total:  3,
				Series: aggregate.Series{
					Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
					Counts: []int{1, 0, 2, 0, 0, 0, 0},
				},
				Histograms: aggregate.Histograms{
					Severity: map[string]int{"high": 3},
					Status:   map[string]int{"open": 3},
					Type:     map[string]int{"intrusion": 3},
				},
			}, nil
		})

	resp := makeRequest(router, "GET", "/api/v1/reports/summary?source=cctv&period=week&date=2024-03-06", nil, authHeader)

	require.Equal(t, http.StatusOK, resp.Code)
	var summary SummaryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Len(t, summary.Labels, 7)
	assert.Nil(t, summary.Severity)
	assert.Equal(t, map[string]int{"open": 3}, summary.Status)
}

func TestGenerateReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any(), table.Sort{Field: "timestamp", Direction: "asc"}).
		Return(&report.Document{Filename: "incident-report-mobile-day-20240305_100000.pdf", ContentType: report.ContentTypePDF, Data: []byte("pdf")}, nil)

	w := makeRequest(router, "GET", "/api/v1/reports/generate?source=mobile&sortField=timestamp&sortDirection=asc", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestListRemoteIncidents_Unavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListRemoteIncidents(gomock.Any(), gomock.Any()).Return(nil, models.ErrRemoteStoreUnavailable)

	w := makeRequest(router, "GET", "/api/v1/remote/incidents?source=mobile", nil, authHeader)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListRemoteIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListRemoteIncidents(gomock.Any(), gomock.Any()).Return([]*models.NormalizedIncident{
		{ID: "fb1", Source: models.SourceMobile},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/remote/incidents?source=mobile&period=year&date=2024-01-01", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.NormalizedIncident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "fb1", resp[0].ID)
}
