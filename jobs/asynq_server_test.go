package jobs

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func mountHandler(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/jobs", h.MountRoutes)
	return r
}

func TestHealthWithoutInspector(t *testing.T) {
	h := NewHandler(nil, nil, slog.Default())

	rr := httptest.NewRecorder()
	mountHandler(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"queue":"default","pending":0}`, rr.Body.String())
}

func TestTriggerStaleScanWithoutClient(t *testing.T) {
	h := NewHandler(nil, nil, slog.Default())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/stale-scan", strings.NewReader(`{"older_than_hours":24}`))
	mountHandler(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestNewStaleScanTaskPayload(t *testing.T) {
	task, err := NewStaleScanTask(StaleScanPayload{OlderThanHours: 48, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, TaskPaymentsStaleScan, task.Type())
	require.JSONEq(t, `{"older_than_hours":48,"limit":10}`, string(task.Payload()))
}
