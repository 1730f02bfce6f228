package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"searchindex/internal/metrics"
	"searchindex/internal/service"
	"searchindex/internal/service/mocks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockIndexService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockIndexService := mocks.NewMockIndexService(ctrl)

	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	deps := &Deps{
		IndexService: mockIndexService,
		Database:     okPinger{},
		Dialect:      "sqlite",
		Gatherer:     reg,
	}
	return NewRouter(deps), mockIndexService
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router, mockIndexService := newTestRouter(t)
	mockIndexService.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(service.SearchResponse{}, nil)
	mockIndexService.EXPECT().
		RemoveEntity(gomock.Any(), int64(7)).
		Return(nil)
	mockIndexService.EXPECT().
		RemoveField(gomock.Any(), int64(9)).
		Return(nil)
	mockIndexService.EXPECT().
		EntityKeywords(gomock.Any(), int64(7), int64(1)).
		Return(nil, service.ErrNotFound)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/search",
			method:     http.MethodGet,
			path:       "/api/search?q=car",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/index exists",
			method:     http.MethodPost,
			path:       "/api/index",
			wantStatus: http.StatusBadRequest, // Bad request due to invalid body, but route exists
		},
		{
			name:       "POST /api/index/batch exists",
			method:     http.MethodPost,
			path:       "/api/index/batch",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "DELETE /api/index/{entityID}",
			method:     http.MethodDelete,
			path:       "/api/index/7",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "DELETE /api/index/fields/{fieldID}",
			method:     http.MethodDelete,
			path:       "/api/index/fields/9",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "GET /api/index/{entityID} not indexed",
			method:     http.MethodGet,
			path:       "/api/index/7?site_id=1",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET /api/index method not allowed",
			method:     http.MethodGet,
			path:       "/api/index",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Router GET /metrics status = %v, want %v", w.Code, http.StatusOK)
	}
	// Histograms without observations are exported, counter vecs without children are not.
	if !strings.Contains(w.Body.String(), "searchindex_index_rows_canceled_total") {
		t.Errorf("Router GET /metrics body missing searchindex collectors:\n%s", w.Body.String())
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/index", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
