package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wheelworks/internal/adapter/http/handlers/mocks"
	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(h *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/dashboard/overview", h.Overview)
	r.GET("/v1/dashboard/quotes/:id", h.GetQuote)
	r.PATCH("/v1/dashboard/quotes/:id/status", h.UpdateQuoteStatus)
	return r
}

func TestDashboardHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)

		snapshot := entities.AnalyticsSnapshot{
			TotalQuotes:     2,
			QuotesThisMonth: 1,
			Coverage: entities.CoverageAnalytics{
				DistanceBuckets: map[string]int{"0-10": 1, "11-20": 0, "21-30": 0, "31-40": 0, "40+": 1},
			},
		}
		listed := []entities.Quote{
			{ID: "q-2", CreatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "q-1", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		}
		dash.EXPECT().Overview(gomock.Any(), "week").Return(snapshot, listed, nil)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview?range=week", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body=%s)", w.Code, w.Body.String())
		}
		var body struct {
			Analytics struct {
				TotalQuotes     int `json:"total_quotes"`
				QuotesThisMonth int `json:"quotes_this_month"`
			} `json:"analytics"`
			Quotes []struct {
				ID string `json:"id"`
			} `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Analytics.TotalQuotes != 2 || body.Analytics.QuotesThisMonth != 1 {
			t.Fatalf("unexpected analytics: %+v", body.Analytics)
		}
		if len(body.Quotes) != 2 || body.Quotes[0].ID != "q-2" {
			t.Fatalf("unexpected quotes: %+v", body.Quotes)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		dash.EXPECT().Overview(gomock.Any(), "decade").
			Return(entities.AnalyticsSnapshot{}, nil, usecase.ErrInvalidDateRange)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview?range=decade", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("listing failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		dash.EXPECT().Overview(gomock.Any(), "").
			Return(entities.AnalyticsSnapshot{}, nil, errors.New("scan failed"))

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Name: "Jamie", Status: entities.QuoteStatusPending}, nil)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["quote_id"] != "q-1" || body["id"] != "q-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		quotes.EXPECT().GetByID(gomock.Any(), "missing").
			Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodPatch, "/v1/dashboard/quotes/q-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatus("shipped")).
			Return(entities.Quote{}, usecase.ErrInvalidQuoteStatus)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodPatch, "/v1/dashboard/quotes/q-1/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusContacted).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusContacted}, nil)

		r := newDashboardRouter(NewDashboardHandler(dash, quotes))
		req := httptest.NewRequest(http.MethodPatch, "/v1/dashboard/quotes/q-1/status", bytes.NewBufferString(`{"status":"contacted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "contacted" {
			t.Fatalf("expected contacted, got %v", body["status"])
		}
	})
}
