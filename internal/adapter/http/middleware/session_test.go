package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wheelworks/internal/adapter/http/handlers/mocks"
	"wheelworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGuardedRouter(sessions usecase.ISessionUseCase) *gin.Engine {
	r := gin.New()
	r.GET("/v1/dashboard/overview", RequireSession(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/v1/auth/login", RedirectIfAuthenticated(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no cookie redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != LoginPath {
			t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
		}
	})

	t.Run("invalid cookie redirects and clears it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Verify("stale-token").Return(usecase.ErrInvalidSession)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != LoginPath {
			t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
		}
		cookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(cookie, SessionCookieName+"=") || !strings.Contains(cookie, "Max-Age=0") {
			t.Fatalf("expected cleared cookie, got %q", cookie)
		}
	})

	t.Run("valid cookie passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Verify("good-token").Return(nil)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRedirectIfAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active session bounces to the dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Verify("good-token").Return(nil)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != DashboardPath {
			t.Fatalf("expected redirect to %s, got %s", DashboardPath, loc)
		}
	})

	t.Run("no session continues to the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stale session continues to the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Verify("stale-token").Return(usecase.ErrInvalidSession)
		r := newGuardedRouter(sessions)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
