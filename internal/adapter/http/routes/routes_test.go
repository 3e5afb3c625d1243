package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"valuation_report/internal/adapter/http/handlers"
	"valuation_report/internal/adapter/http/handlers/mocks"
	"valuation_report/internal/adapter/http/middleware"
	"valuation_report/internal/domain/entities"
	"valuation_report/internal/infrastructure/config"
	"valuation_report/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	valuations := mocks.NewMockIValuationUseCase(ctrl)
	options := mocks.NewMockIOptionsUseCase(ctrl)

	cfg := &config.Config{AppEnv: "development", JWTSecret: "secret", UploadDir: t.TempDir(), AttachmentDriver: config.AttachmentDriverLocal}
	router := NewRouter(cfg, Handlers{
		Valuation: handlers.NewValuationHandler(valuations),
		Report:    handlers.NewReportHandler(valuations),
		Options:   handlers.NewOptionsHandler(options),
	})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bearer token resolves actor", func(t *testing.T) {
		admin := entities.Actor{ID: "a-1", Name: "Chitra", Role: entities.RoleAdmin}
		token, err := middleware.GenerateToken("secret", admin, time.Hour)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		valuations.EXPECT().Permissions(gomock.Any(), "val-1", admin).
			Return(usecase.Permissions{Status: entities.ValuationStatusApproved, CanEdit: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/valuations/val-1/permissions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("static preview route wins over id", func(t *testing.T) {
		valuations.EXPECT().GenerateReport(gomock.Any(), "", gomock.Not(gomock.Nil())).Return([]byte("%PDF"), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/valuations/report/preview", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
