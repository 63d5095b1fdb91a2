package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"maisquecafe-painel/internal/domain/entities"
	mock_interfaces "maisquecafe-painel/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatusHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("health is always ok", func(t *testing.T) {
		h := NewStatusHandler(nil)
		r := gin.New()
		r.GET("/v1/health", h.Health)

		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.OK {
			t.Fatalf("expected ok")
		}
	})

	t.Run("remote probe up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mock_interfaces.NewMockIStatusAPI(ctrl)
		status.EXPECT().Status(gomock.Any()).Return(entities.StatusAPI{OK: true, Time: "2026-08-28T12:00:00Z"}, nil)

		h := NewStatusHandler(status)
		r := gin.New()
		r.GET("/v1/status", h.StatusRemoto)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remote probe down still answers 200 with ok false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mock_interfaces.NewMockIStatusAPI(ctrl)
		status.EXPECT().Status(gomock.Any()).Return(entities.StatusAPI{}, errors.New("connection refused"))

		h := NewStatusHandler(status)
		r := gin.New()
		r.GET("/v1/status", h.StatusRemoto)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.OK {
			t.Fatalf("expected ok=false when the remote is down")
		}
	})
}
