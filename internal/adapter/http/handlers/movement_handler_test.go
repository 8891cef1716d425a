package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"rubrox/internal/adapter/http/handlers/mocks"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMovementHandler(t *testing.T) {
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	build := func(t *testing.T) (*gin.Engine, *mocks.MockIMovementUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIMovementUseCase(ctrl)
		h := NewMovementHandler(uc)
		h.now = func() time.Time { return fixed }
		r := newTestRouter()
		r.POST("/v1/movements/cdp", h.RegisterCDP)
		r.POST("/v1/movements/crp", h.RegisterCRP)
		r.POST("/v1/movements/expire", h.ExpireDue)
		r.POST("/v1/movements/:id/annul", h.Annul)
		r.GET("/v1/movements/:id", h.GetByID)
		r.GET("/v1/budget-lines/:id/movements", h.ListByLine)
		return r, uc
	}

	t.Run("cdp invalid payload", func(t *testing.T) {
		r, _ := build(t)
		w := doRequest(r, http.MethodPost, "/v1/movements/cdp", `{"line_id":"line-1"}`, "user-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cdp insufficient balance", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().RegisterCDP(gomock.Any(), gomock.Any()).
			Return(nil, &entities.InsufficientBalanceError{Available: entities.ZeroMoney(), Requested: entities.ZeroMoney()})

		w := doRequest(r, http.MethodPost, "/v1/movements/cdp", `{"line_id":"line-1","amount":300,"concept":"contract"}`, "user-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cdp success", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().RegisterCDP(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.RegisterCDPCommand) (*entities.Movement, error) {
				if cmd.UserID != "user-1" || cmd.DueDate == nil || cmd.Amount.String() != "300" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return testCDP(t), nil
			})

		w := doRequest(r, http.MethodPost, "/v1/movements/cdp",
			`{"line_id":"line-1","amount":"300","concept":"contract","due_date":"2025-12-31T00:00:00Z"}`, "user-1", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["numbering"] != "CDP-2025-0001" || body["amount"] != "300.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("crp exceeding the cdp", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().RegisterCRP(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrCRPExceedsCDP)

		w := doRequest(r, http.MethodPost, "/v1/movements/crp", `{"cdp_id":"cdp-1","amount":500,"concept":"invoice"}`, "user-1", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("annul", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Annul(gomock.Any(), "cdp-1", "cancelled contract", "user-1").Return(testCDP(t), nil)

		w := doRequest(r, http.MethodPost, "/v1/movements/cdp-1/annul", `{"reason":"cancelled contract"}`, "user-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("annul a crp", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Annul(gomock.Any(), "crp-1", "typo", "user-1").Return(nil, usecase.ErrMovementNotAnnullable)

		w := doRequest(r, http.MethodPost, "/v1/movements/crp-1/annul", `{"reason":"typo"}`, "user-1", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("expire defaults to now", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ExpireDue(gomock.Any(), fixed).Return(2, nil)

		w := doRequest(r, http.MethodPost, "/v1/movements/expire", "", "user-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["expired"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("expire at a given instant with partial failure", func(t *testing.T) {
		r, uc := build(t)
		at := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ExpireDue(gomock.Any(), at).Return(1, errors.New("one cdp failed"))

		w := doRequest(r, http.MethodPost, "/v1/movements/expire", `{"now":"2025-12-31T00:00:00Z"}`, "user-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expire failure", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ExpireDue(gomock.Any(), fixed).Return(0, errors.New("scan failed"))

		w := doRequest(r, http.MethodPost, "/v1/movements/expire", "", "user-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("get and list", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, usecase.ErrMovementNotFound)
		uc.EXPECT().ListByLine(gomock.Any(), "line-1").Return([]*entities.Movement{testCDP(t)}, nil)

		if w := doRequest(r, http.MethodGet, "/v1/movements/missing", "", "", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		w := doRequest(r, http.MethodGet, "/v1/budget-lines/line-1/movements", "", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
