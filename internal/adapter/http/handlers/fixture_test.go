package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"rubrox/internal/adapter/http/middleware"
	"rubrox/internal/domain/entities"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	return r
}

func doRequest(r *gin.Engine, method, path, body, user, role string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testLine(t *testing.T, code string) *entities.BudgetLine {
	t.Helper()
	c, err := entities.NewBudgetCode(code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, err := entities.NewBudgetLine(c, "Salaries", "", 2025, entities.LineTypeOperating, entities.FundingSourceNation, "", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return l
}

func testCDP(t *testing.T) *entities.Movement {
	t.Helper()
	amount, err := entities.NewMoneyFromString("300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := entities.NewMovement("line-1", entities.MovementTypeCDP, amount, "contract", "CDP-2025-0001", "user-1", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func testFlow(t *testing.T) *entities.ApprovalFlow {
	t.Helper()
	f, err := entities.NewApprovalFlow(entities.FlowTypeCDPRegistration, "user-1", `{"line_id":"line-1"}`,
		[]string{"analista", "ordenador_gasto"}, "line-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}
