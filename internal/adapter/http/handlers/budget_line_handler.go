package handlers

import (
	"net/http"
	request "rubrox/internal/adapter/http/dto/request"
	response "rubrox/internal/adapter/http/dto/response"
	"rubrox/internal/adapter/http/middleware"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"rubrox/pkg"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetLinePayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_LINE_INPUT", "Invalid budget line payload", http.StatusBadRequest)
	errInvalidFiscalYearQuery   = pkg.NewDomainErrorSimple("INVALID_FISCAL_YEAR", "fiscal_year query parameter must be a year", http.StatusBadRequest)
)

// BudgetLineHandler handles HTTP requests for budget lines (rubros).
type BudgetLineHandler struct {
	usecase usecase.IBudgetLineUseCase
}

func NewBudgetLineHandler(uc usecase.IBudgetLineUseCase) *BudgetLineHandler {
	return &BudgetLineHandler{usecase: uc}
}

func (h *BudgetLineHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidBudgetLinePayload)
		return
	}

	line, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(middleware.UserID(c)))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetLine(line))
}

func (h *BudgetLineHandler) AssignBudget(c *gin.Context) {
	var payload request.AssignBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidBudgetLinePayload)
		return
	}

	line, err := h.usecase.AssignBudget(c.Request.Context(), c.Param("id"), *payload.Amount, middleware.UserID(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLine(line))
}

func (h *BudgetLineHandler) Close(c *gin.Context) {
	line, err := h.usecase.Close(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLine(line))
}

func (h *BudgetLineHandler) Block(c *gin.Context) {
	var payload request.BlockBudgetLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidBudgetLinePayload)
		return
	}

	line, err := h.usecase.Block(c.Request.Context(), c.Param("id"), payload.Reason, middleware.UserID(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLine(line))
}

func (h *BudgetLineHandler) GetByID(c *gin.Context) {
	line, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLine(line))
}

func (h *BudgetLineHandler) List(c *gin.Context) {
	year, ok := fiscalYearQuery(c)
	if !ok {
		return
	}
	state, ok := parseLineState(c.Query("state"))
	if !ok {
		abortWith(c, errInvalidQuery)
		return
	}

	lines, err := h.usecase.ListByFiscalYear(c.Request.Context(), year, state)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLines(lines))
}

func (h *BudgetLineHandler) ListChildren(c *gin.Context) {
	lines, err := h.usecase.ListChildren(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetLines(lines))
}

func (h *BudgetLineHandler) Hierarchy(c *gin.Context) {
	year, ok := fiscalYearQuery(c)
	if !ok {
		return
	}

	nodes, err := h.usecase.Hierarchy(c.Request.Context(), year)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromHierarchy(nodes))
}

func fiscalYearQuery(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("fiscal_year")))
	if err != nil {
		abortWith(c, errInvalidFiscalYearQuery)
		return 0, false
	}
	return year, true
}

// parseLineState accepts an empty filter as "any state".
func parseLineState(raw string) (entities.LineState, bool) {
	switch s := entities.LineState(strings.ToLower(strings.TrimSpace(raw))); s {
	case "", entities.LineStateActive, entities.LineStateClosed, entities.LineStateBlocked:
		return s, true
	default:
		return "", false
	}
}
