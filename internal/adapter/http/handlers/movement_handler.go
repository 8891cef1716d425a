package handlers

import (
	"net/http"
	request "rubrox/internal/adapter/http/dto/request"
	response "rubrox/internal/adapter/http/dto/response"
	"rubrox/internal/adapter/http/middleware"
	"rubrox/internal/usecase"
	"rubrox/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

var errInvalidMovementPayload = pkg.NewDomainErrorSimple("INVALID_MOVEMENT_INPUT", "Invalid movement payload", http.StatusBadRequest)

// MovementHandler handles CDP/CRP registration, annulment and expiry.
type MovementHandler struct {
	usecase usecase.IMovementUseCase
	now     func() time.Time
}

func NewMovementHandler(uc usecase.IMovementUseCase) *MovementHandler {
	return &MovementHandler{usecase: uc, now: time.Now}
}

func (h *MovementHandler) RegisterCDP(c *gin.Context) {
	var payload request.RegisterCDPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidMovementPayload)
		return
	}

	cdp, err := h.usecase.RegisterCDP(c.Request.Context(), payload.ToCommand(middleware.UserID(c)))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromMovement(cdp))
}

func (h *MovementHandler) RegisterCRP(c *gin.Context) {
	var payload request.RegisterCRPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidMovementPayload)
		return
	}

	crp, err := h.usecase.RegisterCRP(c.Request.Context(), payload.ToCommand(middleware.UserID(c)))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromMovement(crp))
}

func (h *MovementHandler) Annul(c *gin.Context) {
	var payload request.AnnulMovementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidMovementPayload)
		return
	}

	m, err := h.usecase.Annul(c.Request.Context(), c.Param("id"), payload.Reason, middleware.UserID(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMovement(m))
}

// ExpireDue runs the expiry sweep. An empty body sweeps at the current time.
func (h *MovementHandler) ExpireDue(c *gin.Context) {
	var payload request.ExpireMovementsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidMovementPayload)
			return
		}
	}
	at := h.now().UTC()
	if payload.Now != nil {
		at = payload.Now.UTC()
	}

	expired, err := h.usecase.ExpireDue(c.Request.Context(), at)
	if err != nil && expired == 0 {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.ExpireMovementsResponse{Expired: expired, At: at})
}

func (h *MovementHandler) GetByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMovement(m))
}

func (h *MovementHandler) ListByLine(c *gin.Context) {
	ms, err := h.usecase.ListByLine(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMovements(ms))
}
