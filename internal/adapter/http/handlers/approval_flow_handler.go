package handlers

import (
	"context"
	"net/http"
	request "rubrox/internal/adapter/http/dto/request"
	response "rubrox/internal/adapter/http/dto/response"
	"rubrox/internal/adapter/http/middleware"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"rubrox/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFlowPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_FLOW_INPUT", "Invalid approval flow payload", http.StatusBadRequest)

type flowAction func(ctx context.Context, flowID, approverID, role, text string) (*entities.ApprovalFlow, error)

// ApprovalFlowHandler handles the multi-step approval workflow. Actor id and
// role come from the identity middleware.
type ApprovalFlowHandler struct {
	usecase usecase.IApprovalFlowUseCase
}

func NewApprovalFlowHandler(uc usecase.IApprovalFlowUseCase) *ApprovalFlowHandler {
	return &ApprovalFlowHandler{usecase: uc}
}

func (h *ApprovalFlowHandler) Initiate(c *gin.Context) {
	var payload request.InitiateFlowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidFlowPayload)
		return
	}

	flow, err := h.usecase.Initiate(c.Request.Context(), payload.ToCommand(middleware.UserID(c)))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromApprovalFlow(flow))
}

func (h *ApprovalFlowHandler) Approve(c *gin.Context) {
	h.decide(c, h.usecase.Approve)
}

func (h *ApprovalFlowHandler) Reject(c *gin.Context) {
	h.decide(c, h.usecase.Reject)
}

func (h *ApprovalFlowHandler) Return(c *gin.Context) {
	h.decide(c, h.usecase.Return)
}

// Execute replays the gated action of an approved flow whose action failed.
func (h *ApprovalFlowHandler) Execute(c *gin.Context) {
	flow, err := h.usecase.ExecuteAction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlow(flow))
}

func (h *ApprovalFlowHandler) decide(c *gin.Context, action flowAction) {
	var payload request.FlowDecisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidFlowPayload)
			return
		}
	}

	flow, err := action(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.UserRole(c), payload.Text())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlow(flow))
}

// Inbox lists the flows waiting on the caller's role.
func (h *ApprovalFlowHandler) Inbox(c *gin.Context) {
	flows, err := h.usecase.Inbox(c.Request.Context(), middleware.UserRole(c))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlows(flows))
}

func (h *ApprovalFlowHandler) GetByID(c *gin.Context) {
	flow, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlow(flow))
}

func (h *ApprovalFlowHandler) ListByState(c *gin.Context) {
	flows, err := h.usecase.ListByState(c.Request.Context(), c.Query("state"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlows(flows))
}

func (h *ApprovalFlowHandler) ListByLine(c *gin.Context) {
	flows, err := h.usecase.ListByLine(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalFlows(flows))
}
