package routes

import (
	"rubrox/internal/adapter/http/handlers"
	"rubrox/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgetLines   = "/budget-lines"
	PathMovements     = "/movements"
	PathApprovalFlows = "/approval-flows"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addBudgetLineRoutes(rg *gin.RouterGroup, h *handlers.BudgetLineHandler, mh *handlers.MovementHandler, fh *handlers.ApprovalFlowHandler) {
	lines := rg.Group(PathBudgetLines)
	{
		lines.GET("", h.List)
		lines.GET("/hierarchy", h.Hierarchy)
		lines.GET("/:id", h.GetByID)
		lines.GET("/:id/children", h.ListChildren)
		lines.GET("/:id/movements", mh.ListByLine)
		lines.GET("/:id/approval-flows", fh.ListByLine)
	}

	commands := rg.Group(PathBudgetLines, middleware.RequireUser())
	{
		commands.POST("", h.Create)
		commands.PUT("/:id/budget", h.AssignBudget)
		commands.POST("/:id/close", h.Close)
		commands.POST("/:id/block", h.Block)
	}
}

func addMovementRoutes(rg *gin.RouterGroup, h *handlers.MovementHandler) {
	movements := rg.Group(PathMovements)
	{
		movements.GET("/:id", h.GetByID)
	}

	commands := rg.Group(PathMovements, middleware.RequireUser())
	{
		commands.POST("/cdp", h.RegisterCDP)
		commands.POST("/crp", h.RegisterCRP)
		commands.POST("/expire", h.ExpireDue)
		commands.POST("/:id/annul", h.Annul)
	}
}

func addApprovalFlowRoutes(rg *gin.RouterGroup, h *handlers.ApprovalFlowHandler) {
	flows := rg.Group(PathApprovalFlows)
	{
		flows.GET("", h.ListByState)
		flows.GET("/:id", h.GetByID)
		flows.POST("", middleware.RequireUser(), h.Initiate)
	}

	actions := rg.Group(PathApprovalFlows, middleware.RequireUser(), middleware.RequireRole())
	{
		actions.GET("/inbox", h.Inbox)
		actions.POST("/:id/approve", h.Approve)
		actions.POST("/:id/reject", h.Reject)
		actions.POST("/:id/return", h.Return)
		actions.POST("/:id/execute", h.Execute)
	}
}
