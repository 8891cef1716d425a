package request

import (
	"rubrox/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateBudgetLineRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	FiscalYear    int    `json:"fiscal_year" binding:"required"`
	LineType      string `json:"line_type" binding:"required"`
	FundingSource string `json:"funding_source" binding:"required"`
	ParentID      string `json:"parent_id"`
}

func (r CreateBudgetLineRequest) ToCommand(userID string) usecase.CreateBudgetLineCommand {
	return usecase.CreateBudgetLineCommand{
		Code:          strings.TrimSpace(r.Code),
		Name:          r.Name,
		Description:   strings.TrimSpace(r.Description),
		FiscalYear:    r.FiscalYear,
		LineType:      r.LineType,
		FundingSource: r.FundingSource,
		ParentID:      strings.TrimSpace(r.ParentID),
		UserID:        userID,
	}
}

// AssignBudgetRequest accepts the amount as a JSON number or string.
type AssignBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type BlockBudgetLineRequest struct {
	Reason string `json:"reason"`
}
