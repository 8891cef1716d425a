package response

import (
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"time"
)

// Amounts are decimal strings with two places.
type BudgetLineResponse struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	FiscalYear       int       `json:"fiscal_year"`
	LineType         string    `json:"line_type"`
	FundingSource    string    `json:"funding_source"`
	InitialBalance   string    `json:"initial_balance"`
	CommittedBalance string    `json:"committed_balance"`
	ExecutedBalance  string    `json:"executed_balance"`
	AvailableBalance string    `json:"available_balance"`
	ExecutionPercent string    `json:"execution_percent"`
	State            string    `json:"state"`
	ParentID         string    `json:"parent_id,omitempty"`
	ChildIDs         []string  `json:"child_ids"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Version          int64     `json:"version"`
}

func FromBudgetLine(l *entities.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		ID:               l.ID(),
		Code:             l.Code().String(),
		Name:             l.Name(),
		Description:      l.Description(),
		FiscalYear:       l.FiscalYear().Int(),
		LineType:         string(l.LineType()),
		FundingSource:    string(l.FundingSource()),
		InitialBalance:   l.Initial().String(),
		CommittedBalance: l.Committed().String(),
		ExecutedBalance:  l.Executed().String(),
		AvailableBalance: l.Available().String(),
		ExecutionPercent: l.ExecutionPercent().StringFixed(2),
		State:            string(l.State()),
		ParentID:         l.ParentID(),
		ChildIDs:         l.ChildIDs(),
		CreatedBy:        l.CreatedBy(),
		CreatedAt:        l.CreatedAt(),
		UpdatedAt:        l.UpdatedAt(),
		Version:          l.Version(),
	}
}

func FromBudgetLines(lines []*entities.BudgetLine) []BudgetLineResponse {
	out := make([]BudgetLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromBudgetLine(l))
	}
	return out
}

type LineNodeResponse struct {
	BudgetLineResponse
	Children []LineNodeResponse `json:"children"`
}

func FromHierarchy(nodes []*usecase.LineNode) []LineNodeResponse {
	out := make([]LineNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, LineNodeResponse{
			BudgetLineResponse: FromBudgetLine(n.Line),
			Children:           FromHierarchy(n.Children),
		})
	}
	return out
}
