package request

import (
	"rubrox/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type RegisterCDPRequest struct {
	LineID  string           `json:"line_id" binding:"required"`
	Amount  *decimal.Decimal `json:"amount" binding:"required"`
	Concept string           `json:"concept" binding:"required"`
	DueDate *time.Time       `json:"due_date"`
}

func (r RegisterCDPRequest) ToCommand(userID string) usecase.RegisterCDPCommand {
	return usecase.RegisterCDPCommand{
		LineID:  r.LineID,
		Amount:  *r.Amount,
		Concept: r.Concept,
		UserID:  userID,
		DueDate: r.DueDate,
	}
}

type RegisterCRPRequest struct {
	CDPID   string           `json:"cdp_id" binding:"required"`
	Amount  *decimal.Decimal `json:"amount" binding:"required"`
	Concept string           `json:"concept" binding:"required"`
}

func (r RegisterCRPRequest) ToCommand(userID string) usecase.RegisterCRPCommand {
	return usecase.RegisterCRPCommand{
		CDPID:   r.CDPID,
		Amount:  *r.Amount,
		Concept: r.Concept,
		UserID:  userID,
	}
}

type AnnulMovementRequest struct {
	Reason string `json:"reason"`
}

// ExpireMovementsRequest lets operators replay a sweep at a given instant.
type ExpireMovementsRequest struct {
	Now *time.Time `json:"now"`
}
