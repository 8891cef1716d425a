package response

import (
	"rubrox/internal/domain/entities"
	"time"
)

type MovementResponse struct {
	ID           string     `json:"id"`
	LineID       string     `json:"line_id"`
	Type         string     `json:"type"`
	Amount       string     `json:"amount"`
	Concept      string     `json:"concept"`
	Numbering    string     `json:"numbering"`
	UserID       string     `json:"user_id"`
	ParentID     string     `json:"parent_id,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	State        string     `json:"state"`
	Observation  string     `json:"observation,omitempty"`
	Version      int64      `json:"version"`
}

func FromMovement(m *entities.Movement) MovementResponse {
	return MovementResponse{
		ID:           m.ID(),
		LineID:       m.LineID(),
		Type:         string(m.Type()),
		Amount:       m.Amount().String(),
		Concept:      m.Concept(),
		Numbering:    m.Numbering(),
		UserID:       m.UserID(),
		ParentID:     m.ParentID(),
		RegisteredAt: m.RegisteredAt(),
		DueDate:      m.DueDate(),
		State:        string(m.State()),
		Observation:  m.Observation(),
		Version:      m.Version(),
	}
}

func FromMovements(ms []*entities.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMovement(m))
	}
	return out
}

type ExpireMovementsResponse struct {
	Expired int       `json:"expired"`
	At      time.Time `json:"at"`
}
