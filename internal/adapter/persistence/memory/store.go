// Package memory keeps every aggregate in process memory. It backs local
// runs and tests with the same transactional guarantees as DynamoDB.
package memory

import (
	"rubrox/internal/domain/entities"
	"strconv"
	"sync"
)

// Store holds aggregate snapshots. Reads rehydrate fresh aggregates so
// callers never share state with the store.
type Store struct {
	mu        sync.RWMutex
	lines     map[string]entities.BudgetLineSnapshot
	movements map[string]entities.MovementSnapshot
	flows     map[string]entities.ApprovalFlowSnapshot
	// unique keys: budget code per year and movement numbering
	codes     map[string]string
	numbers   map[string]string
	sequences map[string]int64
}

func NewStore() *Store {
	return &Store{
		lines:     map[string]entities.BudgetLineSnapshot{},
		movements: map[string]entities.MovementSnapshot{},
		flows:     map[string]entities.ApprovalFlowSnapshot{},
		codes:     map[string]string{},
		numbers:   map[string]string{},
		sequences: map[string]int64{},
	}
}

func codeKey(code string, year int) string {
	return code + "#" + strconv.Itoa(year)
}
