package entities

import (
	"regexp"
	"strings"
)

// Two-digit chapter followed by up to three 2-4 digit segments, e.g. 01.01.1000.01.
var budgetCodePattern = regexp.MustCompile(`^\d{2}(\.\d{2,4}){0,3}$`)

// BudgetCode is the dotted hierarchical code of a budget line.
type BudgetCode struct {
	value string
}

func NewBudgetCode(raw string) (BudgetCode, error) {
	v := strings.TrimSpace(raw)
	if !budgetCodePattern.MatchString(v) {
		return BudgetCode{}, ErrInvalidBudgetCode.Withf("invalid budget code %q", raw)
	}
	return BudgetCode{value: v}, nil
}

func (c BudgetCode) String() string {
	return c.value
}

func (c BudgetCode) IsZero() bool {
	return c.value == ""
}

func (c BudgetCode) Equal(other BudgetCode) bool {
	return c.value == other.value
}

// Level is the number of segments.
func (c BudgetCode) Level() int {
	if c.value == "" {
		return 0
	}
	return strings.Count(c.value, ".") + 1
}

// Parent drops the last segment. Level 1 codes have no parent.
func (c BudgetCode) Parent() (BudgetCode, bool) {
	i := strings.LastIndex(c.value, ".")
	if i < 0 {
		return BudgetCode{}, false
	}
	return BudgetCode{value: c.value[:i]}, true
}
