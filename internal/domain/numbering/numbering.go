// Package numbering builds movement numbers of the form PREFIX-YEAR-NNNN.
//
// The sequence comes from an atomic counter keyed by (prefix, fiscal year),
// see interfaces.ISequence.
package numbering

import (
	"fmt"
	"rubrox/internal/domain/entities"
)

func Prefix(t entities.MovementType) string {
	switch t {
	case entities.MovementTypeCDP:
		return "CDP"
	case entities.MovementTypeCRP:
		return "CRP"
	case entities.MovementTypePayment:
		return "PAG"
	case entities.MovementTypeReduction:
		return "RED"
	case entities.MovementTypeTransfer:
		return "TRX"
	default:
		return "MOV"
	}
}

// Key is the counter key shared by every movement type with the same prefix in a year.
func Key(t entities.MovementType, year entities.FiscalYear) string {
	return fmt.Sprintf("%s-%d", Prefix(t), year.Int())
}

// Format renders the movement number for seq. Sequences start at 1 and are
// zero padded to four digits; larger values keep all their digits.
func Format(t entities.MovementType, year entities.FiscalYear, seq int64) (string, error) {
	if seq < 1 {
		return "", entities.ErrInvalidSequence.Withf("sequence %d out of range for %s", seq, Key(t, year))
	}
	return fmt.Sprintf("%s-%d-%04d", Prefix(t), year.Int(), seq), nil
}
