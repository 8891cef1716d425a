package entities

const (
	MinFiscalYear = 2000
	MaxFiscalYear = 2099
)

type FiscalYear int

func NewFiscalYear(year int) (FiscalYear, error) {
	if year < MinFiscalYear || year > MaxFiscalYear {
		return 0, ErrInvalidFiscalYear.Withf("fiscal year must be between %d and %d, got %d", MinFiscalYear, MaxFiscalYear, year)
	}
	return FiscalYear(year), nil
}

func (y FiscalYear) Int() int {
	return int(y)
}
