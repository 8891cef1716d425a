package entities

import "strings"

// FundingSource is where the appropriation money comes from.
type FundingSource string

const (
	FundingSourceNation       FundingSource = "nation"
	FundingSourceOwnResources FundingSource = "own_resources"
	FundingSourceSGP          FundingSource = "sgp"
	FundingSourceSGR          FundingSource = "sgr"
	FundingSourceCredit       FundingSource = "credit"
	FundingSourceCofinancing  FundingSource = "cofinancing"
)

var fundingSources = map[FundingSource]struct{}{
	FundingSourceNation:       {},
	FundingSourceOwnResources: {},
	FundingSourceSGP:          {},
	FundingSourceSGR:          {},
	FundingSourceCredit:       {},
	FundingSourceCofinancing:  {},
}

func ParseFundingSource(s string) (FundingSource, error) {
	fs := FundingSource(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := fundingSources[fs]; !ok {
		return "", ErrInvalidFundingSource.Withf("invalid funding source %q", s)
	}
	return fs, nil
}
