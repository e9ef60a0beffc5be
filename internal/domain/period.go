package domain

import "errors"

var ErrInvalidPeriod = errors.New("invalid period")

type Period string

const (
	Daily   Period = "diario"
	Monthly Period = "mensal"
	Annual  Period = "anual"
)

const (
	DaysPerMonth  = 30
	MonthsPerYear = 12
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Monthly, Annual:
		return p, nil
	}
	return "", ErrInvalidPeriod
}

// Scale converts a daily consumption into the period's consumption.
// Annual compounds the monthly figure (30 * 12 days).
func (p Period) Scale(daily float64) float64 {
	switch p {
	case Monthly:
		return daily * DaysPerMonth
	case Annual:
		return daily * DaysPerMonth * MonthsPerYear
	}
	return daily
}

// Rate picks the tariff rate matching the period. A nil tariff has rate 0.
func (p Period) Rate(t *Tariff) float64 {
	if t == nil {
		return 0
	}
	switch p {
	case Monthly:
		return t.MonthlyRate
	case Annual:
		return t.AnnualRate
	}
	return t.DailyRate
}
