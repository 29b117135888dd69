package services

import (
	"time"

	"github.com/shopspring/decimal"
)

var percentDivisor = decimal.NewFromInt(100)
var daysPerYear = decimal.NewFromInt(365)

// ComputeSchedule derives the maturity date and simple interest for a term
// deposit. Maturity is the application date plus the term in calendar days.
// The rate division is carried at 10 fractional digits before the final
// half-up rounding of the interest to 2 decimal places.
func ComputeSchedule(principal decimal.Decimal, annualRatePercent decimal.Decimal, termDays int, applicationDate time.Time) (time.Time, decimal.Decimal) {
	maturityDate := applicationDate.AddDate(0, 0, termDays)

	rate := annualRatePercent.DivRound(percentDivisor, 10)
	interestEarned := principal.
		Mul(rate).
		Mul(decimal.NewFromInt(int64(termDays))).
		DivRound(daysPerYear, 2)

	return maturityDate, interestEarned
}
