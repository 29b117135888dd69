package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositStatusActive DepositStatus = "active"
)

// TimeDeposit is a single fixed-term deposit contract. ApplicationDate,
// MaturityDate, InterestEarned and Status are always system-computed; they
// are never taken from the caller. Records are immutable after creation.
type TimeDeposit struct {
	ID                   string
	CustomerID           string
	TransactionReference string
	Amount               decimal.Decimal
	InterestRate         decimal.Decimal
	TermDays             int
	ApplicationDate      time.Time
	MaturityDate         time.Time
	InterestEarned       decimal.Decimal
	Status               DepositStatus
	CreatedAt            time.Time
}

// DepositDetail is a time deposit joined with its owning customer, used by
// the reporting read path.
type DepositDetail struct {
	TimeDeposit
	AccountNumber string
	CustomerName  string
}
