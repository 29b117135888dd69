package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var minAmount = decimal.RequireFromString("100.00")
var minRate = decimal.RequireFromString("0.01")
var maxRate = decimal.RequireFromString("20.00")

type RegisterDepositRequest struct {
	AccountNumber string          `json:"accountNumber"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	TermDays      int             `json:"termDays"`
}

func (r RegisterDepositRequest) Validate() error {
	var errs []string

	accountNumber := strings.TrimSpace(r.AccountNumber)
	if accountNumber == "" {
		errs = append(errs, "accountNumber is required")
	} else if len(accountNumber) < 8 || len(accountNumber) > 20 {
		errs = append(errs, "accountNumber must be between 8 and 20 characters")
	} else if !isDigitsOnly(accountNumber) {
		errs = append(errs, "accountNumber must contain only digits")
	}

	customerName := strings.TrimSpace(r.CustomerName)
	if customerName == "" {
		errs = append(errs, "customerName is required")
	} else if len(customerName) < 2 || len(customerName) > 100 {
		errs = append(errs, "customerName must be between 2 and 100 characters")
	}

	if r.Amount.LessThan(minAmount) {
		errs = append(errs, "amount must be at least 100.00")
	}
	if r.Amount.Exponent() < -2 {
		errs = append(errs, "amount must have at most 2 decimal places")
	}

	if r.InterestRate.LessThan(minRate) {
		errs = append(errs, "interestRate must be at least 0.01")
	}
	if r.InterestRate.GreaterThan(maxRate) {
		errs = append(errs, "interestRate cannot exceed 20.00")
	}
	if r.InterestRate.Exponent() < -2 {
		errs = append(errs, "interestRate must have at most 2 decimal places")
	}

	if r.TermDays < 30 {
		errs = append(errs, "termDays must be at least 30")
	}
	if r.TermDays > 3650 {
		errs = append(errs, "termDays cannot exceed 3650")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func isDigitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

type CustomerInfo struct {
	ID            string `json:"id"`
	AccountNumber string `json:"accountNumber"`
	CustomerName  string `json:"customerName"`
}

type TimeDepositResponse struct {
	ID                       string `json:"id"`
	TransactionReference     string `json:"transactionReference"`
	Amount                   string `json:"amount"`
	InterestRate             string `json:"interestRate"`
	TermDays                 int    `json:"termDays"`
	ApplicationDate          string `json:"applicationDate"`
	MaturityDate             string `json:"maturityDate"`
	InterestEarned           string `json:"interestEarned"`
	Status                   string `json:"status"`
	FormattedApplicationDate string `json:"formattedApplicationDate"`
	FormattedMaturityDate    string `json:"formattedMaturityDate"`
}

type RegistrationResponse struct {
	Customer CustomerInfo          `json:"customer"`
	Deposits []TimeDepositResponse `json:"deposits"`
}

type DepositDetailResponse struct {
	ID                   string `json:"id"`
	AccountNumber        string `json:"accountNumber"`
	CustomerName         string `json:"customerName"`
	TransactionReference string `json:"transactionReference"`
	Amount               string `json:"amount"`
	InterestRate         string `json:"interestRate"`
	TermDays             int    `json:"termDays"`
	ApplicationDate      string `json:"applicationDate"`
	MaturityDate         string `json:"maturityDate"`
	InterestEarned       string `json:"interestEarned"`
	Status               string `json:"status"`
}
