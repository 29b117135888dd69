package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/time-deposit-registry/src/internal/domain"
	"github.com/api-sage/time-deposit-registry/src/internal/logger"
)

type TimeDepositRepository struct {
	db *sql.DB
}

func NewTimeDepositRepository(db *sql.DB) *TimeDepositRepository {
	return &TimeDepositRepository{db: db}
}

// SaveRegistration inserts the deposit, and the customer first when it has
// no ID yet, inside a single transaction. A unique violation on
// customers.account_number surfaces to the caller with nothing committed.
func (r *TimeDepositRepository) SaveRegistration(ctx context.Context, customer domain.Customer, deposit domain.TimeDeposit) (domain.Customer, domain.TimeDeposit, error) {
	logger.Info("time deposit repository save registration", logger.Fields{
		"accountNumber":        customer.AccountNumber,
		"newCustomer":          customer.ID == "",
		"transactionReference": deposit.TransactionReference,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("time deposit repository begin tx failed", err, nil)
		return domain.Customer{}, domain.TimeDeposit{}, fmt.Errorf("begin registration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if customer.ID == "" {
		const customerQuery = `
INSERT INTO customers (account_number, customer_name)
VALUES ($1, $2)
RETURNING id, created_at`

		if err = tx.QueryRowContext(
			ctx,
			customerQuery,
			customer.AccountNumber,
			customer.CustomerName,
		).Scan(&customer.ID, &customer.CreatedAt); err != nil {
			logger.Error("time deposit repository create customer failed", err, logger.Fields{
				"accountNumber": customer.AccountNumber,
			})
			return domain.Customer{}, domain.TimeDeposit{}, fmt.Errorf("create customer: %w", err)
		}
	}

	const depositQuery = `
INSERT INTO time_deposits (
	customer_id,
	transaction_reference,
	amount,
	interest_rate,
	term_days,
	application_date,
	maturity_date,
	interest_earned,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at`

	deposit.CustomerID = customer.ID
	var createdAt time.Time
	var id string
	if err = tx.QueryRowContext(
		ctx,
		depositQuery,
		deposit.CustomerID,
		deposit.TransactionReference,
		deposit.Amount,
		deposit.InterestRate,
		deposit.TermDays,
		deposit.ApplicationDate,
		deposit.MaturityDate,
		deposit.InterestEarned,
		deposit.Status,
	).Scan(&id, &createdAt); err != nil {
		logger.Error("time deposit repository create deposit failed", err, logger.Fields{
			"accountNumber":        customer.AccountNumber,
			"transactionReference": deposit.TransactionReference,
		})
		return domain.Customer{}, domain.TimeDeposit{}, fmt.Errorf("create time deposit: %w", err)
	}

	deposit.ID = id
	deposit.CreatedAt = createdAt

	if err = tx.Commit(); err != nil {
		logger.Error("time deposit repository commit failed", err, logger.Fields{
			"accountNumber": customer.AccountNumber,
		})
		return domain.Customer{}, domain.TimeDeposit{}, fmt.Errorf("commit registration transaction: %w", err)
	}

	logger.Info("time deposit repository save registration success", logger.Fields{
		"customerId":    customer.ID,
		"depositId":     deposit.ID,
		"accountNumber": customer.AccountNumber,
	})

	return customer, deposit, nil
}

func (r *TimeDepositRepository) ListByAccountNumber(ctx context.Context, accountNumber string) ([]domain.TimeDeposit, error) {
	logger.Info("time deposit repository list by account number", logger.Fields{
		"accountNumber": accountNumber,
	})

	const query = `
SELECT d.id, d.customer_id, d.transaction_reference, d.amount, d.interest_rate,
       d.term_days, d.application_date, d.maturity_date, d.interest_earned,
       d.status, d.created_at
FROM time_deposits d
JOIN customers c ON c.id = d.customer_id
WHERE c.account_number = $1`

	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		logger.Error("time deposit repository list by account number failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, fmt.Errorf("list time deposits by account number: %w", err)
	}
	defer rows.Close()

	deposits := make([]domain.TimeDeposit, 0)
	for rows.Next() {
		var deposit domain.TimeDeposit
		if err := rows.Scan(
			&deposit.ID,
			&deposit.CustomerID,
			&deposit.TransactionReference,
			&deposit.Amount,
			&deposit.InterestRate,
			&deposit.TermDays,
			&deposit.ApplicationDate,
			&deposit.MaturityDate,
			&deposit.InterestEarned,
			&deposit.Status,
			&deposit.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time deposit row: %w", err)
		}
		deposits = append(deposits, deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time deposit rows: %w", err)
	}

	return deposits, nil
}

func (r *TimeDepositRepository) ListAllWithCustomer(ctx context.Context) ([]domain.DepositDetail, error) {
	logger.Info("time deposit repository list all with customer", nil)

	const query = `
SELECT d.id, d.customer_id, d.transaction_reference, d.amount, d.interest_rate,
       d.term_days, d.application_date, d.maturity_date, d.interest_earned,
       d.status, d.created_at, c.account_number, c.customer_name
FROM time_deposits d
JOIN customers c ON c.id = d.customer_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("time deposit repository list all failed", err, nil)
		return nil, fmt.Errorf("list all time deposits: %w", err)
	}
	defer rows.Close()

	details := make([]domain.DepositDetail, 0)
	for rows.Next() {
		var detail domain.DepositDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.CustomerID,
			&detail.TransactionReference,
			&detail.Amount,
			&detail.InterestRate,
			&detail.TermDays,
			&detail.ApplicationDate,
			&detail.MaturityDate,
			&detail.InterestEarned,
			&detail.Status,
			&detail.CreatedAt,
			&detail.AccountNumber,
			&detail.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan time deposit detail row: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time deposit detail rows: %w", err)
	}

	return details, nil
}
