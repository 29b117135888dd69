package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/time-deposit-registry/src/internal/commons"
	"github.com/api-sage/time-deposit-registry/src/internal/domain"
	"github.com/api-sage/time-deposit-registry/src/internal/logger"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Customer, error) {
	logger.Info("customer repository get by account number", logger.Fields{
		"accountNumber": accountNumber,
	})

	const query = `
SELECT id, account_number, customer_name, created_at
FROM customers
WHERE account_number = $1`

	var customer domain.Customer
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(
		&customer.ID,
		&customer.AccountNumber,
		&customer.CustomerName,
		&customer.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("customer repository record not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return domain.Customer{}, commons.ErrRecordNotFound
		}
		logger.Error("customer repository get failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Customer{}, fmt.Errorf("get customer by account number: %w", err)
	}

	logger.Info("customer repository get success", logger.Fields{
		"customerId":    customer.ID,
		"accountNumber": customer.AccountNumber,
	})

	return customer, nil
}
