package repo_interfaces

import (
	"context"

	"github.com/api-sage/time-deposit-registry/src/internal/domain"
)

type TimeDepositRepository interface {
	// SaveRegistration persists the registration as one transaction: the
	// customer insert (only when customer.ID is empty) and the deposit
	// insert commit or roll back together.
	SaveRegistration(ctx context.Context, customer domain.Customer, deposit domain.TimeDeposit) (domain.Customer, domain.TimeDeposit, error)
	ListByAccountNumber(ctx context.Context, accountNumber string) ([]domain.TimeDeposit, error)
	ListAllWithCustomer(ctx context.Context) ([]domain.DepositDetail, error)
}
