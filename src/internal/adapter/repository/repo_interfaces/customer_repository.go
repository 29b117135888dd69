package repo_interfaces

import (
	"context"

	"github.com/api-sage/time-deposit-registry/src/internal/domain"
)

type CustomerRepository interface {
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Customer, error)
}
