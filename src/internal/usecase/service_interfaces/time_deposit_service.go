package service_interfaces

import (
	"context"

	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/models"
	"github.com/api-sage/time-deposit-registry/src/internal/commons"
)

type TimeDepositService interface {
	RegisterDeposit(ctx context.Context, req models.RegisterDepositRequest) (commons.Response[models.RegistrationResponse], error)
	ListDeposits(ctx context.Context) (commons.Response[[]models.DepositDetailResponse], error)
}
