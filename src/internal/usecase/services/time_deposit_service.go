package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/models"
	"github.com/api-sage/time-deposit-registry/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/time-deposit-registry/src/internal/commons"
	"github.com/api-sage/time-deposit-registry/src/internal/domain"
	"github.com/api-sage/time-deposit-registry/src/internal/logger"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

// registrationAttempts bounds the retry loop that closes the find-or-create
// race on customers.account_number.
const registrationAttempts = 3

type TimeDepositService struct {
	customerRepo repo_interfaces.CustomerRepository
	depositRepo  repo_interfaces.TimeDepositRepository
}

func NewTimeDepositService(
	customerRepo repo_interfaces.CustomerRepository,
	depositRepo repo_interfaces.TimeDepositRepository,
) *TimeDepositService {
	return &TimeDepositService{
		customerRepo: customerRepo,
		depositRepo:  depositRepo,
	}
}

func (s *TimeDepositService) RegisterDeposit(ctx context.Context, req models.RegisterDepositRequest) (commons.Response[models.RegistrationResponse], error) {
	logger.Info("time deposit service register deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("time deposit service register deposit validation failed", err, nil)
		return commons.ErrorResponse[models.RegistrationResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	// Name comparison against the stored customer is exact, so the request
	// value is carried through untouched.
	customerName := req.CustomerName

	var customer domain.Customer
	var err error
	for attempt := 0; attempt < registrationAttempts; attempt++ {
		customer, _, err = s.registerOnce(ctx, accountNumber, customerName, req)
		if err == nil || !isUniqueViolation(err) {
			break
		}
		// A concurrent registration created the customer first; resolve
		// again so the stored name is checked against this request.
		logger.Info("time deposit service retrying after concurrent customer creation", logger.Fields{
			"accountNumber": accountNumber,
			"attempt":       attempt + 1,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, commons.ErrAccountConflict):
			return commons.ErrorResponse[models.RegistrationResponse]("Account Already Exists", err.Error()), err
		case errors.Is(err, commons.ErrDuplicateDeposit):
			return commons.ErrorResponse[models.RegistrationResponse]("Duplicate Deposit", err.Error()), err
		}
		logger.Error("time deposit service register deposit failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.RegistrationResponse]("failed to register deposit", "Unable to register deposit right now"), err
	}

	deposits, err := s.depositRepo.ListByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("time deposit service list customer deposits failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.RegistrationResponse]("failed to register deposit", "Unable to register deposit right now"), err
	}

	depositResponses := make([]models.TimeDepositResponse, 0, len(deposits))
	for _, deposit := range deposits {
		depositResponses = append(depositResponses, convertToResponse(deposit))
	}

	response := models.RegistrationResponse{
		Customer: models.CustomerInfo{
			ID:            customer.ID,
			AccountNumber: customer.AccountNumber,
			CustomerName:  customer.CustomerName,
		},
		Deposits: depositResponses,
	}

	logger.Info("time deposit service register deposit success", logger.Fields{
		"customerId":    customer.ID,
		"accountNumber": customer.AccountNumber,
		"depositCount":  len(depositResponses),
	})

	return commons.SuccessResponse("time deposit registered successfully", response), nil
}

// registerOnce runs one pass of resolve, duplicate guard, schedule
// computation and atomic persist. A unique violation means the customer was
// created concurrently between the lookup and the insert; the caller retries.
func (s *TimeDepositService) registerOnce(ctx context.Context, accountNumber string, customerName string, req models.RegisterDepositRequest) (domain.Customer, domain.TimeDeposit, error) {
	customer, err := s.customerRepo.GetByAccountNumber(ctx, accountNumber)
	existing := true
	if err != nil {
		if !errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Customer{}, domain.TimeDeposit{}, err
		}
		existing = false
		customer = domain.Customer{
			AccountNumber: accountNumber,
			CustomerName:  customerName,
		}
	}

	applicationDate := today()

	if existing {
		if customer.CustomerName != customerName {
			return domain.Customer{}, domain.TimeDeposit{}, commons.ErrAccountConflict
		}

		// A brand-new customer cannot have a prior same-day deposit, so the
		// guard only runs for customers that already existed.
		deposits, err := s.depositRepo.ListByAccountNumber(ctx, accountNumber)
		if err != nil {
			return domain.Customer{}, domain.TimeDeposit{}, err
		}
		for _, deposit := range deposits {
			if deposit.Amount.Equal(req.Amount) &&
				deposit.InterestRate.Equal(req.InterestRate) &&
				deposit.TermDays == req.TermDays &&
				sameDate(deposit.ApplicationDate, applicationDate) {
				logger.Info("time deposit service duplicate deposit detected", logger.Fields{
					"accountNumber": accountNumber,
				})
				return domain.Customer{}, domain.TimeDeposit{}, commons.ErrDuplicateDeposit
			}
		}
	}

	maturityDate, interestEarned := ComputeSchedule(req.Amount, req.InterestRate, req.TermDays, applicationDate)

	deposit := domain.TimeDeposit{
		TransactionReference: uuid.NewString(),
		Amount:               req.Amount,
		InterestRate:         req.InterestRate,
		TermDays:             req.TermDays,
		ApplicationDate:      applicationDate,
		MaturityDate:         maturityDate,
		InterestEarned:       interestEarned,
		Status:               domain.DepositStatusActive,
	}

	return s.depositRepo.SaveRegistration(ctx, customer, deposit)
}

func (s *TimeDepositService) ListDeposits(ctx context.Context) (commons.Response[[]models.DepositDetailResponse], error) {
	logger.Info("time deposit service list deposits request", nil)

	details, err := s.depositRepo.ListAllWithCustomer(ctx)
	if err != nil {
		logger.Error("time deposit service list deposits failed", err, nil)
		return commons.ErrorResponse[[]models.DepositDetailResponse]("failed to list deposits", "Unable to fetch deposits right now"), err
	}

	responses := make([]models.DepositDetailResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, models.DepositDetailResponse{
			ID:                   detail.ID,
			AccountNumber:        detail.AccountNumber,
			CustomerName:         detail.CustomerName,
			TransactionReference: detail.TransactionReference,
			Amount:               detail.Amount.StringFixed(2),
			InterestRate:         detail.InterestRate.StringFixed(2),
			TermDays:             detail.TermDays,
			ApplicationDate:      detail.ApplicationDate.Format(dateLayout),
			MaturityDate:         detail.MaturityDate.Format(dateLayout),
			InterestEarned:       detail.InterestEarned.StringFixed(2),
			Status:               string(detail.Status),
		})
	}

	logger.Info("time deposit service list deposits success", logger.Fields{
		"depositCount": len(responses),
	})

	return commons.SuccessResponse("time deposits fetched successfully", responses), nil
}

func convertToResponse(deposit domain.TimeDeposit) models.TimeDepositResponse {
	return models.TimeDepositResponse{
		ID:                       deposit.ID,
		TransactionReference:     deposit.TransactionReference,
		Amount:                   deposit.Amount.StringFixed(2),
		InterestRate:             deposit.InterestRate.StringFixed(2),
		TermDays:                 deposit.TermDays,
		ApplicationDate:          deposit.ApplicationDate.Format(dateLayout),
		MaturityDate:             deposit.MaturityDate.Format(dateLayout),
		InterestEarned:           deposit.InterestEarned.StringFixed(2),
		Status:                   string(deposit.Status),
		FormattedApplicationDate: deposit.ApplicationDate.Format(dateLayout),
		FormattedMaturityDate:    deposit.MaturityDate.Format(dateLayout),
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
