package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/models"
	"github.com/api-sage/time-deposit-registry/src/internal/commons"
)

type TimeDepositService interface {
	RegisterDeposit(ctx context.Context, req models.RegisterDepositRequest) (commons.Response[models.RegistrationResponse], error)
	ListDeposits(ctx context.Context) (commons.Response[[]models.DepositDetailResponse], error)
}

type TimeDepositController struct {
	service TimeDepositService
}

func NewTimeDepositController(service TimeDepositService) *TimeDepositController {
	return &TimeDepositController{service: service}
}

func (c *TimeDepositController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.handleTimeDeposits)
	if authMiddleware != nil {
		handler = authMiddleware(handler).ServeHTTP
	}
	mux.Handle("/api/time-deposits", http.HandlerFunc(handler))
}

func (c *TimeDepositController) handleTimeDeposits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.registerDeposit(w, r)
	case http.MethodGet:
		c.listDeposits(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RegistrationResponse]("method not allowed"))
	}
}

func (c *TimeDepositController) registerDeposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.RegistrationResponse]("invalid request body", err.Error()))
		return
	}

	logRequest(r, req)

	response, err := c.service.RegisterDeposit(r.Context(), req)
	if err != nil {
		status := statusForRegistrationError(err, response.Message)
		logError(r, err, nil)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *TimeDepositController) listDeposits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListDeposits(r.Context())
	if err != nil {
		logError(r, err, nil)
		logResponse(r, http.StatusInternalServerError, response, start)
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

// Both domain conflicts map to 409: the account number is bound to another
// name, or an identical deposit was already registered today.
func statusForRegistrationError(err error, message string) int {
	if errors.Is(err, commons.ErrAccountConflict) || errors.Is(err, commons.ErrDuplicateDeposit) {
		return http.StatusConflict
	}
	if message == "validation failed" {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
