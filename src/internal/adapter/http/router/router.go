package router

import "net/http"

type TimeDepositRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	timeDepositController TimeDepositRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if timeDepositController != nil {
		timeDepositController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
