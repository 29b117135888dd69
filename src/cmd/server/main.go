package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/controller"
	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/middleware"
	"github.com/api-sage/time-deposit-registry/src/internal/adapter/http/router"
	"github.com/api-sage/time-deposit-registry/src/internal/adapter/repository/postgres"
	"github.com/api-sage/time-deposit-registry/src/internal/config"
	"github.com/api-sage/time-deposit-registry/src/internal/usecase/service_interfaces"
	"github.com/api-sage/time-deposit-registry/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	log.Println("initial migrations completed successfully")

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	customerRepo := postgres.NewCustomerRepository(db)
	depositRepo := postgres.NewTimeDepositRepository(db)

	var timeDepositService service_interfaces.TimeDepositService = services.NewTimeDepositService(customerRepo, depositRepo)
	timeDepositController := controller.NewTimeDepositController(timeDepositService)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey, cfg.ChannelKeyHash)
	mux := router.New(timeDepositController, authMiddleware)

	log.Printf("time deposit registry listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
