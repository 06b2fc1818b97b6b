package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spendlite/spendlite-backend/internal/bootstrap"
	"github.com/spendlite/spendlite-backend/internal/config"
	"github.com/spendlite/spendlite-backend/internal/handlers"
	"github.com/spendlite/spendlite-backend/internal/response"
	"github.com/spendlite/spendlite-backend/internal/router"
	"github.com/spendlite/spendlite-backend/internal/services"
	"github.com/spendlite/spendlite-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	tserv := services.NewTransactionService(tstore)
	cserv := services.NewCategoryService(tstore, ustore)
	rserv := services.NewReportService(tstore)

	// response handler
	rh := response.New()

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.CategorySvc = cserv
	deps.ReportSvc = rserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
