package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spendlite/spendlite-backend/internal/handlers"
	"github.com/spendlite/spendlite-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	ush := handlers.NewUserHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	cth := handlers.NewCategoryHandlers(deps)
	rph := handlers.NewReportHandlers(deps)

	auth := middleware.NewMiddleware(deps.Firebase)

	// everything below requires a verified Firebase ID token
	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)

		r.Mount("/users", ush.UserRoutes())
		r.Mount("/transactions", txh.TransactionRoutes())
		r.Mount("/categories", cth.CategoryRoutes())
		r.Mount("/reports", rph.ReportRoutes())
	})

	return r
}
