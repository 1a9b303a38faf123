package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	loanhandler "github.com/suvidhapay/wallet/internal/handler/loan"
	"github.com/suvidhapay/wallet/internal/handler/middleware"
	transactionhandler "github.com/suvidhapay/wallet/internal/handler/transaction"
	userhandler "github.com/suvidhapay/wallet/internal/handler/user"
	"github.com/suvidhapay/wallet/internal/postgres"
	"github.com/suvidhapay/wallet/internal/service"
	"github.com/suvidhapay/wallet/pkg/rest"
)

func (app *App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.WithAuth(app.Config))

	p := postgres.New(app.DB)

	userService := service.NewUserService(p, app.Config)
	userHandler := userhandler.New(userService)

	transactionService := service.NewTransactionService(p, p)
	transactionHandler := transactionhandler.New(transactionService)

	loanService := service.NewLoanService(p)
	loanHandler := loanhandler.New(loanService)

	r.Get("/health", app.health)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/profile/{id}", userHandler.Profile)
		r.Put("/profile/{id}", userHandler.UpdateProfile)
	})

	r.Route("/api/transactions", func(r chi.Router) {
		r.Post("/save", transactionHandler.Save)
		r.Get("/user/{userId}", transactionHandler.Transactions)
	})

	r.Route("/api/loans", func(r chi.Router) {
		r.Post("/request", loanHandler.Submit)
		r.Get("/user/{userId}", loanHandler.ByUser)
		r.Get("/statement/{requestId}", loanHandler.Statement)
		r.Delete("/cancel/{loanId}", loanHandler.Cancel)
	})

	return r
}

func (app *App) health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    app.Config.Env,
	})
}
