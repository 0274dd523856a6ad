package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/middleware"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/config"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/extlink"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

// Services bundles the service dependencies the router wires handlers to.
type Services struct {
	System    *service.SystemService
	User      *service.UserService
	Portfolio *service.PortfolioService
	Goal      *service.GoalService
	Atrq      *service.AtrqService
	Rule      *service.RuleService
	Field     *service.FieldService
	Breach    *service.BreachService
	Report    *service.ReportService
	ExtLink   *extlink.Service
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		userHandler := handlers.NewUserHandler(svcs.User)
		r.Get("/user", userHandler.CurrentUser)

		portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio, svcs.User)
		r.Route("/portfolios", func(r chi.Router) {
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)
		})

		goalHandler := handlers.NewGoalHandler(svcs.Goal, svcs.User)
		r.Get("/goals", goalHandler.Goal)

		atrqHandler := handlers.NewAtrqHandler(svcs.Atrq, svcs.User)
		r.Get("/atrq", atrqHandler.AtrqResult)

		ruleHandler := handlers.NewRuleHandler(svcs.Rule, svcs.User)
		r.Route("/suitability-rules", func(r chi.Router) {
			r.Get("/", ruleHandler.Rules)
			r.Post("/", ruleHandler.CreateRule)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", ruleHandler.UpdateRule)
				r.Delete("/", ruleHandler.DeleteRule)
			})
		})

		fieldHandler := handlers.NewFieldHandler(svcs.Field, svcs.User)
		r.Route("/monitoring-fields", func(r chi.Router) {
			r.Get("/", fieldHandler.Fields)
			r.Post("/", fieldHandler.CreateField)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", fieldHandler.UpdateField)
				r.Delete("/", fieldHandler.DeleteField)
			})
		})

		breachHandler := handlers.NewBreachHandler(svcs.Breach, svcs.User)
		r.Route("/portfolio-breaches", func(r chi.Router) {
			r.Get("/", breachHandler.Breaches)
			r.Post("/", breachHandler.CreateBreach)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", breachHandler.UpdateBreach)
				r.Delete("/", breachHandler.DeleteBreach)
			})
		})

		summaryHandler := handlers.NewSummaryHandler(svcs.Report)
		r.Post("/ai-summary", summaryHandler.Generate)

		extLinkHandler := handlers.NewExtLinkHandler(svcs.ExtLink)
		r.Get("/external-portfolio/link", extLinkHandler.Link)
	})

	return r
}
