package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/trash2cash/trash2cash/docs"
	authhandlers "github.com/trash2cash/trash2cash/internal/handlers/auth"
	leaderboardhandlers "github.com/trash2cash/trash2cash/internal/handlers/leaderboard"
	organizationhandlers "github.com/trash2cash/trash2cash/internal/handlers/organization"
	ordershandlers "github.com/trash2cash/trash2cash/internal/handlers/orders"
	pricinghandlers "github.com/trash2cash/trash2cash/internal/handlers/pricing"
	"github.com/trash2cash/trash2cash/internal/service"
	"github.com/trash2cash/trash2cash/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetPendingOrders(w http.ResponseWriter, r *http.Request)
	ConfirmOrder(w http.ResponseWriter, r *http.Request)
	AcceptOrder(w http.ResponseWriter, r *http.Request)
	CompleteOrder(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetTop(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
}

type PricingHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
	Catalog(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	OrderHandler        OrderHandler
	OrganizationHandler OrganizationHandler
	LeaderboardHandler  LeaderboardHandler
	PricingHandler      PricingHandler
	FeedHandler         http.HandlerFunc
}

func New(s *service.Services, feedHandler http.HandlerFunc) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		OrderHandler:        ordershandlers.New(s.UserOrders),
		OrganizationHandler: organizationhandlers.New(s.OrganizationService, s.OrgOrders),
		LeaderboardHandler:  leaderboardhandlers.New(s.LeaderboardService),
		PricingHandler:      pricinghandlers.New(),
		FeedHandler:         feedHandler,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/pricing", func(r chi.Router) {
		r.Get("/quote", h.PricingHandler.Quote)
		r.Get("/catalog", h.PricingHandler.Catalog)
	})
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
			})
			r.Route("/leaderboard", func(r chi.Router) {
				r.Get("/", h.LeaderboardHandler.GetTop)
				r.Get("/me", h.LeaderboardHandler.GetOwn)
				r.Post("/recompute", h.LeaderboardHandler.Recompute)
			})
		})
	})
	r.Route("/api/org", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/register", h.OrganizationHandler.Register)
		r.Route("/orders", func(r chi.Router) {
			r.Get("/pending", h.OrganizationHandler.GetPendingOrders)
			r.Get("/feed", h.FeedHandler)
			r.Post("/{orderID}/confirm", h.OrganizationHandler.ConfirmOrder)
			r.Post("/{orderID}/accept", h.OrganizationHandler.AcceptOrder)
			r.Post("/{orderID}/complete", h.OrganizationHandler.CompleteOrder)
		})
	})

	return r
}
