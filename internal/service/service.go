package service

import (
	"github.com/trash2cash/trash2cash/internal/handlers/auth"
	"github.com/trash2cash/trash2cash/internal/handlers/leaderboard"
	"github.com/trash2cash/trash2cash/internal/handlers/organization"

	pkgauth "github.com/trash2cash/trash2cash/pkg/auth"

	"github.com/trash2cash/trash2cash/internal/pg"
	"github.com/trash2cash/trash2cash/internal/repo"
	authservice "github.com/trash2cash/trash2cash/internal/service/authservice"
	leaderboardservice "github.com/trash2cash/trash2cash/internal/service/leaderboardservice"
	orderservice "github.com/trash2cash/trash2cash/internal/service/orderservice"
	organizationservice "github.com/trash2cash/trash2cash/internal/service/organizationservice"
)

type Services struct {
	AuthService         auth.Service
	UserOrders          orderservice.UserActions
	OrgOrders           orderservice.OrganizationActions
	OrganizationService organization.Service
	LeaderboardService  leaderboard.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	leaderboardService := leaderboardservice.New(repo.LeaderboardRepo)
	organizationService := organizationservice.New(repo.OrganizationRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.OrganizationRepo, repo.LeaderboardRepo, repo.PayoutRepo, txManager)
	authService := authservice.New(repo.UserRepo, leaderboardService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:         authService,
		UserOrders:          orderService,
		OrgOrders:           orderService,
		OrganizationService: organizationService,
		LeaderboardService:  leaderboardService,
	}
}
