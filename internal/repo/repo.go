package repo

import (
	"github.com/trash2cash/trash2cash/internal/pg"
	leaderboardrepo "github.com/trash2cash/trash2cash/internal/repo/leaderboard-repo"
	orderrepo "github.com/trash2cash/trash2cash/internal/repo/order-repo"
	organizationrepo "github.com/trash2cash/trash2cash/internal/repo/organization-repo"
	payoutrepo "github.com/trash2cash/trash2cash/internal/repo/payout-repo"
	userrepo "github.com/trash2cash/trash2cash/internal/repo/user-repo"
	"github.com/trash2cash/trash2cash/internal/service/authservice"
	"github.com/trash2cash/trash2cash/internal/service/orderservice"
	"github.com/trash2cash/trash2cash/internal/service/organizationservice"
)

// Repositories wires every store over the shared connection. Leaderboard and
// payout repos stay concrete: each serves two consumers with disjoint method
// sets.
type Repositories struct {
	UserRepo         authservice.Repo
	OrderRepo        orderservice.Repo
	OrganizationRepo organizationservice.Repo
	LeaderboardRepo  *leaderboardrepo.Repository
	PayoutRepo       *payoutrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orderRepo := orderrepo.New(conn, txManager)
	organizationRepo := organizationrepo.New(conn)
	leaderboardRepo := leaderboardrepo.New(conn, txManager)
	payoutRepo := payoutrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		OrderRepo:        orderRepo,
		OrganizationRepo: organizationRepo,
		LeaderboardRepo:  leaderboardRepo,
		PayoutRepo:       payoutRepo,
	}
}
