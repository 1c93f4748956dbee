package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/trash2cash/trash2cash/internal/pg"
	leaderboardrepo "github.com/trash2cash/trash2cash/internal/repo/leaderboard-repo"
	orderrepo "github.com/trash2cash/trash2cash/internal/repo/order-repo"
	organizationrepo "github.com/trash2cash/trash2cash/internal/repo/organization-repo"
	payoutrepo "github.com/trash2cash/trash2cash/internal/repo/payout-repo"
	userrepo "github.com/trash2cash/trash2cash/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.OrganizationRepo)
	assert.NotNil(t, repo.LeaderboardRepo)
	assert.NotNil(t, repo.PayoutRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &organizationrepo.Repository{}, repo.OrganizationRepo)
	assert.IsType(t, &leaderboardrepo.Repository{}, repo.LeaderboardRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
