package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/trash2cash/trash2cash/internal/pg"
	"github.com/trash2cash/trash2cash/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)

	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserOrders)
	assert.NotNil(t, services.OrgOrders)
	assert.NotNil(t, services.OrganizationService)
	assert.NotNil(t, services.LeaderboardService)
}
