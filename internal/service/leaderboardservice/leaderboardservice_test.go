package leaderboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/trash2cash/trash2cash/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreateEntry(t *testing.T) {
	service, repo := NewMock(t)

	entry := &domain.LeaderboardEntry{ID: 1, UserID: 7}
	repo.EXPECT().CreateEntry(gomock.Any(), 7).Return(entry, nil)

	got, err := service.CreateEntry(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, entry, got)

	repo.EXPECT().CreateEntry(gomock.Any(), 8).Return(nil, errors.New("some error"))
	_, err = service.CreateEntry(context.Background(), 8)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.LeaderboardEntry
		expectedError bool
	}{
		{
			name: "entry exists",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(&domain.LeaderboardEntry{
					UserID:               7,
					TotalCashEarned:      7275,
					TotalEcoPoints:       200,
					TotalOrdersCompleted: 1,
				}, nil)
			},
			expected: &domain.LeaderboardEntry{
				UserID:               7,
				TotalCashEarned:      7275,
				TotalEcoPoints:       200,
				TotalOrdersCompleted: 1,
			},
		},
		{
			name: "no entry yet",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name: "repo failure",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, errors.New("some error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entry, err := service.Get(context.Background(), 7)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, entry)
			}
		})
	}
}

func TestTop(t *testing.T) {
	service, repo := NewMock(t)

	entries := []domain.LeaderboardEntry{
		{UserID: 1, TotalEcoPoints: 1200},
		{UserID: 2, TotalEcoPoints: 400},
	}
	repo.EXPECT().Top(gomock.Any(), 10).Return(entries, nil)

	got, err := service.Top(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRecompute(t *testing.T) {
	service, repo := NewMock(t)

	entry := &domain.LeaderboardEntry{UserID: 7, TotalCashEarned: 7275, TotalOrdersCompleted: 1}
	repo.EXPECT().RecomputeFromOrders(gomock.Any(), 7).Return(entry, nil)

	got, err := service.Recompute(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, entry, got)

	repo.EXPECT().RecomputeFromOrders(gomock.Any(), 8).Return(nil, errors.New("some error"))
	_, err = service.Recompute(context.Background(), 8)
	assert.Error(t, err)
}
