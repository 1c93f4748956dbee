package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/trash2cash/trash2cash/docs"
	"github.com/trash2cash/trash2cash/internal/handlers/auth"
	"github.com/trash2cash/trash2cash/internal/handlers/leaderboard"
	"github.com/trash2cash/trash2cash/internal/handlers/organization"
	"github.com/trash2cash/trash2cash/internal/service"
	"github.com/trash2cash/trash2cash/internal/service/orderservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		UserOrders:          orderservice.NewMockUserActions(ctrl),
		OrgOrders:           orderservice.NewMockOrganizationActions(ctrl),
		OrganizationService: organization.NewMockService(ctrl),
		LeaderboardService:  leaderboard.NewMockService(ctrl),
	}

	h := New(services, func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockOrganizationHandler := NewMockOrganizationHandler(ctrl)
	mockLeaderboardHandler := NewMockLeaderboardHandler(ctrl)
	mockPricingHandler := NewMockPricingHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().AddOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrganizationHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrganizationHandler.EXPECT().GetPendingOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrganizationHandler.EXPECT().ConfirmOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrganizationHandler.EXPECT().AcceptOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrganizationHandler.EXPECT().CompleteOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetTop(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetOwn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().Recompute(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().Quote(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().Catalog(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		OrderHandler:        mockOrderHandler,
		OrganizationHandler: mockOrganizationHandler,
		LeaderboardHandler:  mockLeaderboardHandler,
		PricingHandler:      mockPricingHandler,
		FeedHandler:         func(w http.ResponseWriter, r *http.Request) {},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/pricing/quote", http.StatusOK},
		{"GET", "/api/pricing/catalog", http.StatusOK},
		{"POST", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/leaderboard", http.StatusUnauthorized},
		{"GET", "/api/user/leaderboard/me", http.StatusUnauthorized},
		{"POST", "/api/user/leaderboard/recompute", http.StatusUnauthorized},
		{"POST", "/api/org/register", http.StatusUnauthorized},
		{"GET", "/api/org/orders/pending", http.StatusUnauthorized},
		{"GET", "/api/org/orders/feed", http.StatusUnauthorized},
		{"POST", "/api/org/orders/5a1ef5cc-91c7-4f7a-9b36-1c2c1cf3b002/confirm", http.StatusUnauthorized},
		{"POST", "/api/org/orders/5a1ef5cc-91c7-4f7a-9b36-1c2c1cf3b002/accept", http.StatusUnauthorized},
		{"POST", "/api/org/orders/5a1ef5cc-91c7-4f7a-9b36-1c2c1cf3b002/complete", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
