package organization

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/dto"
	orderservice "github.com/trash2cash/trash2cash/internal/service/orderservice"
	organizationservice "github.com/trash2cash/trash2cash/internal/service/organizationservice"
	"github.com/trash2cash/trash2cash/pkg/auth"
)

func NewMock(t *testing.T) (*OrganizationHandler, *MockService, *orderservice.MockOrganizationActions) {
	ctrl := gomock.NewController(t)
	orgService := NewMockService(ctrl)
	orderService := orderservice.NewMockOrganizationActions(ctrl)
	handler := New(orgService, orderService)
	defer ctrl.Finish()
	return handler, orgService, orderService
}

func authedRequest(method, url string, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, url, nil)
	}
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func withOrderID(r *http.Request, orderID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, orgService, _ := NewMock(t)

	orgID := uuid.New()
	validBody := `{"name":"Green Loop Recyclers","email":"ops@greenloop.example","phone":"+911234567890","address":"12 Industrial Estate","waste_types":"metal,electronics"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: validBody,
			prepareMock: func() {
				orgService.EXPECT().
					Register(gomock.Any(), 1, gomock.Any()).
					Return(&domain.Organization{
						ID:         orgID,
						UserID:     1,
						Name:       "Green Loop Recyclers",
						Email:      "ops@greenloop.example",
						Phone:      "+911234567890",
						Address:    "12 Industrial Estate",
						WasteTypes: "metal,electronics",
						CreatedAt:  time.Now(),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "User already owns an organization",
			body: validBody,
			prepareMock: func() {
				orgService.EXPECT().
					Register(gomock.Any(), 1, gomock.Any()).
					Return(nil, organizationservice.ErrOrganizationExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already owns an organization",
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				orgService.EXPECT().
					Register(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/org/register", tt.body)
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.OrganizationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, orgID.String(), body.ID)
			}
		})
	}
}

func TestGetPendingOrdersHandler(t *testing.T) {
	handler, orgService, orderService := NewMock(t)

	org := &domain.Organization{ID: uuid.New(), UserID: 1}

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful retrieval",
			url:  "/api/org/orders/pending",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					GetPending(gomock.Any(), uint32(100)).
					Return([]domain.PickupOrder{
						{ID: uuid.New(), Status: domain.OrderStatusPending, CreatedAt: time.Now()},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Custom limit",
			url:  "/api/org/orders/pending?limit=5",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					GetPending(gomock.Any(), uint32(5)).
					Return([]domain.PickupOrder{
						{ID: uuid.New(), Status: domain.OrderStatusPending, CreatedAt: time.Now()},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid limit",
			url:  "/api/org/orders/pending?limit=abc",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name: "No pending orders",
			url:  "/api/org/orders/pending",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					GetPending(gomock.Any(), uint32(100)).
					Return([]domain.PickupOrder{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "User owns no organization",
			url:  "/api/org/orders/pending",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(nil, organizationservice.ErrOrganizationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "organization not found",
		},
		{
			name: "Internal server error",
			url:  "/api/org/orders/pending",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					GetPending(gomock.Any(), uint32(100)).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, tt.url, "")
			w := httptest.NewRecorder()

			handler.GetPendingOrders(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestConfirmOrderHandler(t *testing.T) {
	handler, orgService, orderService := NewMock(t)

	org := &domain.Organization{ID: uuid.New(), UserID: 1}
	orderID := uuid.New()

	tests := []struct {
		name          string
		orderID       string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:    "Successful confirmation",
			orderID: orderID.String(),
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Confirm(gomock.Any(), orderID, org.ID).
					Return(&domain.PickupOrder{
						ID:             orderID,
						Status:         domain.OrderStatusConfirmed,
						OrganizationID: &org.ID,
						CreatedAt:      time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Malformed order ID",
			orderID: "not-a-uuid",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Malformed order ID",
		},
		{
			name:    "Order not found",
			orderID: orderID.String(),
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Confirm(gomock.Any(), orderID, org.ID).
					Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "pickup order not found",
		},
		{
			name:    "Order already confirmed",
			orderID: orderID.String(),
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Confirm(gomock.Any(), orderID, org.ID).
					Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "invalid order status transition",
		},
		{
			name:    "Internal server error",
			orderID: orderID.String(),
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Confirm(gomock.Any(), orderID, org.ID).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/org/orders/"+tt.orderID+"/confirm", "")
			r = withOrderID(r, tt.orderID)
			w := httptest.NewRecorder()

			handler.ConfirmOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.OrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.OrderStatusConfirmed, body.Status)
				assert.Equal(t, org.ID.String(), body.OrganizationID)
			}
		})
	}
}

func TestAcceptOrderHandler(t *testing.T) {
	handler, orgService, orderService := NewMock(t)

	org := &domain.Organization{ID: uuid.New(), UserID: 1}
	orderID := uuid.New()

	orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
	orderService.EXPECT().
		Accept(gomock.Any(), orderID, org.ID).
		Return(&domain.PickupOrder{
			ID:             orderID,
			Status:         domain.OrderStatusInProgress,
			OrganizationID: &org.ID,
			CreatedAt:      time.Now(),
		}, nil)

	r := authedRequest(http.MethodPost, "/api/org/orders/"+orderID.String()+"/accept", "")
	r = withOrderID(r, orderID.String())
	w := httptest.NewRecorder()

	handler.AcceptOrder(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.OrderResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, domain.OrderStatusInProgress, body.Status)
}

func TestCompleteOrderHandler(t *testing.T) {
	handler, orgService, orderService := NewMock(t)

	org := &domain.Organization{ID: uuid.New(), UserID: 1}
	orderID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful completion",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Complete(gomock.Any(), orderID, org.ID).
					Return(&domain.PickupOrder{
						ID:             orderID,
						Status:         domain.OrderStatusCompleted,
						OrganizationID: &org.ID,
						RewardAmount:   7275,
						RewardKind:     domain.RewardKindCash,
						CreatedAt:      time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Order not in progress",
			prepareMock: func() {
				orgService.EXPECT().GetByOwner(gomock.Any(), 1).Return(org, nil)
				orderService.EXPECT().
					Complete(gomock.Any(), orderID, org.ID).
					Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "invalid order status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/org/orders/"+orderID.String()+"/complete", "")
			r = withOrderID(r, orderID.String())
			w := httptest.NewRecorder()

			handler.CompleteOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
