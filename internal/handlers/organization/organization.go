package organization

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/dto"
	orderservice "github.com/trash2cash/trash2cash/internal/service/orderservice"
	organizationservice "github.com/trash2cash/trash2cash/internal/service/organizationservice"
	"github.com/trash2cash/trash2cash/pkg/auth"
	"github.com/trash2cash/trash2cash/pkg/utils"
)

const defaultPendingLimit = 100

type Service interface {
	Register(ctx context.Context, userID int, in organizationservice.RegisterInput) (*domain.Organization, error)
	GetByOwner(ctx context.Context, userID int) (*domain.Organization, error)
}

type OrganizationHandler struct {
	orgService   Service
	orderService orderservice.OrganizationActions
}

func New(orgService Service, orderService orderservice.OrganizationActions) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:   orgService,
		orderService: orderService,
	}
}

// Register godoc
//
//	@Summary		Register a recycling organization
//	@Description	Create the organization profile owned by the authorized user. One organization per user.
//	@Tags			Organization
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.RegisterOrganizationRequestDTO	true	"Organization profile"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrganizationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"User already owns an organization"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/org/register [post]
func (h *OrganizationHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RegisterOrganizationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.orgService.Register(r.Context(), userID, organizationservice.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		WasteTypes:  req.WasteTypes,
	})
	if err != nil {
		if errors.Is(err, organizationservice.ErrOrganizationExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.OrganizationResponseDTO{
		ID:          org.ID.String(),
		Name:        org.Name,
		Email:       org.Email,
		Phone:       org.Phone,
		Address:     org.Address,
		Description: org.Description,
		WasteTypes:  org.WasteTypes,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
	})
}

// GetPendingOrders godoc
//
//	@Summary		List pickup orders open for confirmation
//	@Description	Retrieve pending pickup orders that any organization may confirm, oldest first
//	@Tags			Organization
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum number of orders to return"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User owns no organization"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/org/orders/pending [get]
func (h *OrganizationHandler) GetPendingOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireOrganization(w, r); !ok {
		return
	}

	limit := defaultPendingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.orderService.GetPending(r.Context(), uint32(limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	var response []dto.OrderResponseDTO
	for _, order := range orders {
		response = append(response, dto.NewOrderResponseDTO(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmOrder godoc
//
//	@Summary		Confirm a pending pickup order
//	@Description	Claim a pending order for the caller's organization. First organization to confirm wins.
//	@Tags			Organization
//	@Produce		json
//	@Param			orderID	path	string	true	"Pickup order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed order ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order or organization not found"
//	@Failure		409	{object}	utils.Response	"Order already confirmed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/org/orders/{orderID}/confirm [post]
func (h *OrganizationHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.Confirm)
}

// AcceptOrder godoc
//
//	@Summary		Start work on a confirmed pickup order
//	@Description	Move an order this organization confirmed into in_progress
//	@Tags			Organization
//	@Produce		json
//	@Param			orderID	path	string	true	"Pickup order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed order ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order or organization not found"
//	@Failure		409	{object}	utils.Response	"Order not confirmed by this organization"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/org/orders/{orderID}/accept [post]
func (h *OrganizationHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.Accept)
}

// CompleteOrder godoc
//
//	@Summary		Complete a pickup order
//	@Description	Finish an in-progress order, record the payout and credit the user's lifetime totals exactly once
//	@Tags			Organization
//	@Produce		json
//	@Param			orderID	path	string	true	"Pickup order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed order ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order or organization not found"
//	@Failure		409	{object}	utils.Response	"Order not in progress for this organization"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/org/orders/{orderID}/complete [post]
func (h *OrganizationHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.Complete)
}

func (h *OrganizationHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, orderID, organizationID uuid.UUID) (*domain.PickupOrder, error)) {
	org, ok := h.requireOrganization(w, r)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed order ID")
		return
	}

	order, err := op(r.Context(), orderID, org.ID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrOrganizationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponseDTO(*order))
}

func (h *OrganizationHandler) requireOrganization(w http.ResponseWriter, r *http.Request) (*domain.Organization, bool) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	org, err := h.orgService.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, organizationservice.ErrOrganizationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return org, true
}
