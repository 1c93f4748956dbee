package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/dto"
	orderservice "github.com/trash2cash/trash2cash/internal/service/orderservice"
	"github.com/trash2cash/trash2cash/pkg/auth"
	"github.com/trash2cash/trash2cash/pkg/utils"
)

type OrderHandler struct {
	orderService orderservice.UserActions
}

func New(orderService orderservice.UserActions) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// AddOrder godoc
//
//	@Summary		Submit a waste pickup order
//	@Description	Price the submitted waste and create a pending pickup order with the reward fixed at creation.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Pickup order to be created"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO	"Pickup order created"
//	@Failure		400	{object}	utils.Response	"Bad request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Weight below minimum or unknown waste type"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, orderservice.CreateOrderInput{
		Category:      req.WasteCategory,
		Subtype:       req.WasteSubtype,
		WeightKg:      req.WeightKg,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PickupAddress: req.PickupAddress,
		PickupDate:    req.PickupDate,
		Reward:        domain.DraftReward{Kind: req.RewardKind},
	})
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrWeightBelowMinimum),
			errors.Is(err, orderservice.ErrUnknownWasteType),
			errors.Is(err, orderservice.ErrUnknownRewardKind):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponseDTO(*order))
}

// GetOrders godoc
//
//	@Summary		Get pickup orders for user
//	@Description	Retrieve the authorized user's pickup orders, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
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
