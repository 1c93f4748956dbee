package dto

import (
	"time"

	"github.com/trash2cash/trash2cash/internal/domain"
)

type CreateOrderRequestDTO struct {
	WasteCategory string     `json:"waste_category" example:"metal" validate:"required"`
	WasteSubtype  string     `json:"waste_subtype" example:"copper" validate:"required"`
	WeightKg      float64    `json:"weight_kg" example:"15" validate:"required,gte=10"`
	Description   string     `json:"description,omitempty" example:"scrap wiring from renovation"`
	ImageURL      string     `json:"image_url,omitempty" example:"https://cdn.example.com/waste/42.jpg"`
	PickupAddress string     `json:"pickup_address" example:"12 MG Road, Bengaluru" validate:"required"`
	PickupDate    *time.Time `json:"pickup_date,omitempty" example:"2025-04-12T10:00:00+05:30"`
	RewardKind    string     `json:"reward_kind" example:"cash" validate:"required,oneof=cash eco_points gift_card"`
}

type OrderResponseDTO struct {
	ID             string     `json:"id" example:"6f1f0b9e-6c1a-4b1e-9a1e-2f6d3c6a8e21"`
	WasteCategory  string     `json:"waste_category" example:"metal"`
	WasteSubtype   string     `json:"waste_subtype" example:"copper"`
	WeightKg       float64    `json:"weight_kg" example:"15"`
	Description    string     `json:"description,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	PickupAddress  string     `json:"pickup_address" example:"12 MG Road, Bengaluru"`
	PickupDate     *time.Time `json:"pickup_date,omitempty"`
	RewardAmount   float64    `json:"reward_amount" example:"7275"`
	RewardKind     string     `json:"reward_kind" example:"cash"`
	Status         string     `json:"status" example:"pending"`
	OrganizationID string     `json:"organization_id,omitempty" example:"9b8e3f21-40cc-4c2a-8d30-1f4a0d6e8b72"`
	CreatedAt      string     `json:"created_at" example:"2025-04-10T16:09:57+05:30"`
}

// NewOrderResponseDTO flattens an order for the API. The organization ID stays
// empty until a partner confirms the pickup.
func NewOrderResponseDTO(order domain.PickupOrder) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:            order.ID.String(),
		WasteCategory: order.WasteCategory,
		WasteSubtype:  order.WasteSubtype,
		WeightKg:      order.WeightKg,
		Description:   order.Description,
		ImageURL:      order.ImageURL,
		PickupAddress: order.PickupAddress,
		PickupDate:    order.PickupDate,
		RewardAmount:  order.RewardAmount,
		RewardKind:    order.RewardKind,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	if order.OrganizationID != nil {
		resp.OrganizationID = order.OrganizationID.String()
	}
	return resp
}
