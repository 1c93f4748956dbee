package pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/trash2cash/trash2cash/internal/dto"
	pricingtable "github.com/trash2cash/trash2cash/internal/pricing"
	"github.com/trash2cash/trash2cash/pkg/utils"
)

// PricingHandler serves quotes straight from the in-process rate table, no
// service layer in between.
type PricingHandler struct{}

func New() *PricingHandler {
	return &PricingHandler{}
}

// Quote godoc
//
//	@Summary		Price a waste submission
//	@Description	Compute the earning range and eco points for a category, subtype and weight without creating an order
//	@Tags			Pricing
//	@Produce		json
//	@Param			category	query	string	true	"Waste category"
//	@Param			subtype		query	string	true	"Waste subtype"
//	@Param			weight_kg	query	number	true	"Weight in kilograms"
//	@Success		200	{object}	dto.QuoteResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing or malformed parameters"
//	@Failure		422	{object}	utils.Response	"Unknown waste category or subtype"
//	@Router			/api/pricing/quote [get]
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	subtype := r.URL.Query().Get("subtype")
	rawWeight := r.URL.Query().Get("weight_kg")
	if category == "" || subtype == "" || rawWeight == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "category, subtype and weight_kg are required")
		return
	}
	weightKg, err := strconv.ParseFloat(rawWeight, 64)
	if err != nil || weightKg <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid weight_kg")
		return
	}

	quote, err := pricingtable.Estimate(pricingtable.Category(category), pricingtable.Subtype(subtype), weightKg)
	if err != nil {
		switch {
		case errors.Is(err, pricingtable.ErrUnknownCategory),
			errors.Is(err, pricingtable.ErrUnknownSubtype):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{
		WasteCategory: category,
		WasteSubtype:  subtype,
		WeightKg:      weightKg,
		MinEarning:    quote.MinEarning,
		MaxEarning:    quote.MaxEarning,
		EcoPoints:     quote.EcoPoints,
		Unit:          string(quote.Unit),
	})
}

// Catalog godoc
//
//	@Summary		List priceable waste types
//	@Description	Retrieve every waste category with its subtypes
//	@Tags			Pricing
//	@Produce		json
//	@Success		200	{object}	dto.CatalogResponseDTO
//	@Router			/api/pricing/catalog [get]
func (h *PricingHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	categories := make(map[string][]string)
	for _, category := range pricingtable.Categories() {
		subtypes := pricingtable.Subtypes(category)
		names := make([]string, 0, len(subtypes))
		for _, subtype := range subtypes {
			names = append(names, string(subtype))
		}
		categories[string(category)] = names
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CatalogResponseDTO{Categories: categories})
}
