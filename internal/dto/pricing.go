package dto

type QuoteResponseDTO struct {
	WasteCategory string  `json:"waste_category" example:"metal"`
	WasteSubtype  string  `json:"waste_subtype" example:"copper"`
	WeightKg      float64 `json:"weight_kg" example:"15"`
	MinEarning    float64 `json:"min_earning" example:"6000"`
	MaxEarning    float64 `json:"max_earning" example:"8550"`
	EcoPoints     int     `json:"eco_points" example:"200"`
	Unit          string  `json:"unit" example:"per_kg"`
}

type CatalogResponseDTO struct {
	Categories map[string][]string `json:"categories"`
}
