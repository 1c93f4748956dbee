package dto

type LeaderboardEntryDTO struct {
	UserID               int     `json:"user_id" example:"42"`
	TotalCashEarned      float64 `json:"total_cash_earned" example:"7275"`
	TotalEcoPoints       int     `json:"total_eco_points" example:"400"`
	TotalOrdersCompleted int     `json:"total_orders_completed" example:"3"`
}
