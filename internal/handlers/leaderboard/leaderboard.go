package leaderboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/trash2cash/trash2cash/internal/domain"
	"github.com/trash2cash/trash2cash/internal/dto"
	"github.com/trash2cash/trash2cash/pkg/auth"
	"github.com/trash2cash/trash2cash/pkg/utils"
)

const defaultTopLimit = 10

type Service interface {
	Get(ctx context.Context, userID int) (*domain.LeaderboardEntry, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Recompute(ctx context.Context, userID int) (*domain.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	leaderboardService Service
}

func New(leaderboardService Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetTop godoc
//
//	@Summary		Get the eco-score leaderboard
//	@Description	Retrieve the top users ranked by lifetime eco points
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum number of entries to return"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LeaderboardEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/leaderboard [get]
func (h *LeaderboardHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardService.Top(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newEntryDTO(entry))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOwn godoc
//
//	@Summary		Get own lifetime totals
//	@Description	Retrieve the authorized user's lifetime cash, eco points and completed order count
//	@Tags			Leaderboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LeaderboardEntryDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/leaderboard/me [get]
func (h *LeaderboardHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entry, err := h.leaderboardService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entry == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newEntryDTO(*entry))
}

// Recompute godoc
//
//	@Summary		Recompute own lifetime totals
//	@Description	Rebuild the authorized user's totals from their completed orders
//	@Tags			Leaderboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LeaderboardEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/leaderboard/recompute [post]
func (h *LeaderboardHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entry, err := h.leaderboardService.Recompute(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newEntryDTO(*entry))
}

func newEntryDTO(entry domain.LeaderboardEntry) dto.LeaderboardEntryDTO {
	return dto.LeaderboardEntryDTO{
		UserID:               entry.UserID,
		TotalCashEarned:      entry.TotalCashEarned,
		TotalEcoPoints:       entry.TotalEcoPoints,
		TotalOrdersCompleted: entry.TotalOrdersCompleted,
	}
}
