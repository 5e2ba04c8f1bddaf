package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/pkg/entity"
	"github.com/florae/verdant/pkg/httputil"
)

type ToggleCompletionRequest struct {
	Date string `json:"date"`
}

type ToggleCompletionResponse struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type GetCompletionsResponse struct {
	UserID      string                   `json:"uid"`
	From        string                   `json:"from"`
	To          string                   `json:"to"`
	Completions []entity.HabitCompletion `json:"completions"`
}

type GetAchievementsResponse struct {
	UserID       string               `json:"uid"`
	Achievements []entity.Achievement `json:"achievements"`
}

func (s *Server) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle completion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req ToggleCompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completed, err := s.completionsService.Toggle(ctx, habitID, uid, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("toggle completion error: malformed date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("toggle completion error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "completion date is in the future", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("toggle completion error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("toggle completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ToggleCompletionResponse{
		HabitID:   habitID.String(),
		Date:      req.Date,
		Completed: completed,
	})
	logger.Info("completion toggled")
}

func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	completions, err := s.completionsService.GetRange(ctx, uid, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("get completions error: malformed date range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range, expected YYYY-MM-DD", nil)
		default:
			logger.Error("get completions error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting completions", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		UserID:      uid.String(),
		From:        from,
		To:          to,
		Completions: completions,
	})
	logger.Info("completions provided")
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit stats error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	weekStart := r.URL.Query().Get("week_start")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.completionsService.Stats(ctx, habitID, uid, weekStart)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("habit stats error: malformed week start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("habit stats error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("habit stats error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habit stats", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("habit stats provided")
}

func (s *Server) GetGamification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get gamification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.gamificationService.Profile(ctx, uid)
	if err != nil {
		logger.Error("get gamification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting gamification profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("gamification profile provided")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var achievements []entity.Achievement
	if r.URL.Query().Get("unclaimed") == "true" {
		achievements, err = s.gamificationService.UnclaimedAchievements(ctx, uid)
	} else {
		achievements, err = s.gamificationService.Achievements(ctx, uid)
	}
	if err != nil {
		logger.Error("get achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAchievementsResponse{
		UserID:       uid.String(),
		Achievements: achievements,
	})
	logger.Info("achievements provided")
}

func (s *Server) ClaimAchievement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("claim achievement error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("claim achievement error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid achievement id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.gamificationService.ClaimAchievement(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAchievementNotFound):
			logger.Error("claim achievement error: unexist achievement")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "achievement doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyClaimed):
			logger.Error("claim achievement error: already claimed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "achievement already claimed", nil)
		default:
			logger.Error("claim achievement error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while claiming achievement", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("achievement claimed")
}
