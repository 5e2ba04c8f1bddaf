package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florae/verdant/internal/api"
	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/internal/service/mocks"
	"github.com/florae/verdant/pkg/entity"
)

func TestToggleCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionsService: cService,
	})
	habitID := uuid.New()
	date := "2025-06-15"
	body, err := sonic.ConfigDefault.Marshal(api.ToggleCompletionRequest{Date: date})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode      int
		ExpectedCompleted bool
		MockPrepFunc      func()
		Body              io.Reader
	}{
		{
			ExpectedCode:      http.StatusOK,
			ExpectedCompleted: true,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(true, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode:      http.StatusOK,
			ExpectedCompleted: false,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, errorvalues.ErrInvalidDate)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, errorvalues.ErrFutureDate)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, errorvalues.ErrHabitNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, errorvalues.ErrWrongOwner)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().Toggle(gomock.Any(), habitID, userID, date).Return(false, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/completions", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", habitID.String())
		serv.ToggleCompletion(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.ToggleCompletionResponse
			err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
			require.NoError(t, err)
			assert.Equal(t, habitID.String(), resp.HabitID)
			assert.Equal(t, date, resp.Date)
			assert.Equal(t, tc.ExpectedCompleted, resp.Completed)
		}
	}

	t.Run("invalid id in path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/habits/not-a-uuid/completions", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", "not-a-uuid")
		serv.ToggleCompletion(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetCompletions(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionsService: cService,
	})
	from := "2025-06-01"
	to := "2025-06-30"
	completions := []entity.HabitCompletion{
		{
			ID:             uuid.New(),
			HabitID:        uuid.New(),
			UserID:         userID,
			CompletionDate: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Now(),
		},
		{
			ID:             uuid.New(),
			HabitID:        uuid.New(),
			UserID:         userID,
			CompletionDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Now(),
		},
	}
	testCases := []struct {
		ExpectedCode  int
		ExpectedCount int
		MockPrepFunc  func()
	}{
		{
			ExpectedCode:  http.StatusOK,
			ExpectedCount: 2,
			MockPrepFunc: func() {
				cService.EXPECT().GetRange(gomock.Any(), userID, from, to).Return(completions, nil)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().GetRange(gomock.Any(), userID, from, to).Return(nil, errorvalues.ErrInvalidDate)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().GetRange(gomock.Any(), userID, from, to).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/completions?from="+from+"&to="+to, nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetCompletions(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetCompletionsResponse
			err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
			require.NoError(t, err)
			assert.Equal(t, from, resp.From)
			assert.Equal(t, to, resp.To)
			assert.Equal(t, tc.ExpectedCount, len(resp.Completions))
		}
	}
}

func TestGetHabitStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionsService: cService,
	})
	habitID := uuid.New()
	weekStart := "2025-06-09"
	stats := &entity.HabitStats{
		ID:               habitID,
		CurrentStreak:    3,
		BestStreak:       5,
		WeeklyCompletion: 43,
		TotalCompletions: 27,
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				cService.EXPECT().Stats(gomock.Any(), habitID, userID, weekStart).Return(stats, nil)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().Stats(gomock.Any(), habitID, userID, weekStart).Return(nil, errorvalues.ErrInvalidDate)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().Stats(gomock.Any(), habitID, userID, weekStart).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().Stats(gomock.Any(), habitID, userID, weekStart).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/stats?week_start="+weekStart, nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", habitID.String())
		serv.GetHabitStats(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp entity.HabitStats
			err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
			require.NoError(t, err)
			assert.Equal(t, *stats, resp)
		}
	}
}

func TestGetGamification(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	profile := &entity.Gamification{
		Points:              250,
		Level:               2,
		TotalCompletions:    17,
		PointsForNextLevel:  400,
		ProgressToNextLevel: 50,
	}
	t.Run("profile provided", func(t *testing.T) {
		gService.EXPECT().Profile(gomock.Any(), userID).Return(profile, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/gamification", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetGamification(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp entity.Gamification
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, *profile, resp)
	})
	t.Run("service error", func(t *testing.T) {
		gService.EXPECT().Profile(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/gamification", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetGamification(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/gamification", nil)
		serv.GetGamification(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	claimedAt := time.Now().Add(-time.Hour)
	achievements := []entity.Achievement{
		{
			ID:         uuid.New(),
			UserID:     userID,
			Type:       entity.AchStreak3,
			UnlockedAt: time.Now(),
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			Type:       entity.AchFirstCompletion,
			UnlockedAt: time.Now().Add(-24 * time.Hour),
			ClaimedAt:  &claimedAt,
		},
	}
	t.Run("all achievements", func(t *testing.T) {
		gService.EXPECT().Achievements(gomock.Any(), userID).Return(achievements, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetAchievements(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetAchievementsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 2, len(resp.Achievements))
	})
	t.Run("unclaimed only", func(t *testing.T) {
		gService.EXPECT().UnclaimedAchievements(gomock.Any(), userID).Return(achievements[:1], nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/achievements?unclaimed=true", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetAchievements(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetAchievementsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 1, len(resp.Achievements))
		assert.Equal(t, entity.AchStreak3, resp.Achievements[0].Type)
	})
	t.Run("service error", func(t *testing.T) {
		gService.EXPECT().Achievements(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.GetAchievements(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestClaimAchievement(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	achievementID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				gService.EXPECT().ClaimAchievement(gomock.Any(), achievementID, userID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().ClaimAchievement(gomock.Any(), achievementID, userID).Return(errorvalues.ErrAchievementNotFound)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				gService.EXPECT().ClaimAchievement(gomock.Any(), achievementID, userID).Return(errorvalues.ErrAlreadyClaimed)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().ClaimAchievement(gomock.Any(), achievementID, userID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/achievements/"+achievementID.String()+"/claim", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", achievementID.String())
		serv.ClaimAchievement(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("invalid id in path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/achievements/not-a-uuid/claim", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", "not-a-uuid")
		serv.ClaimAchievement(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
