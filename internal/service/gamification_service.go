package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/internal/repository"
	"github.com/florae/verdant/internal/streak"
	"github.com/florae/verdant/pkg/entity"
)

const (
	basePoints      = 10
	streakBonusStep = 5
	streakBonusCap  = 50
	perfectDayBonus = 20

	// How far back the engine reads the ledger when recomputing streaks.
	// Covers the largest streak threshold with room to spare.
	awardWindowDays = 400
)

type thresholdRule struct {
	achType   entity.AchievementType
	threshold int
}

// Threshold tables, evaluated in order against the corresponding metric.
var (
	streakRules = []thresholdRule{
		{entity.AchStreak3, 3},
		{entity.AchStreak7, 7},
		{entity.AchStreak14, 14},
		{entity.AchStreak30, 30},
		{entity.AchStreak50, 50},
		{entity.AchStreak100, 100},
	}
	completionRules = []thresholdRule{
		{entity.AchCompletions10, 10},
		{entity.AchCompletions50, 50},
		{entity.AchCompletions100, 100},
		{entity.AchCompletions500, 500},
	}
	levelRules = []thresholdRule{
		{entity.AchLevel5, 5},
		{entity.AchLevel10, 10},
		{entity.AchLevel25, 25},
		{entity.AchLevel50, 50},
	}
)

// CalculatePoints is the award formula for one new completion: 10 base,
// a streak bonus capped at 50, and 20 more when every habit the user owns
// is done for the day. Removal of a completion never awards anything.
func CalculatePoints(currentStreak int, perfectDay bool) int {
	points := basePoints
	bonus := currentStreak * streakBonusStep
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	points += bonus
	if perfectDay {
		points += perfectDayBonus
	}
	return points
}

// Level derives the level from cumulative points: max(1, floor(sqrt(p/100))+1).
// Quadratic, so each level costs progressively more.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	level := int(math.Floor(math.Sqrt(float64(points)/100))) + 1
	if level < 1 {
		level = 1
	}
	return level
}

// PointsForLevel is the inverse boundary: the cumulative points at which
// the given level begins.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// ProgressToNextLevel reports how far (0-100) the user is between the start
// of their level and the start of the next.
func ProgressToNextLevel(points int) int {
	level := Level(points)
	floor := PointsForLevel(level)
	ceil := PointsForLevel(level + 1)
	progress := float64(points-floor) / float64(ceil-floor) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return int(progress)
}

// GamificationService is the rules engine: point awards, level derivation
// and one-time achievement unlocks. Everything it needs is recomputed from
// the ledger, so a replay after a partial failure converges instead of
// double-counting.
type GamificationService struct {
	habitsRepo       repository.HabitsRepositoryI
	completionsRepo  repository.CompletionsRepositoryI
	profilesRepo     repository.ProfilesRepositoryI
	achievementsRepo repository.AchievementsRepositoryI
	now              Clock
}

func NewGamificationService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI,
	profilesRepo repository.ProfilesRepositoryI, achievementsRepo repository.AchievementsRepositoryI) *GamificationService {
	return NewGamificationServiceWithClock(habitsRepo, completionsRepo, profilesRepo, achievementsRepo, time.Now)
}

func NewGamificationServiceWithClock(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI,
	profilesRepo repository.ProfilesRepositoryI, achievementsRepo repository.AchievementsRepositoryI, clock Clock) *GamificationService {
	if habitsRepo == nil || completionsRepo == nil || profilesRepo == nil || achievementsRepo == nil {
		log.Fatal("on gamification service provided nil repos")
	}
	return &GamificationService{
		habitsRepo:       habitsRepo,
		completionsRepo:  completionsRepo,
		profilesRepo:     profilesRepo,
		achievementsRepo: achievementsRepo,
		now:              clock,
	}
}

// AwardCompletion runs after a new completion is in the ledger: computes the
// award for habitID, bumps the profile and evaluates every achievement rule.
func (gs *GamificationService) AwardCompletion(ctx context.Context, userID, habitID uuid.UUID) error {
	today := streak.Normalize(gs.now().UTC())
	habits, err := gs.habitsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	completions, err := gs.completionsRepo.GetByUserAndDateRange(ctx, userID, today.AddDate(0, 0, -awardWindowDays), today)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}

	byHabit := make(map[uuid.UUID][]time.Time, len(habits))
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.CompletionDate)
	}

	// Streak measured after the new completion is counted: the toggled row
	// is already in the ledger at this point.
	currentStreak := streak.Current(byHabit[habitID], today)
	perfectDay := len(habits) > 0
	for _, h := range habits {
		if !containsDate(byHabit[h.ID], today) {
			perfectDay = false
			break
		}
	}
	points := CalculatePoints(currentStreak, perfectDay)
	if err := gs.profilesRepo.AddPoints(ctx, userID, points); err != nil {
		return errors.New("repository error: " + err.Error())
	}

	gs.evaluateAchievements(ctx, userID, today, habits, byHabit)
	return nil
}

func (gs *GamificationService) Profile(ctx context.Context, userID uuid.UUID) (*entity.Gamification, error) {
	profile, err := gs.profilesRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	profile.Level = Level(profile.Points)
	profile.PointsForNextLevel = PointsForLevel(profile.Level + 1)
	profile.ProgressToNextLevel = ProgressToNextLevel(profile.Points)
	return profile, nil
}

func (gs *GamificationService) Achievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	achievements, err := gs.achievementsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return achievements, nil
}

func (gs *GamificationService) UnclaimedAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	achievements, err := gs.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	unclaimed := make([]entity.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.ClaimedAt == nil {
			unclaimed = append(unclaimed, a)
		}
	}
	return unclaimed, nil
}

func (gs *GamificationService) ClaimAchievement(ctx context.Context, id, userID uuid.UUID) error {
	err := gs.achievementsRepo.Claim(ctx, id, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyClaimed) || errors.Is(err, errorvalues.ErrAchievementNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// evaluateAchievements re-derives every metric from the ledger and unlocks
// whichever thresholds are newly crossed. Failures are logged, never fatal:
// the next evaluation sees the same ledger and retries.
func (gs *GamificationService) evaluateAchievements(ctx context.Context, userID uuid.UUID, today time.Time,
	habits []*entity.Habit, byHabit map[uuid.UUID][]time.Time) {
	logger := slog.Default().With(slog.String("uid", userID.String()))

	totalCompletions, err := gs.completionsRepo.CountByUserID(ctx, userID)
	if err != nil {
		logger.Error("achievement evaluation: counting completions failed", slog.String("error", err.Error()))
		return
	}
	profile, err := gs.profilesRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("achievement evaluation: reading profile failed", slog.String("error", err.Error()))
		return
	}
	level := Level(profile.Points)

	maxStreak := 0
	for _, h := range habits {
		if s := streak.Current(byHabit[h.ID], today); s > maxStreak {
			maxStreak = s
		}
	}

	weekStart := streak.WeekStart(today)
	weekCount := countInRange(byHabit, weekStart, weekStart.AddDate(0, 0, 6))
	perfectWeek := len(habits) > 0 && weekCount == len(habits)*7

	monthStart, daysInMonth := streak.MonthBounds(today)
	monthCount := countInRange(byHabit, monthStart, monthStart.AddDate(0, 0, daysInMonth-1))
	perfectMonth := len(habits) > 0 && monthCount == len(habits)*daysInMonth

	due := make([]entity.AchievementType, 0, 4)
	if totalCompletions >= 1 {
		due = append(due, entity.AchFirstCompletion)
	}
	for _, rule := range streakRules {
		if maxStreak >= rule.threshold {
			due = append(due, rule.achType)
		}
	}
	for _, rule := range completionRules {
		if totalCompletions >= rule.threshold {
			due = append(due, rule.achType)
		}
	}
	for _, rule := range levelRules {
		if level >= rule.threshold {
			due = append(due, rule.achType)
		}
	}
	if perfectWeek {
		due = append(due, entity.AchPerfectWeek)
	}
	if perfectMonth {
		due = append(due, entity.AchPerfectMonth)
	}

	unlocked, err := gs.achievementsRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("achievement evaluation: listing achievements failed", slog.String("error", err.Error()))
		return
	}
	have := make(map[entity.AchievementType]struct{}, len(unlocked))
	for _, a := range unlocked {
		have[a.Type] = struct{}{}
	}
	for _, achType := range due {
		if _, ok := have[achType]; ok {
			continue
		}
		if _, err := gs.achievementsRepo.Unlock(ctx, userID, achType); err != nil {
			// A concurrent evaluation already inserted it, which is fine.
			if errors.Is(err, errorvalues.ErrAchievementExists) {
				continue
			}
			logger.Error("achievement unlock failed", slog.String("type", string(achType)), slog.String("error", err.Error()))
		}
	}
}

func containsDate(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if streak.SameDay(d, day) {
			return true
		}
	}
	return false
}

func countInRange(byHabit map[uuid.UUID][]time.Time, from, to time.Time) int {
	count := 0
	for _, dates := range byHabit {
		for _, d := range dates {
			day := streak.Normalize(d)
			if !day.Before(from) && !day.After(to) {
				count++
			}
		}
	}
	return count
}
