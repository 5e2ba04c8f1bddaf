package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/internal/repository"
	"github.com/florae/verdant/internal/streak"
	"github.com/florae/verdant/pkg/entity"
)

// CompletionsService is the completion ledger: the durable record of which
// (habit, date) pairs are done. Every new completion hands off to the
// gamification engine; removals never do.
type CompletionsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	engine          GamificationEngineI
	now             Clock
}

func NewCompletionsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, engine GamificationEngineI) *CompletionsService {
	return NewCompletionsServiceWithClock(habitsRepo, completionsRepo, engine, time.Now)
}

func NewCompletionsServiceWithClock(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, engine GamificationEngineI, clock Clock) *CompletionsService {
	if habitsRepo == nil || completionsRepo == nil || engine == nil {
		log.Fatal("on completions service provided nil dependencies")
	}
	return &CompletionsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		engine:          engine,
		now:             clock,
	}
}

func (serv *CompletionsService) Toggle(ctx context.Context, habitID, userID uuid.UUID, date string) (bool, error) {
	day, err := serv.parseDate(date)
	if err != nil {
		return false, err
	}
	if _, err := serv.ownedHabit(ctx, habitID, userID); err != nil {
		return false, err
	}
	today := streak.Normalize(serv.now().UTC())
	if day.After(today) {
		return false, errorvalues.ErrFutureDate
	}

	// The store is the source of truth for existence, not any cached range.
	existing, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habitID, day, day)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	if len(existing) > 0 {
		// Removal: no point adjustment, points already awarded stay.
		if err := serv.completionsRepo.Delete(ctx, habitID, day); err != nil {
			if errors.Is(err, errorvalues.ErrCompletionNotFound) {
				// Someone else removed it between the read and the delete.
				return false, nil
			}
			return false, errors.New("repository error: " + err.Error())
		}
		return false, nil
	}

	_, err = serv.completionsRepo.Create(ctx, &entity.HabitCompletion{
		HabitID:        habitID,
		UserID:         userID,
		CompletionDate: day,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionExists) {
			// Lost a race against a concurrent toggle. The day is completed,
			// which is what the caller wanted; no second award.
			return true, nil
		}
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	// Points and achievements are deliberately not transactional with the
	// completion write. A failed award keeps the completion and is healed by
	// the next award's recomputation from the ledger.
	if err := serv.engine.AwardCompletion(ctx, userID, habitID); err != nil {
		slog.Error("awarding completion failed", slog.String("habit_id", habitID.String()), slog.String("error", err.Error()))
	}
	return true, nil
}

func (serv *CompletionsService) GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]entity.HabitCompletion, error) {
	fromDay, err := serv.parseDate(from)
	if err != nil {
		return nil, err
	}
	toDay, err := serv.parseDate(to)
	if err != nil {
		return nil, err
	}
	completions, err := serv.completionsRepo.GetByUserAndDateRange(ctx, userID, fromDay, toDay)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return completions, nil
}

func (serv *CompletionsService) IsCompleted(ctx context.Context, habitID, userID uuid.UUID, date string) (bool, error) {
	day, err := serv.parseDate(date)
	if err != nil {
		return false, err
	}
	if _, err := serv.ownedHabit(ctx, habitID, userID); err != nil {
		return false, err
	}
	existing, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habitID, day, day)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return len(existing) > 0, nil
}

func (serv *CompletionsService) Stats(ctx context.Context, habitID, userID uuid.UUID, weekStart string) (*entity.HabitStats, error) {
	week, err := serv.parseDate(weekStart)
	if err != nil {
		return nil, err
	}
	habit, err := serv.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	today := streak.Normalize(serv.now().UTC())
	from := streak.Normalize(habit.CreatedAt.UTC())
	if week.Before(from) {
		from = week
	}
	completions, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habitID, from, today)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	dates := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.CompletionDate)
	}
	total, err := serv.completionsRepo.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.HabitStats{
		ID:               habitID,
		CurrentStreak:    streak.Current(dates, today),
		BestStreak:       streak.Best(dates),
		WeeklyCompletion: streak.WeeklyCompletion(dates, week),
		TotalCompletions: total,
	}, nil
}

func (serv *CompletionsService) parseDate(date string) (time.Time, error) {
	if !validDateString(date) {
		return time.Time{}, errorvalues.ErrInvalidDate
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidDate
	}
	return day, nil
}

func (serv *CompletionsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
