package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/internal/repository"
	"github.com/florae/verdant/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errorvalues.ErrEmptyTitle
	}
	if err := validate.Struct(req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationError {
				if fieldErr.Tag() == "habit_color" {
					return nil, errorvalues.ErrInvalidColor
				}
			}
		}
		return nil, errors.New("validation error: " + err.Error())
	}
	color := entity.HabitColor(req.Color)
	if color == "" {
		color = entity.ColorBlue
	}
	// New habits land after every existing one on the board.
	existing, err := hs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	maxPosition := -1
	for _, h := range existing {
		if h.Position != nil && *h.Position > maxPosition {
			maxPosition = *h.Position
		}
	}
	position := maxPosition + 1
	h := entity.Habit{
		UserID:      uid,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Color:       color,
		Icon:        req.Icon,
		Position:    &position,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error) {
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, errorvalues.ErrEmptyTitle
		}
		habit.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Color != nil {
		if err := validate.Struct(req); err != nil {
			return nil, errorvalues.ErrInvalidColor
		}
		habit.Color = entity.HabitColor(*req.Color)
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}
	if err := hs.repo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return hs.repo.GetByID(ctx, habitID)
}

func (hs *HabitsService) UpdatePositions(ctx context.Context, userID uuid.UUID, updates []PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	for _, u := range updates {
		if _, err := hs.ownedHabit(ctx, u.ID, userID); err != nil {
			return err
		}
	}
	for _, u := range updates {
		if err := hs.repo.UpdatePosition(ctx, u.ID, u.Position); err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				return err
			}
			return errors.New("habits repository error: " + err.Error())
		}
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.ownedHabit(ctx, habitID, userID); err != nil {
		return err
	}
	if err := hs.repo.Delete(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
