package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/florae/verdant/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Color       string `validate:"omitempty,habit_color"`
	Icon        string `validate:"max=100"`
}

type UpdateHabitRequest struct {
	Title       *string `validate:"omitempty,max=200"`
	Description *string `validate:"omitempty,max=2000"`
	Color       *string `validate:"omitempty,habit_color"`
	Icon        *string `validate:"omitempty,max=100"`
}

type PositionUpdate struct {
	ID       uuid.UUID
	Position int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error)
	// Applies a batch of board reorders; the first failed write aborts the rest
	UpdatePositions(ctx context.Context, userID uuid.UUID, updates []PositionUpdate) error
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type CompletionsServiceI interface {
	// Flips the (habit, date) completion. Returns true when the toggle
	// resulted in a completed day, false when it removed one
	Toggle(ctx context.Context, habitID, userID uuid.UUID, date string) (bool, error)
	// Lists all of the user's completions inside [from, to], both YYYY-MM-DD
	GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]entity.HabitCompletion, error)
	// Reports whether (habit, date) is completed, straight from the store
	IsCompleted(ctx context.Context, habitID, userID uuid.UUID, date string) (bool, error)
	// Computes current streak, best streak, weekly percentage and lifetime
	// count for one habit. weekStart is the Monday the weekly slice starts on
	Stats(ctx context.Context, habitID, userID uuid.UUID, weekStart string) (*entity.HabitStats, error)
}

// GamificationEngineI is the hook the ledger calls after every new completion.
type GamificationEngineI interface {
	AwardCompletion(ctx context.Context, userID, habitID uuid.UUID) error
}

type GamificationServiceI interface {
	GamificationEngineI
	// Points profile with derived level and progress fields
	Profile(ctx context.Context, userID uuid.UUID) (*entity.Gamification, error)
	// All achievements, newest unlock first
	Achievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)
	// Unlocked but not yet claimed achievements
	UnclaimedAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)
	// Stamps the claim timestamp exactly once
	ClaimAchievement(ctx context.Context, id, userID uuid.UUID) error
}

// Clock lets tests pin "today" for all streak and award computations.
type Clock func() time.Time
