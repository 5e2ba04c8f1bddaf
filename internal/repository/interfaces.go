package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/florae/verdant/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Only UserID, Title, Description, Color, Icon, Position are read
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by uid ordered by position (nulls last), then newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates title, description, color and icon by habit ID
	Update(ctx context.Context, habit *entity.Habit) error
	// Moves habit to the given board position
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	// Deletes habit with id, cascading its completions
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Inserts a completion for (habit, date). The table's uniqueness constraint
	// makes a duplicate insert fail with ErrCompletionExists
	Create(ctx context.Context, completion *entity.HabitCompletion) (uuid.UUID, error)
	// Removes the completion for (habit, date)
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Provides all of a user's completions inside [from, to]
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
	// Provides completions of one habit inside [from, to]
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
	// Returns lifetime completion count for a habit
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
	// Returns lifetime completion count for a user across all habits
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type ProfilesRepositoryI interface {
	// Returns the user's points profile; a user without a row gets zeros
	Get(ctx context.Context, uid uuid.UUID) (*entity.Gamification, error)
	// Atomically adds points and bumps the completion counter, creating the
	// row on first award
	AddPoints(ctx context.Context, uid uuid.UUID, points int) error
}

type AchievementsRepositoryI interface {
	// Lists user's achievements, newest unlock first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error)
	// Inserts an unlock row; a repeated unlock of the same type fails with
	// ErrAchievementExists
	Unlock(ctx context.Context, uid uuid.UUID, achType entity.AchievementType) (*entity.Achievement, error)
	// Stamps claimed_at on an unclaimed achievement owned by uid
	Claim(ctx context.Context, id, uid uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
