package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// HabitColor is one of the six palette values the dashboard renders.
type HabitColor string

const (
	ColorYellow HabitColor = "yellow"
	ColorPink   HabitColor = "pink"
	ColorBlue   HabitColor = "blue"
	ColorGreen  HabitColor = "green"
	ColorOrange HabitColor = "orange"
	ColorPurple HabitColor = "purple"
)

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	Color       HabitColor `json:"color"`
	Icon        string     `json:"icon,omitempty"`
	// Position orders habits on the board. Nil sorts after every set position.
	Position  *int      `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitCompletion marks one habit done on one calendar day. CompletionDate
// carries no meaningful time component; streak math compares calendar days only.
type HabitCompletion struct {
	ID             uuid.UUID `json:"id"`
	HabitID        uuid.UUID `json:"habit_id"`
	UserID         uuid.UUID `json:"uid"`
	CompletionDate time.Time `json:"completion_date"`
	CreatedAt      time.Time `json:"created_at"`
}

type AchievementType string

const (
	AchFirstCompletion AchievementType = "first_completion"
	AchStreak3         AchievementType = "streak_3"
	AchStreak7         AchievementType = "streak_7"
	AchStreak14        AchievementType = "streak_14"
	AchStreak30        AchievementType = "streak_30"
	AchStreak50        AchievementType = "streak_50"
	AchStreak100       AchievementType = "streak_100"
	AchCompletions10   AchievementType = "completions_10"
	AchCompletions50   AchievementType = "completions_50"
	AchCompletions100  AchievementType = "completions_100"
	AchCompletions500  AchievementType = "completions_500"
	AchLevel5          AchievementType = "level_5"
	AchLevel10         AchievementType = "level_10"
	AchLevel25         AchievementType = "level_25"
	AchLevel50         AchievementType = "level_50"
	AchPerfectWeek     AchievementType = "perfect_week"
	AchPerfectMonth    AchievementType = "perfect_month"
)

// Achievement is unlocked at most once per (user, type). ClaimedAt stays nil
// until the user explicitly claims it.
type Achievement struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"uid"`
	Type       AchievementType `json:"achievement_type"`
	UnlockedAt time.Time       `json:"unlocked_at"`
	ClaimedAt  *time.Time      `json:"claimed_at,omitempty"`
}

// Gamification is the per-user points profile. Level and the progress fields
// are derived from Points on read, never stored.
type Gamification struct {
	Points              int `json:"points"`
	Level               int `json:"level"`
	TotalCompletions    int `json:"total_completions"`
	PointsForNextLevel  int `json:"points_for_next_level"`
	ProgressToNextLevel int `json:"progress_to_next_level"`
}

type HabitStats struct {
	ID               uuid.UUID `json:"habit_id"`
	CurrentStreak    int       `json:"current_streak"`
	BestStreak       int       `json:"best_streak"`
	WeeklyCompletion int       `json:"weekly_completion"`
	TotalCompletions int       `json:"total_completions"`
}
