package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")
	ErrInvalidColor  = errors.New("unknown habit color")
	ErrEmptyTitle    = errors.New("habit title is required")

	ErrCompletionExists   = errors.New("completion for this date already exists")
	ErrCompletionNotFound = errors.New("completion doesn't exist")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrFutureDate         = errors.New("completion date is in the future")

	ErrAchievementExists   = errors.New("achievement already unlocked")
	ErrAchievementNotFound = errors.New("achievement doesn't exist")
	ErrAlreadyClaimed      = errors.New("achievement already claimed")
)
