package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/pkg/cleanup"
	"github.com/florae/verdant/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(cfg DBConfig) *CompletionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for completionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing completionsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CompletionsRepository{
		conn: pool,
	}
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, completion *entity.HabitCompletion) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO habit_completions (habit_id, user_id, completion_date) VALUES ($1, $2, $3) RETURNING id;`,
		completion.HabitID,
		completion.UserID,
		completion.CompletionDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: the (habit_id, completion_date) constraint is the
			// real guard against double completion, not an application pre-check
			case "23505":
				return uuid.UUID{}, errorvalues.ErrCompletionExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrHabitNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating completion error: " + err.Error())
	}
	return id, nil
}

func (cr *CompletionsRepository) Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := cr.conn.Exec(
		ctx,
		`DELETE FROM habit_completions WHERE habit_id = $1 AND completion_date = $2;`,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (cr *CompletionsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, habit_id, user_id, completion_date, created_at FROM habit_completions
		WHERE user_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date DESC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting user completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		c := entity.HabitCompletion{}
		err = rows.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletionDate, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, habit_id, user_id, completion_date, created_at FROM habit_completions
		WHERE habit_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date DESC;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting habit completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		c := entity.HabitCompletion{}
		err = rows.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletionDate, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting habit completions: " + err.Error())
	}
	return count, nil
}

func (cr *CompletionsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_completions WHERE user_id = $1;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting user completions: " + err.Error())
	}
	return count, nil
}
