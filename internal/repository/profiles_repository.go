package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/florae/verdant/pkg/cleanup"
	"github.com/florae/verdant/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for profilesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing profilesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProfilesRepository{
		conn: pool,
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

// Get returns the stored points and completion counter. A user who has never
// earned points has no row yet and reads as all zeros.
func (pr *ProfilesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Gamification, error) {
	var profile entity.Gamification
	row := pr.conn.QueryRow(ctx, `SELECT habit_points, total_completions FROM profiles WHERE user_id = $1;`, uid)
	if err := row.Scan(&profile.Points, &profile.TotalCompletions); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Gamification{}, nil
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	return &profile, nil
}

// AddPoints is a single atomic increment. Concurrent awards never lose points
// to a read-modify-write race, and the row is created on the first award.
func (pr *ProfilesRepository) AddPoints(ctx context.Context, uid uuid.UUID, points int) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO profiles (user_id, habit_points, total_completions) VALUES ($1, $2, 1)
		ON CONFLICT (user_id) DO UPDATE SET
		habit_points = profiles.habit_points + EXCLUDED.habit_points,
		total_completions = profiles.total_completions + 1;`,
		uid,
		points,
	)
	if err != nil {
		return errors.New("adding points error: " + err.Error())
	}
	return nil
}
