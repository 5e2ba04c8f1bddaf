package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/florae/verdant/internal/error_values"
	"github.com/florae/verdant/pkg/cleanup"
	"github.com/florae/verdant/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing achievementsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, achievement_type, unlocked_at, claimed_at FROM habit_achievements
		WHERE user_id = $1 ORDER BY unlocked_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Achievement, 0)
	for rows.Next() {
		a := entity.Achievement{}
		err = rows.Scan(&a.ID, &a.UserID, &a.Type, &a.UnlockedAt, &a.ClaimedAt)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *AchievementsRepository) Unlock(ctx context.Context, uid uuid.UUID, achType entity.AchievementType) (*entity.Achievement, error) {
	a := entity.Achievement{
		UserID: uid,
		Type:   achType,
	}
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO habit_achievements (user_id, achievement_type) VALUES ($1, $2) RETURNING id, unlocked_at;`,
		uid,
		achType,
	)
	if err := row.Scan(&a.ID, &a.UnlockedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: unlock-once is enforced by the
			// (user_id, achievement_type) constraint
			case "23505":
				return nil, errorvalues.ErrAchievementExists
			}
		}
		return nil, errors.New("unlocking achievement error: " + err.Error())
	}
	return &a, nil
}

func (ar *AchievementsRepository) Claim(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := ar.conn.Exec(
		ctx,
		`UPDATE habit_achievements SET claimed_at = NOW() WHERE id = $1 AND user_id = $2 AND claimed_at IS NULL;`,
		id,
		uid,
	)
	if err != nil {
		return errors.New("claiming achievement error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		// Either the row doesn't belong to this user or it was claimed before.
		var exists bool
		row := ar.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM habit_achievements WHERE id = $1 AND user_id = $2);`, id, uid)
		if scanErr := row.Scan(&exists); scanErr != nil {
			return errors.New("inspecting achievement error: " + scanErr.Error())
		}
		if exists {
			return errorvalues.ErrAlreadyClaimed
		}
		return errorvalues.ErrAchievementNotFound
	}
	return nil
}
