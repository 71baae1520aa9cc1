package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakapradana/goaltrack/internal/domain/entity"
	"github.com/rakapradana/goaltrack/internal/domain/repository"
)

type GoalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

func (r *GoalRepository) Create(g *entity.Goal) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO goals (text, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, g.Text, g.UserID)

	return row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GoalRepository) GetByID(id string) (*entity.Goal, error) {
	ctx := context.Background()
	g := &entity.Goal{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, text, user_id, created_at, updated_at
		FROM goals
		WHERE id = $1
	`, id)

	if err := row.Scan(&g.ID, &g.Text, &g.UserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return g, nil
}

func (r *GoalRepository) ListByUser(userID string) ([]entity.Goal, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, text, user_id, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]entity.Goal, 0)
	for rows.Next() {
		var g entity.Goal
		if err := rows.Scan(&g.ID, &g.Text, &g.UserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(g *entity.Goal) error {
	ctx := context.Background()
	g.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE goals
		SET text = $1, updated_at = $2
		WHERE id = $3
	`, g.Text, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *GoalRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.GoalRepository = (*GoalRepository)(nil)
