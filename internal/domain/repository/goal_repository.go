package repository

import "github.com/rakapradana/goaltrack/internal/domain/entity"

// GoalRepository defines the interface for goal-related database operations.
// ListByUser returns only goals owned by the given user.
type GoalRepository interface {
	Create(g *entity.Goal) error
	GetByID(id string) (*entity.Goal, error)
	ListByUser(userID string) ([]entity.Goal, error)
	Update(g *entity.Goal) error
	Delete(id string) error
}
