package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rakapradana/goaltrack/internal/domain/entity"
	"github.com/rakapradana/goaltrack/internal/domain/repository"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrNotOwner     = errors.New("user not authorized")
)

// GoalService implements owner-scoped goal CRUD. Mutations resolve the goal
// by id before checking ownership, so callers can distinguish a missing goal
// (not found) from a foreign one (forbidden).
type GoalService struct {
	Goals  repository.GoalRepository
	Logger *logrus.Logger
}

func NewGoalService(goals repository.GoalRepository, logger *logrus.Logger) *GoalService {
	return &GoalService{Goals: goals, Logger: logger}
}

// List returns only goals owned by userID.
func (s *GoalService) List(ctx context.Context, userID string) ([]entity.Goal, error) {
	return s.Goals.ListByUser(userID)
}

func (s *GoalService) Create(ctx context.Context, userID, text string) (*entity.Goal, error) {
	g := &entity.Goal{Text: text, UserID: userID}
	if err := s.Goals.Create(g); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"goal_id": g.ID, "user_id": userID}).Info("goal created")
	}
	return g, nil
}

func (s *GoalService) Update(ctx context.Context, userID, goalID, text string) (*entity.Goal, error) {
	g, err := s.resolveOwned(userID, goalID, "update")
	if err != nil {
		return nil, err
	}
	g.Text = text
	if err := s.Goals.Update(g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := s.resolveOwned(userID, goalID, "delete"); err != nil {
		return err
	}
	if err := s.Goals.Delete(goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return nil
}

// resolveOwned loads the goal and enforces ownership, in that order.
func (s *GoalService) resolveOwned(userID, goalID, action string) (*entity.Goal, error) {
	g, err := s.Goals.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if g.UserID != userID {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"goal_id": goalID, "user_id": userID, "action": action}).Warn("unauthorized goal access attempt")
		}
		return nil, ErrNotOwner
	}
	return g, nil
}
