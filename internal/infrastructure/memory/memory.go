// Package memory provides in-memory repository implementations backing the
// test suite and local experiments without a running Postgres.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rakapradana/goaltrack/internal/domain/entity"
	"github.com/rakapradana/goaltrack/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type GoalRepository struct {
	mu    sync.RWMutex
	goals map[string]entity.Goal
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{goals: make(map[string]entity.Goal)}
}

func (r *GoalRepository) Create(g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	r.goals[g.ID] = *g
	return nil
}

func (r *GoalRepository) GetByID(id string) (*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (r *GoalRepository) ListByUser(userID string) ([]entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Goal, 0)
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GoalRepository) Update(g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[g.ID]; !ok {
		return repository.ErrNotFound
	}
	g.UpdatedAt = time.Now()
	r.goals[g.ID] = *g
	return nil
}

func (r *GoalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.GoalRepository = (*GoalRepository)(nil)
)
