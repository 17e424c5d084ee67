package service

import (
	"context"
	"errors"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
)

// UserService отдаёт каталог пользователей и кандидатов в техники.
type UserService struct {
	users UserRepository
	teams TeamRepository
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(users UserRepository, teams TeamRepository) *UserService {
	return &UserService{users: users, teams: teams}
}

// ListUsers возвращает весь каталог пользователей.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errInternal("failed to list users", err)
	}
	return users, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to get user", err)
	}
	return user, nil
}

// TechnicianCandidates возвращает допустимых техников для формы заданного типа.
// teamID == nil означает, что команда в форме не выбрана.
func (s *UserService) TechnicianCandidates(ctx context.Context, scope assignment.Scope, teamID *int64) (assignment.Candidates, error) {
	var team *model.Team
	if teamID != nil {
		t, err := s.teams.Get(ctx, *teamID)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return assignment.Candidates{}, ErrNotFound("team not found")
			}
			return assignment.Candidates{}, errInternal("failed to get team", err)
		}
		team = &t
	}

	var directory []model.User
	if team == nil && scope == assignment.ScopeEquipmentForm {
		users, err := s.users.List(ctx)
		if err != nil {
			return assignment.Candidates{}, errInternal("failed to list users", err)
		}
		directory = users
	}

	return assignment.TechnicianCandidates(scope, team, directory), nil
}
