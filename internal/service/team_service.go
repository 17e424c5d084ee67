package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
)

// TeamService содержит бизнес-логику по созданию, изменению и получению команд.
// Смена состава и удаление команды снимают с заявок техников, переставших быть её участниками.
type TeamService struct {
	teams TeamRepository
	users UserRepository
	tx    TransactionManager
	cache CalendarCache
	log   *zap.Logger
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(teams TeamRepository, users UserRepository, tx TransactionManager, cache CalendarCache, log *zap.Logger) *TeamService {
	return &TeamService{teams: teams, users: users, tx: tx, cache: cache, log: log}
}

// TeamPatch: частичное обновление команды.
type TeamPatch struct {
	Name      model.Optional[string]
	MemberIDs model.Optional[[]int64]
}

// ListTeams возвращает все команды с составом.
func (s *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, errInternal("failed to list teams", err)
	}
	return teams, nil
}

// GetTeam возвращает команду по идентификатору вместе с её участниками.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	team, err := s.teams.Get(ctx, id)
	if err != nil {
		return model.Team{}, mapTeamErr("failed to get team", err)
	}
	return team, nil
}

// CreateTeam валидирует входные данные и создаёт команду с участниками.
// В случае конфликтов по имени команды возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) CreateTeam(ctx context.Context, name string, memberIDs []int64) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, ErrField("name", "This field may not be blank.")
	}
	members := dedupIDs(memberIDs)
	if err := s.checkMembers(ctx, members); err != nil {
		return model.Team{}, err
	}

	team, err := s.teams.Create(ctx, name, members)
	if err != nil {
		return model.Team{}, mapTeamErr("failed to create team", err)
	}
	return team, nil
}

// UpdateTeam применяет частичное обновление. Переданный список участников заменяет состав целиком.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, patch TeamPatch) (model.Team, error) {
	var name *string
	if patch.Name.Set {
		n := strings.TrimSpace(patch.Name.Value)
		if n == "" {
			return model.Team{}, ErrField("name", "This field may not be blank.")
		}
		name = &n
	}
	var members *[]int64
	if patch.MemberIDs.Set {
		ids := dedupIDs(patch.MemberIDs.Value)
		if err := s.checkMembers(ctx, ids); err != nil {
			return model.Team{}, err
		}
		members = &ids
	}

	var (
		team     model.Team
		released int64
	)
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		team, err = s.teams.Update(ctx, id, name, members)
		if err != nil {
			return err
		}
		if members != nil {
			released, err = s.teams.ReleaseTechnicians(ctx, id, *members)
		}
		return err
	})
	if err != nil {
		return model.Team{}, mapTeamErr("failed to update team", err)
	}

	if released > 0 {
		s.log.Info("technicians released from team requests",
			zap.Int64("team_id", id), zap.Int64("requests", released))
		s.invalidateCalendar(ctx)
	}
	return team, nil
}

// DeleteTeam удаляет команду. Техники снимаются с её заявок, ссылки на команду
// обнуляются на стороне БД.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	var released int64
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		if released, err = s.teams.ReleaseTechnicians(ctx, id, nil); err != nil {
			return err
		}
		return s.teams.Delete(ctx, id)
	})
	if err != nil {
		return mapTeamErr("failed to delete team", err)
	}

	if released > 0 {
		s.log.Info("technicians released from deleted team requests",
			zap.Int64("team_id", id), zap.Int64("requests", released))
		s.invalidateCalendar(ctx)
	}
	return nil
}

func (s *TeamService) invalidateCalendar(ctx context.Context) {
	if err := s.cache.InvalidateCalendar(ctx); err != nil {
		s.log.Warn("calendar cache invalidation failed", zap.Error(err))
	}
}

// checkMembers убеждается, что все участники есть в каталоге.
func (s *TeamService) checkMembers(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return errInternal("failed to load members", err)
	}
	known := make(map[int64]struct{}, len(found))
	for _, u := range found {
		known[u.ID] = struct{}{}
	}
	var msgs []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			msgs = append(msgs, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
		}
	}
	if len(msgs) > 0 {
		return ErrValidation(map[string][]string{"members": msgs})
	}
	return nil
}

func mapTeamErr(msg string, err error) error {
	switch {
	case errors.Is(err, repository.ErrTeamNotFound):
		return ErrNotFound("team not found")
	case errors.Is(err, repository.ErrTeamExists):
		return ErrDomain("TEAM_EXISTS", "team with this name already exists")
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrField("members", "unknown user")
	}
	return errInternal(msg, err)
}

func dedupIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
