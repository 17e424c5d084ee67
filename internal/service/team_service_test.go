package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
	"maintenance-service/internal/service"
	"maintenance-service/internal/service/mocks"
)

type teamDeps struct {
	teams *mocks.TeamRepository
	users *mocks.UserRepository
	tx    *mocks.TransactionManager
	cache *mocks.CalendarCache
}

func newTeamService(t *testing.T) (*service.TeamService, teamDeps) {
	d := teamDeps{
		teams: mocks.NewTeamRepository(t),
		users: mocks.NewUserRepository(t),
		tx:    mocks.NewTransactionManager(t),
		cache: mocks.NewCalendarCache(t),
	}
	svc := service.NewTeamService(d.teams, d.users, d.tx, d.cache, zap.NewNop())
	return svc, d
}

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name       string
		teamName   string
		members    []int64
		setupMocks func(teams *mocks.TeamRepository, users *mocks.UserRepository)
		wantCode   string
	}{
		{
			name:     "Success",
			teamName: "Mechanics",
			members:  []int64{10, 11, 10},
			setupMocks: func(teams *mocks.TeamRepository, users *mocks.UserRepository) {
				users.On("ListByIDs", mock.Anything, []int64{10, 11}).
					Return([]model.User{{ID: 10}, {ID: 11}}, nil)
				teams.On("Create", mock.Anything, "Mechanics", []int64{10, 11}).
					Return(model.Team{ID: 1, Name: "Mechanics", MemberIDs: []int64{10, 11}}, nil)
			},
		},
		{
			name:     "Success: empty team",
			teamName: "Reserve",
			setupMocks: func(teams *mocks.TeamRepository, users *mocks.UserRepository) {
				teams.On("Create", mock.Anything, "Reserve", []int64{}).
					Return(model.Team{ID: 2, Name: "Reserve"}, nil)
			},
		},
		{
			name:       "Fail: blank name",
			teamName:   " ",
			setupMocks: func(teams *mocks.TeamRepository, users *mocks.UserRepository) {},
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:     "Fail: unknown member",
			teamName: "Mechanics",
			members:  []int64{10, 99},
			setupMocks: func(teams *mocks.TeamRepository, users *mocks.UserRepository) {
				users.On("ListByIDs", mock.Anything, []int64{10, 99}).Return([]model.User{{ID: 10}}, nil)
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "Fail: team exists",
			teamName: "Mechanics",
			setupMocks: func(teams *mocks.TeamRepository, users *mocks.UserRepository) {
				teams.On("Create", mock.Anything, "Mechanics", []int64{}).
					Return(model.Team{}, repository.ErrTeamExists)
			},
			wantCode: "TEAM_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTeamService(t)
			tt.setupMocks(d.teams, d.users)

			_, err := svc.CreateTeam(context.Background(), tt.teamName, tt.members)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTeamService_UpdateTeam(t *testing.T) {
	tests := []struct {
		name       string
		patch      service.TeamPatch
		setupMocks func(d teamDeps)
		wantCode   string
	}{
		{
			name:  "Success: rename keeps assignments",
			patch: service.TeamPatch{Name: model.Some("Electricians")},
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				d.teams.On("Update", mock.Anything, int64(1), ptr("Electricians"), (*[]int64)(nil)).
					Return(model.Team{ID: 1, Name: "Electricians"}, nil)
			},
		},
		{
			name:  "Success: removed members released, calendar invalidated",
			patch: service.TeamPatch{MemberIDs: model.Some([]int64{12})},
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				members := []int64{12}
				d.users.On("ListByIDs", mock.Anything, members).Return([]model.User{{ID: 12}}, nil)
				d.teams.On("Update", mock.Anything, int64(1), (*string)(nil), &members).
					Return(model.Team{ID: 1, Name: "Mechanics", MemberIDs: members}, nil)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), members).Return(int64(2), nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			},
		},
		{
			name:  "Success: nobody released, calendar untouched",
			patch: service.TeamPatch{MemberIDs: model.Some([]int64{12})},
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				members := []int64{12}
				d.users.On("ListByIDs", mock.Anything, members).Return([]model.User{{ID: 12}}, nil)
				d.teams.On("Update", mock.Anything, int64(1), (*string)(nil), &members).
					Return(model.Team{ID: 1, MemberIDs: members}, nil)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), members).Return(int64(0), nil)
			},
		},
		{
			name:  "Fail: release error rolls back",
			patch: service.TeamPatch{MemberIDs: model.Some([]int64{})},
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				members := []int64{}
				d.teams.On("Update", mock.Anything, int64(1), (*string)(nil), &members).
					Return(model.Team{ID: 1}, nil)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), members).
					Return(int64(0), errors.New("db down"))
			},
			wantCode: "INTERNAL",
		},
		{
			name:  "Fail: team not found",
			patch: service.TeamPatch{Name: model.Some("X")},
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				d.teams.On("Update", mock.Anything, int64(1), ptr("X"), (*[]int64)(nil)).
					Return(model.Team{}, repository.ErrTeamNotFound)
			},
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTeamService(t)
			tt.setupMocks(d)

			_, err := svc.UpdateTeam(context.Background(), 1, tt.patch)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTeamService_DeleteTeam(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(d teamDeps)
		wantCode   string
	}{
		{
			name: "Success: technicians released before delete",
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), []int64(nil)).Return(int64(3), nil)
				d.teams.On("Delete", mock.Anything, int64(1)).Return(nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			},
		},
		{
			name: "Success: no assigned requests",
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), []int64(nil)).Return(int64(0), nil)
				d.teams.On("Delete", mock.Anything, int64(1)).Return(nil)
			},
		},
		{
			name: "Fail: not found",
			setupMocks: func(d teamDeps) {
				runTx(d.tx)
				d.teams.On("ReleaseTechnicians", mock.Anything, int64(1), []int64(nil)).Return(int64(0), nil)
				d.teams.On("Delete", mock.Anything, int64(1)).Return(repository.ErrTeamNotFound)
			},
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTeamService(t)
			tt.setupMocks(d)

			err := svc.DeleteTeam(context.Background(), 1)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	svc, d := newTeamService(t)
	d.teams.On("Get", mock.Anything, int64(5)).Return(model.Team{}, repository.ErrTeamNotFound)

	_, err := svc.GetTeam(context.Background(), 5)

	assert.True(t, service.IsNotFound(err))
}
