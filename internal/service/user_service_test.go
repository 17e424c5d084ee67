package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
	"maintenance-service/internal/service"
	"maintenance-service/internal/service/mocks"
)

func TestUserService_TechnicianCandidates(t *testing.T) {
	directory := []model.User{{ID: 10, Username: "anna"}, {ID: 11, Username: "boris"}, {ID: 20, Username: "ivan"}}
	mechanics := model.Team{ID: 3, Name: "Mechanics", MemberIDs: []int64{10, 11}, Members: directory[:2]}

	tests := []struct {
		name       string
		scope      assignment.Scope
		teamID     *int64
		setupMocks func(users *mocks.UserRepository, teams *mocks.TeamRepository)
		wantState  assignment.CandidateState
		wantIDs    []int64
	}{
		{
			name:   "team members",
			scope:  assignment.ScopeRequestForm,
			teamID: ptr(int64(3)),
			setupMocks: func(users *mocks.UserRepository, teams *mocks.TeamRepository) {
				teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
			},
			wantState: assignment.StateReady,
			wantIDs:   []int64{10, 11},
		},
		{
			name:       "request form without team",
			scope:      assignment.ScopeRequestForm,
			setupMocks: func(users *mocks.UserRepository, teams *mocks.TeamRepository) {},
			wantState:  assignment.StateSelectTeamFirst,
		},
		{
			name:  "equipment form without team",
			scope: assignment.ScopeEquipmentForm,
			setupMocks: func(users *mocks.UserRepository, teams *mocks.TeamRepository) {
				users.On("List", mock.Anything).Return(directory, nil)
			},
			wantState: assignment.StateReady,
			wantIDs:   []int64{10, 11, 20},
		},
		{
			name:   "empty team",
			scope:  assignment.ScopeEquipmentForm,
			teamID: ptr(int64(4)),
			setupMocks: func(users *mocks.UserRepository, teams *mocks.TeamRepository) {
				teams.On("Get", mock.Anything, int64(4)).Return(model.Team{ID: 4, Name: "Reserve"}, nil)
			},
			wantState: assignment.StateNoMembers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			teams := mocks.NewTeamRepository(t)
			tt.setupMocks(users, teams)

			svc := service.NewUserService(users, teams)
			got, err := svc.TechnicianCandidates(context.Background(), tt.scope, tt.teamID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, got.State)
			ids := make([]int64, 0, len(got.Users))
			for _, u := range got.Users {
				ids = append(ids, u.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	users := mocks.NewUserRepository(t)
	users.On("GetByID", mock.Anything, int64(1)).Return(model.User{}, repository.ErrUserNotFound)

	svc := service.NewUserService(users, mocks.NewTeamRepository(t))
	_, err := svc.GetUser(context.Background(), 1)

	assert.True(t, service.IsNotFound(err))
}
