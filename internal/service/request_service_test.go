package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
	"maintenance-service/internal/service"
	"maintenance-service/internal/service/mocks"
)

type requestDeps struct {
	requests  *mocks.RequestRepository
	equipment *mocks.EquipmentRepository
	teams     *mocks.TeamRepository
	tx        *mocks.TransactionManager
	cache     *mocks.CalendarCache
}

func newRequestService(t *testing.T) (*service.RequestService, requestDeps) {
	d := requestDeps{
		requests:  mocks.NewRequestRepository(t),
		equipment: mocks.NewEquipmentRepository(t),
		teams:     mocks.NewTeamRepository(t),
		tx:        mocks.NewTransactionManager(t),
		cache:     mocks.NewCalendarCache(t),
	}
	svc := service.NewRequestService(d.requests, d.equipment, d.teams, d.tx, d.cache, zap.NewNop())
	return svc, d
}

func runTx(tx *mocks.TransactionManager) {
	tx.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func ptr[T any](v T) *T { return &v }

func appCode(t *testing.T, err error) string {
	t.Helper()
	var app *service.AppError
	require.True(t, errors.As(err, &app), "expected *service.AppError, got %v", err)
	return app.Code
}

func TestRequestService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       model.RequestStatus
		to         model.RequestStatus
		confirmed  bool
		setupMocks func(d requestDeps)
		wantCode   string
	}{
		{
			name: "NEW to IN_PROGRESS",
			from: model.StatusNew,
			to:   model.StatusInProgress,
			setupMocks: func(d requestDeps) {
				d.requests.On("UpdateStatus", mock.Anything, int64(1), model.StatusInProgress).Return(nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			},
		},
		{
			name:      "IN_PROGRESS to SCRAP marks equipment unusable",
			from:      model.StatusInProgress,
			to:        model.StatusScrap,
			confirmed: true,
			setupMocks: func(d requestDeps) {
				d.requests.On("UpdateStatus", mock.Anything, int64(1), model.StatusScrap).Return(nil)
				d.equipment.On("MarkUnusable", mock.Anything, int64(7)).Return(nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			},
		},
		{
			name:      "REPAIRED to SCRAP marks equipment unusable",
			from:      model.StatusRepaired,
			to:        model.StatusScrap,
			confirmed: true,
			setupMocks: func(d requestDeps) {
				d.requests.On("UpdateStatus", mock.Anything, int64(1), model.StatusScrap).Return(nil)
				d.equipment.On("MarkUnusable", mock.Anything, int64(7)).Return(nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			},
		},
		{
			name:       "SCRAP without confirmation is rejected",
			from:       model.StatusInProgress,
			to:         model.StatusScrap,
			setupMocks: func(d requestDeps) {},
			wantCode:   "CONFIRMATION_REQUIRED",
		},
		{
			name:       "SCRAP to REPAIRED is rejected",
			from:       model.StatusScrap,
			to:         model.StatusRepaired,
			setupMocks: func(d requestDeps) {},
			wantCode:   "INVALID_TRANSITION",
		},
		{
			name:       "NEW to REPAIRED skips a step",
			from:       model.StatusNew,
			to:         model.StatusRepaired,
			setupMocks: func(d requestDeps) {},
			wantCode:   "INVALID_TRANSITION",
		},
		{
			name:       "same status is a no-op",
			from:       model.StatusScrap,
			to:         model.StatusScrap,
			confirmed:  true,
			setupMocks: func(d requestDeps) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRequestService(t)
			runTx(d.tx)
			d.requests.On("LockStatus", mock.Anything, int64(1)).Return(tt.from, int64(7), nil)
			tt.setupMocks(d)
			if tt.wantCode == "" {
				d.requests.On("Get", mock.Anything, int64(1)).
					Return(model.MaintenanceRequest{ID: 1, EquipmentID: 7, Status: tt.to}, nil)
			}

			got, err := svc.ChangeStatus(context.Background(), 1, tt.to, tt.confirmed)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				d.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				d.equipment.AssertNotCalled(t, "MarkUnusable", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
			if tt.from == tt.to {
				d.requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				d.equipment.AssertNotCalled(t, "MarkUnusable", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRequestService_ChangeStatus_InvalidTransitionMessage(t *testing.T) {
	svc, d := newRequestService(t)
	runTx(d.tx)
	d.requests.On("LockStatus", mock.Anything, int64(1)).Return(model.StatusScrap, int64(7), nil)

	_, err := svc.ChangeStatus(context.Background(), 1, model.StatusRepaired, false)

	var app *service.AppError
	require.ErrorAs(t, err, &app)
	assert.Equal(t, 409, app.Status)
	assert.Contains(t, app.Message, "Invalid status transition from SCRAP to REPAIRED")
	assert.Contains(t, app.Fields, "status")
}

func TestRequestService_ChangeStatus_RollsBackWhenEquipmentUpdateFails(t *testing.T) {
	svc, d := newRequestService(t)
	d.tx.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	d.requests.On("LockStatus", mock.Anything, int64(1)).Return(model.StatusInProgress, int64(7), nil)
	d.requests.On("UpdateStatus", mock.Anything, int64(1), model.StatusScrap).Return(nil)
	d.equipment.On("MarkUnusable", mock.Anything, int64(7)).Return(errors.New("connection reset"))

	_, err := svc.ChangeStatus(context.Background(), 1, model.StatusScrap, true)

	assert.Equal(t, "INTERNAL", appCode(t, err))
	d.cache.AssertNotCalled(t, "InvalidateCalendar", mock.Anything)
}

func TestRequestService_ChangeStatus_UnknownStatus(t *testing.T) {
	svc, _ := newRequestService(t)

	_, err := svc.ChangeStatus(context.Background(), 1, model.RequestStatus("DONE"), false)

	assert.Equal(t, "VALIDATION_ERROR", appCode(t, err))
}

func TestRequestService_ChangeStatus_NotFound(t *testing.T) {
	svc, d := newRequestService(t)
	runTx(d.tx)
	d.requests.On("LockStatus", mock.Anything, int64(404)).
		Return(model.RequestStatus(""), int64(0), repository.ErrRequestNotFound)

	_, err := svc.ChangeStatus(context.Background(), 404, model.StatusInProgress, false)

	assert.True(t, service.IsNotFound(err))
}

func TestRequestService_CreateRequest(t *testing.T) {
	mechanics := model.Team{ID: 3, Name: "Mechanics", MemberIDs: []int64{10, 11}}
	electricians := model.Team{ID: 4, Name: "Electricians", MemberIDs: []int64{20}}
	press := model.Equipment{ID: 7, Name: "Press", DefaultTeamID: ptr(int64(3))}
	lathe := model.Equipment{ID: 8, Name: "Lathe"}
	when := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      service.RequestInput
		setupMocks func(d requestDeps)
		wantTeam   *int64
		wantType   model.RequestType
		wantCode   string
	}{
		{
			name:  "team propagated from equipment",
			input: service.RequestInput{Subject: "Oil leak", EquipmentID: 7, ScheduledDate: when},
			setupMocks: func(d requestDeps) {
				d.equipment.On("Get", mock.Anything, int64(7)).Return(press, nil)
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
			},
			wantTeam: ptr(int64(3)),
			wantType: model.TypeCorrective,
		},
		{
			name: "explicit team is kept",
			input: service.RequestInput{
				Subject: "Rewire", EquipmentID: 7, TeamID: ptr(int64(4)), TechnicianID: ptr(int64(20)),
				RequestType: model.TypePreventive, ScheduledDate: when,
			},
			setupMocks: func(d requestDeps) {
				d.equipment.On("Get", mock.Anything, int64(7)).Return(press, nil)
				d.teams.On("Get", mock.Anything, int64(4)).Return(electricians, nil)
			},
			wantTeam: ptr(int64(4)),
			wantType: model.TypePreventive,
		},
		{
			name: "technician outside the team",
			input: service.RequestInput{
				Subject: "Oil leak", EquipmentID: 7, TechnicianID: ptr(int64(20)), ScheduledDate: when,
			},
			setupMocks: func(d requestDeps) {
				d.equipment.On("Get", mock.Anything, int64(7)).Return(press, nil)
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
			},
			wantCode: "INVALID_ASSIGNMENT",
		},
		{
			name: "technician without team",
			input: service.RequestInput{
				Subject: "Noise", EquipmentID: 8, TechnicianID: ptr(int64(10)), ScheduledDate: when,
			},
			setupMocks: func(d requestDeps) {
				d.equipment.On("Get", mock.Anything, int64(8)).Return(lathe, nil)
			},
			wantCode: "INVALID_ASSIGNMENT",
		},
		{
			name:       "blank subject",
			input:      service.RequestInput{Subject: "  ", EquipmentID: 7},
			setupMocks: func(d requestDeps) {},
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:  "unknown equipment",
			input: service.RequestInput{Subject: "Noise", EquipmentID: 99},
			setupMocks: func(d requestDeps) {
				d.equipment.On("Get", mock.Anything, int64(99)).Return(model.Equipment{}, repository.ErrEquipmentNotFound)
			},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRequestService(t)
			tt.setupMocks(d)
			if tt.wantCode == "" {
				d.requests.On("Create", mock.Anything, mock.AnythingOfType("model.MaintenanceRequest")).
					Return(func(ctx context.Context, mr model.MaintenanceRequest) model.MaintenanceRequest {
						mr.ID = 1
						return mr
					}, nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			}

			got, err := svc.CreateRequest(context.Background(), tt.input)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				d.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.StatusNew, got.Status)
			assert.Equal(t, tt.wantType, got.RequestType)
			assert.Equal(t, tt.wantTeam, got.TeamID)
		})
	}
}

func TestRequestService_CreateRequest_AssignmentFieldError(t *testing.T) {
	svc, d := newRequestService(t)
	d.equipment.On("Get", mock.Anything, int64(7)).
		Return(model.Equipment{ID: 7, DefaultTeamID: ptr(int64(3))}, nil)
	d.teams.On("Get", mock.Anything, int64(3)).
		Return(model.Team{ID: 3, Name: "Mechanics", MemberIDs: []int64{10}}, nil)

	_, err := svc.CreateRequest(context.Background(), service.RequestInput{
		Subject: "Oil leak", EquipmentID: 7, TechnicianID: ptr(int64(20)),
	})

	var app *service.AppError
	require.ErrorAs(t, err, &app)
	require.Contains(t, app.Fields, "technician")
	assert.Equal(t, []string{`Technician must be a member of team "Mechanics"`}, app.Fields["technician"])
}

func TestRequestService_UpdateRequest(t *testing.T) {
	mechanics := model.Team{ID: 3, Name: "Mechanics", MemberIDs: []int64{10}}
	current := model.MaintenanceRequest{
		ID: 1, Subject: "Oil leak", EquipmentID: 7, RequestType: model.TypeCorrective,
		Status: model.StatusInProgress, TeamID: ptr(int64(3)), TechnicianID: ptr(int64(10)),
	}

	tests := []struct {
		name       string
		patch      service.RequestPatch
		setupMocks func(d requestDeps)
		check      func(t *testing.T, mr model.MaintenanceRequest)
		wantCode   string
	}{
		{
			name:  "subject change keeps status",
			patch: service.RequestPatch{Subject: model.Some("Oil leak, left side")},
			setupMocks: func(d requestDeps) {
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
			},
			check: func(t *testing.T, mr model.MaintenanceRequest) {
				assert.Equal(t, "Oil leak, left side", mr.Subject)
				assert.Equal(t, model.StatusInProgress, mr.Status)
			},
		},
		{
			name:       "clearing the team while a technician stays is rejected",
			patch:      service.RequestPatch{TeamID: model.Some[*int64](nil)},
			setupMocks: func(d requestDeps) {},
			wantCode:   "INVALID_ASSIGNMENT",
		},
		{
			name: "moving to a team without the technician is rejected",
			patch: service.RequestPatch{TeamID: model.Some(ptr(int64(4)))},
			setupMocks: func(d requestDeps) {
				d.teams.On("Get", mock.Anything, int64(4)).Return(model.Team{ID: 4, Name: "Electricians"}, nil)
			},
			wantCode: "INVALID_ASSIGNMENT",
		},
		{
			name: "clearing team and technician together",
			patch: service.RequestPatch{
				TeamID:       model.Some[*int64](nil),
				TechnicianID: model.Some[*int64](nil),
			},
			setupMocks: func(d requestDeps) {},
			check: func(t *testing.T, mr model.MaintenanceRequest) {
				assert.Nil(t, mr.TeamID)
				assert.Nil(t, mr.TechnicianID)
			},
		},
		{
			name:  "unknown request type",
			patch: service.RequestPatch{RequestType: model.Some(model.RequestType("URGENT"))},
			setupMocks: func(d requestDeps) {},
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRequestService(t)
			d.requests.On("Get", mock.Anything, int64(1)).Return(current, nil)
			tt.setupMocks(d)
			if tt.wantCode == "" {
				d.requests.On("Update", mock.Anything, mock.AnythingOfType("model.MaintenanceRequest")).
					Return(func(ctx context.Context, mr model.MaintenanceRequest) model.MaintenanceRequest {
						return mr
					}, nil)
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			}

			got, err := svc.UpdateRequest(context.Background(), 1, tt.patch)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				d.requests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestRequestService_UpdateRequest_EquipmentChangeFillsEmptyTeam(t *testing.T) {
	svc, d := newRequestService(t)
	d.requests.On("Get", mock.Anything, int64(1)).
		Return(model.MaintenanceRequest{ID: 1, Subject: "Noise", EquipmentID: 8}, nil)
	d.equipment.On("Get", mock.Anything, int64(7)).
		Return(model.Equipment{ID: 7, DefaultTeamID: ptr(int64(3))}, nil)
	d.teams.On("Get", mock.Anything, int64(3)).Return(model.Team{ID: 3, Name: "Mechanics"}, nil)
	d.requests.On("Update", mock.Anything, mock.AnythingOfType("model.MaintenanceRequest")).
		Return(func(ctx context.Context, mr model.MaintenanceRequest) model.MaintenanceRequest {
			return mr
		}, nil)
	d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)

	got, err := svc.UpdateRequest(context.Background(), 1, service.RequestPatch{EquipmentID: model.Some(int64(7))})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.EquipmentID)
	assert.Equal(t, ptr(int64(3)), got.TeamID)
}

func TestRequestService_AssignTechnician(t *testing.T) {
	mechanics := model.Team{ID: 3, Name: "Mechanics", MemberIDs: []int64{10, 11}}

	tests := []struct {
		name       string
		request    model.MaintenanceRequest
		technician *int64
		setupMocks func(d requestDeps)
		wantCode   string
	}{
		{
			name:       "member of the team",
			request:    model.MaintenanceRequest{ID: 1, TeamID: ptr(int64(3))},
			technician: ptr(int64(11)),
			setupMocks: func(d requestDeps) {
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
				d.requests.On("SetTechnician", mock.Anything, int64(1), ptr(int64(11))).Return(nil)
			},
		},
		{
			name:       "unassign",
			request:    model.MaintenanceRequest{ID: 1, TeamID: ptr(int64(3)), TechnicianID: ptr(int64(10))},
			technician: nil,
			setupMocks: func(d requestDeps) {
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
				d.requests.On("SetTechnician", mock.Anything, int64(1), (*int64)(nil)).Return(nil)
			},
		},
		{
			name:       "not a member",
			request:    model.MaintenanceRequest{ID: 1, TeamID: ptr(int64(3))},
			technician: ptr(int64(20)),
			setupMocks: func(d requestDeps) {
				d.teams.On("Get", mock.Anything, int64(3)).Return(mechanics, nil)
			},
			wantCode: "INVALID_ASSIGNMENT",
		},
		{
			name:       "request without team",
			request:    model.MaintenanceRequest{ID: 1},
			technician: ptr(int64(10)),
			setupMocks: func(d requestDeps) {},
			wantCode:   "INVALID_ASSIGNMENT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newRequestService(t)
			runTx(d.tx)
			d.requests.On("Get", mock.Anything, int64(1)).Return(tt.request, nil)
			tt.setupMocks(d)
			if tt.wantCode == "" {
				d.cache.On("InvalidateCalendar", mock.Anything).Return(nil)
			}

			_, err := svc.AssignTechnician(context.Background(), 1, tt.technician)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appCode(t, err))
				d.requests.AssertNotCalled(t, "SetTechnician", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequestService_AllowedTransitions(t *testing.T) {
	svc, d := newRequestService(t)
	d.requests.On("Get", mock.Anything, int64(1)).
		Return(model.MaintenanceRequest{ID: 1, Status: model.StatusInProgress}, nil)

	current, allowed, err := svc.AllowedTransitions(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, current)
	assert.Equal(t, []model.RequestStatus{model.StatusRepaired, model.StatusScrap}, allowed)
}

func TestRequestService_ListRequests_ClampsPageSize(t *testing.T) {
	svc, d := newRequestService(t)
	d.requests.On("List", mock.Anything, model.RequestFilter{Page: 1, PageSize: service.MaxPageSize}).
		Return([]model.MaintenanceRequest{}, 0, nil)

	_, total, err := svc.ListRequests(context.Background(), model.RequestFilter{Page: 0, PageSize: 1000})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestRequestService_CacheFailureDoesNotFailMutation(t *testing.T) {
	svc, d := newRequestService(t)
	d.requests.On("Delete", mock.Anything, int64(1)).Return(nil)
	d.cache.On("InvalidateCalendar", mock.Anything).Return(errors.New("redis down"))

	assert.NoError(t, svc.DeleteRequest(context.Background(), 1))
}
