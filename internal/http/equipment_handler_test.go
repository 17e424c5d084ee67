package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

func TestHandler_EquipmentCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(m serviceMocks)
		expectedStatus int
		expectedFields []string
	}{
		{
			name: "Success",
			body: `{"name":"Press","serial_number":"P-1","purchase_date":"2024-01-15","default_team":3}`,
			mockBehavior: func(m serviceMocks) {
				m.equipment.On("CreateEquipment", mock.Anything, mock.MatchedBy(func(e model.Equipment) bool {
					return e.Name == "Press" && e.IsUsable && e.DefaultTeamID != nil && *e.DefaultTeamID == 3
				})).Return(model.Equipment{ID: 1, Name: "Press", IsUsable: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad Request: missing fields",
			body:           `{"name":"Press"}`,
			mockBehavior:   func(m serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"serial_number", "purchase_date"},
		},
		{
			name:           "Bad Request: malformed date",
			body:           `{"name":"Press","serial_number":"P-1","purchase_date":"15.01.2024"}`,
			mockBehavior:   func(m serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Conflict: serial exists",
			body: `{"name":"Press","serial_number":"P-1","purchase_date":"2024-01-15"}`,
			mockBehavior: func(m serviceMocks) {
				m.equipment.On("CreateEquipment", mock.Anything, mock.AnythingOfType("model.Equipment")).
					Return(model.Equipment{}, service.ErrDomain("SERIAL_EXISTS", "equipment with this serial number already exists"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			tt.mockBehavior(m)

			w := do(t, router, http.MethodPost, "/equipment", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if len(tt.expectedFields) > 0 {
				fields := decodeError(t, w).Error.Fields
				for _, f := range tt.expectedFields {
					assert.Contains(t, fields, f)
				}
			}
		})
	}
}

func TestHandler_EquipmentDelete_InUse(t *testing.T) {
	router, m := newTestHandler(t)
	m.equipment.On("DeleteEquipment", mock.Anything, int64(7)).
		Return(service.ErrDomain("EQUIPMENT_IN_USE", "equipment has maintenance requests and cannot be deleted"))

	w := do(t, router, http.MethodDelete, "/equipment/7", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EQUIPMENT_IN_USE", decodeError(t, w).Error.Code)
}

func TestHandler_EquipmentUpdate_PartialPatch(t *testing.T) {
	router, m := newTestHandler(t)
	m.equipment.On("UpdateEquipment", mock.Anything, int64(7), service.EquipmentPatch{
		Location:            model.Some("Hall B"),
		DefaultTechnicianID: model.Some[*int64](nil),
	}).Return(model.Equipment{ID: 7, Location: "Hall B"}, nil)

	w := do(t, router, http.MethodPatch, "/equipment/7", `{"location":"Hall B","default_technician":null}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_EquipmentRequests(t *testing.T) {
	router, m := newTestHandler(t)
	m.equipment.On("EquipmentRequests", mock.Anything, int64(7)).Return(nil, nil)

	w := do(t, router, http.MethodGet, "/equipment/7/requests", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Technicians(t *testing.T) {
	t.Run("team members", func(t *testing.T) {
		router, m := newTestHandler(t)
		m.users.On("TechnicianCandidates", mock.Anything, assignment.ScopeRequestForm, ptr(int64(3))).
			Return(assignment.Candidates{Users: []model.User{{ID: 10}}, State: assignment.StateReady}, nil)

		w := do(t, router, http.MethodGet, "/technicians?scope=request&team=3", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"state":"READY"`)
	})

	t.Run("unknown scope", func(t *testing.T) {
		router, _ := newTestHandler(t)

		w := do(t, router, http.MethodGet, "/technicians?scope=workshop", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Fields, "scope")
	})
}

func TestHandler_TeamCreate(t *testing.T) {
	router, m := newTestHandler(t)
	m.teams.On("CreateTeam", mock.Anything, "Mechanics", []int64{10, 11}).
		Return(model.Team{ID: 1, Name: "Mechanics", MemberIDs: []int64{10, 11}}, nil)

	w := do(t, router, http.MethodPost, "/teams", `{"name":"Mechanics","member_ids":[10,11]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Calendar(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		router, m := newTestHandler(t)
		m.calendar.On("Events", mock.Anything, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
			Return([]model.CalendarEvent{{ID: 1, Title: "Lubrication"}}, nil)

		w := do(t, router, http.MethodGet, "/calendar?from=2026-03-01&to=2026-04-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inverted range", func(t *testing.T) {
		router, _ := newTestHandler(t)

		w := do(t, router, http.MethodGet, "/calendar?from=2026-04-01&to=2026-03-01", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		router, _ := newTestHandler(t)

		w := do(t, router, http.MethodGet, "/calendar?from=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error.Fields, "from")
	})
}
