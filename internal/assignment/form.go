package assignment

import "maintenance-service/internal/model"

// RequestForm хранит состояние составляемой заявки: оборудование, команду и техника.
type RequestForm struct {
	EquipmentID  *int64
	TeamID       *int64
	TechnicianID *int64

	team *model.Team
}

// SelectEquipment выбирает оборудование. Команда по умолчанию копируется в форму
// один раз на каждую смену оборудования и только пока команда не выбрана.
// Повторный выбор того же оборудования ничего не меняет.
func (f *RequestForm) SelectEquipment(eq *model.Equipment) {
	if eq == nil {
		f.EquipmentID = nil
		return
	}
	if f.EquipmentID != nil && *f.EquipmentID == eq.ID {
		return
	}
	id := eq.ID
	f.EquipmentID = &id

	if f.TeamID == nil && eq.DefaultTeamID != nil {
		teamID := *eq.DefaultTeamID
		f.TeamID = &teamID
		f.team = nil
		f.TechnicianID = nil
	}
}

// SelectTeam выбирает или очищает (nil) команду. Техник, не входящий в новую команду,
// сбрасывается.
func (f *RequestForm) SelectTeam(team *model.Team) {
	if team == nil {
		f.TeamID = nil
		f.team = nil
		f.TechnicianID = nil
		return
	}
	id := team.ID
	f.TeamID = &id
	f.team = team
	if f.TechnicianID != nil && !team.HasMember(*f.TechnicianID) {
		f.TechnicianID = nil
	}
}

// ResolveTeam сообщает форме состав команды, ID которой был подставлен из оборудования.
func (f *RequestForm) ResolveTeam(team *model.Team) {
	if team != nil && f.TeamID != nil && *f.TeamID == team.ID {
		f.team = team
	}
}

// SelectTechnician выбирает или очищает (nil) техника.
func (f *RequestForm) SelectTechnician(id *int64) {
	f.TechnicianID = id
}

// Candidates возвращает кандидатов в техники для текущей команды формы.
func (f *RequestForm) Candidates() Candidates {
	if f.TeamID == nil {
		return TechnicianCandidates(ScopeRequestForm, nil, nil)
	}
	if f.team == nil {
		return Candidates{Users: []model.User{}, State: StateNoMembers}
	}
	return TechnicianCandidates(ScopeRequestForm, f.team, nil)
}

// Validate проверяет форму перед отправкой.
func (f *RequestForm) Validate() error {
	if f.TechnicianID == nil {
		return nil
	}
	if f.TeamID == nil {
		return &InvalidAssignmentError{Field: "technician", Message: "select team first"}
	}
	if f.team == nil {
		return &InvalidAssignmentError{Field: "team", Message: "team members are not loaded"}
	}
	return ValidateTechnician(ScopeRequestForm, "technician", f.team, nil, f.TechnicianID)
}
