// Package assignment выводит допустимых техников по выбранной команде и команду
// по умолчанию из оборудования. Все функции чистые: без ввода-вывода и побочных эффектов.
package assignment

import (
	"errors"
	"fmt"

	"maintenance-service/internal/model"
)

// Scope — контекст, в котором выбирается техник.
type Scope int

const (
	// ScopeRequestForm — форма заявки: без команды выбрать техника нельзя.
	ScopeRequestForm Scope = iota
	// ScopeEquipmentForm — форма оборудования: без команды доступен весь каталог.
	ScopeEquipmentForm
)

// ParseScope разбирает "request" и "equipment".
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", "request":
		return ScopeRequestForm, nil
	case "equipment":
		return ScopeEquipmentForm, nil
	}
	return 0, fmt.Errorf("unknown scope %q", s)
}

// CandidateState описывает состояние выпадающего списка техников.
type CandidateState string

const (
	// StateReady — есть из кого выбирать.
	StateReady CandidateState = "READY"
	// StateSelectTeamFirst — команда не выбрана, список недоступен.
	StateSelectTeamFirst CandidateState = "SELECT_TEAM_FIRST"
	// StateNoMembers — в выбранной команде нет участников.
	StateNoMembers CandidateState = "NO_MEMBERS"
)

// Candidates — множество допустимых техников и состояние выбора.
type Candidates struct {
	Users []model.User   `json:"users"`
	State CandidateState `json:"state"`
}

// Contains сообщает, входит ли пользователь в множество кандидатов.
func (c Candidates) Contains(userID int64) bool {
	for _, u := range c.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// TechnicianCandidates возвращает участников выбранной команды.
// Без команды в ScopeEquipmentForm возвращается весь каталог, в ScopeRequestForm пустое
// множество с состоянием StateSelectTeamFirst.
func TechnicianCandidates(scope Scope, team *model.Team, directory []model.User) Candidates {
	if team == nil {
		if scope == ScopeEquipmentForm {
			users := make([]model.User, len(directory))
			copy(users, directory)
			return Candidates{Users: users, State: StateReady}
		}
		return Candidates{Users: []model.User{}, State: StateSelectTeamFirst}
	}

	users := make([]model.User, 0, len(team.MemberIDs))
	if len(team.Members) > 0 {
		users = append(users, team.Members...)
	} else {
		byID := make(map[int64]model.User, len(directory))
		for _, u := range directory {
			byID[u.ID] = u
		}
		for _, id := range team.MemberIDs {
			if u, ok := byID[id]; ok {
				users = append(users, u)
			}
		}
	}
	if len(users) == 0 {
		return Candidates{Users: users, State: StateNoMembers}
	}
	return Candidates{Users: users, State: StateReady}
}

// ErrInvalidAssignment — базовая ошибка назначения техника вне команды.
var ErrInvalidAssignment = errors.New("invalid assignment")

// InvalidAssignmentError указывает поле формы и причину отказа.
type InvalidAssignmentError struct {
	Field   string
	Message string
}

func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is позволяет сравнивать с ErrInvalidAssignment через errors.Is.
func (e *InvalidAssignmentError) Is(target error) bool {
	return target == ErrInvalidAssignment
}

// ValidateTechnician проверяет, что выбранный техник входит в кандидатов для команды.
// field — имя поля формы ("technician" или "default_technician").
func ValidateTechnician(scope Scope, field string, team *model.Team, directory []model.User, technicianID *int64) error {
	if technicianID == nil {
		return nil
	}
	if team == nil && scope == ScopeRequestForm {
		return &InvalidAssignmentError{Field: field, Message: "select team first"}
	}
	if team != nil && !team.HasMember(*technicianID) {
		return &InvalidAssignmentError{
			Field:   field,
			Message: fmt.Sprintf("Technician must be a member of team %q", team.Name),
		}
	}
	if team == nil && directory != nil && !TechnicianCandidates(scope, nil, directory).Contains(*technicianID) {
		return &InvalidAssignmentError{Field: field, Message: "unknown user"}
	}
	return nil
}

// DefaultTeam возвращает команду заявки при создании: явно выбранную,
// а если её нет, команду оборудования по умолчанию.
func DefaultTeam(eq model.Equipment, explicit *int64) *int64 {
	if explicit != nil {
		return explicit
	}
	if eq.DefaultTeamID == nil {
		return nil
	}
	id := *eq.DefaultTeamID
	return &id
}
