// Package workflow реализует жизненный цикл заявки: таблицу допустимых переходов статуса
// и правило списания оборудования при переходе в SCRAP.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"maintenance-service/internal/model"
)

// ErrInvalidTransition — базовая ошибка недопустимого перехода; используйте errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError описывает отклонённый переход и допустимые альтернативы.
type InvalidTransitionError struct {
	From    model.RequestStatus
	To      model.RequestStatus
	Allowed []model.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		names := make([]string, 0, len(e.Allowed))
		for _, s := range e.Allowed {
			names = append(names, string(s))
		}
		allowed = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Invalid status transition from %s to %s. Allowed transitions: %s", e.From, e.To, allowed)
}

// Is позволяет сравнивать с ErrInvalidTransition через errors.Is.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// AllowedTransitions возвращает статусы, достижимые из s ровно за один переход.
// Для неизвестного статуса возвращает nil.
func AllowedTransitions(s model.RequestStatus) []model.RequestStatus {
	switch s {
	case model.StatusNew:
		return []model.RequestStatus{model.StatusInProgress}
	case model.StatusInProgress:
		return []model.RequestStatus{model.StatusRepaired, model.StatusScrap}
	case model.StatusRepaired:
		return []model.RequestStatus{model.StatusScrap}
	case model.StatusScrap:
		return []model.RequestStatus{}
	}
	return nil
}

// CanTransition сообщает, допустим ли переход from -> to.
func CanTransition(from, to model.RequestStatus) bool {
	for _, s := range AllowedTransitions(from) {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что из статуса нет переходов.
func IsTerminal(s model.RequestStatus) bool {
	return len(AllowedTransitions(s)) == 0
}

// RequiresConfirmation сообщает, что переход в статус необратим и затрагивает оборудование,
// поэтому перед ним нужно явное подтверждение оператора.
func RequiresConfirmation(to model.RequestStatus) bool {
	return to == model.StatusScrap
}

// Transition — проверенный переход статуса и его побочные эффекты.
type Transition struct {
	From model.RequestStatus
	To   model.RequestStatus
	// NoOp: целевой статус совпадает с текущим, ничего применять не нужно.
	NoOp bool
	// MarksEquipmentUnusable: после перехода оборудование должно стать непригодным.
	MarksEquipmentUnusable bool
}

// Plan проверяет переход from -> to. Совпадающий статус даёт идемпотентный NoOp
// без побочных эффектов; недопустимый переход даёт *InvalidTransitionError.
func Plan(from, to model.RequestStatus) (Transition, error) {
	if from == to {
		return Transition{From: from, To: to, NoOp: true}, nil
	}
	if !CanTransition(from, to) {
		return Transition{}, &InvalidTransitionError{
			From:    from,
			To:      to,
			Allowed: AllowedTransitions(from),
		}
	}
	return Transition{
		From:                   from,
		To:                     to,
		MarksEquipmentUnusable: to == model.StatusScrap,
	}, nil
}

// UsableAfter возвращает признак пригодности оборудования после перехода.
// Ни один переход не восстанавливает пригодность.
func UsableAfter(t Transition, current bool) bool {
	if t.MarksEquipmentUnusable {
		return false
	}
	return current
}
