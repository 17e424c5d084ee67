// Package model содержит доменные структуры оборудования, команд, пользователей и заявок на обслуживание.
package model

import "fmt"

// RequestStatus представляет статус заявки на обслуживание.
type RequestStatus string

const (
	// StatusNew означает, что заявка создана и работы ещё не начаты.
	StatusNew RequestStatus = "NEW"
	// StatusInProgress означает, что техник приступил к работам.
	StatusInProgress RequestStatus = "IN_PROGRESS"
	// StatusRepaired означает, что оборудование отремонтировано.
	StatusRepaired RequestStatus = "REPAIRED"
	// StatusScrap означает, что оборудование списывается. Конечный статус.
	StatusScrap RequestStatus = "SCRAP"
)

// AllStatuses перечисляет все статусы в порядке жизненного цикла.
var AllStatuses = []RequestStatus{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

// ParseStatus превращает строку в RequestStatus, отклоняя неизвестные значения.
func ParseStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return RequestStatus(s), nil
	default:
		return "", fmt.Errorf("unknown request status: %q", s)
	}
}

// Label возвращает человекочитаемое название статуса.
func (s RequestStatus) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusRepaired:
		return "Repaired"
	case StatusScrap:
		return "Scrap"
	}
	return string(s)
}

// RequestType представляет тип заявки: плановое или аварийное обслуживание.
type RequestType string

const (
	// TypePreventive — плановое обслуживание, отображается в календаре.
	TypePreventive RequestType = "PREVENTIVE"
	// TypeCorrective — внеплановый ремонт, в календаре не отображается.
	TypeCorrective RequestType = "CORRECTIVE"
)

// AllRequestTypes перечисляет все типы заявок.
var AllRequestTypes = []RequestType{TypePreventive, TypeCorrective}

// ParseRequestType превращает строку в RequestType, отклоняя неизвестные значения.
func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case TypePreventive, TypeCorrective:
		return RequestType(s), nil
	default:
		return "", fmt.Errorf("unknown request type: %q", s)
	}
}

// OnCalendar сообщает, попадают ли заявки этого типа в календарь.
func (t RequestType) OnCalendar() bool {
	return t == TypePreventive
}
