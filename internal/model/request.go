package model

import "time"

// MaintenanceRequest описывает заявку на обслуживание оборудования.
// Technician имеет смысл только при заданной Team и должен входить в её состав.
type MaintenanceRequest struct {
	ID             int64         `json:"id"`
	Subject        string        `json:"subject"`
	EquipmentID    int64         `json:"equipment"`
	EquipmentName  string        `json:"equipment_name"`
	RequestType    RequestType   `json:"request_type"`
	Status         RequestStatus `json:"status"`
	ScheduledDate  time.Time     `json:"scheduled_date"`
	Duration       Duration      `json:"duration"`
	TeamID         *int64        `json:"team"`
	TeamName       *string       `json:"team_name"`
	TechnicianID   *int64        `json:"technician"`
	TechnicianName *string       `json:"technician_name"`
	CreatedByID    *int64        `json:"created_by"`
	CreatedByName  *string       `json:"created_by_name"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// RequestFilter задаёт необязательные фильтры и пагинацию списка заявок.
// Пустые поля не ограничивают выборку.
type RequestFilter struct {
	Status      *RequestStatus
	RequestType *RequestType
	EquipmentID *int64
	Page        int
	PageSize    int
}

// DefaultCalendarDuration используется для событий календаря без заданной длительности.
const DefaultCalendarDuration = time.Hour

// CalendarEvent — производное представление плановой заявки для календаря.
type CalendarEvent struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	RequestID   int64         `json:"request_id"`
	Equipment   string        `json:"equipment"`
	Technician  string        `json:"technician"`
	Status      RequestStatus `json:"status"`
	RequestType RequestType   `json:"request_type"`
}

// NewCalendarEvent строит событие календаря по заявке.
// Второе значение false, если заявка не плановая и в календарь не попадает.
func NewCalendarEvent(r MaintenanceRequest) (CalendarEvent, bool) {
	if !r.RequestType.OnCalendar() {
		return CalendarEvent{}, false
	}
	d := time.Duration(r.Duration)
	if d <= 0 {
		d = DefaultCalendarDuration
	}
	technician := "Unassigned"
	if r.TechnicianName != nil && *r.TechnicianName != "" {
		technician = *r.TechnicianName
	}
	return CalendarEvent{
		ID:          r.ID,
		Title:       r.Subject,
		Start:       r.ScheduledDate,
		End:         r.ScheduledDate.Add(d),
		RequestID:   r.ID,
		Equipment:   r.EquipmentName,
		Technician:  technician,
		Status:      r.Status,
		RequestType: r.RequestType,
	}, true
}

// Page — страница списка в формате {count, next, previous, results}.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
