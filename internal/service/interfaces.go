package service

import (
	"context"
	"time"

	"maintenance-service/internal/model"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository описывает контракт каталога пользователей для бизнес-слоя.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
}

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	Create(ctx context.Context, name string, memberIDs []int64) (model.Team, error)
	Update(ctx context.Context, id int64, name *string, memberIDs *[]int64) (model.Team, error)
	Get(ctx context.Context, id int64) (model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
	ReleaseTechnicians(ctx context.Context, teamID int64, keep []int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// EquipmentRepository описывает контракт репозитория оборудования для бизнес-слоя.
type EquipmentRepository interface {
	List(ctx context.Context, limit, offset uint64) ([]model.Equipment, int, error)
	Get(ctx context.Context, id int64) (model.Equipment, error)
	Create(ctx context.Context, e model.Equipment) (model.Equipment, error)
	Update(ctx context.Context, e model.Equipment) (model.Equipment, error)
	MarkUnusable(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// RequestRepository описывает контракт репозитория заявок для бизнес-слоя.
type RequestRepository interface {
	List(ctx context.Context, f model.RequestFilter) ([]model.MaintenanceRequest, int, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]model.MaintenanceRequest, error)
	ListPreventive(ctx context.Context, from, to *time.Time) ([]model.MaintenanceRequest, error)
	Get(ctx context.Context, id int64) (model.MaintenanceRequest, error)
	LockStatus(ctx context.Context, id int64) (model.RequestStatus, int64, error)
	Create(ctx context.Context, mr model.MaintenanceRequest) (model.MaintenanceRequest, error)
	Update(ctx context.Context, mr model.MaintenanceRequest) (model.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error
	SetTechnician(ctx context.Context, id int64, technicianID *int64) error
	Delete(ctx context.Context, id int64) error
}

// CalendarCache описывает кэш календаря, который сбрасывается при изменениях заявок.
// SetCalendar не записывает события, если после CalendarVersion была инвалидация.
type CalendarCache interface {
	GetCalendar(ctx context.Context) ([]model.CalendarEvent, bool, error)
	CalendarVersion(ctx context.Context) (int64, error)
	SetCalendar(ctx context.Context, version int64, events []model.CalendarEvent) (bool, error)
	InvalidateCalendar(ctx context.Context) error
}
