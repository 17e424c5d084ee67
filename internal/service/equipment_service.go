package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
)

// EquipmentPatch: частичное обновление оборудования.
type EquipmentPatch struct {
	Name                model.Optional[string]
	SerialNumber        model.Optional[string]
	DepartmentOrOwner   model.Optional[string]
	Location            model.Optional[string]
	PurchaseDate        model.Optional[model.Date]
	WarrantyEnd         model.Optional[*model.Date]
	DefaultTeamID       model.Optional[*int64]
	DefaultTechnicianID model.Optional[*int64]
	IsUsable            model.Optional[bool]
}

func (p EquipmentPatch) apply(e model.Equipment) model.Equipment {
	e.Name = p.Name.Or(e.Name)
	e.SerialNumber = p.SerialNumber.Or(e.SerialNumber)
	e.DepartmentOrOwner = p.DepartmentOrOwner.Or(e.DepartmentOrOwner)
	e.Location = p.Location.Or(e.Location)
	e.PurchaseDate = p.PurchaseDate.Or(e.PurchaseDate)
	e.WarrantyEnd = p.WarrantyEnd.Or(e.WarrantyEnd)
	e.DefaultTeamID = p.DefaultTeamID.Or(e.DefaultTeamID)
	e.DefaultTechnicianID = p.DefaultTechnicianID.Or(e.DefaultTechnicianID)
	e.IsUsable = p.IsUsable.Or(e.IsUsable)
	return e
}

// EquipmentService содержит бизнес-логику учёта оборудования.
type EquipmentService struct {
	equipment EquipmentRepository
	requests  RequestRepository
	teams     TeamRepository
	users     UserRepository
	cache     CalendarCache
	log       *zap.Logger
}

// NewEquipmentService создаёт сервис оборудования.
func NewEquipmentService(
	equipment EquipmentRepository,
	requests RequestRepository,
	teams TeamRepository,
	users UserRepository,
	cache CalendarCache,
	log *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipment: equipment,
		requests:  requests,
		teams:     teams,
		users:     users,
		cache:     cache,
		log:       log,
	}
}

// ListEquipment возвращает страницу оборудования и общее количество.
func (s *EquipmentService) ListEquipment(ctx context.Context, page, pageSize int) ([]model.Equipment, int, error) {
	limit, offset := pageBounds(page, pageSize)
	items, total, err := s.equipment.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, errInternal("failed to list equipment", err)
	}
	return items, total, nil
}

// GetEquipment возвращает оборудование по идентификатору.
func (s *EquipmentService) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	e, err := s.equipment.Get(ctx, id)
	if err != nil {
		return model.Equipment{}, mapEquipmentErr("failed to get equipment", err)
	}
	return e, nil
}

// CreateEquipment создаёт оборудование. Техник по умолчанию должен входить в команду по умолчанию.
func (s *EquipmentService) CreateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.SerialNumber = strings.TrimSpace(e.SerialNumber)
	if err := s.validate(ctx, e); err != nil {
		return model.Equipment{}, err
	}
	created, err := s.equipment.Create(ctx, e)
	if err != nil {
		return model.Equipment{}, mapEquipmentErr("failed to create equipment", err)
	}
	return created, nil
}

// UpdateEquipment применяет частичное обновление и проверяет итоговое состояние.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id int64, patch EquipmentPatch) (model.Equipment, error) {
	current, err := s.equipment.Get(ctx, id)
	if err != nil {
		return model.Equipment{}, mapEquipmentErr("failed to get equipment", err)
	}
	merged := patch.apply(current)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.SerialNumber = strings.TrimSpace(merged.SerialNumber)
	if err := s.validate(ctx, merged); err != nil {
		return model.Equipment{}, err
	}

	updated, err := s.equipment.Update(ctx, merged)
	if err != nil {
		return model.Equipment{}, mapEquipmentErr("failed to update equipment", err)
	}
	s.invalidateCalendar(ctx)
	return updated, nil
}

// DeleteEquipment удаляет оборудование без заявок. Оборудование с заявками не удаляется.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipment.Delete(ctx, id); err != nil {
		return mapEquipmentErr("failed to delete equipment", err)
	}
	s.invalidateCalendar(ctx)
	return nil
}

// EquipmentRequests возвращает все заявки по оборудованию.
func (s *EquipmentService) EquipmentRequests(ctx context.Context, id int64) ([]model.MaintenanceRequest, error) {
	if _, err := s.equipment.Get(ctx, id); err != nil {
		return nil, mapEquipmentErr("failed to get equipment", err)
	}
	items, err := s.requests.ListByEquipment(ctx, id)
	if err != nil {
		return nil, errInternal("failed to list equipment requests", err)
	}
	return items, nil
}

func (s *EquipmentService) validate(ctx context.Context, e model.Equipment) error {
	fields := map[string][]string{}
	if e.Name == "" {
		fields["name"] = append(fields["name"], "This field may not be blank.")
	}
	if e.SerialNumber == "" {
		fields["serial_number"] = append(fields["serial_number"], "This field may not be blank.")
	}
	if e.WarrantyEnd != nil && e.WarrantyEnd.Before(e.PurchaseDate.Time) {
		fields["warranty_end"] = append(fields["warranty_end"], "Warranty end must not precede purchase date.")
	}
	if len(fields) > 0 {
		return ErrValidation(fields)
	}

	var team *model.Team
	if e.DefaultTeamID != nil {
		t, err := s.teams.Get(ctx, *e.DefaultTeamID)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return ErrField("default_team", "team does not exist")
			}
			return errInternal("failed to get team", err)
		}
		team = &t
	}
	if e.DefaultTechnicianID != nil && team == nil {
		if _, err := s.users.GetByID(ctx, *e.DefaultTechnicianID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrField("default_technician", "user does not exist")
			}
			return errInternal("failed to get user", err)
		}
	}
	if err := assignment.ValidateTechnician(assignment.ScopeEquipmentForm, "default_technician", team, nil, e.DefaultTechnicianID); err != nil {
		return fromDomainErr(err)
	}
	return nil
}

func (s *EquipmentService) invalidateCalendar(ctx context.Context) {
	if err := s.cache.InvalidateCalendar(ctx); err != nil {
		s.log.Warn("calendar cache invalidation failed", zap.Error(err))
	}
}

func mapEquipmentErr(msg string, err error) error {
	switch {
	case errors.Is(err, repository.ErrEquipmentNotFound):
		return ErrNotFound("equipment not found")
	case errors.Is(err, repository.ErrSerialExists):
		return ErrDomain("SERIAL_EXISTS", "equipment with this serial number already exists")
	case errors.Is(err, repository.ErrEquipmentInUse):
		return ErrDomain("EQUIPMENT_IN_USE", "equipment has maintenance requests and cannot be deleted")
	case errors.Is(err, repository.ErrInvalidReference):
		return ErrBadRequest("referenced team or technician does not exist")
	}
	return errInternal(msg, err)
}
