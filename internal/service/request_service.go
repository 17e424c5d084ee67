package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/repository"
	"maintenance-service/internal/workflow"
)

// RequestInput: данные для создания заявки.
type RequestInput struct {
	Subject       string
	EquipmentID   int64
	RequestType   model.RequestType
	ScheduledDate time.Time
	Duration      model.Duration
	TeamID        *int64
	TechnicianID  *int64
	CreatedByID   *int64
}

// RequestPatch: частичное обновление заявки. Статус через него не меняется.
type RequestPatch struct {
	Subject       model.Optional[string]
	EquipmentID   model.Optional[int64]
	RequestType   model.Optional[model.RequestType]
	ScheduledDate model.Optional[time.Time]
	Duration      model.Optional[model.Duration]
	TeamID        model.Optional[*int64]
	TechnicianID  model.Optional[*int64]
}

// RequestService содержит бизнес-логику заявок: создание с командой по умолчанию,
// проверку назначения техника, смену статуса и её побочный эффект на оборудование.
type RequestService struct {
	requests  RequestRepository
	equipment EquipmentRepository
	teams     TeamRepository
	tx        TransactionManager
	cache     CalendarCache
	log       *zap.Logger
}

// NewRequestService создаёт сервис заявок.
func NewRequestService(
	requests RequestRepository,
	equipment EquipmentRepository,
	teams TeamRepository,
	tx TransactionManager,
	cache CalendarCache,
	log *zap.Logger,
) *RequestService {
	return &RequestService{
		requests:  requests,
		equipment: equipment,
		teams:     teams,
		tx:        tx,
		cache:     cache,
		log:       log,
	}
}

// ListRequests возвращает страницу заявок по фильтру и общее количество.
func (s *RequestService) ListRequests(ctx context.Context, f model.RequestFilter) ([]model.MaintenanceRequest, int, error) {
	f.Page, f.PageSize = NormalizePage(f.Page, f.PageSize)
	items, total, err := s.requests.List(ctx, f)
	if err != nil {
		return nil, 0, errInternal("failed to list requests", err)
	}
	return items, total, nil
}

// GetRequest возвращает заявку по идентификатору.
func (s *RequestService) GetRequest(ctx context.Context, id int64) (model.MaintenanceRequest, error) {
	mr, err := s.requests.Get(ctx, id)
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to get request", err)
	}
	return mr, nil
}

// CreateRequest создаёт заявку в статусе NEW. Если команда не передана,
// берётся команда оборудования по умолчанию.
func (s *RequestService) CreateRequest(ctx context.Context, in RequestInput) (model.MaintenanceRequest, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return model.MaintenanceRequest{}, ErrField("subject", "This field may not be blank.")
	}
	if in.RequestType == "" {
		in.RequestType = model.TypeCorrective
	}
	if _, err := model.ParseRequestType(string(in.RequestType)); err != nil {
		return model.MaintenanceRequest{}, ErrField("request_type", err.Error())
	}

	eq, err := s.equipment.Get(ctx, in.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return model.MaintenanceRequest{}, ErrField("equipment", invalidPK(in.EquipmentID))
		}
		return model.MaintenanceRequest{}, errInternal("failed to get equipment", err)
	}

	teamID := assignment.DefaultTeam(eq, in.TeamID)
	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	if err := assignment.ValidateTechnician(assignment.ScopeRequestForm, "technician", team, nil, in.TechnicianID); err != nil {
		return model.MaintenanceRequest{}, fromDomainErr(err)
	}

	created, err := s.requests.Create(ctx, model.MaintenanceRequest{
		Subject:       subject,
		EquipmentID:   eq.ID,
		RequestType:   in.RequestType,
		Status:        model.StatusNew,
		ScheduledDate: in.ScheduledDate,
		Duration:      in.Duration,
		TeamID:        teamID,
		TechnicianID:  in.TechnicianID,
		CreatedByID:   in.CreatedByID,
	})
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to create request", err)
	}
	s.invalidateCalendar(ctx)
	return created, nil
}

// UpdateRequest применяет частичное обновление. Правило назначения проверяется
// на итоговом состоянии; при смене оборудования пустая команда заполняется
// командой нового оборудования.
func (s *RequestService) UpdateRequest(ctx context.Context, id int64, patch RequestPatch) (model.MaintenanceRequest, error) {
	current, err := s.requests.Get(ctx, id)
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to get request", err)
	}

	merged := current
	if patch.Subject.Set {
		merged.Subject = strings.TrimSpace(patch.Subject.Value)
		if merged.Subject == "" {
			return model.MaintenanceRequest{}, ErrField("subject", "This field may not be blank.")
		}
	}
	if patch.RequestType.Set {
		if _, err := model.ParseRequestType(string(patch.RequestType.Value)); err != nil {
			return model.MaintenanceRequest{}, ErrField("request_type", err.Error())
		}
		merged.RequestType = patch.RequestType.Value
	}
	merged.ScheduledDate = patch.ScheduledDate.Or(merged.ScheduledDate)
	merged.Duration = patch.Duration.Or(merged.Duration)
	merged.TeamID = patch.TeamID.Or(merged.TeamID)
	merged.TechnicianID = patch.TechnicianID.Or(merged.TechnicianID)

	if patch.EquipmentID.Set && patch.EquipmentID.Value != current.EquipmentID {
		eq, err := s.equipment.Get(ctx, patch.EquipmentID.Value)
		if err != nil {
			if errors.Is(err, repository.ErrEquipmentNotFound) {
				return model.MaintenanceRequest{}, ErrField("equipment", invalidPK(patch.EquipmentID.Value))
			}
			return model.MaintenanceRequest{}, errInternal("failed to get equipment", err)
		}
		merged.EquipmentID = eq.ID
		if !patch.TeamID.Set {
			merged.TeamID = assignment.DefaultTeam(eq, merged.TeamID)
		}
	}

	team, err := s.loadTeam(ctx, merged.TeamID)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	if err := assignment.ValidateTechnician(assignment.ScopeRequestForm, "technician", team, nil, merged.TechnicianID); err != nil {
		return model.MaintenanceRequest{}, fromDomainErr(err)
	}

	updated, err := s.requests.Update(ctx, merged)
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to update request", err)
	}
	s.invalidateCalendar(ctx)
	return updated, nil
}

// DeleteRequest удаляет заявку.
func (s *RequestService) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return mapRequestErr("failed to delete request", err)
	}
	s.invalidateCalendar(ctx)
	return nil
}

// AllowedTransitions возвращает статусы, в которые заявку можно перевести из текущего.
func (s *RequestService) AllowedTransitions(ctx context.Context, id int64) (model.RequestStatus, []model.RequestStatus, error) {
	mr, err := s.requests.Get(ctx, id)
	if err != nil {
		return "", nil, mapRequestErr("failed to get request", err)
	}
	return mr.Status, workflow.AllowedTransitions(mr.Status), nil
}

// ChangeStatus переводит заявку в новый статус в одной транзакции.
// Переход в SCRAP требует confirmed и снимает пригодность оборудования.
// Переход в текущий статус ничего не меняет.
func (s *RequestService) ChangeStatus(ctx context.Context, id int64, to model.RequestStatus, confirmed bool) (model.MaintenanceRequest, error) {
	if _, err := model.ParseStatus(string(to)); err != nil {
		return model.MaintenanceRequest{}, ErrField("status", err.Error())
	}

	applied := false
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		from, equipmentID, err := s.requests.LockStatus(ctx, id)
		if err != nil {
			return err
		}

		t, err := workflow.Plan(from, to)
		if err != nil {
			return err
		}
		if t.NoOp {
			return nil
		}
		if workflow.RequiresConfirmation(to) && !confirmed {
			return ErrDomain("CONFIRMATION_REQUIRED", fmt.Sprintf("changing status to %s must be confirmed", to))
		}

		if err := s.requests.UpdateStatus(ctx, id, to); err != nil {
			return err
		}
		if t.MarksEquipmentUnusable {
			if err := s.equipment.MarkUnusable(ctx, equipmentID); err != nil {
				return fmt.Errorf("mark equipment %d unusable: %w", equipmentID, err)
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to change status", err)
	}

	if applied {
		s.log.Info("request status changed",
			zap.Int64("request_id", id),
			zap.String("status", string(to)),
		)
		s.invalidateCalendar(ctx)
	}
	return s.GetRequest(ctx, id)
}

// AssignTechnician назначает техника заявке (nil снимает назначение).
// Техник должен входить в команду заявки.
func (s *RequestService) AssignTechnician(ctx context.Context, id int64, technicianID *int64) (model.MaintenanceRequest, error) {
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		mr, err := s.requests.Get(ctx, id)
		if err != nil {
			return err
		}
		team, err := s.loadTeam(ctx, mr.TeamID)
		if err != nil {
			return err
		}
		if err := assignment.ValidateTechnician(assignment.ScopeRequestForm, "technician", team, nil, technicianID); err != nil {
			return err
		}
		return s.requests.SetTechnician(ctx, id, technicianID)
	})
	if err != nil {
		return model.MaintenanceRequest{}, mapRequestErr("failed to assign technician", err)
	}
	s.invalidateCalendar(ctx)
	return s.GetRequest(ctx, id)
}

func (s *RequestService) loadTeam(ctx context.Context, id *int64) (*model.Team, error) {
	if id == nil {
		return nil, nil
	}
	team, err := s.teams.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, ErrField("team", invalidPK(*id))
		}
		return nil, errInternal("failed to get team", err)
	}
	return &team, nil
}

func (s *RequestService) invalidateCalendar(ctx context.Context) {
	if err := s.cache.InvalidateCalendar(ctx); err != nil {
		s.log.Warn("calendar cache invalidation failed", zap.Error(err))
	}
}

func mapRequestErr(msg string, err error) error {
	var app *AppError
	if errors.As(err, &app) {
		return app
	}
	var assignErr *assignment.InvalidAssignmentError
	switch {
	case errors.As(err, &assignErr):
		return errAssignment(assignErr)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return errTransition(err)
	case errors.Is(err, repository.ErrRequestNotFound):
		return ErrNotFound("maintenance request not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrField("technician", "user does not exist")
	case errors.Is(err, repository.ErrInvalidReference):
		return ErrBadRequest("referenced equipment, team or user does not exist")
	}
	return errInternal(msg, err)
}

func invalidPK(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
