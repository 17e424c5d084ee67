// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"maintenance-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type createEquipmentRequest struct {
	Name              string      `json:"name" validate:"required,max=200"`
	SerialNumber      string      `json:"serial_number" validate:"required,max=100"`
	DepartmentOrOwner string      `json:"department_or_owner" validate:"max=200"`
	Location          string      `json:"location" validate:"max=200"`
	PurchaseDate      *model.Date `json:"purchase_date" validate:"required"`
	WarrantyEnd       *model.Date `json:"warranty_end"`
	DefaultTeam       *int64      `json:"default_team" validate:"omitempty,gt=0"`
	DefaultTechnician *int64      `json:"default_technician" validate:"omitempty,gt=0"`
	IsUsable          *bool       `json:"is_usable"`
}

type updateEquipmentRequest struct {
	Name              model.Optional[string]      `json:"name" validate:"omitempty,max=200"`
	SerialNumber      model.Optional[string]      `json:"serial_number" validate:"omitempty,max=100"`
	DepartmentOrOwner model.Optional[string]      `json:"department_or_owner" validate:"omitempty,max=200"`
	Location          model.Optional[string]      `json:"location" validate:"omitempty,max=200"`
	PurchaseDate      model.Optional[model.Date]  `json:"purchase_date"`
	WarrantyEnd       model.Optional[*model.Date] `json:"warranty_end"`
	DefaultTeam       model.Optional[*int64]      `json:"default_team" validate:"omitempty,gt=0"`
	DefaultTechnician model.Optional[*int64]      `json:"default_technician" validate:"omitempty,gt=0"`
	IsUsable          model.Optional[bool]        `json:"is_usable"`
}

type createTeamRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	MemberIDs []int64 `json:"member_ids" validate:"dive,gt=0"`
}

type updateTeamRequest struct {
	Name      model.Optional[string]  `json:"name" validate:"omitempty,max=100"`
	MemberIDs model.Optional[[]int64] `json:"member_ids"`
}

type createRequestRequest struct {
	Subject       string         `json:"subject" validate:"required,max=200"`
	Equipment     int64          `json:"equipment" validate:"required,gt=0"`
	RequestType   string         `json:"request_type" validate:"omitempty,request_type"`
	ScheduledDate *time.Time     `json:"scheduled_date" validate:"required"`
	Duration      model.Duration `json:"duration" validate:"gte=0"`
	Team          *int64         `json:"team" validate:"omitempty,gt=0"`
	Technician    *int64         `json:"technician" validate:"omitempty,gt=0"`
	CreatedBy     *int64         `json:"created_by" validate:"omitempty,gt=0"`
}

type updateRequestRequest struct {
	Subject       model.Optional[string]         `json:"subject" validate:"omitempty,max=200"`
	Equipment     model.Optional[int64]          `json:"equipment" validate:"omitempty,gt=0"`
	RequestType   model.Optional[string]         `json:"request_type" validate:"omitempty,request_type"`
	ScheduledDate model.Optional[time.Time]      `json:"scheduled_date"`
	Duration      model.Optional[model.Duration] `json:"duration"`
	Team          model.Optional[*int64]         `json:"team" validate:"omitempty,gt=0"`
	Technician    model.Optional[*int64]         `json:"technician" validate:"omitempty,gt=0"`
	Status        model.Optional[string]         `json:"status"`
}

type statusChangeRequest struct {
	Status  string `json:"status" validate:"required,request_status"`
	Confirm bool   `json:"confirm"`
}

type assignRequest struct {
	Technician model.Optional[*int64] `json:"technician" validate:"omitempty,gt=0"`
}

type transitionsResponse struct {
	Status   model.RequestStatus   `json:"status"`
	Allowed  []model.RequestStatus `json:"allowed"`
	Terminal bool                  `json:"terminal"`
}
