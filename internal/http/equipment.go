package http

import (
	"net/http"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

func (h *Handler) handleEquipmentList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_list"

	page, size, err := h.pageParams(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	items, total, err := h.Equipment.ListEquipment(r.Context(), page, size)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(r, items, total, page, size))
}

func (h *Handler) handleEquipmentCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_create"

	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	e := model.Equipment{
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		DepartmentOrOwner:   req.DepartmentOrOwner,
		Location:            req.Location,
		PurchaseDate:        *req.PurchaseDate,
		WarrantyEnd:         req.WarrantyEnd,
		DefaultTeamID:       req.DefaultTeam,
		DefaultTechnicianID: req.DefaultTechnician,
		IsUsable:            true,
	}
	if req.IsUsable != nil {
		e.IsUsable = *req.IsUsable
	}

	created, err := h.Equipment.CreateEquipment(r.Context(), e)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleEquipmentGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_get"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	e, err := h.Equipment.GetEquipment(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleEquipmentUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_update"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if req.PurchaseDate.Set && req.PurchaseDate.Value.IsZero() {
		h.writeError(w, handlerName, service.ErrField("purchase_date", "This field may not be null."))
		return
	}

	updated, err := h.Equipment.UpdateEquipment(r.Context(), id, service.EquipmentPatch{
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		DepartmentOrOwner:   req.DepartmentOrOwner,
		Location:            req.Location,
		PurchaseDate:        req.PurchaseDate,
		WarrantyEnd:         req.WarrantyEnd,
		DefaultTeamID:       req.DefaultTeam,
		DefaultTechnicianID: req.DefaultTechnician,
		IsUsable:            req.IsUsable,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleEquipmentDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_delete"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Equipment.DeleteEquipment(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleEquipmentRequests(w http.ResponseWriter, r *http.Request) {
	const handlerName = "equipment_requests"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	items, err := h.Equipment.EquipmentRequests(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if items == nil {
		items = []model.MaintenanceRequest{}
	}

	writeJSON(w, http.StatusOK, items)
}
