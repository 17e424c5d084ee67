package http

import (
	"net/http"
	"strconv"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
	"maintenance-service/internal/workflow"
)

// requestFilter разбирает фильтры списка заявок: status, request_type, equipment, page, page_size.
func (h *Handler) requestFilter(r *http.Request) (model.RequestFilter, error) {
	var f model.RequestFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		s, err := model.ParseStatus(raw)
		if err != nil {
			return f, service.ErrField("status", "Select a valid choice.")
		}
		f.Status = &s
	}
	if raw := q.Get("request_type"); raw != "" {
		t, err := model.ParseRequestType(raw)
		if err != nil {
			return f, service.ErrField("request_type", "Select a valid choice.")
		}
		f.RequestType = &t
	}
	if raw := q.Get("equipment"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return f, service.ErrField("equipment", "A valid integer is required.")
		}
		f.EquipmentID = &id
	}

	page, size, err := h.pageParams(r)
	if err != nil {
		return f, err
	}
	f.Page, f.PageSize = page, size
	return f, nil
}

func (h *Handler) handleRequestList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_list"

	f, err := h.requestFilter(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	items, total, err := h.Requests.ListRequests(r.Context(), f)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, newPage(r, items, total, f.Page, f.PageSize))
}

func (h *Handler) handleRequestCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_create"

	var req createRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	created, err := h.Requests.CreateRequest(r.Context(), service.RequestInput{
		Subject:       req.Subject,
		EquipmentID:   req.Equipment,
		RequestType:   model.RequestType(req.RequestType),
		ScheduledDate: *req.ScheduledDate,
		Duration:      req.Duration,
		TeamID:        req.Team,
		TechnicianID:  req.Technician,
		CreatedByID:   req.CreatedBy,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleRequestGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_get"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	mr, err := h.Requests.GetRequest(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, mr)
}

// handleRequestUpdate частично обновляет заявку. Статус меняется только через /status.
func (h *Handler) handleRequestUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_update"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if req.Status.Set {
		h.writeError(w, handlerName, service.ErrField("status", "Status can only be changed via the status endpoint."))
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	patch := service.RequestPatch{
		Subject:       req.Subject,
		EquipmentID:   req.Equipment,
		ScheduledDate: req.ScheduledDate,
		Duration:      req.Duration,
		TeamID:        req.Team,
		TechnicianID:  req.Technician,
	}
	if req.RequestType.Set {
		patch.RequestType = model.Some(model.RequestType(req.RequestType.Value))
	}

	updated, err := h.Requests.UpdateRequest(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_delete"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Requests.DeleteRequest(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRequestTransitions(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_transitions"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	current, allowed, err := h.Requests.AllowedTransitions(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if allowed == nil {
		allowed = []model.RequestStatus{}
	}

	writeJSON(w, http.StatusOK, transitionsResponse{
		Status:   current,
		Allowed:  allowed,
		Terminal: workflow.IsTerminal(current),
	})
}

// handleRequestStatus меняет статус заявки. Для SCRAP в теле нужен confirm: true.
func (h *Handler) handleRequestStatus(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_status"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req statusChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	mr, err := h.Requests.ChangeStatus(r.Context(), id, model.RequestStatus(req.Status), req.Confirm)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, mr)
}

// handleRequestAssign назначает техника; technician: null снимает назначение.
func (h *Handler) handleRequestAssign(w http.ResponseWriter, r *http.Request) {
	const handlerName = "request_assign"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if !req.Technician.Set {
		h.writeError(w, handlerName, service.ErrField("technician", "This field is required."))
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	mr, err := h.Requests.AssignTechnician(r.Context(), id, req.Technician.Value)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, mr)
}
