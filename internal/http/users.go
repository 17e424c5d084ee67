package http

import (
	"net/http"
	"strconv"

	"maintenance-service/internal/assignment"
	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

func (h *Handler) handleUserList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_list"

	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_get"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleTechnicians отдаёт допустимых техников: /technicians?scope=request|equipment&team=<id>.
func (h *Handler) handleTechnicians(w http.ResponseWriter, r *http.Request) {
	const handlerName = "technicians"

	q := r.URL.Query()
	scope, err := assignment.ParseScope(q.Get("scope"))
	if err != nil {
		h.writeError(w, handlerName, service.ErrField("scope", err.Error()))
		return
	}

	var teamID *int64
	if raw := q.Get("team"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.writeError(w, handlerName, service.ErrField("team", "A valid integer is required."))
			return
		}
		teamID = &id
	}

	candidates, err := h.Users.TechnicianCandidates(r.Context(), scope, teamID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}
