package http

import (
	"net/http"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	teams, err := h.Teams.ListTeams(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}

	writeJSON(w, http.StatusOK, teams)
}

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.CreateTeam(r.Context(), req.Name, req.MemberIDs)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, team)
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, team)
}

func (h *Handler) handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_update"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.UpdateTeam(r.Context(), id, service.TeamPatch{
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, team)
}

func (h *Handler) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_delete"

	id, err := pathID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Teams.DeleteTeam(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
