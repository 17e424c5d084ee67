package http

import (
	"net/http"
	"time"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	const handlerName = "calendar"

	q := r.URL.Query()
	from, err := parseInstant(q.Get("from"))
	if err != nil {
		h.writeError(w, handlerName, service.ErrField("from", err.Error()))
		return
	}
	to, err := parseInstant(q.Get("to"))
	if err != nil {
		h.writeError(w, handlerName, service.ErrField("to", err.Error()))
		return
	}
	if from != nil && to != nil && !to.After(*from) {
		h.writeError(w, handlerName, service.ErrField("to", "Must be after from."))
		return
	}

	events, err := h.Calendar.Events(r.Context(), from, to)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if events == nil {
		events = []model.CalendarEvent{}
	}

	writeJSON(w, http.StatusOK, events)
}

// parseInstant принимает RFC 3339 или дату YYYY-MM-DD (начало суток UTC).
func parseInstant(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d.Time, nil
}
