package http

import (
	"net/http"

	"club-site/internal/model"
)

// Ошибки источника не доходят до клиента: как и на странице, отдаются пустые списки.
func (h *Handler) handleAPIEvents(w http.ResponseWriter, r *http.Request) {
	section := h.Events.Load(r.Context())

	resp := eventsResponse{
		Upcoming: nonNil(section.Upcoming),
		Past:     nonNil(section.Past),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleAPITeam(w http.ResponseWriter, r *http.Request) {
	section := h.Team.Load(r.Context())

	resp := teamResponse{Members: nonNil(section.Members)}
	h.writeJSON(w, resp)
}

func nonNil[T model.Event | model.TeamMember](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
