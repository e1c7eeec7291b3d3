package http

import (
	"bytes"
	"net/http"
	"sync"

	"club-site/internal/service"
	"club-site/internal/view"
)

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	const handlerName = "page"

	data := view.PageData{
		Site:     h.Opts.Site,
		Year:     h.Opts.Now().Year(),
		Deferred: h.Opts.Deferred,
		Events:   service.EventsSection{State: service.StateLoading},
		Team:     service.TeamSection{State: service.StateLoading},
	}

	if !h.Opts.Deferred {
		// Load не возвращает ошибок: сбой источника уже свёрнут в пустую секцию.
		ctx := r.Context()
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			data.Events = h.Events.Load(ctx)
		}()
		go func() {
			defer wg.Done()
			data.Team = h.Team.Load(ctx)
		}()
		wg.Wait()
	}

	var buf bytes.Buffer
	if err := h.Renderer.Page(&buf, data); err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to render page", err))
		return
	}
	writeHTML(w, &buf)
}

func (h *Handler) handleEventsSection(w http.ResponseWriter, r *http.Request) {
	const handlerName = "events_section"

	var buf bytes.Buffer
	if err := h.Renderer.Events(&buf, h.Events.Load(r.Context())); err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to render events", err))
		return
	}
	writeHTML(w, &buf)
}

func (h *Handler) handleTeamSection(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_section"

	var buf bytes.Buffer
	if err := h.Renderer.Team(&buf, h.Team.Load(r.Context())); err != nil {
		h.writeError(w, handlerName, service.ErrInternal("failed to render team", err))
		return
	}
	writeHTML(w, &buf)
}

func writeHTML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
