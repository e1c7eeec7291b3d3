package http

import (
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"club-site/internal/model"
)

// Событие в календаре длится столько, если источник не хранит время окончания.
const calendarEventDuration = 2 * time.Hour

// UID события выводится из id строки и не меняется между выгрузками.
var calendarUIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("club-site:events"))

func calendarUID(id model.ID) string {
	return uuid.NewSHA1(calendarUIDNamespace, []byte(id)).String()
}

// handleCalendar отдаёт предстоящие события в формате iCalendar для подписки из календаря.
func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	section := h.Events.Load(r.Context())
	now := h.Opts.Now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + h.Opts.Site.ClubName + "//Events//EN")
	cal.SetXWRCalName(h.Opts.Site.ClubName)

	for _, e := range section.Upcoming {
		event := cal.AddEvent(calendarUID(e.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(e.EventDate)
		event.SetEndAt(e.EventDate.Add(calendarEventDuration))
		event.SetSummary(e.Title)
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
		if e.Venue != "" {
			event.SetLocation(e.Venue)
		}
		if e.RegistrationLink != "" {
			event.SetURL(e.RegistrationLink)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal.Serialize()))
}
