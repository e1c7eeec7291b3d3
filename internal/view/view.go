// Package view рендерит страницу клуба и отдельные секции из встроенных шаблонов.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"club-site/internal/model"
	"club-site/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

const (
	dateLayout = "January 2, 2006"
	timeLayout = "03:04 PM"
)

// PageData содержит данные для одного показа страницы.
type PageData struct {
	Site     model.Site
	Events   service.EventsSection
	Team     service.TeamSection
	Year     int
	Deferred bool
}

// Renderer хранит разобранные шаблоны. Безопасен для конкурентного использования.
type Renderer struct {
	tmpl *template.Template
	loc  *time.Location
}

// New разбирает встроенные шаблоны. Даты и время выводятся в поясе loc (UTC, если nil).
func New(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}
	r := &Renderer{loc: loc}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatDate": r.formatDate,
		"formatTime": r.formatTime,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Page рендерит документ целиком.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// Events рендерит только секцию событий (для отложенной загрузки).
func (r *Renderer) Events(w io.Writer, section service.EventsSection) error {
	return r.tmpl.ExecuteTemplate(w, "events", section)
}

func (r *Renderer) Team(w io.Writer, section service.TeamSection) error {
	return r.tmpl.ExecuteTemplate(w, "team", section)
}

func (r *Renderer) formatDate(t time.Time) string {
	return t.In(r.loc).Format(dateLayout)
}

func (r *Renderer) formatTime(t time.Time) string {
	return t.In(r.loc).Format(timeLayout)
}

// StaticHandler отдаёт встроенные стили и скрипт. Монтируется со срезанным префиксом.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static filesystem: " + err.Error())
	}
	fileServer := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path == "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
