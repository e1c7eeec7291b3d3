// Package service содержит жизненный цикл секций страницы, которые загружают данные из внешнего источника.
package service

import "club-site/internal/model"

// SectionState задаёт явное состояние секции с данными.
type SectionState int

const (
	// StateLoading: данные ещё не запрошены или запрос не завершён.
	StateLoading SectionState = iota
	// StateUnconfigured: источник данных не настроен, запрос не выполнялся.
	StateUnconfigured
	// StateEmpty: источник вернул ноль строк или запрос завершился ошибкой.
	StateEmpty
	// StatePopulated: есть хотя бы одна строка для отображения.
	StatePopulated
)

func (s SectionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnconfigured:
		return "unconfigured"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// EventsSection содержит результат загрузки секции событий.
// Err заполняется, если запрос завершился ошибкой; посетителю ошибка не показывается.
type EventsSection struct {
	State    SectionState
	Upcoming []model.Event
	Past     []model.Event
	Err      error
}

// Loading сообщает, что секцию нужно показать заглушкой загрузки.
func (s EventsSection) Loading() bool {
	return s.State == StateLoading
}

// TeamSection содержит результат загрузки секции команды.
type TeamSection struct {
	State   SectionState
	Members []model.TeamMember
	Err     error
}

func (s TeamSection) Loading() bool {
	return s.State == StateLoading
}
