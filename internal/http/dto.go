// Package http реализует HTTP-обработчики страницы, фрагментов секций и JSON API.
package http

import "club-site/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type eventsResponse struct {
	Upcoming []model.Event `json:"upcoming"`
	Past     []model.Event `json:"past"`
}

type teamResponse struct {
	Members []model.TeamMember `json:"members"`
}
