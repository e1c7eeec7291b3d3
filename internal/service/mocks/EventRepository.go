package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"club-site/internal/model"
)

// EventRepository is a mock type for the EventRepository type
type EventRepository struct {
	mock.Mock
}

// ListEvents provides a mock function with given fields: ctx, q
func (_m *EventRepository) ListEvents(ctx context.Context, q model.EventQuery) ([]model.Event, error) {
	ret := _m.Called(ctx, q)

	if rf, ok := ret.Get(0).(func(context.Context, model.EventQuery) ([]model.Event, error)); ok {
		return rf(ctx, q)
	}

	var r0 []model.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Event)
	}
	return r0, ret.Error(1)
}
