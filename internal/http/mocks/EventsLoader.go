package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"club-site/internal/service"
)

// EventsLoader is a mock type for the EventsLoader type
type EventsLoader struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *EventsLoader) Load(ctx context.Context) service.EventsSection {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) service.EventsSection); ok {
		return rf(ctx)
	}
	return ret.Get(0).(service.EventsSection)
}
