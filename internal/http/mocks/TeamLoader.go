package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"club-site/internal/service"
)

// TeamLoader is a mock type for the TeamLoader type
type TeamLoader struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *TeamLoader) Load(ctx context.Context) service.TeamSection {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) service.TeamSection); ok {
		return rf(ctx)
	}
	return ret.Get(0).(service.TeamSection)
}
