package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"club-site/internal/model"
)

// TeamRepository is a mock type for the TeamRepository type
type TeamRepository struct {
	mock.Mock
}

// ListMembers provides a mock function with given fields: ctx
func (_m *TeamRepository) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]model.TeamMember, error)); ok {
		return rf(ctx)
	}

	var r0 []model.TeamMember
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.TeamMember)
	}
	return r0, ret.Error(1)
}
