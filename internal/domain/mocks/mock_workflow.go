// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ProfeJavix/lua-localizer/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow and registers expectation checks on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	w := &MockWorkflow{}
	w.Mock.Test(t)

	t.Cleanup(func() { w.AssertExpectations(t) })

	return w
}

// Localize provides a mock function.
func (_m *MockWorkflow) Localize(ctx context.Context, args domain.LocalizeArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// ListCatalog provides a mock function.
func (_m *MockWorkflow) ListCatalog(ctx context.Context, args domain.CatalogArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
