// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/ProfeJavix/lua-localizer/internal/controller"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// MockUI is a mock implementation of controller.UI. Info, Warn and Error are
// recorded with the formatted message as their only argument.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI and registers expectation checks on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	ui := &MockUI{}
	ui.Mock.Test(t)

	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

// Info provides a mock function.
func (_m *MockUI) Info(ctx context.Context, format string, args ...any) {
	_m.Called(ctx, fmt.Sprintf(format, args...))
}

// Warn provides a mock function.
func (_m *MockUI) Warn(ctx context.Context, format string, args ...any) {
	_m.Called(ctx, fmt.Sprintf(format, args...))
}

// Error provides a mock function.
func (_m *MockUI) Error(ctx context.Context, format string, args ...any) {
	_m.Called(ctx, fmt.Sprintf(format, args...))
}

// DisplayReport provides a mock function.
func (_m *MockUI) DisplayReport(ctx context.Context, report m.Report) {
	_m.Called(ctx, report)
}

// DisplaySummary provides a mock function.
func (_m *MockUI) DisplaySummary(ctx context.Context, reports []m.Report) {
	_m.Called(ctx, reports)
}

// DisplayDiff provides a mock function.
func (_m *MockUI) DisplayDiff(ctx context.Context, report m.Report) error {
	ret := _m.Called(ctx, report)
	return ret.Error(0)
}

// DisplayDocument provides a mock function.
func (_m *MockUI) DisplayDocument(ctx context.Context, report m.Report) {
	_m.Called(ctx, report)
}

// DisplayCatalog provides a mock function.
func (_m *MockUI) DisplayCatalog(ctx context.Context, catalog m.Catalog, format controller.CatalogFormat) error {
	ret := _m.Called(ctx, catalog, format)
	return ret.Error(0)
}
