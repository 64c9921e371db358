package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
)

// MockStore é um mock para a interface kvstore.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) MultiRemove(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Driver() kvstore.Driver {
	return "mock"
}
