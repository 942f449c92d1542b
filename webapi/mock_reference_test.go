package webapi

import "github.com/stretchr/testify/mock"

type mockReference struct {
	mock.Mock
}

func (m *mockReference) Length() (uint32, error) {
	args := m.Called()
	return args.Get(0).(uint32), args.Error(1)
}

func (m *mockReference) Add(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockReference) Remove(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockReference) Toggle(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

func (m *mockReference) ToggleForce(token string, force bool) error {
	return m.Called(token, force).Error(0)
}

func (m *mockReference) Contains(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}
