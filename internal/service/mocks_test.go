package service

import (
	"context"

	"coaching_marketplace/internal/model"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository interfaces. Tests assert
// on call counts to prove rejected payloads never reach storage.

type mockCreditPackageRepo struct{ mock.Mock }

func (m *mockCreditPackageRepo) FindAll(ctx context.Context) ([]model.CreditPackage, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.CreditPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreditPackageRepo) FindByName(ctx context.Context, name string) (*model.CreditPackage, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*model.CreditPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreditPackageRepo) Create(ctx context.Context, pkg *model.CreditPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockCreditPackageRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockSkillRepo struct{ mock.Mock }

func (m *mockSkillRepo) FindAll(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *mockSkillRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockCoachRepo struct{ mock.Mock }

func (m *mockCoachRepo) Create(ctx context.Context, coach *model.Coach) error {
	return m.Called(ctx, coach).Error(0)
}

func (m *mockCoachRepo) FindByUserID(ctx context.Context, userID string) (*model.Coach, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*model.Coach), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCourseRepo struct{ mock.Mock }

func (m *mockCourseRepo) Create(ctx context.Context, course *model.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCourseRepo) Update(ctx context.Context, course *model.Course) (int64, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(int64), args.Error(1)
}
