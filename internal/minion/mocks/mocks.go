package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lane_wars/domain"
)

type MockMinionRepository struct {
	mock.Mock
}

func (m *MockMinionRepository) Create(ctx context.Context, minion *domain.Minion) error {
	args := m.Called(ctx, minion)
	return args.Error(0)
}

func (m *MockMinionRepository) ListAll(ctx context.Context) ([]domain.Minion, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Minion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMinionRepository) GetByID(ctx context.Context, id int64) (domain.Minion, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Minion), args.Bool(1), args.Error(2)
}

func (m *MockMinionRepository) Update(ctx context.Context, id int64, minion domain.Minion) error {
	args := m.Called(ctx, id, minion)
	return args.Error(0)
}

func (m *MockMinionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMinionRepository) ListByWave(ctx context.Context, waveID int64) ([]domain.Minion, error) {
	args := m.Called(ctx, waveID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Minion), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMinionUsecase struct {
	mock.Mock
}

func (m *MockMinionUsecase) CreateMinion(ctx context.Context, req domain.MinionRequest) (domain.Minion, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Minion), args.Error(1)
}

func (m *MockMinionUsecase) ListMinions(ctx context.Context) ([]domain.Minion, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Minion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMinionUsecase) GetMinion(ctx context.Context, id int64) (domain.Minion, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Minion), args.Bool(1), args.Error(2)
}

func (m *MockMinionUsecase) UpdateMinion(ctx context.Context, id int64, req domain.MinionRequest) (domain.Minion, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.Minion), args.Error(1)
}

func (m *MockMinionUsecase) DeleteMinion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
