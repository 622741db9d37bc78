package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lane_wars/domain"
)

type MockWaveRepository struct {
	mock.Mock
}

func (m *MockWaveRepository) Create(ctx context.Context, wave *domain.Wave) error {
	args := m.Called(ctx, wave)
	return args.Error(0)
}

func (m *MockWaveRepository) ListAll(ctx context.Context) ([]domain.Wave, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Wave), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWaveRepository) GetByID(ctx context.Context, id int64) (domain.Wave, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Wave), args.Bool(1), args.Error(2)
}

func (m *MockWaveRepository) Update(ctx context.Context, id int64, wave domain.Wave) error {
	args := m.Called(ctx, id, wave)
	return args.Error(0)
}

func (m *MockWaveRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWaveRepository) SetOutcome(ctx context.Context, id int64, winner string) error {
	args := m.Called(ctx, id, winner)
	return args.Error(0)
}

// MockResultCache is a testify mock of domain.ResultCache.
type MockResultCache struct {
	mock.Mock
}

func (m *MockResultCache) Store(ctx context.Context, result domain.SimulationResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultCache) Load(ctx context.Context, waveID int64) (domain.SimulationResult, bool, error) {
	args := m.Called(ctx, waveID)
	return args.Get(0).(domain.SimulationResult), args.Bool(1), args.Error(2)
}

func (m *MockResultCache) Evict(ctx context.Context, waveID int64) error {
	args := m.Called(ctx, waveID)
	return args.Error(0)
}

type MockWaveUsecase struct {
	mock.Mock
}

func (m *MockWaveUsecase) CreateWave(ctx context.Context, req domain.WaveRequest) (domain.Wave, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Wave), args.Error(1)
}

func (m *MockWaveUsecase) ListWaves(ctx context.Context) ([]domain.Wave, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Wave), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWaveUsecase) GetWave(ctx context.Context, id int64) (domain.Wave, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Wave), args.Bool(1), args.Error(2)
}

func (m *MockWaveUsecase) UpdateWave(ctx context.Context, id int64, req domain.WaveRequest) (domain.Wave, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.Wave), args.Error(1)
}

func (m *MockWaveUsecase) DeleteWave(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWaveUsecase) SimulateWave(ctx context.Context, id int64) (domain.SimulationResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.SimulationResult), args.Error(1)
}

func (m *MockWaveUsecase) LastResult(ctx context.Context, id int64) (domain.SimulationResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.SimulationResult), args.Error(1)
}
