package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lane_wars/domain"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
)

type WaveUsecase interface {
	CreateWave(ctx context.Context, req domain.WaveRequest) (domain.Wave, error)
	ListWaves(ctx context.Context) ([]domain.Wave, error)
	GetWave(ctx context.Context, id int64) (domain.Wave, bool, error)
	UpdateWave(ctx context.Context, id int64, req domain.WaveRequest) (domain.Wave, error)
	DeleteWave(ctx context.Context, id int64) error
	SimulateWave(ctx context.Context, id int64) (domain.SimulationResult, error)
	LastResult(ctx context.Context, id int64) (domain.SimulationResult, error)
}

type waveUsecase struct {
	waveRepository   domain.WaveRepository
	minionRepository domain.MinionRepository
	resultCache      domain.ResultCache
}

func NewWaveUsecase(waveRepository domain.WaveRepository, minionRepository domain.MinionRepository, resultCache domain.ResultCache) WaveUsecase {
	return &waveUsecase{
		waveRepository:   waveRepository,
		minionRepository: minionRepository,
		resultCache:      resultCache,
	}
}

// CreateWave starts the wave in progress with no winner unless the request
// says otherwise. An authenticated caller owns the wave when id_usuario is absent.
func (uc *waveUsecase) CreateWave(ctx context.Context, req domain.WaveRequest) (domain.Wave, error) {
	wave := req.ToWave()
	if wave.Estado == "" {
		wave.Estado = domain.StateInProgress
	}
	wave.Vencedor = domain.NilIfZero(wave.Vencedor)
	wave.IDUsuario = domain.NilIfZero(wave.IDUsuario)
	if wave.IDUsuario == nil {
		if userID, ok := middleware.UserIDFromContext(ctx); ok {
			wave.IDUsuario = &userID
		}
	}

	if err := uc.waveRepository.Create(ctx, &wave); err != nil {
		return domain.Wave{}, err
	}
	return wave, nil
}

func (uc *waveUsecase) ListWaves(ctx context.Context) ([]domain.Wave, error) {
	return uc.waveRepository.ListAll(ctx)
}

func (uc *waveUsecase) GetWave(ctx context.Context, id int64) (domain.Wave, bool, error) {
	return uc.waveRepository.GetByID(ctx, id)
}

func (uc *waveUsecase) UpdateWave(ctx context.Context, id int64, req domain.WaveRequest) (domain.Wave, error) {
	requestID := middleware.GetRequestID(ctx)

	wave := req.ToWave()
	if wave.Estado == "" {
		wave.Estado = domain.StateInProgress
	}
	if err := uc.waveRepository.Update(ctx, id, wave); err != nil {
		return domain.Wave{}, err
	}

	stored, found, err := uc.waveRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Wave{}, err
	}
	if !found {
		logger.AccessLogger.Warn("updated wave does not exist", zap.String("request_id", requestID), zap.Int64("wave_id", id))
		return domain.Wave{}, fmt.Errorf("wave %d: %w", id, domain.ErrNotFound)
	}
	return stored, nil
}

func (uc *waveUsecase) DeleteWave(ctx context.Context, id int64) error {
	if err := uc.waveRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.resultCache.Evict(ctx, id); err != nil {
		logger.AccessLogger.Warn("failed to evict simulation result",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.Int64("wave_id", id),
			zap.Error(err),
		)
	}
	return nil
}

// SimulateWave recomputes the push of both sides from the current minions,
// finalizes the wave and overwrites any previous result.
func (uc *waveUsecase) SimulateWave(ctx context.Context, id int64) (domain.SimulationResult, error) {
	requestID := middleware.GetRequestID(ctx)

	wave, found, err := uc.waveRepository.GetByID(ctx, id)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	if !found {
		logger.AccessLogger.Warn("simulated wave does not exist", zap.String("request_id", requestID), zap.Int64("wave_id", id))
		return domain.SimulationResult{}, fmt.Errorf("wave %d: %w", id, domain.ErrNotFound)
	}

	minions, err := uc.minionRepository.ListByWave(ctx, id)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	result := SimulatePush(wave, minions)
	if err := uc.waveRepository.SetOutcome(ctx, id, result.Vencedor); err != nil {
		return domain.SimulationResult{}, err
	}

	logger.AccessLogger.Info("wave simulated",
		zap.String("request_id", requestID),
		zap.Int64("wave_id", id),
		zap.Int("minions", len(minions)),
		zap.Float64("push_azul", result.PushAzul),
		zap.Float64("push_vermelho", result.PushVermelho),
		zap.String("vencedor", result.Vencedor),
	)

	if err := uc.resultCache.Store(ctx, result); err != nil {
		logger.AccessLogger.Warn("failed to cache simulation result", zap.String("request_id", requestID), zap.Int64("wave_id", id), zap.Error(err))
	}
	return result, nil
}

func (uc *waveUsecase) LastResult(ctx context.Context, id int64) (domain.SimulationResult, error) {
	result, found, err := uc.resultCache.Load(ctx, id)
	if err != nil {
		logger.AccessLogger.Warn("failed to load simulation result",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.Int64("wave_id", id),
			zap.Error(err),
		)
		return domain.SimulationResult{}, fmt.Errorf("simulation of wave %d: %w", id, domain.ErrNotFound)
	}
	if !found {
		return domain.SimulationResult{}, fmt.Errorf("simulation of wave %d: %w", id, domain.ErrNotFound)
	}
	return result, nil
}
