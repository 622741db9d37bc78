package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lane_wars/domain"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
)

type waveRepository struct {
	db *gorm.DB
}

func NewWaveRepository(db *gorm.DB) domain.WaveRepository {
	return &waveRepository{
		db: db,
	}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStore, err))
}

func (r *waveRepository) Create(ctx context.Context, wave *domain.Wave) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Create wave called", zap.String("request_id", requestID), zap.String("lane_azul", wave.LaneAzul), zap.String("lane_vermelho", wave.LaneVermelho))

	if err := r.db.WithContext(ctx).Create(wave).Error; err != nil {
		logger.DBLogger.Error("Failed to create wave", zap.String("request_id", requestID), zap.Error(err))
		return storeError("create wave", err)
	}

	logger.DBLogger.Info("Successfully created wave", zap.String("request_id", requestID), zap.Int64("wave_id", wave.ID))
	return nil
}

func (r *waveRepository) ListAll(ctx context.Context) ([]domain.Wave, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListAll waves called", zap.String("request_id", requestID))

	waves := make([]domain.Wave, 0)
	if err := r.db.WithContext(ctx).Find(&waves).Error; err != nil {
		logger.DBLogger.Error("Failed to list waves", zap.String("request_id", requestID), zap.Error(err))
		return nil, storeError("list waves", err)
	}
	return waves, nil
}

func (r *waveRepository) GetByID(ctx context.Context, id int64) (domain.Wave, bool, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetByID wave called", zap.String("request_id", requestID), zap.Int64("wave_id", id))

	var wave domain.Wave
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&wave).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Wave not found", zap.String("request_id", requestID), zap.Int64("wave_id", id))
			return domain.Wave{}, false, nil
		}
		logger.DBLogger.Error("Failed to get wave", zap.String("request_id", requestID), zap.Error(err))
		return domain.Wave{}, false, storeError("get wave", err)
	}
	return wave, true, nil
}

// Update overwrites every editable column, estado and vencedor included.
// The owner (id_usuario) is set once on create and never rewritten.
func (r *waveRepository) Update(ctx context.Context, id int64, wave domain.Wave) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Update wave called", zap.String("request_id", requestID), zap.Int64("wave_id", id))

	err := r.db.WithContext(ctx).Model(&domain.Wave{}).Where("id = ?", id).Updates(map[string]interface{}{
		"lane_azul":              wave.LaneAzul,
		"tipo_wave_azul":         wave.TipoWaveAzul,
		"campeao_azul":           wave.CampeaoAzul,
		"estrategia_azul":        wave.EstrategiaAzul,
		"minions_total_azul":     wave.MinionsTotalAzul,
		"lane_vermelho":          wave.LaneVermelho,
		"tipo_wave_vermelho":     wave.TipoWaveVermelho,
		"campeao_vermelho":       wave.CampeaoVermelho,
		"estrategia_vermelho":    wave.EstrategiaVermelho,
		"minions_total_vermelho": wave.MinionsTotalVermelho,
		"estado":                 wave.Estado,
		"vencedor":               wave.Vencedor,
	}).Error
	if err != nil {
		logger.DBLogger.Error("Failed to update wave", zap.String("request_id", requestID), zap.Int64("wave_id", id), zap.Error(err))
		return storeError("update wave", err)
	}
	return nil
}

func (r *waveRepository) Delete(ctx context.Context, id int64) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Delete wave called", zap.String("request_id", requestID), zap.Int64("wave_id", id))

	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Wave{}).Error; err != nil {
		logger.DBLogger.Error("Failed to delete wave", zap.String("request_id", requestID), zap.Int64("wave_id", id), zap.Error(err))
		return storeError("delete wave", err)
	}
	return nil
}

// SetOutcome finalizes the wave with the given winner. Repeated calls overwrite.
func (r *waveRepository) SetOutcome(ctx context.Context, id int64, winner string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("SetOutcome called", zap.String("request_id", requestID), zap.Int64("wave_id", id), zap.String("vencedor", winner))

	err := r.db.WithContext(ctx).Model(&domain.Wave{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estado":   domain.StateFinished,
		"vencedor": winner,
	}).Error
	if err != nil {
		logger.DBLogger.Error("Failed to set wave outcome", zap.String("request_id", requestID), zap.Int64("wave_id", id), zap.Error(err))
		return storeError("set wave outcome", err)
	}
	return nil
}
