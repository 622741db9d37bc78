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

type minionRepository struct {
	db *gorm.DB
}

func NewMinionRepository(db *gorm.DB) domain.MinionRepository {
	return &minionRepository{
		db: db,
	}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStore, err))
}

func (r *minionRepository) Create(ctx context.Context, minion *domain.Minion) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Create minion called", zap.String("request_id", requestID), zap.String("tipo", minion.Tipo), zap.String("lado", minion.Lado))

	if err := r.db.WithContext(ctx).Create(minion).Error; err != nil {
		logger.DBLogger.Error("Failed to create minion", zap.String("request_id", requestID), zap.Error(err))
		return storeError("create minion", err)
	}

	logger.DBLogger.Info("Successfully created minion", zap.String("request_id", requestID), zap.Int64("minion_id", minion.ID))
	return nil
}

func (r *minionRepository) ListAll(ctx context.Context) ([]domain.Minion, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListAll minions called", zap.String("request_id", requestID))

	minions := make([]domain.Minion, 0)
	if err := r.db.WithContext(ctx).Find(&minions).Error; err != nil {
		logger.DBLogger.Error("Failed to list minions", zap.String("request_id", requestID), zap.Error(err))
		return nil, storeError("list minions", err)
	}
	return minions, nil
}

func (r *minionRepository) GetByID(ctx context.Context, id int64) (domain.Minion, bool, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetByID minion called", zap.String("request_id", requestID), zap.Int64("minion_id", id))

	var minion domain.Minion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&minion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Minion not found", zap.String("request_id", requestID), zap.Int64("minion_id", id))
			return domain.Minion{}, false, nil
		}
		logger.DBLogger.Error("Failed to get minion", zap.String("request_id", requestID), zap.Error(err))
		return domain.Minion{}, false, storeError("get minion", err)
	}
	return minion, true, nil
}

// Update replaces every writable column of the minion, including NULLs.
func (r *minionRepository) Update(ctx context.Context, id int64, minion domain.Minion) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Update minion called", zap.String("request_id", requestID), zap.Int64("minion_id", id))

	err := r.db.WithContext(ctx).Model(&domain.Minion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tipo":         minion.Tipo,
		"vida":         minion.Vida,
		"dano":         minion.Dano,
		"defesa":       minion.Defesa,
		"velocidade":   minion.Velocidade,
		"range_minion": minion.RangeMinion,
		"lado":         minion.Lado,
		"id_wave":      minion.IDWave,
	}).Error
	if err != nil {
		logger.DBLogger.Error("Failed to update minion", zap.String("request_id", requestID), zap.Int64("minion_id", id), zap.Error(err))
		return storeError("update minion", err)
	}
	return nil
}

func (r *minionRepository) Delete(ctx context.Context, id int64) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Delete minion called", zap.String("request_id", requestID), zap.Int64("minion_id", id))

	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Minion{}).Error; err != nil {
		logger.DBLogger.Error("Failed to delete minion", zap.String("request_id", requestID), zap.Int64("minion_id", id), zap.Error(err))
		return storeError("delete minion", err)
	}
	return nil
}

func (r *minionRepository) ListByWave(ctx context.Context, waveID int64) ([]domain.Minion, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListByWave called", zap.String("request_id", requestID), zap.Int64("wave_id", waveID))

	minions := make([]domain.Minion, 0)
	if err := r.db.WithContext(ctx).Where("id_wave = ?", waveID).Find(&minions).Error; err != nil {
		logger.DBLogger.Error("Failed to list wave minions", zap.String("request_id", requestID), zap.Int64("wave_id", waveID), zap.Error(err))
		return nil, storeError("list wave minions", err)
	}
	return minions, nil
}
