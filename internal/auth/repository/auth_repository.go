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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) CreateUser(ctx context.Context, user *domain.User) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("email", user.Email))

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.DBLogger.Warn("Email already registered", zap.String("request_id", requestID), zap.String("email", user.Email))
			return fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}
		logger.DBLogger.Error("Error creating user", zap.String("request_id", requestID), zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("create user: %w", errors.Join(domain.ErrStore, err))
	}

	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.Int64("user_id", user.ID))
	return nil
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByEmail called", zap.String("request_id", requestID), zap.String("email", email))

	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("email", email))
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		logger.DBLogger.Error("Error getting user", zap.String("request_id", requestID), zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("get user: %w", errors.Join(domain.ErrStore, err))
	}

	return &user, nil
}
