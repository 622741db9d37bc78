package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lane_wars/domain"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
	"lane_wars/internal/service/validation"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, nome string, email string, senha string) (domain.UserResponse, error)
	LoginUser(ctx context.Context, email string, senha string) (domain.UserResponse, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, nome string, email string, senha string) (domain.UserResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	nome = strings.TrimSpace(nome)
	email = strings.TrimSpace(email)

	if nome == "" {
		logger.AccessLogger.Warn("empty name", zap.String("request_id", requestID))
		return domain.UserResponse{}, fmt.Errorf("%w: nome is required", domain.ErrValidation)
	}
	if !validation.ValidateEmail(email) {
		logger.AccessLogger.Warn("not correct email", zap.String("request_id", requestID))
		return domain.UserResponse{}, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if !validation.ValidatePassword(senha) {
		logger.AccessLogger.Warn("not correct password", zap.String("request_id", requestID))
		return domain.UserResponse{}, fmt.Errorf("%w: invalid password", domain.ErrValidation)
	}

	hash, err := middleware.HashPassword(senha)
	if err != nil {
		return domain.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Nome: nome, Email: email, SenhaHash: hash}
	if err := uc.authRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return user.Public(), nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, email string, senha string) (domain.UserResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	user, err := uc.authRepository.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.AccessLogger.Warn("login for unknown email", zap.String("request_id", requestID))
		}
		return domain.UserResponse{}, err
	}

	if !middleware.CheckPassword(user.SenhaHash, senha) {
		logger.AccessLogger.Warn("wrong password", zap.String("request_id", requestID), zap.Int64("user_id", user.ID))
		return domain.UserResponse{}, domain.ErrInvalidCredentials
	}

	return user.Public(), nil
}
