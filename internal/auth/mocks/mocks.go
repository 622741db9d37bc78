package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lane_wars/domain"
	"lane_wars/internal/service/middleware"
)

// MockAuthRepository mocks domain.AuthRepository
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAuthUsecase mocks usecase.AuthUsecase
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, nome string, email string, senha string) (domain.UserResponse, error) {
	args := m.Called(ctx, nome, email, senha)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, email string, senha string) (domain.UserResponse, error) {
	args := m.Called(ctx, email, senha)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

// MockJwtTokenService mocks middleware.JwtTokenService
type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(userID int64, tokenExpTime int64) (string, error) {
	args := m.Called(userID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}
