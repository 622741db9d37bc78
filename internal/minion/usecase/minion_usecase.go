package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lane_wars/domain"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
)

type MinionUsecase interface {
	CreateMinion(ctx context.Context, req domain.MinionRequest) (domain.Minion, error)
	ListMinions(ctx context.Context) ([]domain.Minion, error)
	GetMinion(ctx context.Context, id int64) (domain.Minion, bool, error)
	UpdateMinion(ctx context.Context, id int64, req domain.MinionRequest) (domain.Minion, error)
	DeleteMinion(ctx context.Context, id int64) error
}

type minionUsecase struct {
	minionRepository domain.MinionRepository
}

func NewMinionUsecase(minionRepository domain.MinionRepository) MinionUsecase {
	return &minionUsecase{
		minionRepository: minionRepository,
	}
}

func (uc *minionUsecase) CreateMinion(ctx context.Context, req domain.MinionRequest) (domain.Minion, error) {
	minion := req.ToMinion()
	if err := uc.minionRepository.Create(ctx, &minion); err != nil {
		return domain.Minion{}, err
	}
	return minion, nil
}

func (uc *minionUsecase) ListMinions(ctx context.Context) ([]domain.Minion, error) {
	return uc.minionRepository.ListAll(ctx)
}

func (uc *minionUsecase) GetMinion(ctx context.Context, id int64) (domain.Minion, bool, error) {
	return uc.minionRepository.GetByID(ctx, id)
}

// UpdateMinion replaces all fields and returns the stored row.
func (uc *minionUsecase) UpdateMinion(ctx context.Context, id int64, req domain.MinionRequest) (domain.Minion, error) {
	requestID := middleware.GetRequestID(ctx)

	if err := uc.minionRepository.Update(ctx, id, req.ToMinion()); err != nil {
		return domain.Minion{}, err
	}

	minion, found, err := uc.minionRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Minion{}, err
	}
	if !found {
		logger.AccessLogger.Warn("updated minion does not exist", zap.String("request_id", requestID), zap.Int64("minion_id", id))
		return domain.Minion{}, fmt.Errorf("minion %d: %w", id, domain.ErrNotFound)
	}
	return minion, nil
}

func (uc *minionUsecase) DeleteMinion(ctx context.Context, id int64) error {
	return uc.minionRepository.Delete(ctx, id)
}
