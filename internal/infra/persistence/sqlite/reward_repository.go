package sqlite

import (
	"context"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

// FindByCategory returns all reward rows mapped to a category.
func (repo *rewardRepository) FindByCategory(ctx context.Context, categoryID string) ([]*entity.CardCategoryReward, error) {
	var rewardModels []*model.CardCategoryRewardModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rewards by category")
	}

	return toRewardDomainSlice(rewardModels), nil
}

// FindByCard returns all reward rows for a card, highest rate first.
func (repo *rewardRepository) FindByCard(ctx context.Context, cardID string) ([]*entity.CardCategoryReward, error) {
	var rewardModels []*model.CardCategoryRewardModel

	if err := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("reward_rate_bp DESC").
		Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rewards by card")
	}

	return toRewardDomainSlice(rewardModels), nil
}

func toRewardDomainSlice(models []*model.CardCategoryRewardModel) []*entity.CardCategoryReward {
	rewards := make([]*entity.CardCategoryReward, 0, len(models))
	for _, rewardM := range models {
		rewards = append(rewards, &entity.CardCategoryReward{
			ID:             rewardM.ID,
			CardID:         rewardM.CardID,
			CategoryID:     rewardM.CategoryID,
			RewardRateBP:   rewardM.RewardRateBP,
			IsRotating:     rewardM.IsRotating,
			RotationPeriod: rewardM.RotationPeriod,
		})
	}

	return rewards
}
