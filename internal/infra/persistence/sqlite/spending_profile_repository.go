package sqlite

import (
	"context"
	"time"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// spendingProfileRepository implements the repository.SpendingProfileRepository interface.
type spendingProfileRepository struct {
	db *gorm.DB
}

// NewSpendingProfileRepository is the constructor for spendingProfileRepository.
func NewSpendingProfileRepository(db *gorm.DB) repository.SpendingProfileRepository {
	return &spendingProfileRepository{db: db}
}

// FindByUser returns the user's per-category spend figures.
func (repo *spendingProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserSpendingProfile, error) {
	var profilesM []model.UserSpendingProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category_id ASC").
		Find(&profilesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list spending profiles")
	}

	result := make([]*entity.UserSpendingProfile, 0, len(profilesM))
	for i := range profilesM {
		result = append(result, toSpendingProfileDomain(&profilesM[i]))
	}

	return result, nil
}

// Upsert inserts or updates the row keyed by (user, category).
func (repo *spendingProfileRepository) Upsert(ctx context.Context, profile *entity.UserSpendingProfile) error {
	profileM := &model.UserSpendingProfileModel{
		ID:                   profile.ID,
		UserID:               profile.UserID,
		CategoryID:           profile.CategoryID,
		MonthlySpendingCents: profile.MonthlySpendingCents,
		UpdatedAt:            time.Now(),
	}
	if profileM.ID == uuid.Nil {
		profileM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"monthly_spending_cents", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert spending profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSpendingProfileDomain(data *model.UserSpendingProfileModel) *entity.UserSpendingProfile {
	if data == nil {
		return nil
	}

	return &entity.UserSpendingProfile{
		ID:                   data.ID,
		UserID:               data.UserID,
		CategoryID:           data.CategoryID,
		MonthlySpendingCents: data.MonthlySpendingCents,
		UpdatedAt:            data.UpdatedAt,
	}
}
