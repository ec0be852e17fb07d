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

// preferencesRepository implements the repository.PreferencesRepository interface.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// FindByUser reports a missing row as (nil, nil) so the caller can
// substitute defaults.
func (repo *preferencesRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefsM model.UserPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return &entity.UserPreferences{
		ID:                   prefsM.ID,
		UserID:               prefsM.UserID,
		CreditScoreRange:     prefsM.CreditScoreRange,
		MaxAnnualFeeCents:    prefsM.MaxAnnualFeeCents,
		PreferredIssuers:     prefsM.PreferredIssuers,
		NotificationsEnabled: prefsM.NotificationsEnabled,
		UpdatedAt:            prefsM.UpdatedAt,
	}, nil
}

// Upsert inserts or updates the single row keyed by user.
func (repo *preferencesRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsM := &model.UserPreferencesModel{
		ID:                   prefs.ID,
		UserID:               prefs.UserID,
		CreditScoreRange:     prefs.CreditScoreRange,
		MaxAnnualFeeCents:    prefs.MaxAnnualFeeCents,
		PreferredIssuers:     prefs.PreferredIssuers,
		NotificationsEnabled: prefs.NotificationsEnabled,
		UpdatedAt:            time.Now(),
	}
	if prefsM.ID == uuid.Nil {
		prefsM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"credit_score_range",
				"max_annual_fee_cents",
				"preferred_issuers",
				"notifications_enabled",
				"updated_at",
			}),
		}).
		Create(prefsM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert preferences")
	}

	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}
