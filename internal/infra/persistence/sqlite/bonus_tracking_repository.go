package sqlite

import (
	"context"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bonusTrackingRepository implements the repository.BonusTrackingRepository interface.
type bonusTrackingRepository struct {
	db *gorm.DB
}

// NewBonusTrackingRepository is the constructor for bonusTrackingRepository.
func NewBonusTrackingRepository(db *gorm.DB) repository.BonusTrackingRepository {
	return &bonusTrackingRepository{db: db}
}

// FindByUser returns the user's bonus trackers, oldest start first.
func (repo *bonusTrackingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WelcomeBonusTracking, error) {
	var trackersM []model.WelcomeBonusTrackingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&trackersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bonus tracking")
	}

	result := make([]*entity.WelcomeBonusTracking, 0, len(trackersM))
	for i := range trackersM {
		result = append(result, toBonusTrackingDomain(&trackersM[i]))
	}

	return result, nil
}

// FindByID retrieves a single tracker.
func (repo *bonusTrackingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WelcomeBonusTracking, error) {
	var trackerM model.WelcomeBonusTrackingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trackerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBonusTrackingNotFound
		}

		return nil, errors.Wrap(err, "failed to find bonus tracking")
	}

	return toBonusTrackingDomain(&trackerM), nil
}

// Create persists a new tracker.
func (repo *bonusTrackingRepository) Create(ctx context.Context, tracking *entity.WelcomeBonusTracking) error {
	trackerM := fromBonusTrackingDomain(tracking)
	if trackerM.ID == uuid.Nil {
		trackerM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(trackerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCardNotFound
		}

		return errors.Wrap(err, "failed to create bonus tracking")
	}

	tracking.ID = trackerM.ID

	return nil
}

// Update saves the spend progress and completion flag.
func (repo *bonusTrackingRepository) Update(ctx context.Context, tracking *entity.WelcomeBonusTracking) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WelcomeBonusTrackingModel{}).
		Where("id = ?", tracking.ID).
		Updates(map[string]any{
			"current_spending_cents": tracking.CurrentSpendingCents,
			"is_completed":           tracking.IsCompleted,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update bonus tracking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBonusTrackingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBonusTrackingDomain(data *model.WelcomeBonusTrackingModel) *entity.WelcomeBonusTracking {
	if data == nil {
		return nil
	}

	return &entity.WelcomeBonusTracking{
		ID:                    data.ID,
		UserID:                data.UserID,
		CardID:                data.CardID,
		RequiredSpendingCents: data.RequiredSpendingCents,
		CurrentSpendingCents:  data.CurrentSpendingCents,
		TimeframeMonths:       data.TimeframeMonths,
		StartDate:             data.StartDate,
		IsCompleted:           data.IsCompleted,
	}
}

func fromBonusTrackingDomain(data *entity.WelcomeBonusTracking) *model.WelcomeBonusTrackingModel {
	if data == nil {
		return nil
	}

	return &model.WelcomeBonusTrackingModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		CardID:                data.CardID,
		RequiredSpendingCents: data.RequiredSpendingCents,
		CurrentSpendingCents:  data.CurrentSpendingCents,
		TimeframeMonths:       data.TimeframeMonths,
		StartDate:             data.StartDate,
		IsCompleted:           data.IsCompleted,
	}
}
