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
)

// savedCardRepository implements the repository.SavedCardRepository interface.
type savedCardRepository struct {
	db *gorm.DB
}

// NewSavedCardRepository is the constructor for savedCardRepository.
func NewSavedCardRepository(db *gorm.DB) repository.SavedCardRepository {
	return &savedCardRepository{db: db}
}

// FindByUser returns the user's saved cards, newest saves first.
func (repo *savedCardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserSavedCard, error) {
	var savedM []model.UserSavedCardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&savedM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved cards")
	}

	return toSavedCardDomainSlice(savedM), nil
}

// FindByUserAndCard retrieves one saved row by its natural key.
func (repo *savedCardRepository) FindByUserAndCard(ctx context.Context, userID uuid.UUID, cardID string) (*entity.UserSavedCard, error) {
	var savedM model.UserSavedCardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		First(&savedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved card")
	}

	return toSavedCardDomain(&savedM), nil
}

// Create inserts a saved row. The (user, card) unique index rejects a
// second save; that is surfaced as ErrDuplicateSavedCard so callers can
// treat the operation as idempotent.
func (repo *savedCardRepository) Create(ctx context.Context, saved *entity.UserSavedCard) error {
	savedM := &model.UserSavedCardModel{
		ID:      saved.ID,
		UserID:  saved.UserID,
		CardID:  saved.CardID,
		SavedAt: saved.SavedAt,
	}
	if savedM.ID == uuid.Nil {
		savedM.ID = uuid.New()
	}
	if savedM.SavedAt.IsZero() {
		savedM.SavedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedCard
		}

		return errors.Wrap(err, "failed to save card")
	}

	saved.ID = savedM.ID
	saved.SavedAt = savedM.SavedAt

	return nil
}

// Delete removes the saved row; ErrSavedCardNotFound when absent.
func (repo *savedCardRepository) Delete(ctx context.Context, userID uuid.UUID, cardID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Delete(&model.UserSavedCardModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSavedCardNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSavedCardDomain(data *model.UserSavedCardModel) *entity.UserSavedCard {
	if data == nil {
		return nil
	}

	return &entity.UserSavedCard{
		ID:      data.ID,
		UserID:  data.UserID,
		CardID:  data.CardID,
		SavedAt: data.SavedAt,
	}
}

func toSavedCardDomainSlice(data []model.UserSavedCardModel) []*entity.UserSavedCard {
	result := make([]*entity.UserSavedCard, 0, len(data))
	for i := range data {
		result = append(result, toSavedCardDomain(&data[i]))
	}

	return result
}
