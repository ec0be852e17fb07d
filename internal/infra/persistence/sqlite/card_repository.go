package sqlite

import (
	"context"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cardRepository implements the repository.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// ListActive returns the active catalog in stable catalog order.
func (repo *cardRepository) ListActive(ctx context.Context, limit int) ([]*entity.CreditCard, error) {
	var cardModels []*model.CreditCardModel

	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active cards")
	}

	cards := make([]*entity.CreditCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toCardDomain(cardM))
	}

	return cards, nil
}

// FindByID retrieves a single card, active or not.
func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.CreditCard, error) {
	var cardM model.CreditCardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by id")
	}

	return toCardDomain(&cardM), nil
}

// FindByIDs retrieves the cards for the given IDs; missing IDs are skipped.
func (repo *cardRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.CreditCard, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var cardModels []*model.CreditCardModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cards by ids")
	}

	cards := make([]*entity.CreditCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toCardDomain(cardM))
	}

	return cards, nil
}

// --- Mapper Functions ---

func toCardDomain(data *model.CreditCardModel) *entity.CreditCard {
	if data == nil {
		return nil
	}

	return &entity.CreditCard{
		ID:             data.ID,
		Name:           data.Name,
		Issuer:         data.Issuer,
		AnnualFeeCents: data.AnnualFeeCents,
		MinCreditScore: data.MinCreditScore,
		BaseRewardBP:   data.BaseRewardBP,
		WelcomeBonus:   data.WelcomeBonus,
		Description:    data.Description,
		IsActive:       data.IsActive,
	}
}
