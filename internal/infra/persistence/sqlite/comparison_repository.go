package sqlite

import (
	"context"
	"strings"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// comparisonRepository implements the repository.ComparisonRepository interface.
type comparisonRepository struct {
	db *gorm.DB
}

// NewComparisonRepository is the constructor for comparisonRepository.
func NewComparisonRepository(db *gorm.DB) repository.ComparisonRepository {
	return &comparisonRepository{db: db}
}

// FindByUser returns the user's saved comparisons, newest first.
func (repo *comparisonRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CardComparison, error) {
	var comparisonsM []model.CardComparisonModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comparisonsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comparisons")
	}

	result := make([]*entity.CardComparison, 0, len(comparisonsM))
	for i := range comparisonsM {
		result = append(result, toComparisonDomain(&comparisonsM[i]))
	}

	return result, nil
}

// FindByID retrieves a single comparison.
func (repo *comparisonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CardComparison, error) {
	var comparisonM model.CardComparisonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&comparisonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComparisonNotFound
		}

		return nil, errors.Wrap(err, "failed to find comparison")
	}

	return toComparisonDomain(&comparisonM), nil
}

// Create persists a new comparison.
func (repo *comparisonRepository) Create(ctx context.Context, comparison *entity.CardComparison) error {
	comparisonM := &model.CardComparisonModel{
		ID:             comparison.ID,
		UserID:         comparison.UserID,
		CardIDs:        strings.Join(comparison.CardIDs, ","),
		ComparisonName: comparison.ComparisonName,
	}
	if comparisonM.ID == uuid.Nil {
		comparisonM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(comparisonM).Error; err != nil {
		return errors.Wrap(err, "failed to create comparison")
	}

	comparison.ID = comparisonM.ID
	comparison.CreatedAt = comparisonM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toComparisonDomain(data *model.CardComparisonModel) *entity.CardComparison {
	if data == nil {
		return nil
	}

	var cardIDs []string
	if data.CardIDs != "" {
		cardIDs = strings.Split(data.CardIDs, ",")
	}

	return &entity.CardComparison{
		ID:             data.ID,
		UserID:         data.UserID,
		CardIDs:        cardIDs,
		ComparisonName: data.ComparisonName,
		CreatedAt:      data.CreatedAt,
	}
}
