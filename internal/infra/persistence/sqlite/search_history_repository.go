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

// searchHistoryRepository implements the repository.SearchHistoryRepository interface.
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository is the constructor for searchHistoryRepository.
func NewSearchHistoryRepository(db *gorm.DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

// Append records one store lookup.
func (repo *searchHistoryRepository) Append(ctx context.Context, record *entity.UserSearchHistory) error {
	recordM := &model.UserSearchHistoryModel{
		ID:         record.ID,
		UserID:     record.UserID,
		StoreID:    record.StoreID,
		SearchedAt: record.SearchedAt,
	}
	if recordM.ID == uuid.Nil {
		recordM.ID = uuid.New()
	}
	if recordM.SearchedAt.IsZero() {
		recordM.SearchedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to append search history")
	}

	record.ID = recordM.ID
	record.SearchedAt = recordM.SearchedAt

	return nil
}

// FindByUser returns the newest records first, capped at limit.
func (repo *searchHistoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserSearchHistory, error) {
	var recordsM []model.UserSearchHistoryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	result := make([]*entity.UserSearchHistory, 0, len(recordsM))
	for i := range recordsM {
		result = append(result, &entity.UserSearchHistory{
			ID:         recordsM[i].ID,
			UserID:     recordsM[i].UserID,
			StoreID:    recordsM[i].StoreID,
			SearchedAt: recordsM[i].SearchedAt,
		})
	}

	return result, nil
}
