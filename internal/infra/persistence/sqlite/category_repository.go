package sqlite

import (
	"context"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.MerchantCategory, error) {
	var categoryModels []*model.MerchantCategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchant categories")
	}

	categories := make([]*entity.MerchantCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.MerchantCategory, error) {
	var categoryM model.MerchantCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func toCategoryDomain(data *model.MerchantCategoryModel) *entity.MerchantCategory {
	if data == nil {
		return nil
	}

	return &entity.MerchantCategory{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IconClass:   data.IconClass,
	}
}
