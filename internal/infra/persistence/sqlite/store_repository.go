package sqlite

import (
	"context"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return toStoreDomainSlice(storeModels), nil
}

// FindByID retrieves a store together with its merchant category.
func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.StoreWithCategory, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return &entity.StoreWithCategory{
		Store:    *toStoreDomain(&storeM),
		Category: toCategoryDomain(storeM.Category),
	}, nil
}

// SearchByName returns stores whose name contains the query, case-insensitive.
func (repo *storeRepository) SearchByName(ctx context.Context, query string) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	// SQLite LIKE is case-insensitive for ASCII by default.
	if err := repo.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search stores by name")
	}

	return toStoreDomainSlice(storeModels), nil
}

// ListWithLocation returns only stores that carry coordinates.
func (repo *storeRepository) ListWithLocation(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores with location")
	}

	return toStoreDomainSlice(storeModels), nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
		Address:    data.Address,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		IsChain:    data.IsChain,
	}
}

func toStoreDomainSlice(models []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for _, storeM := range models {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}
