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

// purchasePlanRepository implements the repository.PurchasePlanRepository interface.
type purchasePlanRepository struct {
	db *gorm.DB
}

// NewPurchasePlanRepository is the constructor for purchasePlanRepository.
func NewPurchasePlanRepository(db *gorm.DB) repository.PurchasePlanRepository {
	return &purchasePlanRepository{db: db}
}

// FindByUser returns the user's plans, newest first.
func (repo *purchasePlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchasePlan, error) {
	var plansM []model.PurchasePlanModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plansM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchase plans")
	}

	result := make([]*entity.PurchasePlan, 0, len(plansM))
	for i := range plansM {
		result = append(result, toPlanDomain(&plansM[i]))
	}

	return result, nil
}

// FindByID retrieves a single plan.
func (repo *purchasePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchasePlan, error) {
	var planM model.PurchasePlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase plan")
	}

	return toPlanDomain(&planM), nil
}

// Create persists a new plan.
func (repo *purchasePlanRepository) Create(ctx context.Context, plan *entity.PurchasePlan) error {
	planM := fromPlanDomain(plan)
	if planM.ID == uuid.Nil {
		planM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// SQLite does not report which reference failed.
			if planM.StoreID != nil {
				return repository.ErrStoreNotFound
			}

			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to create purchase plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt

	return nil
}

// Update saves the mutable plan fields.
func (repo *purchasePlanRepository) Update(ctx context.Context, plan *entity.PurchasePlan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchasePlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"title":        plan.Title,
			"amount_cents": plan.AmountCents,
			"store_id":     plan.StoreID,
			"category_id":  plan.CategoryID,
			"target_date":  plan.TargetDate,
			"is_completed": plan.IsCompleted,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update purchase plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Delete removes a plan.
func (repo *purchasePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PurchasePlanModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete purchase plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlanDomain(data *model.PurchasePlanModel) *entity.PurchasePlan {
	if data == nil {
		return nil
	}

	return &entity.PurchasePlan{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		AmountCents: data.AmountCents,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		TargetDate:  data.TargetDate,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPlanDomain(data *entity.PurchasePlan) *model.PurchasePlanModel {
	if data == nil {
		return nil
	}

	return &model.PurchasePlanModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		AmountCents: data.AmountCents,
		StoreID:     data.StoreID,
		CategoryID:  data.CategoryID,
		TargetDate:  data.TargetDate,
		IsCompleted: data.IsCompleted,
	}
}
