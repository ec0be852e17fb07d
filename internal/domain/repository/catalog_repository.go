// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cashreap/internal/domain/entity"
)

// ErrCardNotFound is returned when a credit card is not in the catalog.
var ErrCardNotFound = errors.New("credit card not found")

// ErrCategoryNotFound is returned when a merchant category does not exist.
var ErrCategoryNotFound = errors.New("merchant category not found")

// ErrStoreNotFound is returned when a store does not exist.
var ErrStoreNotFound = errors.New("store not found")

// CardRepository defines read access to the credit card catalog.
type CardRepository interface {
	// ListActive returns active catalog cards in catalog order.
	// A limit of 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]*entity.CreditCard, error)

	// FindByID retrieves a single card, active or not.
	FindByID(ctx context.Context, id string) (*entity.CreditCard, error)

	// FindByIDs retrieves the cards for the given IDs; missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.CreditCard, error)
}

// CategoryRepository defines read access to merchant categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.MerchantCategory, error)
	FindByID(ctx context.Context, id string) (*entity.MerchantCategory, error)
}

// RewardRepository defines read access to the card-category reward mapping.
type RewardRepository interface {
	// FindByCategory returns all reward rows mapped to a category.
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.CardCategoryReward, error)

	// FindByCard returns all reward rows for a card, highest rate first.
	FindByCard(ctx context.Context, cardID string) ([]*entity.CardCategoryReward, error)
}

// StoreRepository defines read access to the store catalog.
type StoreRepository interface {
	List(ctx context.Context) ([]*entity.Store, error)

	// FindByID retrieves a store together with its merchant category.
	FindByID(ctx context.Context, id string) (*entity.StoreWithCategory, error)

	// SearchByName returns stores whose name contains the query,
	// case-insensitive.
	SearchByName(ctx context.Context, query string) ([]*entity.Store, error)

	// ListWithLocation returns only stores that carry coordinates.
	ListWithLocation(ctx context.Context) ([]*entity.Store, error)
}
