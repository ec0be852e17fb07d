package usecase

import (
	"context"

	"cashreap/internal/domain/entity"
)

// StoreSearchHit is one search result annotated with the cards that earn
// the most at that store.
type StoreSearchHit struct {
	Store           *entity.Store                `json:"store"`
	Recommendations []*entity.CardRecommendation `json:"recommendations"`
}

// NearbyStore is a store with its distance from the query point.
type NearbyStore struct {
	Store      *entity.Store `json:"store"`
	DistanceKm float64       `json:"distance_km"`
}

// CatalogUsecase exposes read access to the card and merchant catalog.
type CatalogUsecase interface {
	ListCards(ctx context.Context) ([]*entity.CreditCard, error)
	GetCard(ctx context.Context, cardID string) (*entity.CreditCard, error)
	ListCategories(ctx context.Context) ([]*entity.MerchantCategory, error)
	ListStores(ctx context.Context) ([]*entity.Store, error)
	GetStore(ctx context.Context, storeID string) (*entity.StoreWithCategory, error)

	// SearchStores matches by case-insensitive substring, collapsing ".com"
	// and physical variants of the same merchant into one hit.
	SearchStores(ctx context.Context, query string) ([]*StoreSearchHit, error)

	// NearbyStores returns stores with coordinates within radiusKm of the
	// point, nearest first.
	NearbyStores(ctx context.Context, lat, lng, radiusKm float64) ([]*NearbyStore, error)
}
