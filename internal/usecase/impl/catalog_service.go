package impl

import (
	"context"
	"sort"
	"strings"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	cardRepo       repository.CardRepository
	categoryRepo   repository.CategoryRepository
	storeRepo      repository.StoreRepository
	recommendation usecase.RecommendationUsecase
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CardRepo       repository.CardRepository
	CategoryRepo   repository.CategoryRepository
	StoreRepo      repository.StoreRepository
	Recommendation usecase.RecommendationUsecase
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		cardRepo:       params.CardRepo,
		categoryRepo:   params.CategoryRepo,
		storeRepo:      params.StoreRepo,
		recommendation: params.Recommendation,
	}
}

// ListCards returns the active card catalog.
func (s *catalogService) ListCards(ctx context.Context) ([]*entity.CreditCard, error) {
	cards, err := s.cardRepo.ListActive(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}

// GetCard retrieves a single catalog card.
func (s *catalogService) GetCard(ctx context.Context, cardID string) (*entity.CreditCard, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCardNotFound, "card lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	return card, nil
}

// ListCategories returns every merchant category.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.MerchantCategory, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListStores returns the whole store catalog.
func (s *catalogService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore retrieves a store with its merchant category.
func (s *catalogService) GetStore(ctx context.Context, storeID string) (*entity.StoreWithCategory, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// SearchStores matches stores by case-insensitive substring. Online and
// physical variants of the same merchant ("Amazon.com" vs "Amazon") are
// collapsed to one hit, and every hit carries its card recommendations.
func (s *catalogService) SearchStores(ctx context.Context, query string) ([]*usecase.StoreSearchHit, error) {
	stores, err := s.storeRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	seen := make(map[string]bool, len(stores))
	hits := make([]*usecase.StoreSearchHit, 0, len(stores))
	for _, store := range stores {
		key := normalizeStoreName(store.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		output, err := s.recommendation.RecommendForStore(ctx, store.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve recommendations for search hit")
		}

		hits = append(hits, &usecase.StoreSearchHit{
			Store:           store,
			Recommendations: output.Recommendations,
		})
	}

	return hits, nil
}

// NearbyStores returns stores with coordinates within radiusKm of the
// point, nearest first. Stores without coordinates never appear.
func (s *catalogService) NearbyStores(ctx context.Context, lat, lng, radiusKm float64) ([]*usecase.NearbyStore, error) {
	stores, err := s.storeRepo.ListWithLocation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list located stores")
	}

	origin := orb.Point{lng, lat}
	nearby := make([]*usecase.NearbyStore, 0, len(stores))
	for _, store := range stores {
		if !store.HasLocation() {
			continue
		}

		distanceKm := geo.Distance(origin, orb.Point{*store.Longitude, *store.Latitude}) / 1000
		if distanceKm > radiusKm {
			continue
		}

		nearby = append(nearby, &usecase.NearbyStore{
			Store:      store,
			DistanceKm: distanceKm,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// normalizeStoreName folds case and strips the ".com" suffix so online
// storefronts dedupe against their physical counterparts.
func normalizeStoreName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, ".com")

	return strings.TrimSpace(normalized)
}
