package impl

import (
	"context"
	"testing"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 {
	return &v
}

func createTestCatalogService() (usecase.CatalogUsecase, *fakeStoreRepo, *fakeRewardRepo) {
	cardRepo := &fakeCardRepo{cards: []*entity.CreditCard{
		{ID: "alpha", Name: "Alpha Card", BaseRewardBP: 100, IsActive: true},
		{ID: "bravo", Name: "Bravo Card", BaseRewardBP: 200, IsActive: true},
	}}
	categoryRepo := &fakeCategoryRepo{categories: []*entity.MerchantCategory{
		{ID: "online-shopping", Name: "Online Shopping"},
		{ID: "groceries", Name: "Groceries"},
	}}
	rewardRepo := &fakeRewardRepo{}
	storeRepo := &fakeStoreRepo{
		categories: map[string]*entity.MerchantCategory{
			"online-shopping": {ID: "online-shopping", Name: "Online Shopping"},
			"groceries":       {ID: "groceries", Name: "Groceries"},
		},
	}

	recommendation := NewRecommendationService(RecommendationServiceParams{
		CardRepo:     cardRepo,
		CategoryRepo: categoryRepo,
		RewardRepo:   rewardRepo,
		StoreRepo:    storeRepo,
	})

	service := NewCatalogService(CatalogServiceParams{
		CardRepo:       cardRepo,
		CategoryRepo:   categoryRepo,
		StoreRepo:      storeRepo,
		Recommendation: recommendation,
	})

	return service, storeRepo, rewardRepo
}

func TestCatalogService_SearchStores_DedupesOnlineVariants(t *testing.T) {
	service, storeRepo, rewardRepo := createTestCatalogService()
	storeRepo.stores = []*entity.Store{
		{ID: "amazon", Name: "Amazon", CategoryID: "online-shopping"},
		{ID: "amazon-com", Name: "Amazon.com", CategoryID: "online-shopping"},
		{ID: "amazon-fresh", Name: "Amazon Fresh", CategoryID: "groceries"},
	}
	rewardRepo.rewards = []*entity.CardCategoryReward{
		{ID: "r1", CardID: "alpha", CategoryID: "online-shopping", RewardRateBP: 500},
	}

	hits, err := service.SearchStores(context.Background(), "amazon")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, "Amazon", hits[0].Store.Name)
	assert.Equal(t, "Amazon Fresh", hits[1].Store.Name)

	// Each hit carries the recommendations for its own category.
	require.NotEmpty(t, hits[0].Recommendations)
	assert.Equal(t, "alpha", hits[0].Recommendations[0].ID)
	assert.Equal(t, 500, hits[0].Recommendations[0].MatchedRateBP)
}

func TestCatalogService_NearbyStores(t *testing.T) {
	service, storeRepo, _ := createTestCatalogService()
	// Downtown Seattle origin; Tacoma is ~40 km out, Portland ~230 km.
	storeRepo.stores = []*entity.Store{
		{ID: "tacoma", Name: "Tacoma Market", CategoryID: "groceries", Latitude: ptrFloat(47.2529), Longitude: ptrFloat(-122.4443)},
		{ID: "seattle", Name: "Seattle Market", CategoryID: "groceries", Latitude: ptrFloat(47.6097), Longitude: ptrFloat(-122.3331)},
		{ID: "portland", Name: "Portland Market", CategoryID: "groceries", Latitude: ptrFloat(45.5152), Longitude: ptrFloat(-122.6784)},
		{ID: "online-only", Name: "Web Market", CategoryID: "groceries"},
	}

	nearby, err := service.NearbyStores(context.Background(), 47.6062, -122.3321, 100)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, "seattle", nearby[0].Store.ID)
	assert.Equal(t, "tacoma", nearby[1].Store.ID)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
	assert.InDelta(t, 40, nearby[1].DistanceKm, 5)
}

func TestCatalogService_NearbyStores_EmptyRadius(t *testing.T) {
	service, storeRepo, _ := createTestCatalogService()
	storeRepo.stores = []*entity.Store{
		{ID: "portland", Name: "Portland Market", CategoryID: "groceries", Latitude: ptrFloat(45.5152), Longitude: ptrFloat(-122.6784)},
	}

	nearby, err := service.NearbyStores(context.Background(), 47.6062, -122.3321, 50)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestCatalogService_GetCard_Unknown(t *testing.T) {
	service, _, _ := createTestCatalogService()

	_, err := service.GetCard(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestCatalogService_GetStore_Unknown(t *testing.T) {
	service, _, _ := createTestCatalogService()

	_, err := service.GetStore(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	service, _, _ := createTestCatalogService()

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
