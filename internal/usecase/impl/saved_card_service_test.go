package impl

import (
	"context"
	"testing"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSavedCardService() (usecase.SavedCardUsecase, *fakeSavedCardRepo, *fakeProfileRepo, *fakeRewardRepo) {
	savedCardRepo := &fakeSavedCardRepo{}
	cardRepo := &fakeCardRepo{cards: []*entity.CreditCard{
		{ID: "grocery-hero", Name: "Grocery Hero", AnnualFeeCents: 9500, BaseRewardBP: 100, IsActive: true},
		{ID: "flat-two", Name: "Flat Two", BaseRewardBP: 200, IsActive: true},
	}}
	rewardRepo := &fakeRewardRepo{}
	profileRepo := &fakeProfileRepo{}

	service := NewSavedCardService(SavedCardServiceParams{
		SavedCardRepo: savedCardRepo,
		CardRepo:      cardRepo,
		RewardRepo:    rewardRepo,
		ProfileRepo:   profileRepo,
		Logger:        newDiscardLogger(),
	})

	return service, savedCardRepo, profileRepo, rewardRepo
}

func TestSavedCardService_SaveCard_Idempotent(t *testing.T) {
	service, savedCardRepo, _, _ := createTestSavedCardService()
	ctx := context.Background()
	userID := uuid.New()

	first, err := service.SaveCard(ctx, userID, "grocery-hero")
	require.NoError(t, err)

	second, err := service.SaveCard(ctx, userID, "grocery-hero")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, savedCardRepo.saved, 1)
}

func TestSavedCardService_SaveCard_UnknownCard(t *testing.T) {
	service, _, _, _ := createTestSavedCardService()

	_, err := service.SaveCard(context.Background(), uuid.New(), "no-such-card")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestSavedCardService_UnsaveCard_Missing(t *testing.T) {
	service, _, _, _ := createTestSavedCardService()

	err := service.UnsaveCard(context.Background(), uuid.New(), "grocery-hero")
	assert.ErrorIs(t, err, domainerrors.ErrSavedCardNotFound)
}

func TestSavedCardService_ListSaved_JoinsCatalog(t *testing.T) {
	service, _, _, _ := createTestSavedCardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.SaveCard(ctx, userID, "grocery-hero")
	require.NoError(t, err)
	_, err = service.SaveCard(ctx, userID, "flat-two")
	require.NoError(t, err)

	details, err := service.ListSaved(ctx, userID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, detail := range details {
		require.NotNil(t, detail.Card)
		assert.Equal(t, detail.CardID, detail.Card.ID)
	}
}

func TestSavedCardService_ListEarnings_ProjectsAnnualValue(t *testing.T) {
	service, _, profileRepo, rewardRepo := createTestSavedCardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.SaveCard(ctx, userID, "grocery-hero")
	require.NoError(t, err)

	// $500/month on groceries at the card's 6% category rate.
	profileRepo.profiles = []*entity.UserSpendingProfile{
		{UserID: userID, CategoryID: "groceries", MonthlySpendingCents: 50000},
	}
	rewardRepo.rewards = []*entity.CardCategoryReward{
		{ID: "r1", CardID: "grocery-hero", CategoryID: "groceries", RewardRateBP: 600},
	}

	earnings, err := service.ListEarnings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, earnings, 1)

	// 50000 * 12 * 600 / 10000 = 36000 cents, minus the $95 fee.
	assert.Equal(t, int64(36000), earnings[0].AnnualEarningsCents)
	assert.Equal(t, int64(26500), earnings[0].NetAnnualValueCents)
	require.Len(t, earnings[0].TopCategories, 1)
	assert.Equal(t, "groceries", earnings[0].TopCategories[0].CategoryID)
}

func TestSavedCardService_ListEarnings_BaseRateForUnprofiledCategories(t *testing.T) {
	service, _, profileRepo, _ := createTestSavedCardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.SaveCard(ctx, userID, "flat-two")
	require.NoError(t, err)

	// No category rate rows: the 2% base rate applies.
	profileRepo.profiles = []*entity.UserSpendingProfile{
		{UserID: userID, CategoryID: "dining", MonthlySpendingCents: 10000},
	}

	earnings, err := service.ListEarnings(ctx, userID)
	require.NoError(t, err)
	require.Len(t, earnings, 1)

	// 10000 * 12 * 200 / 10000 = 2400 cents.
	assert.Equal(t, int64(2400), earnings[0].AnnualEarningsCents)
	assert.Equal(t, int64(2400), earnings[0].NetAnnualValueCents)
}
