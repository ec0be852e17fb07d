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

func createTestComparisonService() (usecase.ComparisonUsecase, *fakeComparisonRepo, *fakeQRCodeService) {
	comparisonRepo := &fakeComparisonRepo{}
	cardRepo := &fakeCardRepo{cards: []*entity.CreditCard{
		{ID: "card-a", Name: "Card A", IsActive: true},
		{ID: "card-b", Name: "Card B", IsActive: true},
		{ID: "card-c", Name: "Card C", IsActive: true},
	}}
	qrcodeService := &fakeQRCodeService{}

	service := NewComparisonService(ComparisonServiceParams{
		ComparisonRepo: comparisonRepo,
		CardRepo:       cardRepo,
		QRCodeService:  qrcodeService,
	})

	return service, comparisonRepo, qrcodeService
}

func TestComparisonService_CreateComparison(t *testing.T) {
	service, _, _ := createTestComparisonService()

	comparison, err := service.CreateComparison(context.Background(), uuid.New(), usecase.CreateComparisonInput{
		CardIDs:        []string{"card-b", "card-a"},
		ComparisonName: "Flat rate face-off",
	})
	require.NoError(t, err)

	// Pick order is preserved.
	assert.Equal(t, []string{"card-b", "card-a"}, comparison.CardIDs)
	assert.NotZero(t, comparison.ID)
}

func TestComparisonService_CreateComparison_NeedsTwoDistinctCards(t *testing.T) {
	service, _, _ := createTestComparisonService()
	ctx := context.Background()

	_, err := service.CreateComparison(ctx, uuid.New(), usecase.CreateComparisonInput{
		CardIDs: []string{"card-a"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateComparison(ctx, uuid.New(), usecase.CreateComparisonInput{
		CardIDs: []string{"card-a", "card-a", ""},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestComparisonService_CreateComparison_UnknownCard(t *testing.T) {
	service, _, _ := createTestComparisonService()

	_, err := service.CreateComparison(context.Background(), uuid.New(), usecase.CreateComparisonInput{
		CardIDs: []string{"card-a", "ghost"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestComparisonService_ListComparisons_ResolvesCardsInOrder(t *testing.T) {
	service, _, _ := createTestComparisonService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.CreateComparison(ctx, userID, usecase.CreateComparisonInput{
		CardIDs: []string{"card-c", "card-a"},
	})
	require.NoError(t, err)

	details, err := service.ListComparisons(ctx, userID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Len(t, details[0].Cards, 2)
	assert.Equal(t, "Card C", details[0].Cards[0].Name)
	assert.Equal(t, "Card A", details[0].Cards[1].Name)
}

func TestComparisonService_GenerateShareQR(t *testing.T) {
	service, _, qrcodeService := createTestComparisonService()
	ctx := context.Background()
	userID := uuid.New()

	comparison, err := service.CreateComparison(ctx, userID, usecase.CreateComparisonInput{
		CardIDs: []string{"card-a", "card-b"},
	})
	require.NoError(t, err)

	png, err := service.GenerateShareQR(ctx, userID, comparison.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, comparison.ID, qrcodeService.lastID)
}

func TestComparisonService_GenerateShareQR_OtherUsersComparison(t *testing.T) {
	service, _, _ := createTestComparisonService()
	ctx := context.Background()

	comparison, err := service.CreateComparison(ctx, uuid.New(), usecase.CreateComparisonInput{
		CardIDs: []string{"card-a", "card-b"},
	})
	require.NoError(t, err)

	_, err = service.GenerateShareQR(ctx, uuid.New(), comparison.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestComparisonService_GenerateShareQR_Unknown(t *testing.T) {
	service, _, _ := createTestComparisonService()

	_, err := service.GenerateShareQR(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrComparisonNotFound)
}
