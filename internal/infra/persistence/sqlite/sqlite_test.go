package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cashreap/internal/domain/entity"
	"cashreap/internal/domain/repository"
	"cashreap/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway database file with the same pragmas and GORM
// options as production and runs the full migration.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cashreap_test.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func seedTestCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&model.MerchantCategoryModel{
		ID:   "dining",
		Name: "Dining",
	}).Error)
	require.NoError(t, db.Create(&model.CreditCardModel{
		ID:       "card-a",
		Name:     "Card A",
		Issuer:   "Issuer A",
		IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&model.StoreModel{
		ID:         "store-a",
		Name:       "Store A",
		CategoryID: "dining",
	}).Error)
}

func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	email := "cascade@example.com"
	userID := uuid.New()
	require.NoError(t, db.Create(&model.UserModel{
		ID:           userID,
		Email:        &email,
		PasswordHash: "hash",
	}).Error)

	return userID
}

func TestDeleteUser_CascadesAllUserState(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	userID := createTestUser(t, db)
	now := time.Now()

	storeID := "store-a"
	require.NoError(t, db.Create(&model.UserSavedCardModel{
		ID: uuid.New(), UserID: userID, CardID: "card-a", SavedAt: now,
	}).Error)
	require.NoError(t, db.Create(&model.UserSearchHistoryModel{
		ID: uuid.New(), UserID: userID, StoreID: "store-a", SearchedAt: now,
	}).Error)
	require.NoError(t, db.Create(&model.RefreshTokenModel{
		ID: uuid.New(), UserID: userID, TokenHash: "token-hash", ExpiresAt: now.Add(time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.PurchasePlanModel{
		ID: uuid.New(), UserID: userID, Title: "TV", AmountCents: 50_000, StoreID: &storeID,
	}).Error)
	require.NoError(t, db.Create(&model.WelcomeBonusTrackingModel{
		ID: uuid.New(), UserID: userID, CardID: "card-a",
		RequiredSpendingCents: 300_000, TimeframeMonths: 3, StartDate: now,
	}).Error)
	require.NoError(t, db.Create(&model.UserSpendingProfileModel{
		ID: uuid.New(), UserID: userID, CategoryID: "dining", MonthlySpendingCents: 40_000,
	}).Error)
	require.NoError(t, db.Create(&model.UserPreferencesModel{
		ID: uuid.New(), UserID: userID, CreditScoreRange: "700-750",
	}).Error)
	require.NoError(t, db.Create(&model.CardComparisonModel{
		ID: uuid.New(), UserID: userID, CardIDs: "card-a",
	}).Error)

	require.NoError(t, db.Where("id = ?", userID).Delete(&model.UserModel{}).Error)

	for _, table := range []string{
		"user_saved_cards",
		"user_search_history",
		"refresh_tokens",
		"purchase_plans",
		"welcome_bonus_tracking",
		"user_spending_profiles",
		"user_preferences",
		"card_comparisons",
	} {
		var count int64
		require.NoError(t, db.Table(table).Where("user_id = ?", userID).Count(&count).Error)
		require.Zerof(t, count, "table %s should have no rows left for the deleted user", table)
	}
}

func TestBonusTrackingCreate_UnknownCard(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	userID := createTestUser(t, db)
	repo := NewBonusTrackingRepository(db)

	err := repo.Create(context.Background(), &entity.WelcomeBonusTracking{
		UserID:                userID,
		CardID:                "ghost-card",
		RequiredSpendingCents: 300_000,
		TimeframeMonths:       3,
		StartDate:             time.Now(),
	})

	require.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestSearchHistoryAppend_UnknownStore(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	userID := createTestUser(t, db)
	repo := NewSearchHistoryRepository(db)

	err := repo.Append(context.Background(), &entity.UserSearchHistory{
		UserID:  userID,
		StoreID: "ghost-store",
	})

	require.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestPurchasePlanCreate_UnknownStore(t *testing.T) {
	db := newTestDB(t)
	seedTestCatalog(t, db)
	userID := createTestUser(t, db)
	repo := NewPurchasePlanRepository(db)

	storeID := "ghost-store"
	err := repo.Create(context.Background(), &entity.PurchasePlan{
		UserID:      userID,
		Title:       "Laptop",
		AmountCents: 120_000,
		StoreID:     &storeID,
	})

	require.ErrorIs(t, err, repository.ErrStoreNotFound)
}
