package sqlite

import (
	"context"

	"cashreap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the schema for every table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.MerchantCategoryModel{},
		&model.CreditCardModel{},
		&model.CardCategoryRewardModel{},
		&model.StoreModel{},
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.UserSavedCardModel{},
		&model.UserSearchHistoryModel{},
		&model.UserSpendingProfileModel{},
		&model.PurchasePlanModel{},
		&model.WelcomeBonusTrackingModel{},
		&model.UserPreferencesModel{},
		&model.CardComparisonModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

// Seed loads the card catalog. It upserts by primary key so a restart
// never duplicates rows; operator edits to non-seeded columns survive
// because only the seeded columns are rewritten.
func Seed(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})

	if err := tx.Create(seedCategories()).Error; err != nil {
		return errors.Wrap(err, "failed to seed merchant categories")
	}
	if err := tx.Create(seedCards()).Error; err != nil {
		return errors.Wrap(err, "failed to seed credit cards")
	}
	if err := tx.Create(seedRewards()).Error; err != nil {
		return errors.Wrap(err, "failed to seed card category rewards")
	}
	if err := tx.Create(seedStores()).Error; err != nil {
		return errors.Wrap(err, "failed to seed stores")
	}

	return nil
}

func seedCategories() []model.MerchantCategoryModel {
	return []model.MerchantCategoryModel{
		{ID: "groceries", Name: "Groceries", Description: "Supermarkets and grocery stores", IconClass: "fa-shopping-cart"},
		{ID: "dining", Name: "Dining", Description: "Restaurants, bars, and takeout", IconClass: "fa-utensils"},
		{ID: "gas", Name: "Gas", Description: "Gas stations and fuel", IconClass: "fa-gas-pump"},
		{ID: "online-shopping", Name: "Online Shopping", Description: "Online retailers and marketplaces", IconClass: "fa-laptop"},
		{ID: "travel", Name: "Travel", Description: "Airlines, hotels, and transit", IconClass: "fa-plane"},
		{ID: "drugstores", Name: "Drugstores", Description: "Pharmacies and drugstores", IconClass: "fa-prescription-bottle"},
		{ID: "entertainment", Name: "Entertainment", Description: "Streaming, movies, and events", IconClass: "fa-film"},
		{ID: "warehouse-clubs", Name: "Warehouse Clubs", Description: "Membership warehouse stores", IconClass: "fa-warehouse"},
	}
}

func seedCards() []model.CreditCardModel {
	return []model.CreditCardModel{
		{
			ID:             "chase-freedom-flex",
			Name:           "Chase Freedom Flex",
			Issuer:         "Chase",
			AnnualFeeCents: 0,
			MinCreditScore: 670,
			BaseRewardBP:   100,
			WelcomeBonus:   "$200 after spending $500 in first 3 months",
			Description:    "5% cash back on rotating categories (up to $1,500 each quarter), 3% on dining and drugstores, 1% on everything else",
			IsActive:       true,
		},
		{
			ID:             "citi-double-cash",
			Name:           "Citi Double Cash Card",
			Issuer:         "Citi",
			AnnualFeeCents: 0,
			MinCreditScore: 670,
			BaseRewardBP:   200,
			WelcomeBonus:   "$200 after spending $1,500 in first 6 months",
			Description:    "2% cash back on all purchases - 1% when you buy, 1% when you pay",
			IsActive:       true,
		},
		{
			ID:             "amex-blue-cash-preferred",
			Name:           "Blue Cash Preferred Card",
			Issuer:         "American Express",
			AnnualFeeCents: 9500,
			MinCreditScore: 690,
			BaseRewardBP:   100,
			WelcomeBonus:   "$250 after spending $3,000 in first 6 months",
			Description:    "6% cash back at U.S. supermarkets (up to $6,000 per year), 6% on select streaming, 3% on transit and gas",
			IsActive:       true,
		},
		{
			ID:             "discover-it-cash-back",
			Name:           "Discover it Cash Back",
			Issuer:         "Discover",
			AnnualFeeCents: 0,
			MinCreditScore: 650,
			BaseRewardBP:   100,
			WelcomeBonus:   "Cashback Match: all cash back earned in the first year is doubled",
			Description:    "5% cash back on rotating quarterly categories (up to $1,500 per quarter), 1% on everything else",
			IsActive:       true,
		},
		{
			ID:             "capital-one-savorone",
			Name:           "Capital One SavorOne",
			Issuer:         "Capital One",
			AnnualFeeCents: 0,
			MinCreditScore: 670,
			BaseRewardBP:   100,
			WelcomeBonus:   "$200 after spending $500 in first 3 months",
			Description:    "3% cash back on dining, entertainment, popular streaming, and grocery stores",
			IsActive:       true,
		},
		{
			ID:             "wells-fargo-active-cash",
			Name:           "Wells Fargo Active Cash",
			Issuer:         "Wells Fargo",
			AnnualFeeCents: 0,
			MinCreditScore: 660,
			BaseRewardBP:   200,
			WelcomeBonus:   "$200 after spending $500 in first 3 months",
			Description:    "Unlimited 2% cash rewards on purchases",
			IsActive:       true,
		},
		{
			ID:             "citi-custom-cash",
			Name:           "Citi Custom Cash Card",
			Issuer:         "Citi",
			AnnualFeeCents: 0,
			MinCreditScore: 670,
			BaseRewardBP:   100,
			WelcomeBonus:   "$200 after spending $1,500 in first 6 months",
			Description:    "5% cash back in your top eligible spend category each billing cycle (up to $500 spent)",
			IsActive:       true,
		},
		{
			ID:             "amazon-prime-visa",
			Name:           "Prime Visa",
			Issuer:         "Chase",
			AnnualFeeCents: 0,
			MinCreditScore: 660,
			BaseRewardBP:   100,
			WelcomeBonus:   "$100 Amazon gift card upon approval",
			Description:    "5% back at Amazon and Whole Foods with Prime membership, 2% at restaurants and gas stations",
			IsActive:       true,
		},
	}
}

func seedRewards() []model.CardCategoryRewardModel {
	return []model.CardCategoryRewardModel{
		// Chase Freedom Flex
		{ID: "cff-dining", CardID: "chase-freedom-flex", CategoryID: "dining", RewardRateBP: 300},
		{ID: "cff-drugstores", CardID: "chase-freedom-flex", CategoryID: "drugstores", RewardRateBP: 300},
		{ID: "cff-groceries", CardID: "chase-freedom-flex", CategoryID: "groceries", RewardRateBP: 500, IsRotating: true, RotationPeriod: "Q1 2025"},
		{ID: "cff-travel", CardID: "chase-freedom-flex", CategoryID: "travel", RewardRateBP: 500},

		// Blue Cash Preferred
		{ID: "bcp-groceries", CardID: "amex-blue-cash-preferred", CategoryID: "groceries", RewardRateBP: 600},
		{ID: "bcp-entertainment", CardID: "amex-blue-cash-preferred", CategoryID: "entertainment", RewardRateBP: 600},
		{ID: "bcp-gas", CardID: "amex-blue-cash-preferred", CategoryID: "gas", RewardRateBP: 300},
		{ID: "bcp-travel", CardID: "amex-blue-cash-preferred", CategoryID: "travel", RewardRateBP: 300},

		// Discover it
		{ID: "dit-gas", CardID: "discover-it-cash-back", CategoryID: "gas", RewardRateBP: 500, IsRotating: true, RotationPeriod: "Q1 2025"},
		{ID: "dit-online", CardID: "discover-it-cash-back", CategoryID: "online-shopping", RewardRateBP: 500, IsRotating: true, RotationPeriod: "Q4 2025"},

		// SavorOne
		{ID: "so-dining", CardID: "capital-one-savorone", CategoryID: "dining", RewardRateBP: 300},
		{ID: "so-entertainment", CardID: "capital-one-savorone", CategoryID: "entertainment", RewardRateBP: 300},
		{ID: "so-groceries", CardID: "capital-one-savorone", CategoryID: "groceries", RewardRateBP: 300},

		// Custom Cash
		{ID: "ccc-dining", CardID: "citi-custom-cash", CategoryID: "dining", RewardRateBP: 500},
		{ID: "ccc-gas", CardID: "citi-custom-cash", CategoryID: "gas", RewardRateBP: 500},

		// Prime Visa
		{ID: "apv-online", CardID: "amazon-prime-visa", CategoryID: "online-shopping", RewardRateBP: 500},
		{ID: "apv-groceries", CardID: "amazon-prime-visa", CategoryID: "groceries", RewardRateBP: 500},
		{ID: "apv-dining", CardID: "amazon-prime-visa", CategoryID: "dining", RewardRateBP: 200},
		{ID: "apv-gas", CardID: "amazon-prime-visa", CategoryID: "gas", RewardRateBP: 200},
	}
}

func seedStores() []model.StoreModel {
	return []model.StoreModel{
		{ID: "whole-foods", Name: "Whole Foods Market", CategoryID: "groceries", Address: "525 Lamar Blvd, Austin, TX", Latitude: ptrF(30.2706), Longitude: ptrF(-97.7535), IsChain: true},
		{ID: "kroger", Name: "Kroger", CategoryID: "groceries", IsChain: true},
		{ID: "trader-joes", Name: "Trader Joe's", CategoryID: "groceries", IsChain: true},
		{ID: "walmart", Name: "Walmart", CategoryID: "groceries", IsChain: true},
		{ID: "target", Name: "Target", CategoryID: "groceries", Address: "1 Target Way, Minneapolis, MN", Latitude: ptrF(44.9740), Longitude: ptrF(-93.2770), IsChain: true},
		{ID: "starbucks", Name: "Starbucks", CategoryID: "dining", IsChain: true},
		{ID: "mcdonalds", Name: "McDonald's", CategoryID: "dining", IsChain: true},
		{ID: "chipotle", Name: "Chipotle Mexican Grill", CategoryID: "dining", IsChain: true},
		{ID: "shell", Name: "Shell", CategoryID: "gas", IsChain: true},
		{ID: "chevron", Name: "Chevron", CategoryID: "gas", IsChain: true},
		{ID: "amazon", Name: "Amazon", CategoryID: "online-shopping", IsChain: true},
		{ID: "best-buy", Name: "Best Buy", CategoryID: "online-shopping", IsChain: true},
		{ID: "cvs", Name: "CVS Pharmacy", CategoryID: "drugstores", IsChain: true},
		{ID: "walgreens", Name: "Walgreens", CategoryID: "drugstores", IsChain: true},
		{ID: "costco", Name: "Costco Wholesale", CategoryID: "warehouse-clubs", Address: "999 Lake Dr, Issaquah, WA", Latitude: ptrF(47.5301), Longitude: ptrF(-122.0326), IsChain: true},
		{ID: "netflix", Name: "Netflix", CategoryID: "entertainment", IsChain: true},
		{ID: "delta", Name: "Delta Air Lines", CategoryID: "travel", IsChain: true},
	}
}

func ptrF(v float64) *float64 {
	return &v
}
