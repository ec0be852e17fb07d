package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSavedCardModel mirrors the 'user_saved_cards' table. The composite
// unique index makes duplicate saves impossible at the schema level; the
// legacy design enforced this only by query filtering.
type UserSavedCardModel struct {
	ID      uuid.UUID `gorm:"type:text;primaryKey"`
	UserID  uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_user_card"`
	CardID  string    `gorm:"type:text;not null;uniqueIndex:idx_user_card"`
	SavedAt time.Time `gorm:"not null"`

	Card *CreditCardModel `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserSavedCardModel) TableName() string {
	return "user_saved_cards"
}

// UserSearchHistoryModel mirrors the 'user_search_history' table.
type UserSearchHistoryModel struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	UserID     uuid.UUID `gorm:"type:text;not null;index"`
	StoreID    string    `gorm:"type:text;not null"`
	SearchedAt time.Time `gorm:"not null;index"`

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserSearchHistoryModel) TableName() string {
	return "user_search_history"
}

// UserSpendingProfileModel mirrors the 'user_spending_profiles' table.
// One row per (user, category); writes upsert on the composite index.
type UserSpendingProfileModel struct {
	ID                   uuid.UUID `gorm:"type:text;primaryKey"`
	UserID               uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_user_category"`
	CategoryID           string    `gorm:"type:text;not null;uniqueIndex:idx_user_category"`
	MonthlySpendingCents int64     `gorm:"not null;default:0"`
	UpdatedAt            time.Time

	Category *MerchantCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserSpendingProfileModel) TableName() string {
	return "user_spending_profiles"
}

// PurchasePlanModel mirrors the 'purchase_plans' table.
type PurchasePlanModel struct {
	ID          uuid.UUID  `gorm:"type:text;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:text;not null;index"`
	Title       string     `gorm:"type:text;not null"`
	AmountCents int64      `gorm:"not null"`
	StoreID     *string    `gorm:"type:text"`
	CategoryID  *string    `gorm:"type:text"`
	TargetDate  *time.Time
	IsCompleted bool `gorm:"not null;default:false"`
	CreatedAt   time.Time

	Store    *StoreModel            `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL"`
	Category *MerchantCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (PurchasePlanModel) TableName() string {
	return "purchase_plans"
}

// WelcomeBonusTrackingModel mirrors the 'welcome_bonus_tracking' table.
type WelcomeBonusTrackingModel struct {
	ID                    uuid.UUID `gorm:"type:text;primaryKey"`
	UserID                uuid.UUID `gorm:"type:text;not null;index"`
	CardID                string    `gorm:"type:text;not null"`
	RequiredSpendingCents int64     `gorm:"not null"`
	CurrentSpendingCents  int64     `gorm:"not null;default:0"`
	TimeframeMonths       int       `gorm:"not null;default:3"`
	StartDate             time.Time `gorm:"not null"`
	IsCompleted           bool      `gorm:"not null;default:false"`

	Card *CreditCardModel `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WelcomeBonusTrackingModel) TableName() string {
	return "welcome_bonus_tracking"
}

// UserPreferencesModel mirrors the 'user_preferences' table.
type UserPreferencesModel struct {
	ID                   uuid.UUID `gorm:"type:text;primaryKey"`
	UserID               uuid.UUID `gorm:"type:text;not null;uniqueIndex"`
	CreditScoreRange     string    `gorm:"type:text;not null;default:650-700"`
	MaxAnnualFeeCents    int64     `gorm:"not null;default:0"`
	PreferredIssuers     string    `gorm:"type:text"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}

// CardComparisonModel mirrors the 'card_comparisons' table. CardIDs is a
// comma-joined list preserving the order the user picked.
type CardComparisonModel struct {
	ID             uuid.UUID `gorm:"type:text;primaryKey"`
	UserID         uuid.UUID `gorm:"type:text;not null;index"`
	CardIDs        string    `gorm:"column:card_ids;type:text;not null"`
	ComparisonName string    `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardComparisonModel) TableName() string {
	return "card_comparisons"
}
