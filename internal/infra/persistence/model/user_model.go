package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Accounts are created with an email
// address or a phone number; both columns are nullable and unique.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:text;primaryKey"`
	Email           *string   `gorm:"type:text;uniqueIndex"`
	Phone           *string   `gorm:"type:text;uniqueIndex"`
	PasswordHash    string    `gorm:"type:text;not null"`
	FirstName       string    `gorm:"type:text"`
	LastName        string    `gorm:"type:text"`
	ProfileImageURL string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	SavedCards       []UserSavedCardModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SearchHistory    []UserSearchHistoryModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens    []RefreshTokenModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Plans            []PurchasePlanModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BonusTracking    []WelcomeBonusTrackingModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SpendingProfiles []UserSpendingProfileModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Preferences      []UserPreferencesModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comparisons      []CardComparisonModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"type:text;not null;index"`
	TokenHash string    `gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
