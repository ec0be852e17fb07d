// Package model contains the GORM persistence models mirroring the
// database schema.
package model

// CreditCardModel mirrors the 'credit_cards' table. Catalog rows keep the
// human-readable string IDs from the seed data.
type CreditCardModel struct {
	ID             string `gorm:"type:text;primaryKey"`
	Name           string `gorm:"type:text;not null"`
	Issuer         string `gorm:"type:text;not null"`
	AnnualFeeCents int64  `gorm:"not null;default:0"`
	MinCreditScore int    `gorm:"not null;default:600"`
	BaseRewardBP   int    `gorm:"not null;default:100"`
	WelcomeBonus   string `gorm:"type:text"`
	Description    string `gorm:"type:text"`
	IsActive       bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// MerchantCategoryModel mirrors the 'merchant_categories' table.
type MerchantCategoryModel struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	IconClass   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantCategoryModel) TableName() string {
	return "merchant_categories"
}

// CardCategoryRewardModel mirrors the 'card_category_rewards' table.
// Both references carry real foreign keys; the legacy schema enforced them
// only at the application layer.
type CardCategoryRewardModel struct {
	ID             string `gorm:"type:text;primaryKey"`
	CardID         string `gorm:"type:text;not null;index"`
	CategoryID     string `gorm:"type:text;not null;index"`
	RewardRateBP   int    `gorm:"not null;check:reward_rate_bp >= 0"`
	IsRotating     bool   `gorm:"not null;default:false"`
	RotationPeriod string `gorm:"type:text"`

	Card     *CreditCardModel       `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Category *MerchantCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CardCategoryRewardModel) TableName() string {
	return "card_category_rewards"
}

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID         string   `gorm:"type:text;primaryKey"`
	Name       string   `gorm:"type:text;not null;index"`
	CategoryID string   `gorm:"type:text;not null;index"`
	Address    string   `gorm:"type:text"`
	Latitude   *float64 `gorm:"type:real"`
	Longitude  *float64 `gorm:"type:real"`
	IsChain    bool     `gorm:"not null;default:false"`

	Category *MerchantCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
