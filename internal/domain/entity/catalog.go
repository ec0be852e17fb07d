package entity

// MerchantCategory classifies stores for reward matching (dining, grocery,
// gas, and so on).
type MerchantCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconClass   string `json:"icon_class"`
}

// CardCategoryReward maps a card to the cash-back rate it earns in one
// merchant category. A reward row always references a valid card and
// category; the schema enforces both foreign keys.
type CardCategoryReward struct {
	ID             string `json:"id"`
	CardID         string `json:"card_id"`
	CategoryID     string `json:"category_id"`
	RewardRateBP   int    `json:"reward_rate_bp"`  // Cash-back rate in basis points; never negative.
	IsRotating     bool   `json:"is_rotating"`     // True for rotating-category cards that require activation.
	RotationPeriod string `json:"rotation_period"` // e.g. "Q1 2025" when IsRotating is set.
}

// Store is a merchant location or chain a user can search for.
type Store struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"category_id"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude"` // Nil when the store has no geocoded location.
	Longitude  *float64 `json:"longitude"`
	IsChain    bool     `json:"is_chain"`
}

// HasLocation reports whether the store carries usable coordinates.
func (s *Store) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// StoreWithCategory bundles a store with its resolved merchant category
// for detail responses.
type StoreWithCategory struct {
	Store
	Category *MerchantCategory `json:"category"`
}
