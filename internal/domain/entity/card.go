// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// CreditCard is a catalog entry for a single credit card product.
// Catalog rows are seeded at startup and read-mostly afterwards.
type CreditCard struct {
	ID             string `json:"id"`               // Human-readable catalog identifier, e.g. "chase-freedom-flex".
	Name           string `json:"name"`             // Display name of the card product.
	Issuer         string `json:"issuer"`           // Issuing bank, e.g. "Chase", "Amex".
	AnnualFeeCents int64  `json:"annual_fee_cents"` // Annual fee in integer cents; 0 for no-fee cards.
	MinCreditScore int    `json:"min_credit_score"` // Minimum recommended credit score to apply.
	BaseRewardBP   int    `json:"base_reward_bp"`   // Flat cash-back rate in basis points applied to uncategorized spend.
	WelcomeBonus   string `json:"welcome_bonus"`    // Free-text welcome bonus description, e.g. "$200 after $500 in 3 months".
	Description    string `json:"description"`      // Marketing blurb shown on the card detail page.
	IsActive       bool   `json:"is_active"`        // Inactive cards are hidden from the catalog but kept for referential integrity.
}

// NetAnnualValueCents projects the yearly value of a card for a given
// monthly spend at a given reward rate, minus the annual fee. All math is
// integer cents and basis points, so the identity
// spend*12*rate/10000 - fee holds exactly.
func NetAnnualValueCents(monthlySpendCents int64, rateBP int, annualFeeCents int64) int64 {
	return monthlySpendCents*12*int64(rateBP)/10000 - annualFeeCents
}

// AnnualRewardsCents is the rewards-only portion of the projection,
// never reduced by the fee.
func AnnualRewardsCents(monthlySpendCents int64, rateBP int) int64 {
	return monthlySpendCents * 12 * int64(rateBP) / 10000
}
