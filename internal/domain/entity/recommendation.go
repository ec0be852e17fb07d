package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// CardRecommendation decorates a catalog card with the reward rate it
// matched for a category lookup. Recommendations are ordered best rate
// first; ties are broken by card name so the ordering is deterministic.
type CardRecommendation struct {
	CreditCard
	MatchedRateBP  int    `json:"matched_rate_bp"` // Rate the card earns for the matched category, in basis points.
	CategoryMatch  string `json:"category_match"`  // Name of the matched category, or "none" for the catalog fallback.
	IsRotating     bool   `json:"is_rotating"`
	RotationPeriod string `json:"rotation_period"`
	Description    string `json:"description"` // Human-readable summary, e.g. "4% cash back with Card X (Annual Fee: $95)".
}

// FormatRateBP renders a basis-point rate as a percentage string with
// trailing zeros trimmed: 400 -> "4%", 150 -> "1.5%", 125 -> "1.25%".
func FormatRateBP(bp int) string {
	whole := bp / 100
	frac := bp % 100
	if frac == 0 {
		return strconv.Itoa(whole) + "%"
	}
	s := fmt.Sprintf("%d.%02d", whole, frac)
	s = strings.TrimRight(s, "0")

	return s + "%"
}

// FormatFeeCents renders an annual fee as a dollar string, e.g. "$95".
// Fees in the catalog are whole dollars but the cents representation is
// kept for exact money math.
func FormatFeeCents(cents int64) string {
	if cents%100 == 0 {
		return "$" + strconv.FormatInt(cents/100, 10)
	}

	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// RecommendationDescription builds the display string for a matched card.
func RecommendationDescription(card *CreditCard, rateBP int) string {
	desc := FormatRateBP(rateBP) + " cash back with " + card.Name
	if card.AnnualFeeCents > 0 {
		desc += " (Annual Fee: " + FormatFeeCents(card.AnnualFeeCents) + ")"
	}

	return desc
}
