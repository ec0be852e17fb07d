package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetAnnualValueCents(t *testing.T) {
	// $500/month at 4% with a $95 fee: 500*12*0.04 - 95 = $145.
	got := NetAnnualValueCents(50000, 400, 9500)
	assert.Equal(t, int64(14500), got)
}

func TestNetAnnualValueCents_NoFeeNeverNegative(t *testing.T) {
	// With a zero fee the projection can never drop below the rewards alone.
	rewards := AnnualRewardsCents(10000, 150)
	net := NetAnnualValueCents(10000, 150, 0)
	assert.Equal(t, rewards, net)
	assert.GreaterOrEqual(t, net, int64(0))
}

func TestNetAnnualValueCents_ExactIdentity(t *testing.T) {
	cases := []struct {
		spendCents int64
		rateBP     int
		feeCents   int64
		want       int64
	}{
		{0, 400, 9500, -9500},
		{100000, 100, 0, 12000},
		{33333, 525, 0, 33333 * 12 * 525 / 10000},
		{1, 1, 0, 0}, // rounds down to zero, no fractional cents invented
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NetAnnualValueCents(tc.spendCents, tc.rateBP, tc.feeCents))
	}
}

func TestFormatRateBP(t *testing.T) {
	assert.Equal(t, "4%", FormatRateBP(400))
	assert.Equal(t, "1.5%", FormatRateBP(150))
	assert.Equal(t, "1.25%", FormatRateBP(125))
	assert.Equal(t, "0.5%", FormatRateBP(50))
	assert.Equal(t, "0%", FormatRateBP(0))
}

func TestRecommendationDescription(t *testing.T) {
	withFee := &CreditCard{Name: "Sapphire Preferred", AnnualFeeCents: 9500}
	assert.Equal(t, "3% cash back with Sapphire Preferred (Annual Fee: $95)", RecommendationDescription(withFee, 300))

	noFee := &CreditCard{Name: "Freedom Unlimited", AnnualFeeCents: 0}
	assert.Equal(t, "1.5% cash back with Freedom Unlimited", RecommendationDescription(noFee, 150))
}

func TestWelcomeBonusProgress(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tracking := &WelcomeBonusTracking{
		RequiredSpendingCents: 400000,
		CurrentSpendingCents:  100000,
		TimeframeMonths:       3,
		StartDate:             start,
	}

	assert.Equal(t, 25, tracking.ProgressPercentage())
	assert.Equal(t, int64(300000), tracking.RemainingSpendingCents())
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), tracking.Deadline())

	// 30 days in, roughly 60 remain in a 90 day window.
	now := start.AddDate(0, 0, 30)
	assert.Equal(t, 60, tracking.DaysRemaining(now))

	// Past the deadline the counter floors at zero.
	assert.Equal(t, 0, tracking.DaysRemaining(start.AddDate(0, 6, 0)))
}

func TestWelcomeBonusProgress_Overshoot(t *testing.T) {
	tracking := &WelcomeBonusTracking{
		RequiredSpendingCents: 100000,
		CurrentSpendingCents:  150000,
	}
	assert.Equal(t, 100, tracking.ProgressPercentage())
	assert.Equal(t, int64(0), tracking.RemainingSpendingCents())
}
