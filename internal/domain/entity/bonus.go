package entity

import (
	"time"

	"github.com/google/uuid"
)

// WelcomeBonusTracking records a user's progress toward the spending
// threshold that unlocks a card's signup bonus.
type WelcomeBonusTracking struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"user_id"`
	CardID                string    `json:"card_id"`
	RequiredSpendingCents int64     `json:"required_spending_cents"`
	CurrentSpendingCents  int64     `json:"current_spending_cents"`
	TimeframeMonths       int       `json:"timeframe_months"`
	StartDate             time.Time `json:"start_date"`
	IsCompleted           bool      `json:"is_completed"`
}

// Deadline is the last day of the bonus timeframe.
func (t *WelcomeBonusTracking) Deadline() time.Time {
	return t.StartDate.AddDate(0, t.TimeframeMonths, 0)
}

// ProgressPercentage is the spend progress in whole percent, capped at 100.
func (t *WelcomeBonusTracking) ProgressPercentage() int {
	if t.RequiredSpendingCents <= 0 {
		return 100
	}
	pct := t.CurrentSpendingCents * 100 / t.RequiredSpendingCents
	if pct > 100 {
		pct = 100
	}

	return int(pct)
}

// RemainingSpendingCents is the spend still needed, floored at zero.
func (t *WelcomeBonusTracking) RemainingSpendingCents() int64 {
	remaining := t.RequiredSpendingCents - t.CurrentSpendingCents
	if remaining < 0 {
		return 0
	}

	return remaining
}

// DaysRemaining counts days until the deadline as of now, floored at zero.
func (t *WelcomeBonusTracking) DaysRemaining(now time.Time) int {
	days := int(t.Deadline().Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// WelcomeBonusProgress is the tracker joined with its card and the
// computed progress figures for list responses.
type WelcomeBonusProgress struct {
	WelcomeBonusTracking
	Card           *CreditCard `json:"card"`
	ProgressPct    int         `json:"progress_pct"`
	RemainingCents int64       `json:"remaining_cents"`
	DaysLeft       int         `json:"days_left"`
}
