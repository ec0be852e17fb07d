package usecase

import (
	"context"

	"cashreap/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateComparisonInput defines a new side-by-side card comparison. At
// least two distinct catalog card IDs are required.
type CreateComparisonInput struct {
	CardIDs        []string
	ComparisonName string
}

// ComparisonDetail joins a comparison with its resolved catalog cards in
// the order the user picked them.
type ComparisonDetail struct {
	Comparison *entity.CardComparison `json:"comparison"`
	Cards      []*entity.CreditCard   `json:"cards"`
}

// ComparisonUsecase manages saved card comparisons and their share codes.
type ComparisonUsecase interface {
	ListComparisons(ctx context.Context, userID uuid.UUID) ([]*ComparisonDetail, error)
	CreateComparison(ctx context.Context, userID uuid.UUID, input CreateComparisonInput) (*entity.CardComparison, error)

	// GenerateShareQR renders a QR code PNG for the comparison's share URL.
	// Only the owner may generate it.
	GenerateShareQR(ctx context.Context, userID, comparisonID uuid.UUID) ([]byte, error)
}
