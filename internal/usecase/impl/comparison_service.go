package impl

import (
	"context"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/domain/service"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// comparisonService implements the ComparisonUsecase interface.
type comparisonService struct {
	comparisonRepo repository.ComparisonRepository
	cardRepo       repository.CardRepository
	qrcodeService  service.QRCodeService
}

// ComparisonServiceParams holds dependencies for ComparisonService, injected by Fx.
type ComparisonServiceParams struct {
	fx.In

	ComparisonRepo repository.ComparisonRepository
	CardRepo       repository.CardRepository
	QRCodeService  service.QRCodeService
}

// NewComparisonService is the constructor for comparisonService.
func NewComparisonService(params ComparisonServiceParams) usecase.ComparisonUsecase {
	return &comparisonService{
		comparisonRepo: params.ComparisonRepo,
		cardRepo:       params.CardRepo,
		qrcodeService:  params.QRCodeService,
	}
}

// ListComparisons returns the user's comparisons with their cards resolved
// in pick order.
func (s *comparisonService) ListComparisons(ctx context.Context, userID uuid.UUID) ([]*usecase.ComparisonDetail, error) {
	comparisons, err := s.comparisonRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comparisons")
	}

	details := make([]*usecase.ComparisonDetail, 0, len(comparisons))
	for _, comparison := range comparisons {
		cards, err := s.resolveCards(ctx, comparison.CardIDs)
		if err != nil {
			return nil, err
		}

		details = append(details, &usecase.ComparisonDetail{
			Comparison: comparison,
			Cards:      cards,
		})
	}

	return details, nil
}

// CreateComparison validates the picked cards against the catalog and
// persists the set.
func (s *comparisonService) CreateComparison(ctx context.Context, userID uuid.UUID, input usecase.CreateComparisonInput) (*entity.CardComparison, error) {
	cardIDs := dedupeCardIDs(input.CardIDs)
	if len(cardIDs) < 2 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a comparison needs at least two distinct cards")
	}

	cards, err := s.cardRepo.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify comparison cards")
	}
	if len(cards) != len(cardIDs) {
		return nil, errors.Wrap(domainerrors.ErrCardNotFound, "comparison references unknown cards")
	}

	comparison := &entity.CardComparison{
		UserID:         userID,
		CardIDs:        cardIDs,
		ComparisonName: input.ComparisonName,
	}

	if err := s.comparisonRepo.Create(ctx, comparison); err != nil {
		return nil, errors.Wrap(err, "failed to create comparison")
	}

	return comparison, nil
}

// GenerateShareQR renders a QR code PNG for the comparison's share URL.
func (s *comparisonService) GenerateShareQR(ctx context.Context, userID, comparisonID uuid.UUID) ([]byte, error) {
	comparison, err := s.comparisonRepo.FindByID(ctx, comparisonID)
	if err != nil {
		if errors.Is(err, repository.ErrComparisonNotFound) {
			return nil, errors.Wrap(domainerrors.ErrComparisonNotFound, "comparison lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find comparison")
	}

	if comparison.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "comparison belongs to another user")
	}

	png, err := s.qrcodeService.GenerateComparisonQR(comparison.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// resolveCards loads catalog cards preserving the pick order.
func (s *comparisonService) resolveCards(ctx context.Context, cardIDs []string) ([]*entity.CreditCard, error) {
	cards, err := s.cardRepo.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comparison cards")
	}

	cardsByID := make(map[string]*entity.CreditCard, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	ordered := make([]*entity.CreditCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		if card, ok := cardsByID[id]; ok {
			ordered = append(ordered, card)
		}
	}

	return ordered, nil
}

func dedupeCardIDs(cardIDs []string) []string {
	seen := make(map[string]bool, len(cardIDs))
	result := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}

	return result
}
