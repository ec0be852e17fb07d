package impl

import (
	"context"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"
	"cashreap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchHistoryLimit caps how many past lookups a listing returns.
const searchHistoryLimit = 50

// searchHistoryService implements the SearchHistoryUsecase interface.
type searchHistoryService struct {
	historyRepo repository.SearchHistoryRepository
	storeRepo   repository.StoreRepository
}

// SearchHistoryServiceParams holds dependencies for SearchHistoryService, injected by Fx.
type SearchHistoryServiceParams struct {
	fx.In

	HistoryRepo repository.SearchHistoryRepository
	StoreRepo   repository.StoreRepository
}

// NewSearchHistoryService is the constructor for searchHistoryService.
func NewSearchHistoryService(params SearchHistoryServiceParams) usecase.SearchHistoryUsecase {
	return &searchHistoryService{
		historyRepo: params.HistoryRepo,
		storeRepo:   params.StoreRepo,
	}
}

// RecordSearch appends one store lookup to the user's history.
func (s *searchHistoryService) RecordSearch(ctx context.Context, userID uuid.UUID, storeID string) (*entity.UserSearchHistory, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "cannot record search for unknown store")
		}

		return nil, errors.Wrap(err, "failed to verify store")
	}

	record := &entity.UserSearchHistory{
		UserID:  userID,
		StoreID: storeID,
	}

	if err := s.historyRepo.Append(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record search")
	}

	return record, nil
}

// ListHistory returns the newest lookups first.
func (s *searchHistoryService) ListHistory(ctx context.Context, userID uuid.UUID) ([]*entity.UserSearchHistory, error) {
	records, err := s.historyRepo.FindByUser(ctx, userID, searchHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	return records, nil
}
