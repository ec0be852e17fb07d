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

// preferencesService implements the PreferencesUsecase interface.
type preferencesService struct {
	prefsRepo repository.PreferencesRepository
}

// PreferencesServiceParams holds dependencies for PreferencesService, injected by Fx.
type PreferencesServiceParams struct {
	fx.In

	PrefsRepo repository.PreferencesRepository
}

// NewPreferencesService is the constructor for preferencesService.
func NewPreferencesService(params PreferencesServiceParams) usecase.PreferencesUsecase {
	return &preferencesService{prefsRepo: params.PrefsRepo}
}

// GetPreferences returns stored preferences, or the defaults for a user
// who never saved any.
func (s *preferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	prefs, err := s.prefsRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	if prefs == nil {
		return entity.DefaultPreferences(userID), nil
	}

	return prefs, nil
}

// UpdatePreferences upserts the user's preferences row.
func (s *preferencesService) UpdatePreferences(ctx context.Context, prefs *entity.UserPreferences) (*entity.UserPreferences, error) {
	if prefs.UserID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "preferences require a user")
	}
	if prefs.MaxAnnualFeeCents < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "max annual fee cannot be negative")
	}

	if err := s.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert preferences")
	}

	return prefs, nil
}
