package impl

import (
	"context"
	"testing"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesService_GetPreferences_DefaultsWhenAbsent(t *testing.T) {
	service := NewPreferencesService(PreferencesServiceParams{PrefsRepo: &fakePrefsRepo{}})
	userID := uuid.New()

	prefs, err := service.GetPreferences(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, prefs.UserID)
	assert.Equal(t, "650-700", prefs.CreditScoreRange)
	assert.Zero(t, prefs.MaxAnnualFeeCents)
	assert.True(t, prefs.NotificationsEnabled)
}

func TestPreferencesService_UpdateThenGet(t *testing.T) {
	service := NewPreferencesService(PreferencesServiceParams{PrefsRepo: &fakePrefsRepo{}})
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.UpdatePreferences(ctx, &entity.UserPreferences{
		UserID:            userID,
		CreditScoreRange:  "750+",
		MaxAnnualFeeCents: 55000,
		PreferredIssuers:  "Chase,Citi",
	})
	require.NoError(t, err)

	prefs, err := service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "750+", prefs.CreditScoreRange)
	assert.Equal(t, int64(55000), prefs.MaxAnnualFeeCents)
	assert.Equal(t, "Chase,Citi", prefs.PreferredIssuers)
}

func TestPreferencesService_UpdatePreferences_Validation(t *testing.T) {
	service := NewPreferencesService(PreferencesServiceParams{PrefsRepo: &fakePrefsRepo{}})

	_, err := service.UpdatePreferences(context.Background(), &entity.UserPreferences{
		MaxAnnualFeeCents: 100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.UpdatePreferences(context.Background(), &entity.UserPreferences{
		UserID:            uuid.New(),
		MaxAnnualFeeCents: -5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
