package impl

// In-memory fakes for the repository and service interfaces. Tests mutate
// their exported slices directly to arrange state.

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"cashreap/internal/domain/entity"
	domainerrors "cashreap/internal/domain/errors"
	"cashreap/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Catalog fakes ---

type fakeCardRepo struct {
	cards []*entity.CreditCard
}

func (r *fakeCardRepo) ListActive(_ context.Context, limit int) ([]*entity.CreditCard, error) {
	var result []*entity.CreditCard
	for _, card := range r.cards {
		if !card.IsActive {
			continue
		}
		result = append(result, card)
		if limit > 0 && len(result) == limit {
			break
		}
	}

	return result, nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id string) (*entity.CreditCard, error) {
	for _, card := range r.cards {
		if card.ID == id {
			return card, nil
		}
	}

	return nil, repository.ErrCardNotFound
}

func (r *fakeCardRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.CreditCard, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var result []*entity.CreditCard
	for _, card := range r.cards {
		if wanted[card.ID] {
			result = append(result, card)
		}
	}

	return result, nil
}

type fakeCategoryRepo struct {
	categories []*entity.MerchantCategory
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.MerchantCategory, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.MerchantCategory, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

type fakeRewardRepo struct {
	rewards []*entity.CardCategoryReward
}

func (r *fakeRewardRepo) FindByCategory(_ context.Context, categoryID string) ([]*entity.CardCategoryReward, error) {
	var result []*entity.CardCategoryReward
	for _, reward := range r.rewards {
		if reward.CategoryID == categoryID {
			result = append(result, reward)
		}
	}

	return result, nil
}

func (r *fakeRewardRepo) FindByCard(_ context.Context, cardID string) ([]*entity.CardCategoryReward, error) {
	var result []*entity.CardCategoryReward
	for _, reward := range r.rewards {
		if reward.CardID == cardID {
			result = append(result, reward)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RewardRateBP > result[j].RewardRateBP
	})

	return result, nil
}

type fakeStoreRepo struct {
	stores     []*entity.Store
	categories map[string]*entity.MerchantCategory
}

func (r *fakeStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	return r.stores, nil
}

func (r *fakeStoreRepo) FindByID(_ context.Context, id string) (*entity.StoreWithCategory, error) {
	for _, store := range r.stores {
		if store.ID == id {
			return &entity.StoreWithCategory{
				Store:    *store,
				Category: r.categories[store.CategoryID],
			}, nil
		}
	}

	return nil, repository.ErrStoreNotFound
}

func (r *fakeStoreRepo) SearchByName(_ context.Context, query string) ([]*entity.Store, error) {
	needle := strings.ToLower(query)
	var result []*entity.Store
	for _, store := range r.stores {
		if strings.Contains(strings.ToLower(store.Name), needle) {
			result = append(result, store)
		}
	}

	return result, nil
}

func (r *fakeStoreRepo) ListWithLocation(_ context.Context) ([]*entity.Store, error) {
	var result []*entity.Store
	for _, store := range r.stores {
		if store.HasLocation() {
			result = append(result, store)
		}
	}

	return result, nil
}

// --- Account fakes ---

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Phone != nil && *user.Phone == phone {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		sameEmail := user.Email != nil && existing.Email != nil && *user.Email == *existing.Email
		samePhone := user.Phone != nil && existing.Phone != nil && *user.Phone == *existing.Phone
		if sameEmail || samePhone {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	token.ID = uuid.New()
	r.tokens[token.TokenHash] = token

	return nil
}

func (r *fakeRefreshTokenRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return token, nil
}

func (r *fakeRefreshTokenRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	if _, ok := r.tokens[tokenHash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.tokens, tokenHash)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for hash, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, hash)
		}
	}

	return nil
}

// --- User-state fakes ---

type fakeSavedCardRepo struct {
	saved []*entity.UserSavedCard
}

func (r *fakeSavedCardRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserSavedCard, error) {
	var result []*entity.UserSavedCard
	for _, row := range r.saved {
		if row.UserID == userID {
			result = append(result, row)
		}
	}

	return result, nil
}

func (r *fakeSavedCardRepo) FindByUserAndCard(_ context.Context, userID uuid.UUID, cardID string) (*entity.UserSavedCard, error) {
	for _, row := range r.saved {
		if row.UserID == userID && row.CardID == cardID {
			return row, nil
		}
	}

	return nil, repository.ErrSavedCardNotFound
}

func (r *fakeSavedCardRepo) Create(_ context.Context, saved *entity.UserSavedCard) error {
	for _, row := range r.saved {
		if row.UserID == saved.UserID && row.CardID == saved.CardID {
			return repository.ErrDuplicateSavedCard
		}
	}

	saved.ID = uuid.New()
	saved.SavedAt = time.Now()
	r.saved = append(r.saved, saved)

	return nil
}

func (r *fakeSavedCardRepo) Delete(_ context.Context, userID uuid.UUID, cardID string) error {
	for i, row := range r.saved {
		if row.UserID == userID && row.CardID == cardID {
			r.saved = append(r.saved[:i], r.saved[i+1:]...)

			return nil
		}
	}

	return repository.ErrSavedCardNotFound
}

type fakeHistoryRepo struct {
	records []*entity.UserSearchHistory
}

func (r *fakeHistoryRepo) Append(_ context.Context, record *entity.UserSearchHistory) error {
	record.ID = uuid.New()
	record.SearchedAt = time.Now()
	r.records = append([]*entity.UserSearchHistory{record}, r.records...)

	return nil
}

func (r *fakeHistoryRepo) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.UserSearchHistory, error) {
	var result []*entity.UserSearchHistory
	for _, record := range r.records {
		if record.UserID != userID {
			continue
		}
		result = append(result, record)
		if limit > 0 && len(result) == limit {
			break
		}
	}

	return result, nil
}

type fakeProfileRepo struct {
	profiles []*entity.UserSpendingProfile
}

func (r *fakeProfileRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserSpendingProfile, error) {
	var result []*entity.UserSpendingProfile
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			result = append(result, profile)
		}
	}

	return result, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *entity.UserSpendingProfile) error {
	for _, existing := range r.profiles {
		if existing.UserID == profile.UserID && existing.CategoryID == profile.CategoryID {
			existing.MonthlySpendingCents = profile.MonthlySpendingCents
			existing.UpdatedAt = time.Now()

			return nil
		}
	}

	profile.ID = uuid.New()
	profile.UpdatedAt = time.Now()
	r.profiles = append(r.profiles, profile)

	return nil
}

type fakePlanRepo struct {
	plans []*entity.PurchasePlan
}

func (r *fakePlanRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.PurchasePlan, error) {
	var result []*entity.PurchasePlan
	for _, plan := range r.plans {
		if plan.UserID == userID {
			result = append(result, plan)
		}
	}

	return result, nil
}

func (r *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PurchasePlan, error) {
	for _, plan := range r.plans {
		if plan.ID == id {
			return plan, nil
		}
	}

	return nil, repository.ErrPlanNotFound
}

func (r *fakePlanRepo) Create(_ context.Context, plan *entity.PurchasePlan) error {
	plan.ID = uuid.New()
	plan.CreatedAt = time.Now()
	r.plans = append(r.plans, plan)

	return nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *entity.PurchasePlan) error {
	for i, existing := range r.plans {
		if existing.ID == plan.ID {
			r.plans[i] = plan

			return nil
		}
	}

	return repository.ErrPlanNotFound
}

func (r *fakePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, plan := range r.plans {
		if plan.ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)

			return nil
		}
	}

	return repository.ErrPlanNotFound
}

type fakeTrackingRepo struct {
	trackers []*entity.WelcomeBonusTracking
}

func (r *fakeTrackingRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.WelcomeBonusTracking, error) {
	var result []*entity.WelcomeBonusTracking
	for _, tracker := range r.trackers {
		if tracker.UserID == userID {
			result = append(result, tracker)
		}
	}

	return result, nil
}

func (r *fakeTrackingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WelcomeBonusTracking, error) {
	for _, tracker := range r.trackers {
		if tracker.ID == id {
			return tracker, nil
		}
	}

	return nil, repository.ErrBonusTrackingNotFound
}

func (r *fakeTrackingRepo) Create(_ context.Context, tracking *entity.WelcomeBonusTracking) error {
	tracking.ID = uuid.New()
	r.trackers = append(r.trackers, tracking)

	return nil
}

func (r *fakeTrackingRepo) Update(_ context.Context, tracking *entity.WelcomeBonusTracking) error {
	for i, existing := range r.trackers {
		if existing.ID == tracking.ID {
			r.trackers[i] = tracking

			return nil
		}
	}

	return repository.ErrBonusTrackingNotFound
}

type fakePrefsRepo struct {
	prefs []*entity.UserPreferences
}

func (r *fakePrefsRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	for _, row := range r.prefs {
		if row.UserID == userID {
			return row, nil
		}
	}

	return nil, nil
}

func (r *fakePrefsRepo) Upsert(_ context.Context, prefs *entity.UserPreferences) error {
	for i, existing := range r.prefs {
		if existing.UserID == prefs.UserID {
			r.prefs[i] = prefs

			return nil
		}
	}

	prefs.ID = uuid.New()
	r.prefs = append(r.prefs, prefs)

	return nil
}

type fakeComparisonRepo struct {
	comparisons []*entity.CardComparison
}

func (r *fakeComparisonRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.CardComparison, error) {
	var result []*entity.CardComparison
	for _, comparison := range r.comparisons {
		if comparison.UserID == userID {
			result = append(result, comparison)
		}
	}

	return result, nil
}

func (r *fakeComparisonRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CardComparison, error) {
	for _, comparison := range r.comparisons {
		if comparison.ID == id {
			return comparison, nil
		}
	}

	return nil, repository.ErrComparisonNotFound
}

func (r *fakeComparisonRepo) Create(_ context.Context, comparison *entity.CardComparison) error {
	comparison.ID = uuid.New()
	comparison.CreatedAt = time.Now()
	r.comparisons = append(r.comparisons, comparison)

	return nil
}

// --- Domain service fakes ---

type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

type fakeTokenService struct {
	seq      int
	subjects map[string]uuid.UUID // raw refresh token -> user
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{subjects: make(map[string]uuid.UUID)}
}

func (s *fakeTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	s.seq++
	access := "access-" + userID.String()
	refresh := "refresh-" + userID.String() + "-" + string(rune('a'+s.seq))
	s.subjects[refresh] = userID

	return access, refresh, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ string) (*jwt.Token, error) {
	panic("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(tokenString string) (*jwt.Token, error) {
	userID, ok := s.subjects[tokenString]
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	return &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}, Valid: true}, nil
}

func (s *fakeTokenService) HashToken(token string) string {
	return "hash-" + token
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

type fakeQRCodeService struct {
	lastID uuid.UUID
}

func (s *fakeQRCodeService) GenerateComparisonQR(comparisonID uuid.UUID) ([]byte, error) {
	s.lastID = comparisonID

	return []byte("png:" + comparisonID.String()), nil
}
