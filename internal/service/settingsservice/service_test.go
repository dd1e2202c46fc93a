package settingsservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitrine/internal/domain"
	"vitrine/internal/pkg/cache"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/service/settingsservice"
)

// MockSettingsRepository é uma implementação mock da interface SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindOverrides(ctx context.Context) (domain.StoreSettingsOverrides, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StoreSettingsOverrides), args.Error(1)
}

// MockCacheClient é uma implementação mock da interface cache.Client
type MockCacheClient struct {
	mock.Mock
}

func (m *MockCacheClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheClient) GetInt(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheClient) Incr(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheClient) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

// TestGetSettings_MergesOverridesOverDefaults testa que apenas os campos
// personalizados sobrescrevem os padrões.
func TestGetSettings_MergesOverridesOverDefaults(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	mockCache := new(MockCacheClient)
	svc := settingsservice.NewService(mockRepo, mockCache, 5*time.Minute, logger.NewLogger("debug"))

	mockCache.On("Get", mock.Anything, "store:settings").Return("", cache.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, "store:settings", mock.Anything, 5*time.Minute).Return(nil)
	mockRepo.On("FindOverrides", mock.Anything).Return(domain.StoreSettingsOverrides{
		StoreName:    strPtr("Tapetes da Ana"),
		PrimaryColor: strPtr("#8b5cf6"),
	}, nil)

	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Tapetes da Ana", settings.StoreName)
	assert.Equal(t, "#8b5cf6", settings.PrimaryColor)
	// Campos não personalizados mantêm o padrão.
	assert.Equal(t, "#10b981", settings.SecondaryColor)
	assert.Equal(t, "Seu carrinho está vazio", settings.MessageEmptyCartText)
	assert.Equal(t, 7, settings.EstimatedDeliveryDays)
	mockRepo.AssertExpectations(t)
}

// TestGetSettings_NoOverrides_ReturnsDefaults testa a loja sem nenhuma
// personalização cadastrada.
func TestGetSettings_NoOverrides_ReturnsDefaults(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	mockCache := new(MockCacheClient)
	svc := settingsservice.NewService(mockRepo, mockCache, 5*time.Minute, logger.NewLogger("debug"))

	mockCache.On("Get", mock.Anything, "store:settings").Return("", cache.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, "store:settings", mock.Anything, 5*time.Minute).Return(nil)
	mockRepo.On("FindOverrides", mock.Anything).Return(domain.StoreSettingsOverrides{}, nil)

	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreSettings(), settings)
}

// TestGetSettings_CacheHit_SkipsDB testa que o cache evita a ida ao banco.
func TestGetSettings_CacheHit_SkipsDB(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	mockCache := new(MockCacheClient)
	svc := settingsservice.NewService(mockRepo, mockCache, 5*time.Minute, logger.NewLogger("debug"))

	cached := domain.DefaultStoreSettings()
	cached.StoreName = "Loja em Cache"
	payload, _ := json.Marshal(cached)
	mockCache.On("Get", mock.Anything, "store:settings").Return(string(payload), nil)

	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Loja em Cache", settings.StoreName)
	mockRepo.AssertNotCalled(t, "FindOverrides", mock.Anything)
}

// TestGetSettings_DBFailure_FallsBackToDefaults testa que a vitrine abre
// com os padrões mesmo com o banco indisponível.
func TestGetSettings_DBFailure_FallsBackToDefaults(t *testing.T) {
	mockRepo := new(MockSettingsRepository)
	mockCache := new(MockCacheClient)
	svc := settingsservice.NewService(mockRepo, mockCache, 5*time.Minute, logger.NewLogger("debug"))

	mockCache.On("Get", mock.Anything, "store:settings").Return("", cache.ErrCacheMiss)
	mockRepo.On("FindOverrides", mock.Anything).
		Return(domain.StoreSettingsOverrides{}, errors.New("falha de conexão com o DB"))

	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreSettings(), settings)
}
