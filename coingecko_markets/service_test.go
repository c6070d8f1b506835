package coingecko_markets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/coreyadam8/cryptotracker/cache"
	cache_mocks "github.com/coreyadam8/cryptotracker/cache/mocks"
	cg "github.com/coreyadam8/cryptotracker/coingecko_common"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/interfaces"
)

// MockAPIClient is a testify mock of APIClient
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) FetchTopCoins(ctx context.Context, limit int) ([]CoinData, error) {
	args := m.Called(ctx, limit)
	coins, _ := args.Get(0).([]CoinData)
	return coins, args.Error(1)
}

func (m *MockAPIClient) Healthy() bool {
	return m.Called().Bool(0)
}

var sampleCoins = []CoinData{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 65000, MarketCap: 1.2e12},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3500, MarketCap: 4.0e11},
	{ID: "solana", Symbol: "sol", Name: "Solana", CurrentPrice: 150, MarketCap: 7.0e10},
}

func createTestService(t *testing.T, clock clockwork.Clock) (*Service, *MockAPIClient) {
	t.Helper()
	cfg := config.DefaultConfig()
	apiClient := &MockAPIClient{}
	service := NewService(cache.NewServiceWithClock(cfg.Cache, clock), cfg)
	service.apiClient = apiClient
	return service, apiClient
}

func TestNewService(t *testing.T) {
	cfg := config.DefaultConfig()
	cacheService := cache.NewService(cfg.Cache)

	service := NewService(cacheService, cfg)
	assert.NotNil(t, service)
	assert.Equal(t, cfg, service.config)
	assert.NotNil(t, service.metricsWriter)
	assert.NotNil(t, service.apiClient)
	assert.NoError(t, service.Start(context.Background()))
	service.Stop()
}

func TestService_StartWithoutCache(t *testing.T) {
	service := NewService(nil, config.DefaultConfig())
	err := service.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache dependency not provided")
}

func TestService_Healthy(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	apiClient.On("Healthy").Return(true).Once()
	assert.True(t, service.Healthy())

	service.apiClient = nil
	assert.False(t, service.Healthy())
}

func TestService_TopCoins(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	apiClient.On("FetchTopCoins", mock.Anything, 3).Return(sampleCoins, nil).Once()

	coins, status, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	require.Len(t, coins, 3)

	assert.Equal(t, interfaces.CoinSummary{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", MarketCap: 1.2e12, CurrentPrice: 65000}, coins[0])
	assert.Equal(t, "ETH", coins[1].Symbol)
	assert.Equal(t, "SOL", coins[2].Symbol)

	// Second call within TTL is served from cache
	again, status, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	assert.Equal(t, coins, again)

	apiClient.AssertNumberOfCalls(t, "FetchTopCoins", 1)
}

func TestService_TopCoins_DefaultLimit(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	apiClient.On("FetchTopCoins", mock.Anything, 10).Return(sampleCoins, nil).Once()

	coins, _, err := service.TopCoins(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, coins, 3)

	// An explicit 10 shares the entry with the default
	_, status, err := service.TopCoins(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	apiClient.AssertExpectations(t)
}

func TestService_TopCoins_TruncatesToLimit(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	apiClient.On("FetchTopCoins", mock.Anything, 2).Return(sampleCoins, nil).Once()

	coins, _, err := service.TopCoins(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "ethereum", coins[1].ID)
}

func TestService_TopCoins_EmptyList(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	apiClient.On("FetchTopCoins", mock.Anything, 5).Return([]CoinData{}, nil).Once()

	coins, _, err := service.TopCoins(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, coins)
	assert.Empty(t, coins)
}

func TestService_TopCoins_InvalidLimit(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())

	for _, limit := range []int{-1, config.MaxMarketsLimit + 1} {
		coins, _, err := service.TopCoins(context.Background(), limit)
		assert.Nil(t, coins)
		assert.ErrorIs(t, err, cg.ErrInvalidParams)
	}
	apiClient.AssertNotCalled(t, "FetchTopCoins", mock.Anything, mock.Anything)
}

func TestService_TopCoins_ProviderFailureIsCached(t *testing.T) {
	clock := clockwork.NewFakeClock()
	service, apiClient := createTestService(t, clock)
	providerErr := cg.NewFetchError(marketsOp, 429, errors.New("rate limited"))
	apiClient.On("FetchTopCoins", mock.Anything, 3).Return(nil, providerErr).Once()

	_, status, err := service.TopCoins(context.Background(), 3)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.ErrorIs(t, err, cg.ErrProviderUnavailable)

	// The failure is replayed without another request until the TTL passes
	_, status, err = service.TopCoins(context.Background(), 3)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	assert.ErrorIs(t, err, cg.ErrProviderUnavailable)
	apiClient.AssertNumberOfCalls(t, "FetchTopCoins", 1)

	clock.Advance(service.config.CoingeckoMarkets.GetTTL() + time.Second)
	apiClient.On("FetchTopCoins", mock.Anything, 3).Return(sampleCoins, nil).Once()

	coins, status, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	assert.Len(t, coins, 3)
}

func TestService_TopCoins_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	service, apiClient := createTestService(t, clock)
	apiClient.On("FetchTopCoins", mock.Anything, 3).Return(sampleCoins, nil).Twice()

	_, _, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)

	clock.Advance(service.config.CoingeckoMarkets.GetTTL())
	_, status, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)

	clock.Advance(time.Second)
	_, status, err = service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusMiss, status)
	apiClient.AssertNumberOfCalls(t, "FetchTopCoins", 2)
}

func TestService_TopCoins_ConcurrentCallersShareOneRequest(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	release := make(chan time.Time)
	apiClient.On("FetchTopCoins", mock.Anything, 3).
		WaitUntil(release).
		Return(sampleCoins, nil).
		Once()

	var wg sync.WaitGroup
	results := make(chan int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coins, _, err := service.TopCoins(context.Background(), 3)
			if err == nil {
				results <- len(coins)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	count := 0
	for n := range results {
		assert.Equal(t, 3, n)
		count++
	}
	assert.Equal(t, 10, count)
	apiClient.AssertNumberOfCalls(t, "FetchTopCoins", 1)
}

func TestService_TopCoins_CancelledCallerDoesNotCancelFetch(t *testing.T) {
	service, apiClient := createTestService(t, clockwork.NewFakeClock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	apiClient.On("FetchTopCoins", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), 3).Return(sampleCoins, nil).Once()

	coins, _, err := service.TopCoins(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, coins, 3)
}

func TestService_TopCoins_CacheKeyAndTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cache_mocks.NewMockCache(ctrl)
	cfg := config.DefaultConfig()
	cfg.CoingeckoMarkets.TTL = 42 * time.Second

	service := NewService(mockCache, cfg)
	mockCache.EXPECT().
		GetOrLoad("top_coins:usd:limit:3", 42*time.Second, gomock.Any()).
		Return([]byte(`[{"id":"bitcoin","name":"Bitcoin","symbol":"BTC","market_cap":1,"current_price":2}]`), interfaces.CacheStatusHit, nil)

	coins, status, err := service.TopCoins(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, interfaces.CacheStatusHit, status)
	require.Len(t, coins, 1)
	assert.Equal(t, 2.0, coins[0].CurrentPrice)
}

func TestService_TopCoins_CorruptCachedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cache_mocks.NewMockCache(ctrl)

	service := NewService(mockCache, config.DefaultConfig())
	mockCache.EXPECT().
		GetOrLoad(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{broken`), interfaces.CacheStatusHit, nil)

	_, _, err := service.TopCoins(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cached top coins")
}
