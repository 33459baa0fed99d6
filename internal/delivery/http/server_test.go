package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/delivery/http/handler"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/usecase"
	"github.com/tourism-backend/internal/usecase/dto"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) CreateResetCode(ctx context.Context, code *domain.PasswordResetCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockUserRepository) GetLatestResetCode(ctx context.Context, userID uuid.UUID) (*domain.PasswordResetCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetCode), args.Error(1)
}

func (m *MockUserRepository) DeleteResetCodes(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SendPasswordResetCode(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockCityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetFeed(ctx context.Context, cityName string, interests []string) (*domain.Feed, error) {
	args := m.Called(ctx, cityName, interests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feed), args.Error(1)
}

func (m *MockCacheRepository) SetFeed(ctx context.Context, cityName string, interests []string, feed *domain.Feed, ttl time.Duration) error {
	args := m.Called(ctx, cityName, interests, feed, ttl)
	return args.Error(0)
}

type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) NearbySearch(ctx context.Context, location domain.GeoPoint, radius int, keyword string) ([]domain.RawPlace, error) {
	args := m.Called(ctx, location, radius, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPlace), args.Error(1)
}

func (m *MockPlacesRepository) GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawPlaceDetail), args.Error(1)
}

func (m *MockPlacesRepository) PhotoURL(photoReference string) string {
	args := m.Called(photoReference)
	return args.String(0)
}

type serverFixture struct {
	server *Server
	authUC *usecase.AuthUseCase
	users  *MockUserRepository
	cities *MockCityRepository
	cache  *MockCacheRepository
	places *MockPlacesRepository
}

func newServerFixture() *serverFixture {
	logger := zap.NewNop()

	users := new(MockUserRepository)
	cities := new(MockCityRepository)
	cache := new(MockCacheRepository)
	places := new(MockPlacesRepository)

	jwtCfg := config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	googleCfg := &config.GoogleConfig{
		SearchRadius:    5000,
		PopularRating:   4.5,
		MaxAiCandidates: 5,
		DetailWorkers:   3,
	}

	authUC := usecase.NewAuthUseCase(users, new(MockMailRepository), logger, jwtCfg)
	feedUC := usecase.NewFeedUseCase(places, cities, cache, logger, googleCfg, time.Minute)
	cityUC := usecase.NewCityUseCase(cities, logger)

	srv := NewServer(
		&config.Config{},
		logger,
		authUC,
		handler.NewPlaceHandler(feedUC, cityUC, logger),
		handler.NewAuthHandler(authUC, logger),
		handler.NewUserHandler(authUC, logger),
		handler.NewBlogHandler(nil, logger),
		handler.NewAdvertisementHandler(nil, logger),
		handler.NewThreadHandler(nil, logger),
		handler.NewGuideHandler(nil, authUC, logger),
	)

	return &serverFixture{
		server: srv,
		authUC: authUC,
		users:  users,
		cities: cities,
		cache:  cache,
		places: places,
	}
}

// accessToken регистрирует пользователя через usecase и возвращает его access токен
func (f *serverFixture) accessToken(t *testing.T) string {
	t.Helper()

	f.users.On("ExistsByEmail", mock.Anything, "anna@example.com").Return(false, nil).Once()
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := f.authUC.Register(context.Background(), dto.RegisterRequest{
		Email:     "anna@example.com",
		FirstName: "Anna",
		LastName:  "Petrova",
		Password:  "secret123",
	})
	require.NoError(t, err)

	return resp.Tokens.AccessToken
}

func TestServer_FeedRouteRequiresAuth(t *testing.T) {
	t.Run("feed without token is rejected", func(t *testing.T) {
		f := newServerFixture()

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/places/feed?city_name=Lisbon&interests=museum", nil)
		resp, err := f.server.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
		f.cities.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})

	t.Run("feed with garbage token is rejected", func(t *testing.T) {
		f := newServerFixture()

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/places/feed?city_name=Lisbon&interests=museum", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := f.server.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("feed with valid token reaches the usecase", func(t *testing.T) {
		f := newServerFixture()
		token := f.accessToken(t)

		lisbon := &domain.City{ID: 1, Name: "Lisbon", Latitude: 38.72, Longitude: -9.14}
		f.cities.On("GetByName", mock.Anything, "Lisbon").Return(lisbon, nil)
		f.cache.On("GetFeed", mock.Anything, "Lisbon", []string{"museum"}).Return(nil, nil)
		f.places.On("NearbySearch", mock.Anything, mock.Anything, 5000, "museum").Return([]domain.RawPlace{
			{
				PlaceID: "p1",
				Name:    "National Museum",
				Rating:  domain.NewRating(4.8),
				Photos:  []domain.PlacePhoto{{PhotoReference: "ref1"}},
			},
		}, nil)
		f.places.On("PhotoURL", "ref1").Return("https://photo.example/ref1")
		f.cache.On("SetFeed", mock.Anything, "Lisbon", []string{"museum"}, mock.Anything, time.Minute).Return(nil)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/places/feed?city_name=Lisbon&interests=museum", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := f.server.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		f.places.AssertExpectations(t)
	})

	t.Run("cities stays public", func(t *testing.T) {
		f := newServerFixture()
		f.cities.On("GetAll", mock.Anything).Return([]domain.City{
			{ID: 1, Name: "Lisbon", Latitude: 38.72, Longitude: -9.14},
		}, nil)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/places/cities", nil)
		resp, err := f.server.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	})
}
