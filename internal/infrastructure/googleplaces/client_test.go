package googleplaces_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/domain"
	"github.com/tourism-backend/internal/infrastructure/googleplaces"
)

func testConfig(baseURL string) *config.GoogleConfig {
	return &config.GoogleConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		PhotoBaseURL:   "https://maps.googleapis.com/maps/api/place/photo",
		MaxPhotoWidth:  400,
		RequestTimeout: 5,
		RequestsPerSec: 100,
	}
}

func TestClient_NearbySearch(t *testing.T) {
	ctx := context.Background()
	barcelona := domain.GeoPoint{Latitude: 41.3851, Longitude: 2.1734}

	t.Run("parses results and passes query params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/nearbysearch/json", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.Equal(t, "5000", r.URL.Query().Get("radius"))
			assert.Equal(t, "museum", r.URL.Query().Get("keyword"))
			assert.Contains(t, r.URL.Query().Get("location"), "41.38")

			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{"place_id": "p1", "name": "MNAC", "rating": 4.7, "photos": [{"photo_reference": "ref-1"}]},
					{"place_id": "p2", "name": "No Rating Museum", "photos": [{"photo_reference": "ref-2"}]}
				]
			}`)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		places, err := client.NearbySearch(ctx, barcelona, 5000, "museum")

		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "p1", places[0].PlaceID)
		assert.True(t, places[0].Rating.Rated)
		assert.Equal(t, 4.7, places[0].Rating.Value)
		assert.False(t, places[1].Rating.Rated)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		places, err := client.NearbySearch(ctx, barcelona, 5000, "unicorn")

		assert.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("denied status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "bad key"}`)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		places, err := client.NearbySearch(ctx, barcelona, 5000, "museum")

		assert.Nil(t, places)
		assert.Error(t, err)
	})

	t.Run("http error is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		_, err := client.NearbySearch(ctx, barcelona, 5000, "museum")

		assert.Error(t, err)
	})

	t.Run("empty keyword is rejected locally", func(t *testing.T) {
		client := googleplaces.NewGooglePlacesClient(testConfig("http://unused"), zap.NewNop())

		_, err := client.NearbySearch(ctx, barcelona, 5000, "")

		assert.Error(t, err)
	})
}

func TestClient_GetDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a partial detail payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/details/json", r.URL.Path)
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))

			fmt.Fprint(w, `{
				"status": "OK",
				"result": {
					"name": "Sagrada Familia",
					"formatted_address": "Carrer de Mallorca, 401",
					"rating": "4.7",
					"opening_hours": {"weekday_text": ["Monday: 9:00 AM - 6:00 PM"]},
					"reviews": [{"author_name": "Anna", "text": "Stunning", "rating": 5}]
				}
			}`)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		detail, err := client.GetDetails(ctx, "p1")

		require.NoError(t, err)
		// place_id подставляется из запроса, если провайдер его не вернул
		assert.Equal(t, "p1", detail.PlaceID)
		assert.Equal(t, "Sagrada Familia", detail.Name)
		assert.True(t, detail.Rating.Rated)
		assert.Equal(t, 4.7, detail.Rating.Value)
		assert.Empty(t, detail.Phone)
		require.NotNil(t, detail.OpeningHours)
		assert.Len(t, detail.OpeningHours.WeekdayText, 1)
		require.Len(t, detail.Reviews, 1)
		assert.Equal(t, "Anna", detail.Reviews[0].AuthorName)
	})

	t.Run("not found status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "NOT_FOUND"}`)
		}))
		defer server.Close()

		client := googleplaces.NewGooglePlacesClient(testConfig(server.URL), zap.NewNop())

		detail, err := client.GetDetails(ctx, "missing")

		assert.Nil(t, detail)
		assert.Error(t, err)
	})
}

func TestClient_PhotoURL(t *testing.T) {
	client := googleplaces.NewGooglePlacesClient(testConfig("http://unused"), zap.NewNop())

	url := client.PhotoURL("abc123")

	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photo_reference=abc123&key=test-key",
		url)
}
