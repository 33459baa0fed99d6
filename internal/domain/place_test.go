package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourism-backend/internal/domain"
)

func TestRating_UnmarshalJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var r domain.Rating
		err := json.Unmarshal([]byte(`4.6`), &r)

		assert.NoError(t, err)
		assert.True(t, r.Rated)
		assert.Equal(t, 4.6, r.Value)
	})

	t.Run("numeric string", func(t *testing.T) {
		var r domain.Rating
		err := json.Unmarshal([]byte(`"4.2"`), &r)

		assert.NoError(t, err)
		assert.True(t, r.Rated)
		assert.Equal(t, 4.2, r.Value)
	})

	t.Run("non numeric string becomes not rated", func(t *testing.T) {
		var r domain.Rating
		err := json.Unmarshal([]byte(`"great"`), &r)

		assert.NoError(t, err)
		assert.False(t, r.Rated)
	})

	t.Run("null becomes not rated", func(t *testing.T) {
		var r domain.Rating
		err := json.Unmarshal([]byte(`null`), &r)

		assert.NoError(t, err)
		assert.False(t, r.Rated)
	})

	t.Run("absent field stays not rated", func(t *testing.T) {
		var p domain.RawPlace
		err := json.Unmarshal([]byte(`{"place_id":"p1","name":"X"}`), &p)

		assert.NoError(t, err)
		assert.False(t, p.Rating.Rated)
	})
}

func TestRating_MarshalJSON(t *testing.T) {
	t.Run("rated serializes as number", func(t *testing.T) {
		data, err := json.Marshal(domain.NewRating(4.5))

		assert.NoError(t, err)
		assert.Equal(t, `4.5`, string(data))
	})

	t.Run("not rated serializes as sentinel string", func(t *testing.T) {
		data, err := json.Marshal(domain.Rating{})

		assert.NoError(t, err)
		assert.Equal(t, `"Not Rated"`, string(data))
	})
}

func TestRating_AtLeast(t *testing.T) {
	assert.True(t, domain.NewRating(4.5).AtLeast(4.5))
	assert.True(t, domain.NewRating(4.9).AtLeast(4.5))
	assert.False(t, domain.NewRating(4.49999).AtLeast(4.5))
	assert.False(t, domain.Rating{Value: 5}.AtLeast(4.5))
}

func TestRawPlace_HasPhoto(t *testing.T) {
	assert.False(t, domain.RawPlace{}.HasPhoto())
	assert.True(t, domain.RawPlace{
		Photos: []domain.PlacePhoto{{PhotoReference: "ref"}},
	}.HasPhoto())
}
