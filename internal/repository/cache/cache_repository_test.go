package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedKey(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		assert.Equal(t,
			feedKey("Lisbon", []string{"Museum", " restaurant "}),
			feedKey("lisbon", []string{"museum", "restaurant"}),
		)
	})

	t.Run("interest order changes the key", func(t *testing.T) {
		// теги мест зависят от порядка интересов, поэтому разные
		// порядки не должны делить одну запись кеша
		assert.NotEqual(t,
			feedKey("lisbon", []string{"castle", "restaurant"}),
			feedKey("lisbon", []string{"restaurant", "castle"}),
		)
	})

	t.Run("different cities never collide", func(t *testing.T) {
		assert.NotEqual(t,
			feedKey("lisbon", []string{"museum"}),
			feedKey("porto", []string{"museum"}),
		)
	})
}
