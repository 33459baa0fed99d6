package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourism-backend/internal/pkg/utils"
)

func TestGenerateResetCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := utils.GenerateResetCode()

		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
