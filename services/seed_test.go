package services

import (
	"regexp"
	"testing"

	"storemate-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitSizeInfo_CoversEveryType(t *testing.T) {
	for _, unitType := range models.UnitTypes {
		info, ok := UnitSizeInfo[unitType]
		require.True(t, ok, "missing catalog entry for %s", unitType)
		assert.NotEmpty(t, info.Size)
		assert.Greater(t, info.Price, 0)
	}
}

func TestRandomLocation_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^Floor [1-3], Block [A-D]$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, RandomLocation())
	}
}
