package utils

import (
	"emr-service/internal/pkg/constvars"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	t.Run("Prefix And Uniqueness", func(t *testing.T) {
		first := GenerateRequestID()
		second := GenerateRequestID()

		assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
		assert.NotEqual(t, first, second)
	})
}

func TestGenerateReceiptNumber(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		receipt := GenerateReceiptNumber(now)

		parts := strings.Split(receipt, "-")
		assert.Len(t, parts, 3)
		assert.Equal(t, constvars.RECEIPT_PREFIX, parts[0])
		assert.Equal(t, fmt.Sprintf("%d", now.UnixMilli()), parts[1])

		suffix, err := strconv.Atoi(parts[2])
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 0)
		assert.Less(t, suffix, 1000)
	})
}
