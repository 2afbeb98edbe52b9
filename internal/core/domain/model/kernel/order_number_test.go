package kernel_test

import (
	"testing"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("derives from creation time", func(t *testing.T) {
		createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		n := kernel.NewOrderNumber(createdAt)

		require.NoError(t, n.Validate())
		assert.Equal(t, "ORD-1717243200000", n.String())
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("accepts wire form", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORD-1717243200000")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1717243200000", n.String())
	})

	t.Run("rejects values without the prefix", func(t *testing.T) {
		for _, s := range []string{"", "ORD-", "1717243200000", "ord-123"} {
			_, err := kernel.OrderNumberFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n kernel.OrderNumber
		require.Error(t, n.Validate())
	})
}
