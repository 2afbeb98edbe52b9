package kernel_test

import (
	"fmt"
	"testing"

	"ghostkitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("accepts plain and international forms", func(t *testing.T) {
		for _, s := range []string{"5551234567", "+15551234567", "0012345"} {
			t.Run(s, func(t *testing.T) {
				p, err := kernel.NewPhone(s)

				require.NoError(t, err)
				assert.Equal(t, s, p.String())
			})
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := []struct {
			input  string
			reason string
		}{
			{"", "empty"},
			{"123", "too short"},
			{"1234567890123456", "too long"},
			{"555-123-4567", "separator characters"},
			{"55512345+67", "plus not leading"},
			{"call me", "letters"},
		}

		for _, tc := range cases {
			t.Run(fmt.Sprintf("rejects %s", tc.reason), func(t *testing.T) {
				_, err := kernel.NewPhone(tc.input)
				require.Error(t, err)
			})
		}
	})
}

func TestPhone_IsEqual(t *testing.T) {
	a, err := kernel.NewPhone("5551234567")
	require.NoError(t, err)
	b, err := kernel.NewPhone("5551234567")
	require.NoError(t, err)
	c, err := kernel.NewPhone("5557654321")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
