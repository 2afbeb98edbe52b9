package product_test

import (
	"testing"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates available product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", 100)

		require.NoError(t, err)
		assert.Equal(t, "Pad Thai", p.Name())
		assert.Equal(t, 100.0, p.Price())
		assert.True(t, p.IsAvailable())
	})

	t.Run("rejects empty name and negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", 100)
		require.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", -1)
		require.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", 100)
	require.NoError(t, err)

	require.NoError(t, p.Update("Pad Thai XL", 150))

	assert.Equal(t, "Pad Thai XL", p.Name())
	assert.Equal(t, 150.0, p.Price())

	require.Error(t, p.Update("", 150))
	require.Error(t, p.Update("Pad Thai", -1))
}

func TestProduct_Discontinue(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", 100)
	require.NoError(t, err)

	p.Discontinue()

	assert.False(t, p.IsAvailable())
}

func TestProduct_Validate(t *testing.T) {
	var p product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
}
