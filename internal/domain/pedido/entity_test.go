//go:build unit

package pedido_test

import (
	"testing"

	dompedido "humipay/internal/domain/pedido"
	"humipay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PedidoBuilder)
	errIs  error
}

func TestNewPedido(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPedidoBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Maria Quispe", actual.Nombre())
		assert.Equal(t, "987654321", actual.Telefono())
		assert.False(t, actual.Pagado())
		assert.Nil(t, actual.Comentarios())
	})

	t.Run("monto is quantity times unit price", func(t *testing.T) {
		// 2 dulce + 1 salada at S/3 each
		actual, err := builder.NewPedidoBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(9).Equal(actual.MontoEst()),
			"expected 9, got %s", actual.MontoEst())
	})

	t.Run("monto uses the price in force at creation", func(t *testing.T) {
		actual, err := builder.NewPedidoBuilder().
			WithCantidades(4, 0).
			WithPrecioUnit(decimal.RequireFromString("3.50")).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("14").Equal(actual.MontoEst()),
			"expected 14, got %s", actual.MontoEst())
	})

	t.Run("nombre validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty nombre",
				mutate: func(b *builder.PedidoBuilder) { b.WithNombre("") },
				errIs:  dompedido.ErrNombreRequerido,
			},
			{
				name:   "whitespace only nombre",
				mutate: func(b *builder.PedidoBuilder) { b.WithNombre("   ") },
				errIs:  dompedido.ErrNombreRequerido,
			},
		})
	})

	t.Run("telefono validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty telefono",
				mutate: func(b *builder.PedidoBuilder) { b.WithTelefono("") },
				errIs:  dompedido.ErrTelefonoRequerido,
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative dulce",
				mutate: func(b *builder.PedidoBuilder) { b.WithCantidades(-1, 2) },
				errIs:  dompedido.ErrCantidadNegativa,
			},
			{
				name:   "negative salada",
				mutate: func(b *builder.PedidoBuilder) { b.WithCantidades(2, -1) },
				errIs:  dompedido.ErrCantidadNegativa,
			},
			{
				name:   "zero of both",
				mutate: func(b *builder.PedidoBuilder) { b.WithCantidades(0, 0) },
				errIs:  dompedido.ErrSinHumitas,
			},
			{
				name:   "single humita is enough",
				mutate: func(b *builder.PedidoBuilder) { b.WithCantidades(0, 1) },
			},
		})
	})

	t.Run("medio de pago validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "yape",
				mutate: func(b *builder.PedidoBuilder) { b.WithMedioPago("yape") },
			},
			{
				name:   "plin",
				mutate: func(b *builder.PedidoBuilder) { b.WithMedioPago("plin") },
			},
			{
				name:   "efectivo",
				mutate: func(b *builder.PedidoBuilder) { b.WithMedioPago("efectivo") },
			},
			{
				name:   "unknown medio",
				mutate: func(b *builder.PedidoBuilder) { b.WithMedioPago("tarjeta") },
				errIs:  dompedido.ErrMedioPagoInvalido,
			},
		})
	})

	t.Run("comentarios normalization", func(t *testing.T) {
		t.Run("whitespace only comentarios become nil", func(t *testing.T) {
			actual, err := builder.NewPedidoBuilder().WithComentarios("   ").BuildDomain()
			require.NoError(t, err)
			assert.Nil(t, actual.Comentarios())
		})

		t.Run("comentarios are trimmed", func(t *testing.T) {
			actual, err := builder.NewPedidoBuilder().WithComentarios("  sin sal  ").BuildDomain()
			require.NoError(t, err)
			require.NotNil(t, actual.Comentarios())
			assert.Equal(t, "sin sal", *actual.Comentarios())
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPedidoBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
