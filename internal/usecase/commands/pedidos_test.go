//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"humipay/internal/pkg/clock"
	"humipay/internal/pkg/config"
	"humipay/internal/usecase/commands"
	"humipay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPedidoCommands(t *testing.T) (commands.PedidoCommands, *fakeStore, *clock.MockClock) {
	t.Helper()

	store := newFakeStore()
	clk := clock.NewMockClock(time.Date(2025, 7, 12, 10, 30, 0, 0, time.UTC))
	venta := config.VentaConfig{PrecioUnit: decimal.NewFromInt(3), TelefonoPago: "992427070"}
	cmds := commands.NewPedidoCommands(newFakeUoW(store), &fakeLoteReads{store: store}, venta, clk)
	return cmds, store, clk
}

func openLote(t *testing.T, store *fakeStore, clk *clock.MockClock, codigo string) uuid.UUID {
	t.Helper()

	l := mustLote(t, codigo)
	l.Abrir(clk.Now().Add(-time.Hour))
	store.addLote(l)
	return l.ID()
}

func TestPedidoCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: snapshots the amount at the price in force", func(t *testing.T) {
		cmds, store, clk := newPedidoCommands(t)
		loteID := openLote(t, store, clk, "LOTE-S")

		result, err := cmds.Submit(ctx, builder.NewPedidoBuilder().WithLoteID(loteID).WithCantidades(2, 1).BuildDTO())
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(9).Equal(result.MontoEst), "got %s", result.MontoEst)
		assert.Equal(t, "992427070", result.TelefonoPago)

		stored, ok := store.pedidos[result.PedidoID]
		require.True(t, ok)
		assert.Equal(t, loteID, stored.LoteID())
	})

	t.Run("error: no open lote", func(t *testing.T) {
		cmds, _, _ := newPedidoCommands(t)

		_, err := cmds.Submit(ctx, builder.NewPedidoBuilder().BuildDTO())
		assert.ErrorIs(t, err, commands.ErrNoLoteAbierto)
	})

	t.Run("error: request carries a stale lote id", func(t *testing.T) {
		cmds, store, clk := newPedidoCommands(t)
		openLote(t, store, clk, "LOTE-NUEVO")

		_, err := cmds.Submit(ctx, builder.NewPedidoBuilder().WithLoteID(uuid.New()).BuildDTO())
		assert.ErrorIs(t, err, commands.ErrLoteNoEsAbierto)
	})

	t.Run("error: domain validation is surfaced as ErrPedidoValidation", func(t *testing.T) {
		cmds, store, clk := newPedidoCommands(t)
		loteID := openLote(t, store, clk, "LOTE-V")

		_, err := cmds.Submit(ctx, builder.NewPedidoBuilder().WithLoteID(loteID).WithCantidades(0, 0).BuildDTO())
		assert.ErrorIs(t, err, commands.ErrPedidoValidation)
		assert.Empty(t, store.pedidos)
	})

	t.Run("error: lote vanished between the read and the insert", func(t *testing.T) {
		// The read side still advertises the lote while the write side has
		// already lost it, so the insert fails on the foreign key.
		store := newFakeStore()
		readStore := newFakeStore()
		clk := clock.NewMockClock(time.Date(2025, 7, 12, 10, 30, 0, 0, time.UTC))
		loteID := openLote(t, readStore, clk, "LOTE-GONE")

		venta := config.VentaConfig{PrecioUnit: decimal.NewFromInt(3), TelefonoPago: "992427070"}
		cmds := commands.NewPedidoCommands(newFakeUoW(store), &fakeLoteReads{store: readStore}, venta, clk)

		_, err := cmds.Submit(ctx, builder.NewPedidoBuilder().WithLoteID(loteID).BuildDTO())
		assert.ErrorIs(t, err, commands.ErrNoLoteAbierto)
	})
}

func TestPedidoCommands_TogglePagado(t *testing.T) {
	ctx := context.Background()

	t.Run("success: flips the flag on every call", func(t *testing.T) {
		cmds, store, clk := newPedidoCommands(t)
		loteID := openLote(t, store, clk, "LOTE-T")

		submitted, err := cmds.Submit(ctx, builder.NewPedidoBuilder().WithLoteID(loteID).BuildDTO())
		require.NoError(t, err)

		result, err := cmds.TogglePagado(ctx, submitted.PedidoID)
		require.NoError(t, err)
		assert.True(t, result.Pagado)

		result, err = cmds.TogglePagado(ctx, submitted.PedidoID)
		require.NoError(t, err)
		assert.False(t, result.Pagado)
	})

	t.Run("error: unknown pedido", func(t *testing.T) {
		cmds, _, _ := newPedidoCommands(t)

		_, err := cmds.TogglePagado(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPedidoNotFound)
	})
}
