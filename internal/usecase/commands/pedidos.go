package commands

import (
	"context"

	dompedido "humipay/internal/domain/pedido"
	reqdto "humipay/internal/handler/dto/request"
	"humipay/internal/infra"
	"humipay/internal/pkg/clock"
	"humipay/internal/pkg/config"
	"humipay/internal/pkg/errs"
	"humipay/internal/usecase/queries"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoLoteAbierto         = errs.New("no open lote to order against")
	ErrLoteNoEsAbierto       = errs.New("lote is not the open one")
	ErrPedidoValidation      = errs.New("pedido validation error")
	ErrPedidoNotFound        = errs.New("pedido not found")
	ErrPedidoOperationFailed = errs.New("pedido operation failed")
)

// SubmitPedidoResult carries everything the confirmation screen needs: the
// snapshot amount and the number the customer pays to.
type SubmitPedidoResult struct {
	PedidoID     uuid.UUID
	MontoEst     decimal.Decimal
	TelefonoPago string
}

type TogglePagadoResult struct {
	PedidoID uuid.UUID
	Pagado   bool
}

type PedidoCommands interface {
	// Submit places an order against the currently open lote. The lote id in
	// the request must match the open lote; clients holding a stale id get
	// ErrLoteNoEsAbierto.
	Submit(ctx context.Context, req reqdto.CreatePedidoRequest) (*SubmitPedidoResult, error)
	// TogglePagado flips the paid flag and returns the new value. Last write
	// wins between concurrent admins.
	TogglePagado(ctx context.Context, id uuid.UUID) (*TogglePagadoResult, error)
}

type pedidoCommandsImpl struct {
	uow       shared.UnitOfWork
	loteReads queries.LoteReadStore
	venta     config.VentaConfig
	clock     clock.Clock
}

func NewPedidoCommands(uow shared.UnitOfWork, loteReads queries.LoteReadStore, venta config.VentaConfig, clock clock.Clock) PedidoCommands {
	return &pedidoCommandsImpl{
		uow:       uow,
		loteReads: loteReads,
		venta:     venta,
		clock:     clock,
	}
}

func (c *pedidoCommandsImpl) Submit(ctx context.Context, req reqdto.CreatePedidoRequest) (*SubmitPedidoResult, error) {
	// The open lote is resolved server-side; the client-sent id only confirms
	// the customer saw the window they are ordering into.
	abierto, err := c.loteReads.FindAbierto(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoLoteAbierto
		}
		return nil, errs.Mark(err, ErrPedidoOperationFailed)
	}
	if req.LoteID != abierto.ID {
		return nil, ErrLoteNoEsAbierto
	}

	pedido, err := dompedido.NewPedido(
		abierto.ID,
		req.Nombre,
		req.Telefono,
		req.HumitaDulce,
		req.HumitaSalada,
		req.MedioPago,
		req.Comentarios,
		c.venta.PrecioUnit,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrPedidoValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pedidos().Create(ctx, tx.DB(), pedido)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			// The lote was deleted between the read and the insert.
			return nil, ErrNoLoteAbierto
		}
		return nil, errs.Mark(err, ErrPedidoOperationFailed)
	}

	return &SubmitPedidoResult{
		PedidoID:     pedido.ID(),
		MontoEst:     pedido.MontoEst(),
		TelefonoPago: c.venta.TelefonoPago,
	}, nil
}

func (c *pedidoCommandsImpl) TogglePagado(ctx context.Context, id uuid.UUID) (*TogglePagadoResult, error) {
	var pagado bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		pagado, err = tx.Pedidos().TogglePagado(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPedidoNotFound
		}
		return nil, errs.Mark(err, ErrPedidoOperationFailed)
	}
	return &TogglePagadoResult{PedidoID: id, Pagado: pagado}, nil
}
