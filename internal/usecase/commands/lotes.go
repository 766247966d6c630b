package commands

import (
	"context"
	"errors"

	domlote "humipay/internal/domain/lote"
	reqdto "humipay/internal/handler/dto/request"
	"humipay/internal/infra"
	"humipay/internal/pkg/clock"
	"humipay/internal/pkg/errs"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLoteNotFound        = errs.New("lote not found")
	ErrLoteValidation      = errs.New("lote validation error")
	ErrLoteAbiertoNoDelete = errs.New("open lote cannot be deleted")
	ErrLoteConPedidos      = errs.New("lote with pedidos cannot be deleted")
	ErrLoteOperationFailed = errs.New("lote operation failed")
)

// AbrirLoteResult reports the outcome of the open cascade: the lote that is
// now open plus the ids of every lote the cascade closed.
type AbrirLoteResult struct {
	LoteID   uuid.UUID
	Cerrados []uuid.UUID
}

type CerrarLoteResult struct {
	LoteID uuid.UUID
	// AlreadyClosed is true when the lote was closed before the call; the
	// operation is idempotent and this is not an error.
	AlreadyClosed bool
}

type LoteCommands interface {
	// Create registers a new lote in estado=cerrado.
	Create(ctx context.Context, req reqdto.CreateLoteRequest) (uuid.UUID, error)
	// Abrir opens the lote, closing every other open lote in the same
	// transaction so at most one stays open.
	Abrir(ctx context.Context, id uuid.UUID) (*AbrirLoteResult, error)
	Cerrar(ctx context.Context, id uuid.UUID) (*CerrarLoteResult, error)
	// Delete removes a closed lote with no pedidos.
	Delete(ctx context.Context, id uuid.UUID) error
}

type loteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLoteCommands(uow shared.UnitOfWork, clock clock.Clock) LoteCommands {
	return &loteCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *loteCommandsImpl) Create(ctx context.Context, req reqdto.CreateLoteRequest) (uuid.UUID, error) {
	lote, err := domlote.NewLote(req.Codigo, req.FechaLimite, req.Notas, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrLoteValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lotes().Create(ctx, tx.DB(), lote)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrLoteOperationFailed)
	}
	return lote.ID(), nil
}

func (c *loteCommandsImpl) Abrir(ctx context.Context, id uuid.UUID) (*AbrirLoteResult, error) {
	now := c.clock.Now()
	result := &AbrirLoteResult{LoteID: id}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lotes := tx.Lotes()

		target, err := lotes.FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		abiertos, err := lotes.FindAbiertos(ctx, tx.DB())
		if err != nil {
			return err
		}
		for _, l := range abiertos {
			if l.ID() == id {
				continue
			}
			l.Cerrar(now)
			if err := lotes.Save(ctx, tx.DB(), l); err != nil {
				return err
			}
			result.Cerrados = append(result.Cerrados, l.ID())
		}

		target.Abrir(now)
		return lotes.Save(ctx, tx.DB(), target)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoteNotFound
		}
		return nil, errs.Mark(err, ErrLoteOperationFailed)
	}
	return result, nil
}

func (c *loteCommandsImpl) Cerrar(ctx context.Context, id uuid.UUID) (*CerrarLoteResult, error) {
	now := c.clock.Now()
	result := &CerrarLoteResult{LoteID: id}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lote, err := tx.Lotes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if lote.Estado() == domlote.EstadoCerrado {
			result.AlreadyClosed = true
			return nil
		}

		lote.Cerrar(now)
		return tx.Lotes().Save(ctx, tx.DB(), lote)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoteNotFound
		}
		return nil, errs.Mark(err, ErrLoteOperationFailed)
	}
	return result, nil
}

func (c *loteCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lote, err := tx.Lotes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		count, err := tx.Pedidos().CountByLote(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if err := lote.CanDelete(count); err != nil {
			return err
		}

		return tx.Lotes().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case errors.Is(err, domlote.ErrLoteAbierto):
			return ErrLoteAbiertoNoDelete
		case errors.Is(err, domlote.ErrLoteConPedidos):
			return ErrLoteConPedidos
		case infra.IsKind(err, infra.KindNotFound):
			return ErrLoteNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// Race: a pedido landed between the count and the delete.
			return ErrLoteConPedidos
		}
		return errs.Mark(err, ErrLoteOperationFailed)
	}
	return nil
}
