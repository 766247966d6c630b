package repository

import (
	"context"
	"errors"

	dompedido "humipay/internal/domain/pedido"
	"humipay/internal/infra"
	"humipay/internal/infra/db"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pedidoRepository struct{}

func NewPedidoRepository() shared.PedidoRepository {
	return &pedidoRepository{}
}

func (r *pedidoRepository) Create(ctx context.Context, dbtx db.DBTX, p *dompedido.Pedido) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO pedidos (id, lote_id, nombre, telefono, humita_dulce, humita_salada, medio_pago, monto_est, pagado, comentarios, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID(), p.LoteID(), p.Nombre(), p.Telefono(), p.HumitaDulce(), p.HumitaSalada(),
		p.MedioPago().String(), p.MontoEst(), p.Pagado(), p.Comentarios(), p.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "lote does not exist", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert pedido", err)
	}
	return nil
}

func (r *pedidoRepository) CountByLote(ctx context.Context, dbtx db.DBTX, loteID uuid.UUID) (int64, error) {
	var count int64
	err := dbtx.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos WHERE lote_id = $1`, loteID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count pedidos", err)
	}
	return count, nil
}

func (r *pedidoRepository) TogglePagado(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	var pagado bool
	err := dbtx.QueryRow(ctx, `
		UPDATE pedidos SET pagado = NOT pagado WHERE id = $1 RETURNING pagado`, id).Scan(&pagado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, infra.WrapRepoErr(infra.KindNotFound, "pedido not found", err)
		}
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to toggle pagado", err)
	}
	return pagado, nil
}
