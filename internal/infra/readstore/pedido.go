package readstore

import (
	"context"

	"humipay/internal/infra"
	"humipay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PedidoReadStore struct {
	pool *pgxpool.Pool
}

func NewPedidoReadStore(pool *pgxpool.Pool) *PedidoReadStore {
	return &PedidoReadStore{pool: pool}
}

func (r *PedidoReadStore) ListByLote(ctx context.Context, loteID uuid.UUID) ([]*queries.PedidoView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lote_id, nombre, telefono, humita_dulce, humita_salada, medio_pago, monto_est, pagado, comentarios, created_at
		FROM pedidos
		WHERE lote_id = $1
		ORDER BY created_at DESC`, loteID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list pedidos", err)
	}
	defer rows.Close()

	var views []*queries.PedidoView
	for rows.Next() {
		var v queries.PedidoView
		if err := rows.Scan(&v.ID, &v.LoteID, &v.Nombre, &v.Telefono, &v.HumitaDulce, &v.HumitaSalada, &v.MedioPago, &v.MontoEst, &v.Pagado, &v.Comentarios, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan pedido", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read pedidos", err)
	}
	return views, nil
}
