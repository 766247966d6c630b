package readstore

import (
	"context"
	"errors"

	domlote "humipay/internal/domain/lote"
	"humipay/internal/infra"
	"humipay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoteReadStore struct {
	pool *pgxpool.Pool
}

func NewLoteReadStore(pool *pgxpool.Pool) *LoteReadStore {
	return &LoteReadStore{pool: pool}
}

const loteColumns = `id, codigo, estado, fecha_inicio, fecha_limite, fecha_fin, notas, created_at`

func (r *LoteReadStore) ListAll(ctx context.Context) ([]*queries.LoteView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+loteColumns+` FROM lotes
		ORDER BY fecha_inicio DESC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list lotes", err)
	}
	defer rows.Close()

	var views []*queries.LoteView
	for rows.Next() {
		v, err := scanLoteView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan lote", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read lotes", err)
	}
	return views, nil
}

func (r *LoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoteView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loteColumns+` FROM lotes WHERE id = $1`, id)
	v, err := scanLoteView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "lote not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find lote by id", err)
	}
	return v, nil
}

func (r *LoteReadStore) FindAbierto(ctx context.Context) (*queries.LoteAbiertoView, error) {
	// LIMIT 1 tolerates transient states with more than one open row; the
	// most recently opened lote wins.
	row := r.pool.QueryRow(ctx, `
		SELECT id, codigo, fecha_limite FROM lotes
		WHERE estado = $1
		ORDER BY fecha_inicio DESC NULLS LAST
		LIMIT 1`, domlote.EstadoAbierto.String())

	var v queries.LoteAbiertoView
	if err := row.Scan(&v.ID, &v.Codigo, &v.FechaLimite); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no open lote", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find open lote", err)
	}
	return &v, nil
}

func scanLoteView(row pgx.Row) (*queries.LoteView, error) {
	var v queries.LoteView
	if err := row.Scan(&v.ID, &v.Codigo, &v.Estado, &v.FechaInicio, &v.FechaLimite, &v.FechaFin, &v.Notas, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
