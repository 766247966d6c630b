package repository

import (
	"context"
	"errors"
	"time"

	domlote "humipay/internal/domain/lote"
	"humipay/internal/infra"
	"humipay/internal/infra/db"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

type loteRepository struct{}

func NewLoteRepository() shared.LoteRepository {
	return &loteRepository{}
}

func (r *loteRepository) Create(ctx context.Context, dbtx db.DBTX, l *domlote.Lote) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO lotes (id, codigo, estado, fecha_inicio, fecha_limite, fecha_fin, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID(), l.Codigo(), l.Estado().String(), l.FechaInicio(), l.FechaLimite(), l.FechaFin(), l.Notas(), l.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert lote", err)
	}
	return nil
}

func (r *loteRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*domlote.Lote, error) {
	// FOR UPDATE so two concurrent state transitions on the same or
	// overlapping lotes serialize instead of both committing at ReadCommitted.
	row := dbtx.QueryRow(ctx, `
		SELECT id, codigo, estado, fecha_inicio, fecha_limite, fecha_fin, notas, created_at
		FROM lotes WHERE id = $1
		FOR UPDATE`, id)

	l, err := scanLote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "lote not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find lote by id", err)
	}
	return l, nil
}

func (r *loteRepository) FindAbiertos(ctx context.Context, dbtx db.DBTX) ([]*domlote.Lote, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, codigo, estado, fecha_inicio, fecha_limite, fecha_fin, notas, created_at
		FROM lotes WHERE estado = $1
		FOR UPDATE`, domlote.EstadoAbierto.String())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query open lotes", err)
	}
	defer rows.Close()

	var lotes []*domlote.Lote
	for rows.Next() {
		l, err := scanLote(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan lote", err)
		}
		lotes = append(lotes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read open lotes", err)
	}
	return lotes, nil
}

func (r *loteRepository) Save(ctx context.Context, dbtx db.DBTX, l *domlote.Lote) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE lotes SET estado = $2, fecha_inicio = $3, fecha_fin = $4 WHERE id = $1`,
		l.ID(), l.Estado().String(), l.FechaInicio(), l.FechaFin(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update lote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "lote not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *loteRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "lote has dependent rows", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete lote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "lote not found", pgx.ErrNoRows)
	}
	return nil
}

func scanLote(row pgx.Row) (*domlote.Lote, error) {
	var (
		id          uuid.UUID
		codigo      string
		estadoStr   string
		fechaInicio *time.Time
		fechaLimite time.Time
		fechaFin    *time.Time
		notas       *string
		createdAt   time.Time
	)
	if err := row.Scan(&id, &codigo, &estadoStr, &fechaInicio, &fechaLimite, &fechaFin, &notas, &createdAt); err != nil {
		return nil, err
	}

	estado, err := domlote.NewEstado(estadoStr)
	if err != nil {
		return nil, err
	}

	return domlote.Reconstruct(id, codigo, estado, fechaInicio, fechaLimite, fechaFin, notas, createdAt), nil
}
