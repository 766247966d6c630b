package readstore

import (
	"context"
	"errors"

	"humipay/internal/infra"
	"humipay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, is_admin, is_active FROM profiles WHERE id = $1`, id)

	var v queries.AuthorizedUserView
	if err := row.Scan(&v.ID, &v.Email, &v.IsAdmin, &v.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_admin, is_active FROM profiles WHERE email = $1`, email)

	var (
		v            queries.AuthorizedUserView
		passwordHash string
	)
	if err := row.Scan(&v.ID, &v.Email, &passwordHash, &v.IsAdmin, &v.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by email", err)
	}
	return &v, passwordHash, nil
}
