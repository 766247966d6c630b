package repository

import (
	"context"
	"time"

	"humipay/internal/infra"
	"humipay/internal/infra/db"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
)

type profileRepository struct{}

func NewProfileRepository() shared.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `UPDATE profiles SET last_login = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update last login", err)
	}
	return nil
}
