//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string, isAdmin bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO profiles (id, email, password_hash, is_admin, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, isAdmin)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestLote(t *testing.T, db DBLike, codigo, estado string, fechaLimite time.Time) uuid.UUID {
	t.Helper()

	loteID := uuid.New()
	ctx := context.Background()

	var fechaInicio *time.Time
	if estado == "abierto" {
		now := time.Now()
		fechaInicio = &now
	}

	_, err := db.Exec(ctx, `
		INSERT INTO lotes (id, codigo, estado, fecha_inicio, fecha_limite, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		loteID, codigo, estado, fechaInicio, fechaLimite)
	require.NoError(t, err)

	return loteID
}

func CreateTestPedido(t *testing.T, db DBLike, loteID uuid.UUID, nombre string, dulce, salada int, medioPago string, pagado bool) uuid.UUID {
	t.Helper()

	pedidoID := uuid.New()
	ctx := context.Background()
	monto := decimal.NewFromInt(int64(dulce+salada) * 3)

	_, err := db.Exec(ctx, `
		INSERT INTO pedidos (id, lote_id, nombre, telefono, humita_dulce, humita_salada, medio_pago, monto_est, pagado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`,
		pedidoID, loteID, nombre, "987654321", dulce, salada, medioPago, monto, pagado)
	require.NoError(t, err)

	return pedidoID
}

// truncates all tables so each subtest starts from a clean slate
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE pedidos, lotes, profiles CASCADE")
	return err
}
