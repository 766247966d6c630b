//go:build e2e

package helper

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"humipay/tests/common/dbtest"
	commonhttp "humipay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

// LoginAsAdmin creates an admin profile and logs in through the real
// endpoint, returning the bearer token from the response body.
func LoginAsAdmin(t *testing.T, db *pgxpool.Pool, router *gin.Engine, email string) string {
	t.Helper()

	dbtest.CreateTestUser(t, db, email, true)
	return login(t, router, email)
}

// CreateNonAdmin registers an active profile without the admin flag.
func CreateNonAdmin(t *testing.T, db *pgxpool.Pool, email string) {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, false)
}

// RevokeAdmin clears the admin flag on an existing profile.
func RevokeAdmin(t *testing.T, db *pgxpool.Pool, email string) {
	t.Helper()

	tag, err := db.Exec(context.Background(), `UPDATE profiles SET is_admin = false WHERE email = $1`, email)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": testPassword}
	rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	return resp.AccessToken
}
