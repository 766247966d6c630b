//go:build e2e

package pedidos_test

import (
	"net/http"
	"testing"
	"time"

	resdto "humipay/internal/handler/dto/response"
	"humipay/tests/common/dbtest"
	commonhttp "humipay/tests/common/httptest"
	"humipay/tests/e2e"
	"humipay/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const pedidosURL = "/api/pedidos"

type pedidosSuite struct {
	e2e.SharedSuite
}

func TestPedidosSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(pedidosSuite))
}

func (s *pedidosSuite) submitBody(loteID uuid.UUID) map[string]any {
	return map[string]any{
		"lote_id":       loteID.String(),
		"nombre":        "Maria Quispe",
		"telefono":      "987654321",
		"humita_dulce":  2,
		"humita_salada": 1,
		"medio_pago":    "yape",
	}
}

func (s *pedidosSuite) TestSubmit() {
	s.Run("order against the open lote succeeds", func() {
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-S", "abierto", time.Now().Add(24*time.Hour))

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, pedidosURL, s.submitBody(loteID), "")
		var resp resdto.SubmitPedidoResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)

		require.NotEqual(s.T(), uuid.Nil, resp.ID)
		require.True(s.T(), decimal.NewFromInt(9).Equal(resp.MontoEst), "expected 9, got %s", resp.MontoEst)
		require.NotEmpty(s.T(), resp.TelefonoPago)
	})

	s.Run("no open lote yields a conflict", func() {
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-N", "cerrado", time.Now().Add(24*time.Hour))

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, pedidosURL, s.submitBody(loteID), "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("stale lote id yields a conflict", func() {
		stale := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-OLD", "cerrado", time.Now().Add(24*time.Hour))
		dbtest.CreateTestLote(s.T(), s.DB, "LOTE-NEW", "abierto", time.Now().Add(24*time.Hour))

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, pedidosURL, s.submitBody(stale), "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("order without any humitas is rejected", func() {
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-Z", "abierto", time.Now().Add(24*time.Hour))

		body := s.submitBody(loteID)
		body["humita_dulce"] = 0
		body["humita_salada"] = 0

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, pedidosURL, body, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *pedidosSuite) TestAdminReview() {
	s.Run("list returns pedidos with totals and honors filters", func() {
		token := helper.LoginAsAdmin(s.T(), s.DB, s.Router, "admin@example.com")
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-R", "cerrado", time.Now().Add(24*time.Hour))

		dbtest.CreateTestPedido(s.T(), s.DB, loteID, "Maria Quispe", 2, 1, "yape", false)
		dbtest.CreateTestPedido(s.T(), s.DB, loteID, "Jorge Huaman", 0, 4, "plin", true)
		dbtest.CreateTestPedido(s.T(), s.DB, loteID, "Lucia Vargas", 1, 1, "yape", true)

		url := "/api/lotes/" + loteID.String() + "/pedidos"
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, token)
		var list resdto.PedidoListResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		require.Len(s.T(), list.Items, 3)
		require.Equal(s.T(), 3, list.Totales.Count)
		require.Equal(s.T(), 3, list.Totales.Dulce)
		require.Equal(s.T(), 6, list.Totales.Salada)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, url+"?medio_pago=yape&pagado=si", nil, token)
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		require.Len(s.T(), list.Items, 1)
		require.Equal(s.T(), "Lucia Vargas", list.Items[0].Nombre)
		require.Equal(s.T(), 1, list.Totales.Count)
	})

	s.Run("toggle flips pagado back and forth", func() {
		token := helper.LoginAsAdmin(s.T(), s.DB, s.Router, "admin@example.com")
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-T", "cerrado", time.Now().Add(24*time.Hour))
		pedidoID := dbtest.CreateTestPedido(s.T(), s.DB, loteID, "Maria", 1, 0, "efectivo", false)

		url := pedidosURL + "/" + pedidoID.String() + "/pagado"

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch, url, nil, token)
		var toggled resdto.TogglePagadoResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &toggled)
		require.True(s.T(), toggled.Pagado)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch, url, nil, token)
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &toggled)
		require.False(s.T(), toggled.Pagado)
	})

	s.Run("toggle on unknown pedido returns 404", func() {
		token := helper.LoginAsAdmin(s.T(), s.DB, s.Router, "admin@example.com")

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch, pedidosURL+"/"+uuid.NewString()+"/pagado", nil, token)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("export streams a spreadsheet named after the lote", func() {
		token := helper.LoginAsAdmin(s.T(), s.DB, s.Router, "admin@example.com")
		loteID := dbtest.CreateTestLote(s.T(), s.DB, "LOTE-E", "cerrado", time.Now().Add(24*time.Hour))
		dbtest.CreateTestPedido(s.T(), s.DB, loteID, "Maria", 2, 1, "yape", true)

		url := "/api/lotes/" + loteID.String() + "/pedidos/export"
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, token)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		commonhttp.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"Content-Disposition": `attachment; filename="LOTE-E.xlsx"`,
		})
		require.NotEmpty(s.T(), rec.Body.Bytes())
	})
}
