//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"humipay/internal/handler/api"
	resdto "humipay/internal/handler/dto/response"
	"humipay/internal/pkg/config"
	"humipay/internal/usecase/commands"
	"humipay/internal/usecase/queries"
	"humipay/tests/common/builder"
	"humipay/tests/common/httptest"
	"humipay/tests/common/testutil"
	commandsmock "humipay/tests/mock/commands"
	queriesmock "humipay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoteHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockCommands      *commandsmock.MockLoteCommands
	mockQueries       *queriesmock.MockLoteQueries
	mockPedidoQueries *queriesmock.MockPedidoQueries
	handler           *api.LoteHandler
}

func (s *LoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoteQueries(s.mockCtrl)
	s.mockPedidoQueries = queriesmock.NewMockPedidoQueries(s.mockCtrl)
	s.handler = api.NewLoteHandler(s.mockCommands, s.mockQueries, s.mockPedidoQueries, config.NewTestConfig())

	s.router.GET("/lotes", s.handler.List)
	s.router.GET("/lotes/abierto", s.handler.GetAbierto)
	s.router.POST("/lotes", s.handler.Create)
	s.router.POST("/lotes/:id/abrir", s.handler.Abrir)
	s.router.POST("/lotes/:id/cerrar", s.handler.Cerrar)
	s.router.DELETE("/lotes/:id", s.handler.Delete)
	s.router.GET("/lotes/:id/pedidos", s.handler.ListPedidos)
	s.router.GET("/lotes/:id/pedidos/export", s.handler.ExportPedidos)
}

func (s *LoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoteHandlerTestSuite))
}

func (s *LoteHandlerTestSuite) TestList() {
	s.Run("success: returns every lote", func() {
		views := []*queries.LoteView{
			builder.NewLoteBuilder().WithCodigo("LOTE-A").BuildView(),
			builder.NewLoteBuilder().WithCodigo("LOTE-B").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lotes", nil, "")

		var response []resdto.LoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("LOTE-A", response[0].Codigo)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lotes", nil, "")

		var response []resdto.LoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lotes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LoteHandlerTestSuite) TestGetAbierto() {
	url := "/lotes/abierto"

	s.Run("success: payload carries price and payment number", func() {
		view := builder.NewLoteBuilder().WithCodigo("LOTE-P").BuildAbiertoView()
		s.mockQueries.EXPECT().GetAbierto(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.LoteAbiertoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("LOTE-P", response.Codigo)
		s.Equal("992427070", response.TelefonoPago)
		s.True(response.PrecioUnit.IsPositive())
	})

	s.Run("error: 404 when no lote is open", func() {
		s.mockQueries.EXPECT().GetAbierto(gomock.Any()).Return(nil, queries.ErrNoLoteAbierto).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No open lote")
	})
}

func (s *LoteHandlerTestSuite) TestCreate() {
	url := "/lotes"
	reqBody := builder.NewLoteBuilder().BuildDTO()

	s.Run("success: returns 201 Created with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateLoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: codigo (required)", mutate: testutil.Field("codigo", nil)},
			{name: "empty codigo", mutate: testutil.Field("codigo", "")},
			{name: "missing field: fecha_limite (required)", mutate: testutil.Field("fecha_limite", nil)},
			{name: "malformed fecha_limite", mutate: testutil.Field("fecha_limite", "not-a-date")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when the domain rejects the lote", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrLoteValidation).Times(1)

		whitespace := testutil.DtoMap(s.T(), reqBody, testutil.Field("codigo", strings.Repeat(" ", 3)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, whitespace, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lote data")
	})
}

func (s *LoteHandlerTestSuite) TestAbrirCerrar() {
	loteID := uuid.New()

	s.Run("success: abrir reports the lotes it closed", func() {
		closed := uuid.New()
		s.mockCommands.EXPECT().Abrir(gomock.Any(), loteID).
			Return(&commands.AbrirLoteResult{LoteID: loteID, Cerrados: []uuid.UUID{closed}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lotes/"+loteID.String()+"/abrir", nil, "")

		var response resdto.AbrirLoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(loteID, response.ID)
		s.Equal([]uuid.UUID{closed}, response.Cerrados)
	})

	s.Run("success: cerrar reports idempotent closes", func() {
		s.mockCommands.EXPECT().Cerrar(gomock.Any(), loteID).
			Return(&commands.CerrarLoteResult{LoteID: loteID, AlreadyClosed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lotes/"+loteID.String()+"/cerrar", nil, "")

		var response resdto.CerrarLoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyClosed)
	})

	s.Run("error: 404 for an unknown lote", func() {
		s.mockCommands.EXPECT().Abrir(gomock.Any(), loteID).
			Return(nil, commands.ErrLoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lotes/"+loteID.String()+"/abrir", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lote not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/lotes/not-a-uuid/cerrar", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lote ID")
	})
}

func (s *LoteHandlerTestSuite) TestDelete() {
	loteID := uuid.New()
	url := "/lotes/" + loteID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), loteID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown lote",
				commandsError:  commands.ErrLoteNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lote not found",
			},
			{
				name:           "lote still open",
				commandsError:  commands.ErrLoteAbiertoNoDelete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Open lote cannot be deleted",
			},
			{
				name:           "lote has pedidos",
				commandsError:  commands.ErrLoteConPedidos,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Lote with pedidos cannot be deleted",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), loteID).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LoteHandlerTestSuite) TestListPedidos() {
	loteID := uuid.New()
	url := "/lotes/" + loteID.String() + "/pedidos"
	loteView := builder.NewLoteBuilder().BuildView()

	s.Run("success: returns pedidos with totals", func() {
		views := []*queries.PedidoView{
			builder.NewPedidoBuilder().WithLoteID(loteID).BuildView(),
			builder.NewPedidoBuilder().WithLoteID(loteID).WithNombre("Jorge Huaman").WithCantidades(0, 4).AsPagado().BuildView(),
		}
		totales := queries.Totales{Count: 2, Dulce: 2, Salada: 5, Monto: views[0].MontoEst.Add(views[1].MontoEst)}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), loteID).Return(loteView, nil).Times(1)
		s.mockPedidoQueries.EXPECT().ListByLote(gomock.Any(), loteID, queries.Filters{MedioPago: queries.FilterAll, Pagado: queries.FilterAll}).
			Return(views, totales, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.PedidoListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal(2, response.Totales.Count)
		s.Equal(5, response.Totales.Salada)
	})

	s.Run("success: query params become filters", func() {
		expectedFilters := queries.Filters{Texto: "maria", MedioPago: "yape", Pagado: "si"}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), loteID).Return(loteView, nil).Times(1)
		s.mockPedidoQueries.EXPECT().ListByLote(gomock.Any(), loteID, expectedFilters).
			Return(nil, queries.Totales{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?q=maria&medio_pago=yape&pagado=si", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the lote does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), loteID).Return(nil, queries.ErrLoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lote not found")
	})
}

func (s *LoteHandlerTestSuite) TestExportPedidos() {
	loteID := uuid.New()
	url := "/lotes/" + loteID.String() + "/pedidos/export"

	s.Run("success: streams a spreadsheet named after the lote", func() {
		loteView := builder.NewLoteBuilder().WithCodigo("LOTE-2025-07").BuildView()
		views := []*queries.PedidoView{builder.NewPedidoBuilder().WithLoteID(loteID).BuildView()}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), loteID).Return(loteView, nil).Times(1)
		s.mockPedidoQueries.EXPECT().ListByLote(gomock.Any(), loteID, gomock.Any()).
			Return(views, queries.Totales{Count: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"Content-Disposition": `attachment; filename="LOTE-2025-07.xlsx"`,
		})
		s.NotEmpty(rec.Body.Bytes())
	})

	s.Run("error: 404 when the lote does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), loteID).Return(nil, queries.ErrLoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lote not found")
	})
}
