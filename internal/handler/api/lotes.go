package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"humipay/internal/export"
	reqdto "humipay/internal/handler/dto/request"
	resdto "humipay/internal/handler/dto/response"
	"humipay/internal/handler/httperr"
	"humipay/internal/pkg/config"
	"humipay/internal/usecase/commands"
	"humipay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type LoteHandler struct {
	loteCommands  commands.LoteCommands
	loteQueries   queries.LoteQueries
	pedidoQueries queries.PedidoQueries
	venta         config.VentaConfig
	timezone      *time.Location
}

func NewLoteHandler(loteCommands commands.LoteCommands, loteQueries queries.LoteQueries, pedidoQueries queries.PedidoQueries, cfg config.Config) *LoteHandler {
	return &LoteHandler{
		loteCommands:  loteCommands,
		loteQueries:   loteQueries,
		pedidoQueries: pedidoQueries,
		venta:         cfg.Venta,
		timezone:      time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset),
	}
}

// @Summary List lotes
// @Description List every lote, newest opening first
// @Tags lotes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.LoteResponse
// @Failure 401 {object} httperr.Response
// @Router /lotes [get]
func (h *LoteHandler) List(c *gin.Context) {
	lotes, err := h.loteQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoteViews(lotes))
}

// @Summary Get open lote
// @Description Public view of the currently open lote with price and payment number
// @Tags lotes
// @Produce json
// @Success 200 {object} resdto.LoteAbiertoResponse
// @Failure 404 {object} httperr.Response
// @Router /lotes/abierto [get]
func (h *LoteHandler) GetAbierto(c *gin.Context) {
	view, err := h.loteQueries.GetAbierto(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrNoLoteAbierto) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No open lote", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoteAbiertoView(view, h.venta.PrecioUnit, h.venta.TelefonoPago))
}

// @Summary Create lote
// @Description Register a new lote; lotes are always created closed
// @Tags lotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLoteRequest true "Lote request"
// @Success 201 {object} resdto.CreateLoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /lotes [post]
func (h *LoteHandler) Create(c *gin.Context) {
	var req reqdto.CreateLoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.loteCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrLoteValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lote data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateLoteResponse{ID: id})
}

// @Summary Open lote
// @Description Open the lote, closing any other open lote in the same transaction
// @Tags lotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lote ID"
// @Success 200 {object} resdto.AbrirLoteResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lotes/{id}/abrir [post]
func (h *LoteHandler) Abrir(c *gin.Context) {
	id, ok := parseLoteID(c)
	if !ok {
		return
	}

	result, err := h.loteCommands.Abrir(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commands.ErrLoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lote not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAbrirResult(result))
}

// @Summary Close lote
// @Description Close the lote; closing an already-closed lote is a no-op
// @Tags lotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lote ID"
// @Success 200 {object} resdto.CerrarLoteResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lotes/{id}/cerrar [post]
func (h *LoteHandler) Cerrar(c *gin.Context) {
	id, ok := parseLoteID(c)
	if !ok {
		return
	}

	result, err := h.loteCommands.Cerrar(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commands.ErrLoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lote not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCerrarResult(result))
}

// @Summary Delete lote
// @Description Delete a closed lote with no pedidos
// @Tags lotes
// @Security BearerAuth
// @Param id path string true "Lote ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lotes/{id} [delete]
func (h *LoteHandler) Delete(c *gin.Context) {
	id, ok := parseLoteID(c)
	if !ok {
		return
	}

	err := h.loteCommands.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lote not found", nil)
		case errors.Is(err, commands.ErrLoteAbiertoNoDelete):
			httperr.AbortWithError(c, http.StatusConflict, err, "Open lote cannot be deleted", nil)
		case errors.Is(err, commands.ErrLoteConPedidos):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lote with pedidos cannot be deleted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List pedidos of a lote
// @Description List the lote's pedidos with filters and totals
// @Tags lotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lote ID"
// @Param q query string false "Name or phone substring"
// @Param medio_pago query string false "yape, plin, efectivo or all"
// @Param pagado query string false "si, no or all"
// @Success 200 {object} resdto.PedidoListResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lotes/{id}/pedidos [get]
func (h *LoteHandler) ListPedidos(c *gin.Context) {
	id, ok := parseLoteID(c)
	if !ok {
		return
	}

	if !h.loteExists(c, id) {
		return
	}

	views, totales, err := h.pedidoQueries.ListByLote(c.Request.Context(), id, parseFilters(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPedidoViews(views, totales))
}

// @Summary Export pedidos
// @Description Download the lote's pedidos as a spreadsheet
// @Tags lotes
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Lote ID"
// @Param q query string false "Name or phone substring"
// @Param medio_pago query string false "yape, plin, efectivo or all"
// @Param pagado query string false "si, no or all"
// @Success 200 {file} binary
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lotes/{id}/pedidos/export [get]
func (h *LoteHandler) ExportPedidos(c *gin.Context) {
	id, ok := parseLoteID(c)
	if !ok {
		return
	}

	lote, err := h.loteQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrLoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lote not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	views, _, err := h.pedidoQueries.ListByLote(c.Request.Context(), id, parseFilters(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	workbook, err := export.BuildPedidosWorkbook(views, h.timezone)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", lote.Codigo+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *LoteHandler) loteExists(c *gin.Context, id uuid.UUID) bool {
	if _, err := h.loteQueries.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, queries.ErrLoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lote not found", nil)
			return false
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return false
	}
	return true
}

func parseLoteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lote ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseFilters(c *gin.Context) queries.Filters {
	return queries.Filters{
		Texto:     c.Query("q"),
		MedioPago: c.DefaultQuery("medio_pago", queries.FilterAll),
		Pagado:    c.DefaultQuery("pagado", queries.FilterAll),
	}
}
