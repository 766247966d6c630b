package api

import (
	"errors"
	"net/http"

	reqdto "humipay/internal/handler/dto/request"
	resdto "humipay/internal/handler/dto/response"
	"humipay/internal/handler/httperr"
	"humipay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidoHandler struct {
	pedidoCommands commands.PedidoCommands
}

func NewPedidoHandler(pedidoCommands commands.PedidoCommands) *PedidoHandler {
	return &PedidoHandler{
		pedidoCommands: pedidoCommands,
	}
}

// @Summary Submit pedido
// @Description Place an order against the currently open lote
// @Tags pedidos
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePedidoRequest true "Pedido request"
// @Success 201 {object} resdto.SubmitPedidoResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pedidos [post]
func (h *PedidoHandler) Submit(c *gin.Context) {
	var req reqdto.CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.pedidoCommands.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoLoteAbierto):
			httperr.AbortWithError(c, http.StatusConflict, err, "No open lote", nil)
		case errors.Is(err, commands.ErrLoteNoEsAbierto):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lote is no longer open", nil)
		case errors.Is(err, commands.ErrPedidoValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid pedido data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Toggle pagado
// @Description Flip the paid flag of a pedido
// @Tags pedidos
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pedido ID"
// @Success 200 {object} resdto.TogglePagadoResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pedidos/{id}/pagado [patch]
func (h *PedidoHandler) TogglePagado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pedido ID", nil)
		return
	}

	result, err := h.pedidoCommands.TogglePagado(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commands.ErrPedidoNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pedido not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromToggleResult(result))
}
