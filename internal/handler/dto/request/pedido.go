package request

import (
	"github.com/google/uuid"
)

type CreatePedidoRequest struct {
	LoteID       uuid.UUID `json:"lote_id" binding:"required"`
	Nombre       string    `json:"nombre" binding:"required"`
	Telefono     string    `json:"telefono" binding:"required"`
	HumitaDulce  int       `json:"humita_dulce" binding:"gte=0"`
	HumitaSalada int       `json:"humita_salada" binding:"gte=0"`
	MedioPago    string    `json:"medio_pago" binding:"required,oneof=yape plin efectivo"`
	Comentarios  *string   `json:"comentarios"`
}
