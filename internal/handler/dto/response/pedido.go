package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"humipay/internal/usecase/commands"
	"humipay/internal/usecase/queries"
)

type PedidoResponse struct {
	ID           uuid.UUID       `json:"id"`
	LoteID       uuid.UUID       `json:"lote_id"`
	Nombre       string          `json:"nombre"`
	Telefono     string          `json:"telefono"`
	HumitaDulce  int             `json:"humita_dulce"`
	HumitaSalada int             `json:"humita_salada"`
	MedioPago    string          `json:"medio_pago"`
	MontoEst     decimal.Decimal `json:"monto_est"`
	Pagado       bool            `json:"pagado"`
	Comentarios  *string         `json:"comentarios,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FromPedidoView(v *queries.PedidoView) PedidoResponse {
	return PedidoResponse{
		ID:           v.ID,
		LoteID:       v.LoteID,
		Nombre:       v.Nombre,
		Telefono:     v.Telefono,
		HumitaDulce:  v.HumitaDulce,
		HumitaSalada: v.HumitaSalada,
		MedioPago:    v.MedioPago,
		MontoEst:     v.MontoEst,
		Pagado:       v.Pagado,
		Comentarios:  v.Comentarios,
		CreatedAt:    v.CreatedAt,
	}
}

type PedidoListResponse struct {
	Items   []PedidoResponse `json:"items"`
	Totales queries.Totales  `json:"totales"`
}

func FromPedidoViews(views []*queries.PedidoView, totales queries.Totales) PedidoListResponse {
	items := make([]PedidoResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromPedidoView(v))
	}
	return PedidoListResponse{Items: items, Totales: totales}
}

type SubmitPedidoResponse struct {
	ID           uuid.UUID       `json:"id"`
	MontoEst     decimal.Decimal `json:"monto_est"`
	TelefonoPago string          `json:"telefono_pago"`
}

func FromSubmitResult(r *commands.SubmitPedidoResult) SubmitPedidoResponse {
	return SubmitPedidoResponse{
		ID:           r.PedidoID,
		MontoEst:     r.MontoEst,
		TelefonoPago: r.TelefonoPago,
	}
}

type TogglePagadoResponse struct {
	ID     uuid.UUID `json:"id"`
	Pagado bool      `json:"pagado"`
}

func FromToggleResult(r *commands.TogglePagadoResult) TogglePagadoResponse {
	return TogglePagadoResponse{
		ID:     r.PedidoID,
		Pagado: r.Pagado,
	}
}
