package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"humipay/internal/usecase/commands"
	"humipay/internal/usecase/queries"
)

type LoteResponse struct {
	ID          uuid.UUID  `json:"id"`
	Codigo      string     `json:"codigo"`
	Estado      string     `json:"estado"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaLimite time.Time  `json:"fecha_limite"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	Notas       *string    `json:"notas,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromLoteView(v *queries.LoteView) LoteResponse {
	return LoteResponse{
		ID:          v.ID,
		Codigo:      v.Codigo,
		Estado:      v.Estado,
		FechaInicio: v.FechaInicio,
		FechaLimite: v.FechaLimite,
		FechaFin:    v.FechaFin,
		Notas:       v.Notas,
		CreatedAt:   v.CreatedAt,
	}
}

func FromLoteViews(views []*queries.LoteView) []LoteResponse {
	out := make([]LoteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromLoteView(v))
	}
	return out
}

// LoteAbiertoResponse is the public ordering-page payload: the open window
// plus the price and payment number the customer needs up front.
type LoteAbiertoResponse struct {
	ID           uuid.UUID       `json:"id"`
	Codigo       string          `json:"codigo"`
	FechaLimite  time.Time       `json:"fecha_limite"`
	PrecioUnit   decimal.Decimal `json:"precio_unit"`
	TelefonoPago string          `json:"telefono_pago"`
}

func FromLoteAbiertoView(v *queries.LoteAbiertoView, precioUnit decimal.Decimal, telefonoPago string) LoteAbiertoResponse {
	return LoteAbiertoResponse{
		ID:           v.ID,
		Codigo:       v.Codigo,
		FechaLimite:  v.FechaLimite,
		PrecioUnit:   precioUnit,
		TelefonoPago: telefonoPago,
	}
}

type CreateLoteResponse struct {
	ID uuid.UUID `json:"id"`
}

type AbrirLoteResponse struct {
	ID       uuid.UUID   `json:"id"`
	Cerrados []uuid.UUID `json:"cerrados,omitempty"`
}

func FromAbrirResult(r *commands.AbrirLoteResult) AbrirLoteResponse {
	return AbrirLoteResponse{
		ID:       r.LoteID,
		Cerrados: r.Cerrados,
	}
}

type CerrarLoteResponse struct {
	ID            uuid.UUID `json:"id"`
	AlreadyClosed bool      `json:"already_closed"`
}

func FromCerrarResult(r *commands.CerrarLoteResult) CerrarLoteResponse {
	return CerrarLoteResponse{
		ID:            r.LoteID,
		AlreadyClosed: r.AlreadyClosed,
	}
}
