package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type LoteView struct {
	ID          uuid.UUID  `json:"id"`
	Codigo      string     `json:"codigo"`
	Estado      string     `json:"estado"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaLimite time.Time  `json:"fecha_limite"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	Notas       *string    `json:"notas,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoteAbiertoView is the public projection of the currently open lote:
// just enough for the ordering page banner.
type LoteAbiertoView struct {
	ID          uuid.UUID `json:"id"`
	Codigo      string    `json:"codigo"`
	FechaLimite time.Time `json:"fecha_limite"`
}

type PedidoView struct {
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

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
	IsActive bool      `json:"is_active"`
}
