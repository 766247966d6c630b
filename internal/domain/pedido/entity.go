package pedido

import (
	"strings"
	"time"

	"humipay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNombreRequerido   = errs.New("nombre is required")
	ErrTelefonoRequerido = errs.New("telefono is required")
	ErrCantidadNegativa  = errs.New("quantities must be non-negative")
	ErrSinHumitas        = errs.New("at least one humita is required")
	ErrMedioPagoInvalido = errs.New("invalid medio de pago")
)

// Pedido is a single customer's order against one lote. The monto is a
// point-in-time snapshot: it is computed once at creation from the unit
// price in force and never recomputed, so later price changes leave
// existing pedidos untouched.
type Pedido struct {
	id           uuid.UUID
	loteID       uuid.UUID
	nombre       string
	telefono     string
	humitaDulce  int
	humitaSalada int
	medioPago    MedioPago
	montoEst     decimal.Decimal
	pagado       bool
	comentarios  *string
	createdAt    time.Time
}

func NewPedido(loteID uuid.UUID, nombre, telefono string, humitaDulce, humitaSalada int, medioPago string, comentarios *string, precioUnit decimal.Decimal, now time.Time) (*Pedido, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrNombreRequerido
	}
	telefono = strings.TrimSpace(telefono)
	if telefono == "" {
		return nil, ErrTelefonoRequerido
	}
	if humitaDulce < 0 || humitaSalada < 0 {
		return nil, ErrCantidadNegativa
	}
	if humitaDulce+humitaSalada < 1 {
		return nil, ErrSinHumitas
	}

	medio, err := NewMedioPago(medioPago)
	if err != nil {
		return nil, err
	}

	if comentarios != nil {
		trimmed := strings.TrimSpace(*comentarios)
		if trimmed == "" {
			comentarios = nil
		} else {
			comentarios = &trimmed
		}
	}

	monto := decimal.NewFromInt(int64(humitaDulce + humitaSalada)).Mul(precioUnit)

	return &Pedido{
		id:           uuid.New(),
		loteID:       loteID,
		nombre:       nombre,
		telefono:     telefono,
		humitaDulce:  humitaDulce,
		humitaSalada: humitaSalada,
		medioPago:    medio,
		montoEst:     monto,
		pagado:       false,
		comentarios:  comentarios,
		createdAt:    now,
	}, nil
}

func (p *Pedido) ID() uuid.UUID             { return p.id }
func (p *Pedido) LoteID() uuid.UUID         { return p.loteID }
func (p *Pedido) Nombre() string            { return p.nombre }
func (p *Pedido) Telefono() string          { return p.telefono }
func (p *Pedido) HumitaDulce() int          { return p.humitaDulce }
func (p *Pedido) HumitaSalada() int         { return p.humitaSalada }
func (p *Pedido) MedioPago() MedioPago      { return p.medioPago }
func (p *Pedido) MontoEst() decimal.Decimal { return p.montoEst }
func (p *Pedido) Pagado() bool              { return p.pagado }
func (p *Pedido) Comentarios() *string      { return p.comentarios }
func (p *Pedido) CreatedAt() time.Time      { return p.createdAt }
