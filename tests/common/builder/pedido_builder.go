//go:build unit || e2e

package builder

import (
	"time"

	dompedido "humipay/internal/domain/pedido"
	reqdto "humipay/internal/handler/dto/request"
	"humipay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PedidoBuilder struct {
	LoteID       uuid.UUID
	Nombre       string
	Telefono     string
	HumitaDulce  int
	HumitaSalada int
	MedioPago    string
	Comentarios  *string
	PrecioUnit   decimal.Decimal
	Pagado       bool
	Now          time.Time
}

func NewPedidoBuilder() *PedidoBuilder {
	return &PedidoBuilder{
		LoteID:       uuid.New(),
		Nombre:       "Maria Quispe",
		Telefono:     "987654321",
		HumitaDulce:  2,
		HumitaSalada: 1,
		MedioPago:    "yape",
		PrecioUnit:   decimal.NewFromInt(3),
		Now:          time.Date(2025, 7, 12, 10, 30, 0, 0, time.UTC),
	}
}

func (b *PedidoBuilder) BuildDomain() (*dompedido.Pedido, error) {
	return dompedido.NewPedido(
		b.LoteID,
		b.Nombre,
		b.Telefono,
		b.HumitaDulce,
		b.HumitaSalada,
		b.MedioPago,
		b.Comentarios,
		b.PrecioUnit,
		b.Now,
	)
}

func (b *PedidoBuilder) BuildDTO() reqdto.CreatePedidoRequest {
	return reqdto.CreatePedidoRequest{
		LoteID:       b.LoteID,
		Nombre:       b.Nombre,
		Telefono:     b.Telefono,
		HumitaDulce:  b.HumitaDulce,
		HumitaSalada: b.HumitaSalada,
		MedioPago:    b.MedioPago,
		Comentarios:  b.Comentarios,
	}
}

func (b *PedidoBuilder) BuildView() *queries.PedidoView {
	monto := decimal.NewFromInt(int64(b.HumitaDulce + b.HumitaSalada)).Mul(b.PrecioUnit)
	return &queries.PedidoView{
		ID:           uuid.New(),
		LoteID:       b.LoteID,
		Nombre:       b.Nombre,
		Telefono:     b.Telefono,
		HumitaDulce:  b.HumitaDulce,
		HumitaSalada: b.HumitaSalada,
		MedioPago:    b.MedioPago,
		MontoEst:     monto,
		Pagado:       b.Pagado,
		Comentarios:  b.Comentarios,
		CreatedAt:    b.Now,
	}
}

// Fluent builder methods
func (b *PedidoBuilder) WithLoteID(id uuid.UUID) *PedidoBuilder {
	b.LoteID = id
	return b
}

func (b *PedidoBuilder) WithNombre(nombre string) *PedidoBuilder {
	b.Nombre = nombre
	return b
}

func (b *PedidoBuilder) WithTelefono(telefono string) *PedidoBuilder {
	b.Telefono = telefono
	return b
}

func (b *PedidoBuilder) WithCantidades(dulce, salada int) *PedidoBuilder {
	b.HumitaDulce = dulce
	b.HumitaSalada = salada
	return b
}

func (b *PedidoBuilder) WithMedioPago(medio string) *PedidoBuilder {
	b.MedioPago = medio
	return b
}

func (b *PedidoBuilder) WithComentarios(c string) *PedidoBuilder {
	b.Comentarios = &c
	return b
}

func (b *PedidoBuilder) WithPrecioUnit(p decimal.Decimal) *PedidoBuilder {
	b.PrecioUnit = p
	return b
}

func (b *PedidoBuilder) AsPagado() *PedidoBuilder {
	b.Pagado = true
	return b
}
