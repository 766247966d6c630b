package queries

import (
	"context"
	"strings"

	"humipay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPedidoListFailed = errs.New("failed to list pedidos")

const FilterAll = "all"

// Filters narrows a pedido list. Zero values mean "no restriction"; the
// three criteria compose with logical AND.
type Filters struct {
	// Texto matches nombre case-insensitively or telefono by verbatim
	// substring.
	Texto string
	// MedioPago restricts to an exact medio de pago unless empty or "all".
	MedioPago string
	// Pagado is "si", "no", or ""/"all".
	Pagado string
}

// Totales aggregates a pedido list. Monto sums the stored snapshots, never
// a recomputation from the current unit price.
type Totales struct {
	Count  int             `json:"count"`
	Dulce  int             `json:"dulce"`
	Salada int             `json:"salada"`
	Monto  decimal.Decimal `json:"monto"`
}

type PedidoQueries interface {
	// ListByLote returns the lote's pedidos (newest first) narrowed by the
	// filters, together with the totals over the filtered set.
	ListByLote(ctx context.Context, loteID uuid.UUID, f Filters) ([]*PedidoView, Totales, error)
}

type PedidoReadStore interface {
	ListByLote(ctx context.Context, loteID uuid.UUID) ([]*PedidoView, error)
}

type pedidoQueriesImpl struct {
	readStore PedidoReadStore
}

func NewPedidoQueries(readStore PedidoReadStore) PedidoQueries {
	return &pedidoQueriesImpl{readStore: readStore}
}

func (q *pedidoQueriesImpl) ListByLote(ctx context.Context, loteID uuid.UUID, f Filters) ([]*PedidoView, Totales, error) {
	items, err := q.readStore.ListByLote(ctx, loteID)
	if err != nil {
		return nil, Totales{}, errs.Mark(err, ErrPedidoListFailed)
	}

	filtered := Filter(items, f)
	return filtered, Aggregate(filtered), nil
}

// Filter is a pure function over an in-memory pedido list.
func Filter(items []*PedidoView, f Filters) []*PedidoView {
	out := make([]*PedidoView, 0, len(items))
	for _, p := range items {
		if !matchesTexto(p, f.Texto) {
			continue
		}
		if !matchesMedioPago(p, f.MedioPago) {
			continue
		}
		if !matchesPagado(p, f.Pagado) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Aggregate is a pure function over exactly the list it is given; callers
// pass the filtered set.
func Aggregate(items []*PedidoView) Totales {
	t := Totales{Monto: decimal.Zero}
	for _, p := range items {
		t.Count++
		t.Dulce += p.HumitaDulce
		t.Salada += p.HumitaSalada
		t.Monto = t.Monto.Add(p.MontoEst)
	}
	return t
}

func matchesTexto(p *PedidoView, texto string) bool {
	if texto == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(texto)) {
		return true
	}
	return strings.Contains(p.Telefono, texto)
}

func matchesMedioPago(p *PedidoView, medio string) bool {
	if medio == "" || medio == FilterAll {
		return true
	}
	return p.MedioPago == medio
}

func matchesPagado(p *PedidoView, pagado string) bool {
	switch pagado {
	case "si":
		return p.Pagado
	case "no":
		return !p.Pagado
	default:
		return true
	}
}
