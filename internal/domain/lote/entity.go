package lote

import (
	"strings"
	"time"

	"humipay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCodigoRequerido      = errs.New("codigo is required")
	ErrFechaLimiteRequerida = errs.New("fecha limite is required")
	ErrEstadoInvalido       = errs.New("invalid estado")
	ErrLoteAbierto          = errs.New("lote is open")
	ErrLoteConPedidos       = errs.New("lote has dependent pedidos")
)

// Lote is a time-boxed ordering window. At most one lote is open at any
// time; the cascade that guarantees this lives in the open command, not
// here, because it spans rows.
type Lote struct {
	id          uuid.UUID
	codigo      string
	estado      Estado
	fechaInicio *time.Time
	fechaLimite time.Time
	fechaFin    *time.Time
	notas       *string
	createdAt   time.Time
}

// NewLote creates a lote in estado=cerrado with start/end unset. Lotes are
// never born open; opening is an explicit transition.
func NewLote(codigo string, fechaLimite time.Time, notas *string, now time.Time) (*Lote, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoRequerido
	}
	if fechaLimite.IsZero() {
		return nil, ErrFechaLimiteRequerida
	}

	return &Lote{
		id:          uuid.New(),
		codigo:      codigo,
		estado:      EstadoCerrado,
		fechaLimite: fechaLimite,
		notas:       notas,
		createdAt:   now,
	}, nil
}

// Reconstruct rebuilds a lote from storage without re-running creation
// validation.
func Reconstruct(id uuid.UUID, codigo string, estado Estado, fechaInicio *time.Time, fechaLimite time.Time, fechaFin *time.Time, notas *string, createdAt time.Time) *Lote {
	return &Lote{
		id:          id,
		codigo:      codigo,
		estado:      estado,
		fechaInicio: fechaInicio,
		fechaLimite: fechaLimite,
		fechaFin:    fechaFin,
		notas:       notas,
		createdAt:   createdAt,
	}
}

// Abrir transitions cerrado→abierto, stamping the start and clearing any
// previous end.
func (l *Lote) Abrir(now time.Time) {
	l.estado = EstadoAbierto
	inicio := now
	l.fechaInicio = &inicio
	l.fechaFin = nil
}

// Cerrar transitions abierto→cerrado and stamps the end. Closing an
// already-closed lote is a no-op so the operation stays idempotent.
func (l *Lote) Cerrar(now time.Time) {
	if l.estado == EstadoCerrado {
		return
	}
	l.estado = EstadoCerrado
	fin := now
	l.fechaFin = &fin
}

// CanDelete enforces the deletion invariant: only closed lotes with zero
// dependent pedidos may be removed.
func (l *Lote) CanDelete(pedidoCount int64) error {
	if l.estado == EstadoAbierto {
		return ErrLoteAbierto
	}
	if pedidoCount > 0 {
		return ErrLoteConPedidos
	}
	return nil
}

func (l *Lote) ID() uuid.UUID           { return l.id }
func (l *Lote) Codigo() string          { return l.codigo }
func (l *Lote) Estado() Estado          { return l.estado }
func (l *Lote) FechaInicio() *time.Time { return l.fechaInicio }
func (l *Lote) FechaLimite() time.Time  { return l.fechaLimite }
func (l *Lote) FechaFin() *time.Time    { return l.fechaFin }
func (l *Lote) Notas() *string          { return l.notas }
func (l *Lote) CreatedAt() time.Time    { return l.createdAt }
