//go:build unit || e2e

package builder

import (
	"time"

	domlote "humipay/internal/domain/lote"
	reqdto "humipay/internal/handler/dto/request"
	"humipay/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoteBuilder struct {
	Codigo      string
	FechaLimite time.Time
	Notas       *string
	Now         time.Time
}

func NewLoteBuilder() *LoteBuilder {
	now := time.Date(2025, 7, 12, 9, 0, 0, 0, time.UTC)
	return &LoteBuilder{
		Codigo:      "LOTE-2025-07",
		FechaLimite: now.Add(48 * time.Hour),
		Now:         now,
	}
}

func (b *LoteBuilder) BuildDomain() (*domlote.Lote, error) {
	return domlote.NewLote(b.Codigo, b.FechaLimite, b.Notas, b.Now)
}

func (b *LoteBuilder) BuildDTO() reqdto.CreateLoteRequest {
	return reqdto.CreateLoteRequest{
		Codigo:      b.Codigo,
		FechaLimite: b.FechaLimite,
		Notas:       b.Notas,
	}
}

func (b *LoteBuilder) BuildView() *queries.LoteView {
	return &queries.LoteView{
		ID:          uuid.New(),
		Codigo:      b.Codigo,
		Estado:      domlote.EstadoCerrado.String(),
		FechaLimite: b.FechaLimite,
		Notas:       b.Notas,
		CreatedAt:   b.Now,
	}
}

func (b *LoteBuilder) BuildAbiertoView() *queries.LoteAbiertoView {
	return &queries.LoteAbiertoView{
		ID:          uuid.New(),
		Codigo:      b.Codigo,
		FechaLimite: b.FechaLimite,
	}
}

// Fluent builder methods
func (b *LoteBuilder) WithCodigo(codigo string) *LoteBuilder {
	b.Codigo = codigo
	return b
}

func (b *LoteBuilder) WithFechaLimite(t time.Time) *LoteBuilder {
	b.FechaLimite = t
	return b
}

func (b *LoteBuilder) WithNotas(notas string) *LoteBuilder {
	b.Notas = &notas
	return b
}
