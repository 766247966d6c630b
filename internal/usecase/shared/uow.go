package shared

import (
	"context"

	domlote "humipay/internal/domain/lote"
	dompedido "humipay/internal/domain/pedido"
	"humipay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Lotes() LoteRepository
	Pedidos() PedidoRepository
	Profiles() ProfileRepository
	DB() db.DBTX
}

type LoteRepository interface {
	Create(ctx context.Context, db db.DBTX, l *domlote.Lote) error
	// FindByID loads and row-locks the lote for a state transition within
	// the surrounding tx.
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*domlote.Lote, error)
	// FindAbiertos returns and row-locks every lote currently open, so a
	// concurrent open cascade blocks until this tx commits. At most one lote
	// should be open, but the cascade closes them all if writers left more.
	FindAbiertos(ctx context.Context, db db.DBTX) ([]*domlote.Lote, error)
	Save(ctx context.Context, db db.DBTX, l *domlote.Lote) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type PedidoRepository interface {
	Create(ctx context.Context, db db.DBTX, p *dompedido.Pedido) error
	CountByLote(ctx context.Context, db db.DBTX, loteID uuid.UUID) (int64, error)
	// TogglePagado flips the paid flag in a single statement (last write
	// wins) and returns the new value.
	TogglePagado(ctx context.Context, db db.DBTX, id uuid.UUID) (bool, error)
}

type ProfileRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID) error
}
