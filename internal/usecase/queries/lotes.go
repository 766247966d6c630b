package queries

import (
	"context"

	"humipay/internal/infra"
	"humipay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLoteNotFound   = errs.New("lote not found")
	ErrNoLoteAbierto  = errs.New("no open lote")
	ErrLoteListFailed = errs.New("failed to list lotes")
)

type LoteQueries interface {
	// List returns every lote, newest opening first.
	List(ctx context.Context) ([]*LoteView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LoteView, error)
	// GetAbierto returns the currently open lote or ErrNoLoteAbierto.
	GetAbierto(ctx context.Context) (*LoteAbiertoView, error)
}

type LoteReadStore interface {
	ListAll(ctx context.Context) ([]*LoteView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LoteView, error)
	FindAbierto(ctx context.Context) (*LoteAbiertoView, error)
}

type loteQueriesImpl struct {
	readStore LoteReadStore
}

func NewLoteQueries(readStore LoteReadStore) LoteQueries {
	return &loteQueriesImpl{readStore: readStore}
}

func (q *loteQueriesImpl) List(ctx context.Context) ([]*LoteView, error) {
	lotes, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrLoteListFailed)
	}
	return lotes, nil
}

func (q *loteQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoteView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoteNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *loteQueriesImpl) GetAbierto(ctx context.Context) (*LoteAbiertoView, error) {
	view, err := q.readStore.FindAbierto(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoLoteAbierto
		}
		return nil, err
	}
	return view, nil
}
