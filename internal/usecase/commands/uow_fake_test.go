//go:build unit

package commands_test

import (
	"context"

	domlote "humipay/internal/domain/lote"
	dompedido "humipay/internal/domain/pedido"
	"humipay/internal/infra"
	"humipay/internal/infra/db"
	"humipay/internal/usecase/queries"
	"humipay/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the write side, shared by all fake
// repositories so command tests exercise real orchestration against it.
type fakeStore struct {
	lotes   map[uuid.UUID]*domlote.Lote
	pedidos map[uuid.UUID]*dompedido.Pedido
	pagado  map[uuid.UUID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lotes:   make(map[uuid.UUID]*domlote.Lote),
		pedidos: make(map[uuid.UUID]*dompedido.Pedido),
		pagado:  make(map[uuid.UUID]bool),
	}
}

func (s *fakeStore) addLote(l *domlote.Lote) {
	s.lotes[l.ID()] = l
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Lotes() shared.LoteRepository     { return &fakeLoteRepo{store: t.store} }
func (t *fakeTx) Pedidos() shared.PedidoRepository { return &fakePedidoRepo{store: t.store} }
func (t *fakeTx) Profiles() shared.ProfileRepository {
	return &fakeProfileRepo{}
}
func (t *fakeTx) DB() db.DBTX { return nil }

type fakeLoteRepo struct {
	store *fakeStore
}

func (r *fakeLoteRepo) Create(_ context.Context, _ db.DBTX, l *domlote.Lote) error {
	r.store.lotes[l.ID()] = l
	return nil
}

func (r *fakeLoteRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*domlote.Lote, error) {
	l, ok := r.store.lotes[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "lote not found", nil)
	}
	return l, nil
}

func (r *fakeLoteRepo) FindAbiertos(_ context.Context, _ db.DBTX) ([]*domlote.Lote, error) {
	var out []*domlote.Lote
	for _, l := range r.store.lotes {
		if l.Estado() == domlote.EstadoAbierto {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoteRepo) Save(_ context.Context, _ db.DBTX, l *domlote.Lote) error {
	r.store.lotes[l.ID()] = l
	return nil
}

func (r *fakeLoteRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.lotes[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "lote not found", nil)
	}
	delete(r.store.lotes, id)
	return nil
}

type fakePedidoRepo struct {
	store *fakeStore
}

func (r *fakePedidoRepo) Create(_ context.Context, _ db.DBTX, p *dompedido.Pedido) error {
	if _, ok := r.store.lotes[p.LoteID()]; !ok {
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, "lote does not exist", nil)
	}
	r.store.pedidos[p.ID()] = p
	r.store.pagado[p.ID()] = p.Pagado()
	return nil
}

func (r *fakePedidoRepo) CountByLote(_ context.Context, _ db.DBTX, loteID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.store.pedidos {
		if p.LoteID() == loteID {
			n++
		}
	}
	return n, nil
}

func (r *fakePedidoRepo) TogglePagado(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	if _, ok := r.store.pedidos[id]; !ok {
		return false, infra.WrapRepoErr(infra.KindNotFound, "pedido not found", nil)
	}
	r.store.pagado[id] = !r.store.pagado[id]
	return r.store.pagado[id], nil
}

type fakeProfileRepo struct{}

func (r *fakeProfileRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

// fakeLoteReads serves the single read the pedido command needs: the
// currently open lote.
type fakeLoteReads struct {
	store *fakeStore
}

func (r *fakeLoteReads) ListAll(_ context.Context) ([]*queries.LoteView, error) {
	return nil, nil
}

func (r *fakeLoteReads) FindByID(_ context.Context, _ uuid.UUID) (*queries.LoteView, error) {
	return nil, infra.WrapRepoErr(infra.KindNotFound, "lote not found", nil)
}

func (r *fakeLoteReads) FindAbierto(_ context.Context) (*queries.LoteAbiertoView, error) {
	for _, l := range r.store.lotes {
		if l.Estado() == domlote.EstadoAbierto {
			return &queries.LoteAbiertoView{
				ID:          l.ID(),
				Codigo:      l.Codigo(),
				FechaLimite: l.FechaLimite(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "no open lote", nil)
}
