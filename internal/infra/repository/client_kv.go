package repository

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

// ClientKVRepository guarda as clientes em clients_by_manicure (id da manicure → []Client).
// Toda mutação é feita carregando a lista inteira e gravando a lista inteira.
type ClientKVRepository struct {
	store   kvstore.Store
	session *session.Manager

	// o documento é compartilhado por todas as manicures
	mu sync.Mutex
}

func NewClientKVRepository(store kvstore.Store, sess *session.Manager) *ClientKVRepository {
	return &ClientKVRepository{store: store, session: sess}
}

func (r *ClientKVRepository) loadAll(ctx context.Context) (map[string][]models.Client, error) {
	all := map[string][]models.Client{}
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.KeyClients, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]models.Client{}
	}
	return all, nil
}

func (r *ClientKVRepository) list(ctx context.Context) ([]models.Client, error) {
	id, ok, err := r.session.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Client{}, nil
	}

	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	list := all[id]
	if list == nil {
		return []models.Client{}, nil
	}
	return list, nil
}

func (r *ClientKVRepository) saveAll(ctx context.Context, list []models.Client) error {
	id, ok, err := r.session.GetCurrent(ctx)
	if err != nil {
		return err
	}
	if !ok {
		// sem sessão: não grava nada
		return nil
	}

	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	if list == nil {
		list = []models.Client{}
	}
	all[id] = list

	return kvstore.SetJSON(ctx, r.store, kvstore.KeyClients, all)
}

// --------------------------------------------------
// List / SaveAll / Add
// --------------------------------------------------

// List devolve as clientes da manicure logada; sem sessão, lista vazia
func (r *ClientKVRepository) List(ctx context.Context) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(ctx)
}

// SaveAll sobrescreve a lista inteira; sem sessão é no-op
func (r *ClientKVRepository) SaveAll(ctx context.Context, list []models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveAll(ctx, list)
}

// Add acrescenta ao final da lista existente
func (r *ClientKVRepository) Add(ctx context.Context, c models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.list(ctx)
	if err != nil {
		return err
	}

	next := make([]models.Client, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, c)

	return r.saveAll(ctx, next)
}

// --------------------------------------------------
// Update / Delete (map / filter sobre a lista)
// --------------------------------------------------

func (r *ClientKVRepository) Update(
	ctx context.Context,
	id string,
	fn func(c *models.Client) error,
) (models.Client, error) {
	return r.UpdateWith(ctx, id, func(c *models.Client, _ []models.Client) error {
		return fn(c)
	})
}

func (r *ClientKVRepository) UpdateWith(
	ctx context.Context,
	id string,
	fn func(c *models.Client, others []models.Client) error,
) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.list(ctx)
	if err != nil {
		return models.Client{}, err
	}

	next := make([]models.Client, len(current))
	copy(next, current)

	idx := indexOf(next, id)
	if idx < 0 {
		return models.Client{}, domain.ErrClientNotFound
	}

	others := make([]models.Client, 0, len(next)-1)
	others = append(others, next[:idx]...)
	others = append(others, next[idx+1:]...)

	if err := fn(&next[idx], others); err != nil {
		return models.Client{}, err
	}

	if err := r.saveAll(ctx, next); err != nil {
		return models.Client{}, err
	}
	return next[idx], nil
}

func (r *ClientKVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.list(ctx)
	if err != nil {
		return err
	}

	if indexOf(current, id) < 0 {
		return domain.ErrClientNotFound
	}

	next := make([]models.Client, 0, len(current)-1)
	for _, c := range current {
		if c.ID != id {
			next = append(next, c)
		}
	}

	return r.saveAll(ctx, next)
}

func indexOf(list []models.Client, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Compile-time check
var _ domain.ClientRepository = (*ClientKVRepository)(nil)
