package session

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
)

// Manager controla qual perfil está "logado" no dispositivo.
// Não há cache: toda chamada vai até o store.
type Manager struct {
	store kvstore.Store
}

func NewManager(store kvstore.Store) *Manager {
	return &Manager{store: store}
}

// SetCurrent grava o ponteiro da sessão; não valida se o perfil existe
func (m *Manager) SetCurrent(ctx context.Context, profileID string) error {
	return m.store.Set(ctx, kvstore.KeyCurrentProfile, profileID)
}

// GetCurrent devolve o id salvo ou ok=false quando não há sessão
func (m *Manager) GetCurrent(ctx context.Context) (string, bool, error) {
	id, ok, err := m.store.Get(ctx, kvstore.KeyCurrentProfile)
	if err != nil {
		return "", false, err
	}
	if !ok || id == "" {
		return "", false, nil
	}
	return id, true, nil
}

// ClearCurrent encerra a sessão (logout)
func (m *Manager) ClearCurrent(ctx context.Context) error {
	return m.store.Remove(ctx, kvstore.KeyCurrentProfile)
}

// ===============================
// Onboarding
// ===============================

func (m *Manager) FirstClientDone(ctx context.Context) (bool, error) {
	v, ok, err := m.store.Get(ctx, kvstore.KeyFirstClientDone)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

func (m *Manager) MarkFirstClientDone(ctx context.Context) error {
	return m.store.Set(ctx, kvstore.KeyFirstClientDone, "true")
}
