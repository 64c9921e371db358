package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON lê a chave e decodifica em dest.
// Retorna false quando a chave não existe; JSON inválido vira ErrCorrupt.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// SetJSON serializa v e grava na chave
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}
