package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

// ProfileKVRepository guarda os perfis em profiles_by_id (id → Profile)
type ProfileKVRepository struct {
	store   kvstore.Store
	session *session.Manager

	// serializa o ciclo ler-alterar-gravar do documento
	mu sync.Mutex
}

func NewProfileKVRepository(store kvstore.Store, sess *session.Manager) *ProfileKVRepository {
	return &ProfileKVRepository{store: store, session: sess}
}

func (r *ProfileKVRepository) load(ctx context.Context) (map[string]models.Profile, error) {
	profiles := map[string]models.Profile{}
	if _, err := kvstore.GetJSON(ctx, r.store, kvstore.KeyProfiles, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = map[string]models.Profile{}
	}
	return profiles, nil
}

// --------------------------------------------------
// Save
// --------------------------------------------------

// Save insere ou sobrescreve o perfil e, em seguida, autentica a manicure.
// Criar ou atualizar um perfil sempre faz login.
func (r *ProfileKVRepository) Save(ctx context.Context, p models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.load(ctx)
	if err != nil {
		return err
	}

	profiles[p.ID] = p

	if err := kvstore.SetJSON(ctx, r.store, kvstore.KeyProfiles, profiles); err != nil {
		return err
	}

	return r.session.SetCurrent(ctx, p.ID)
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *ProfileKVRepository) GetCurrentProfile(ctx context.Context) (models.Profile, bool, error) {
	id, ok, err := r.session.GetCurrent(ctx)
	if err != nil || !ok {
		return models.Profile{}, false, err
	}

	profiles, err := r.load(ctx)
	if err != nil {
		return models.Profile{}, false, err
	}

	// sessão órfã → não encontrado
	p, ok := profiles[id]
	return p, ok, nil
}

// FindByName compara nomes sem diferenciar maiúsculas e ignorando espaços.
// Nomes não são únicos: vence o perfil mais antigo.
func (r *ProfileKVRepository) FindByName(ctx context.Context, name string) (models.Profile, bool, error) {
	profiles, err := r.load(ctx)
	if err != nil {
		return models.Profile{}, false, err
	}

	wanted := normalizeName(name)
	if wanted == "" {
		return models.Profile{}, false, nil
	}

	list := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})

	for _, p := range list {
		if normalizeName(p.Name) == wanted {
			return p, true, nil
		}
	}
	return models.Profile{}, false, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Compile-time check
var _ domain.ProfileRepository = (*ProfileKVRepository)(nil)
