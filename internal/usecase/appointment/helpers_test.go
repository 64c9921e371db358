package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	repo "github.com/BruksfildServices01/manicure-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

type fixture struct {
	ctx     context.Context
	store   kvstore.Store
	session *session.Manager
	clients *repo.ClientKVRepository
	clock   timezone.Clock
}

// agora fixo: 10/06/2024 10:00 em São Paulo
func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	store := kvstore.NewMemoryStore()
	sess := session.NewManager(store)
	f := &fixture{
		ctx:     context.Background(),
		store:   store,
		session: sess,
		clients: repo.NewClientKVRepository(store, sess),
		clock:   timezone.FixedClock{At: time.Date(2024, 6, 10, 10, 0, 0, 0, loc)},
	}
	return f
}

func (f *fixture) login(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.session.SetCurrent(f.ctx, id))
}

func (f *fixture) seed(t *testing.T, list ...models.Client) {
	t.Helper()
	require.NoError(t, f.clients.SaveAll(f.ctx, list))
}
