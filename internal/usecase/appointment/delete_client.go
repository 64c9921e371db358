package appointment

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

type DeleteClient struct {
	clients domain.ClientRepository
	session *session.Manager
	audit   *audit.Dispatcher
}

func NewDeleteClient(
	clients domain.ClientRepository,
	sess *session.Manager,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		clients: clients,
		session: sess,
		audit:   audit,
	}
}

func (uc *DeleteClient) Execute(ctx context.Context, clientID string) error {
	profileID, err := requireSession(ctx, uc.session)
	if err != nil {
		return err
	}

	if err := uc.clients.Delete(ctx, clientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "client_deleted",
		Entity:    "client",
		EntityID:  clientID,
	})
	return nil
}
