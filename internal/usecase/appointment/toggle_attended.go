package appointment

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

type ToggleAttended struct {
	clients domain.ClientRepository
	session *session.Manager
	audit   *audit.Dispatcher
}

func NewToggleAttended(
	clients domain.ClientRepository,
	sess *session.Manager,
	audit *audit.Dispatcher,
) *ToggleAttended {
	return &ToggleAttended{
		clients: clients,
		session: sess,
		audit:   audit,
	}
}

func (uc *ToggleAttended) Execute(ctx context.Context, clientID string) (models.Client, error) {
	profileID, err := requireSession(ctx, uc.session)
	if err != nil {
		return models.Client{}, err
	}

	updated, err := uc.clients.Update(ctx, clientID, func(c *models.Client) error {
		domain.ToggleAttended(c)
		return nil
	})
	if err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "client_attended_toggled",
		Entity:    "client",
		EntityID:  updated.ID,
		Metadata:  map[string]string{"status": string(domain.StatusOf(updated))},
	})

	return updated, nil
}
