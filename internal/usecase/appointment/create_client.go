package appointment

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

type CreateClient struct {
	clients domain.ClientRepository
	session *session.Manager
	clock   timezone.Clock
	audit   *audit.Dispatcher

	// liga a validação de horário (VALIDATE_ALL_CLIENTS)
	validateAll bool
}

func NewCreateClient(
	clients domain.ClientRepository,
	sess *session.Manager,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	validateAll bool,
) *CreateClient {
	return &CreateClient{
		clients:     clients,
		session:     sess,
		clock:       clock,
		audit:       audit,
		validateAll: validateAll,
	}
}

// Execute cadastra uma cliente pelo fluxo normal. Por padrão não há
// checagem de passado nem de horário ocupado.
func (uc *CreateClient) Execute(
	ctx context.Context,
	in ClientInput,
) (models.Client, error) {

	profileID, err := requireSession(ctx, uc.session)
	if err != nil {
		return models.Client{}, err
	}

	client, err := buildClient(in)
	if err != nil {
		return models.Client{}, err
	}

	if uc.validateAll {
		existing, err := uc.clients.List(ctx)
		if err != nil {
			return models.Client{}, err
		}
		decision := domain.ValidateSlot(
			domain.Slot{Date: client.NextDate, Time: client.NextTime},
			existing,
			uc.clock.Now(),
		)
		if !decision.Accepted {
			return models.Client{}, decision.Err()
		}
	}

	if err := uc.clients.Add(ctx, client); err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "client_created",
		Entity:    "client",
		EntityID:  client.ID,
		Metadata: map[string]string{
			"date": client.NextDate,
			"time": client.NextTime,
		},
	})

	return client, nil
}
