package appointment

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// RegisterFirstClient é o cadastro do onboarding: único fluxo que
// sempre passa pela validação de horário.
type RegisterFirstClient struct {
	clients domain.ClientRepository
	session *session.Manager
	clock   timezone.Clock
	audit   *audit.Dispatcher
}

func NewRegisterFirstClient(
	clients domain.ClientRepository,
	sess *session.Manager,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *RegisterFirstClient {
	return &RegisterFirstClient{
		clients: clients,
		session: sess,
		clock:   clock,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterFirstClient) Execute(
	ctx context.Context,
	in ClientInput,
) (models.Client, error) {

	// --------------------------------------------------
	// 1️⃣ Sessão + onboarding
	// --------------------------------------------------
	profileID, err := requireSession(ctx, uc.session)
	if err != nil {
		return models.Client{}, err
	}

	done, err := uc.session.FirstClientDone(ctx)
	if err != nil {
		return models.Client{}, err
	}
	if done {
		return models.Client{}, httperr.ErrBusiness("first_client_already_registered")
	}

	// --------------------------------------------------
	// 2️⃣ Dados
	// --------------------------------------------------
	client, err := buildClient(in)
	if err != nil {
		return models.Client{}, err
	}

	// --------------------------------------------------
	// 3️⃣ Validação de horário
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 4️⃣ Persistência + flag
	// --------------------------------------------------
	if err := uc.clients.Add(ctx, client); err != nil {
		return models.Client{}, err
	}
	if err := uc.session.MarkFirstClientDone(ctx); err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "first_client_registered",
		Entity:    "client",
		EntityID:  client.ID,
	})

	return client, nil
}
