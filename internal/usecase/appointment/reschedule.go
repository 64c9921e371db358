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

type RescheduleInput struct {
	ClientID string
	Date     string // vazio mantém a data atual
	Time     string // vazio mantém o horário atual
	Type     models.ServiceType
}

type Reschedule struct {
	clients     domain.ClientRepository
	session     *session.Manager
	clock       timezone.Clock
	audit       *audit.Dispatcher
	validateAll bool
}

func NewReschedule(
	clients domain.ClientRepository,
	sess *session.Manager,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	validateAll bool,
) *Reschedule {
	return &Reschedule{
		clients:     clients,
		session:     sess,
		clock:       clock,
		audit:       audit,
		validateAll: validateAll,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (models.Client, error) {

	profileID, err := requireSession(ctx, uc.session)
	if err != nil {
		return models.Client{}, err
	}

	if in.Date == "" && in.Time == "" && in.Type == "" {
		return models.Client{}, httperr.ErrBusiness("nothing_to_update")
	}
	if (in.Date != "" && !domain.ValidDate(in.Date)) ||
		(in.Time != "" && !domain.ValidTime(in.Time)) {
		return models.Client{}, httperr.ErrBusiness(domain.RejectInvalid)
	}
	if in.Type != "" && !in.Type.Valid() {
		return models.Client{}, httperr.ErrBusiness("invalid_service_type")
	}

	// a checagem de conflito roda sob a mesma trava da gravação
	updated, err := uc.clients.UpdateWith(ctx, in.ClientID, func(c *models.Client, others []models.Client) error {
		if err := domain.Reschedule(c, in.Date, in.Time); err != nil {
			return err
		}
		if in.Type != "" {
			c.Type = in.Type
		}

		if !uc.validateAll {
			return nil
		}
		return domain.ValidateSlot(
			domain.Slot{Date: c.NextDate, Time: c.NextTime},
			others,
			uc.clock.Now(),
		).Err()
	})
	if err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "client_rescheduled",
		Entity:    "client",
		EntityID:  updated.ID,
		Metadata: map[string]string{
			"date": updated.NextDate,
			"time": updated.NextTime,
		},
	})

	return updated, nil
}
