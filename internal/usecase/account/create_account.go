package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAccountInput struct {
	Name        string
	PriceAvulso float64
	PricePacote float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAccount struct {
	profiles domain.ProfileRepository
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewCreateAccount(
	profiles domain.ProfileRepository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CreateAccount {
	return &CreateAccount{
		profiles: profiles,
		clock:    clock,
		audit:    audit,
	}
}

// Execute cria o perfil e já deixa a manicure logada
func (uc *CreateAccount) Execute(
	ctx context.Context,
	in CreateAccountInput,
) (models.Profile, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Profile{}, httperr.ErrBusiness("name_required")
	}
	if in.PriceAvulso < 0 || in.PricePacote < 0 {
		return models.Profile{}, httperr.ErrBusiness("invalid_price")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Profile{}, err
	}

	p := models.Profile{
		ID:          id.String(),
		Name:        name,
		PriceAvulso: in.PriceAvulso,
		PricePacote: in.PricePacote,
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.profiles.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: p.ID,
		Action:    "account_created",
		Entity:    "profile",
		EntityID:  p.ID,
	})

	return p, nil
}
