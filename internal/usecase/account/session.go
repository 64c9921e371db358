package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

// ======================================================
// LOGIN (somente pelo nome)
// ======================================================

type Login struct {
	profiles domain.ProfileRepository
	session  *session.Manager
	audit    *audit.Dispatcher
}

func NewLogin(
	profiles domain.ProfileRepository,
	sess *session.Manager,
	audit *audit.Dispatcher,
) *Login {
	return &Login{profiles: profiles, session: sess, audit: audit}
}

func (uc *Login) Execute(ctx context.Context, name string) (models.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return models.Profile{}, httperr.ErrBusiness("name_required")
	}

	p, ok, err := uc.profiles.FindByName(ctx, name)
	if err != nil {
		return models.Profile{}, err
	}
	if !ok {
		return models.Profile{}, httperr.ErrBusiness("account_not_found")
	}

	if err := uc.session.SetCurrent(ctx, p.ID); err != nil {
		return models.Profile{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: p.ID,
		Action:    "login",
		Entity:    "session",
	})
	return p, nil
}

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	session *session.Manager
}

func NewLogout(sess *session.Manager) *Logout {
	return &Logout{session: sess}
}

func (uc *Logout) Execute(ctx context.Context) error {
	return uc.session.ClearCurrent(ctx)
}

// ======================================================
// CURRENT ACCOUNT
// ======================================================

type CurrentAccountOutput struct {
	Profile         models.Profile `json:"profile"`
	FirstClientDone bool           `json:"first_client_done"`
}

type CurrentAccount struct {
	profiles domain.ProfileRepository
	session  *session.Manager
}

func NewCurrentAccount(profiles domain.ProfileRepository, sess *session.Manager) *CurrentAccount {
	return &CurrentAccount{profiles: profiles, session: sess}
}

// Execute resolve o perfil logado; sessão ausente ou órfã → not_logged_in
func (uc *CurrentAccount) Execute(ctx context.Context) (CurrentAccountOutput, error) {
	p, ok, err := uc.profiles.GetCurrentProfile(ctx)
	if err != nil {
		return CurrentAccountOutput{}, err
	}
	if !ok {
		return CurrentAccountOutput{}, httperr.ErrBusiness("not_logged_in")
	}

	done, err := uc.session.FirstClientDone(ctx)
	if err != nil {
		return CurrentAccountOutput{}, err
	}

	return CurrentAccountOutput{Profile: p, FirstClientDone: done}, nil
}
