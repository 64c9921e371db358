package appointment

import (
	"context"

	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

type ProfileRepository interface {
	// Save grava o perfil e loga a manicure (efeito colateral na sessão)
	Save(ctx context.Context, p models.Profile) error

	GetCurrentProfile(ctx context.Context) (models.Profile, bool, error)

	FindByName(ctx context.Context, name string) (models.Profile, bool, error)
}

type ClientRepository interface {
	List(ctx context.Context) ([]models.Client, error)

	SaveAll(ctx context.Context, list []models.Client) error

	Add(ctx context.Context, c models.Client) error

	// -------- mutações sobre a lista completa --------
	// id ausente → ErrClientNotFound
	Update(
		ctx context.Context,
		id string,
		fn func(c *models.Client) error,
	) (models.Client, error)
	// UpdateWith entrega também os demais registros, lidos sob a mesma trava
	UpdateWith(
		ctx context.Context,
		id string,
		fn func(c *models.Client, others []models.Client) error,
	) (models.Client, error)

	Delete(ctx context.Context, id string) error
}
