package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

// ======================================================
// INPUT (compartilhado pelos cadastros)
// ======================================================

type ClientInput struct {
	Name  string
	Type  models.ServiceType
	Date  string
	Time  string
	Value models.Optional[float64]
}

func requireSession(ctx context.Context, sess *session.Manager) (string, error) {
	id, ok, err := sess.GetCurrent(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", httperr.ErrBusiness("not_logged_in")
	}
	return id, nil
}

// buildClient normaliza a entrada e monta o registro pendente
func buildClient(in ClientInput) (models.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Client{}, httperr.ErrBusiness("name_required")
	}
	if in.Date == "" || in.Time == "" {
		return models.Client{}, httperr.ErrBusiness("date_time_required")
	}
	if !domain.ValidDate(in.Date) || !domain.ValidTime(in.Time) {
		return models.Client{}, httperr.ErrBusiness(domain.RejectInvalid)
	}

	st := in.Type
	if st == "" {
		st = models.ServiceAvulso
	}
	if !st.Valid() {
		return models.Client{}, httperr.ErrBusiness("invalid_service_type")
	}
	if v, ok := in.Value.Get(); ok && v < 0 {
		return models.Client{}, httperr.ErrBusiness("invalid_value")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Client{}, err
	}

	return models.Client{
		ID:       id.String(),
		Name:     name,
		Type:     st,
		NextDate: in.Date,
		NextTime: in.Time,
		Value:    in.Value,
	}, nil
}
