package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

type AgendaItem struct {
	models.Client
	Status  domain.Status `json:"status"`
	IsToday bool          `json:"is_today"`
}

type ListAgenda struct {
	clients domain.ClientRepository
	clock   timezone.Clock
}

func NewListAgenda(clients domain.ClientRepository, clock timezone.Clock) *ListAgenda {
	return &ListAgenda{clients: clients, clock: clock}
}

// Execute devolve todas as clientes da sessão em ordem crescente de data+hora.
// Sem sessão a lista é vazia.
func (uc *ListAgenda) Execute(ctx context.Context) ([]AgendaItem, error) {
	list, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	sorted := domain.SortChronological(list)

	out := make([]AgendaItem, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, AgendaItem{
			Client:  c,
			Status:  domain.StatusOf(c),
			IsToday: domain.IsToday(c, now),
		})
	}
	return out, nil
}
