package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

type HistoryItem struct {
	ID    string                   `json:"id"`
	Name  string                   `json:"name"`
	Type  models.ServiceType       `json:"type"`
	Date  string                   `json:"date"`
	Time  string                   `json:"time"`
	Value models.Optional[float64] `json:"value,omitzero"`
}

type ListHistory struct {
	clients domain.ClientRepository
}

func NewListHistory(clients domain.ClientRepository) *ListHistory {
	return &ListHistory{clients: clients}
}

// Execute lista apenas os atendidos, do mais recente para o mais antigo.
// O valor só aparece para atendimento avulso.
func (uc *ListHistory) Execute(ctx context.Context) ([]HistoryItem, error) {
	list, err := uc.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	attended := domain.History(list)
	out := make([]HistoryItem, 0, len(attended))
	for _, c := range attended {
		item := HistoryItem{
			ID:   c.ID,
			Name: c.Name,
			Type: c.Type,
			Date: c.NextDate,
			Time: c.NextTime,
		}
		if c.Type == models.ServiceAvulso {
			item.Value = c.Value
		}
		out = append(out, item)
	}
	return out, nil
}
