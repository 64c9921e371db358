package models

// ServiceType identifica o tipo de atendimento da cliente
type ServiceType string

const (
	ServiceAvulso ServiceType = "avulso"
	ServicePacote ServiceType = "pacote"
)

func (t ServiceType) Valid() bool {
	return t == ServiceAvulso || t == ServicePacote
}

// Client é um registro de atendimento (uma cliente em uma data/hora).
// Uma mesma pessoa pode ter vários registros ao longo do tempo.
type Client struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     ServiceType `json:"type"`
	NextDate string      `json:"nextDate"` // 2006-01-02
	NextTime string      `json:"nextTime"` // 15:04

	Attended Optional[bool]    `json:"attended,omitzero"`
	Value    Optional[float64] `json:"value,omitzero"`
}

// IsAttended: ausente ou false = pendente
func (c Client) IsAttended() bool {
	return c.Attended.OrElse(false)
}
