package models

import "time"

// Perfil da manicure (conta local do dispositivo)
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PriceAvulso float64   `json:"priceAvulso"`
	PricePacote float64   `json:"pricePacote"`
	CreatedAt   time.Time `json:"createdAt"`

	// Chave da foto no blob store (opcional)
	PhotoKey Optional[string] `json:"photoKey,omitzero"`
}
