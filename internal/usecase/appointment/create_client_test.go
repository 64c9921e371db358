package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

func TestCreateClient_SkipsSlotValidationByDefault(t *testing.T) {
	f := newFixture(t)
	f.login(t, "p1")
	f.seed(t, models.Client{ID: "1", Name: "Bia", Type: models.ServiceAvulso, NextDate: "2024-06-12", NextTime: "14:00"})

	uc := NewCreateClient(f.clients, f.session, f.clock, nil, false)

	// mesmo horário e data no passado: aceitos no fluxo normal
	_, err := uc.Execute(f.ctx, ClientInput{Name: "Ana", Date: "2024-06-12", Time: "14:00"})
	require.NoError(t, err)
	_, err = uc.Execute(f.ctx, ClientInput{Name: "Carla", Date: "2024-01-01", Time: "08:00"})
	require.NoError(t, err)

	list, err := f.clients.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Bia", "Ana", "Carla"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestCreateClient_ValidateAll(t *testing.T) {
	f := newFixture(t)
	f.login(t, "p1")
	f.seed(t, models.Client{ID: "1", Name: "Bia", Type: models.ServiceAvulso, NextDate: "2024-06-12", NextTime: "14:00"})

	uc := NewCreateClient(f.clients, f.session, f.clock, nil, true)

	_, err := uc.Execute(f.ctx, ClientInput{Name: "Ana", Date: "2024-06-12", Time: "14:00"})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	_, err = uc.Execute(f.ctx, ClientInput{Name: "Ana", Date: "2024-06-01", Time: "14:00"})
	assert.True(t, httperr.IsBusiness(err, "past_date"))
}

func TestCreateClient_KeepsValue(t *testing.T) {
	f := newFixture(t)
	f.login(t, "p1")
	uc := NewCreateClient(f.clients, f.session, f.clock, nil, false)

	c, err := uc.Execute(f.ctx, ClientInput{
		Name:  "Ana",
		Type:  models.ServiceAvulso,
		Date:  "2024-06-12",
		Time:  "14:00",
		Value: models.Some(45.0),
	})
	require.NoError(t, err)

	v, ok := c.Value.Get()
	assert.True(t, ok)
	assert.Equal(t, 45.0, v)

	_, err = uc.Execute(f.ctx, ClientInput{Name: "Bia", Date: "2024-06-12", Time: "15:00", Value: models.Some(-1.0)})
	assert.True(t, httperr.IsBusiness(err, "invalid_value"))
}
