package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AbsentOptionalFieldsAreOmitted(t *testing.T) {
	c := Client{ID: "1", Name: "Bia", Type: ServicePacote, NextDate: "2024-06-11", NextTime: "09:00"}

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "attended")
	assert.NotContains(t, string(b), "value")
	assert.False(t, c.IsAttended())
}

func TestClient_ExplicitFalseIsKept(t *testing.T) {
	c := Client{ID: "1", Attended: Some(false)}

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"attended":false`)
}

func TestOptional_UnmarshalNullAndMissing(t *testing.T) {
	var c Client
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","attended":null}`), &c))
	assert.False(t, c.Attended.IsSet())
	assert.False(t, c.Value.IsSet())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","attended":true,"value":30}`), &c))
	assert.True(t, c.IsAttended())
	v, ok := c.Value.Get()
	assert.True(t, ok)
	assert.Equal(t, 30.0, v)
}

func TestOptional_UnmarshalWrongType(t *testing.T) {
	var c Client
	assert.Error(t, json.Unmarshal([]byte(`{"attended":"sim"}`), &c))
}

func TestServiceType_Valid(t *testing.T) {
	assert.True(t, ServiceAvulso.Valid())
	assert.True(t, ServicePacote.Valid())
	assert.False(t, ServiceType("mensal").Valid())
}
