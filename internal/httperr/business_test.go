package httperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Wrapped(t *testing.T) {
	err := fmt.Errorf("agendar: %w", ErrBusiness("slot_taken"))

	assert.True(t, IsBusiness(err, "slot_taken"))
	assert.False(t, IsBusiness(err, "past_date"))

	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, "slot_taken", code)

	_, ok = CodeOf(fmt.Errorf("io"))
	assert.False(t, ok)
}
