package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/testutils"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{httperr.ErrBusiness("slot_taken"), http.StatusConflict, "slot_taken"},
		{httperr.ErrBusiness("past_date"), http.StatusUnprocessableEntity, "past_date"},
		{fmt.Errorf("toggle: %w", domain.ErrClientNotFound), http.StatusNotFound, "client_not_found"},
		{httperr.ErrBusiness("algo_novo"), http.StatusBadRequest, "algo_novo"},
		{fmt.Errorf("profiles: %w", kvstore.ErrCorrupt), http.StatusInternalServerError, "storage_error"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			r := testutils.SetupTestRouter(t)
			log := testutils.TestLogger(t)
			r.GET("/x", func(c *gin.Context) { writeError(c, log, tc.err) })

			w := testutils.MakeRequest(t, r, http.MethodGet, "/x", nil)
			assert.Equal(t, tc.status, w.Code)

			var body httperr.HTTPError
			testutils.ParseResponse(t, w, &body)
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
