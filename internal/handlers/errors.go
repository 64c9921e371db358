package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
)

type businessHTTP struct {
	status  int
	message string
}

var businessErrors = map[string]businessHTTP{
	"name_required":                   {http.StatusBadRequest, "Informe o nome."},
	"date_time_required":              {http.StatusBadRequest, "Informe data e horário."},
	"invalid_price":                   {http.StatusBadRequest, "Preço inválido."},
	"invalid_value":                   {http.StatusBadRequest, "Valor inválido."},
	"invalid_service_type":            {http.StatusBadRequest, "Tipo de atendimento inválido."},
	"nothing_to_update":               {http.StatusBadRequest, "Nada para alterar."},
	"invalid_image":                   {http.StatusBadRequest, "Imagem inválida."},
	"photo_too_large":                 {http.StatusRequestEntityTooLarge, "Imagem muito grande."},
	"not_logged_in":                   {http.StatusUnauthorized, "Nenhuma manicure logada."},
	"account_not_found":               {http.StatusNotFound, "Conta não encontrada."},
	"client_not_found":                {http.StatusNotFound, "Cliente não encontrada."},
	"photo_not_found":                 {http.StatusNotFound, "Foto não encontrada."},
	"appointment_locked":              {http.StatusConflict, "Atendimento já realizado não pode ser alterado."},
	"first_client_already_registered": {http.StatusConflict, "A primeira cliente já foi cadastrada."},
	domain.RejectSlotTaken:            {http.StatusConflict, domain.MessageFor(domain.RejectSlotTaken)},
	domain.RejectPastDate:             {http.StatusUnprocessableEntity, domain.MessageFor(domain.RejectPastDate)},
	domain.RejectPastTime:             {http.StatusUnprocessableEntity, domain.MessageFor(domain.RejectPastTime)},
	domain.RejectInvalid:              {http.StatusBadRequest, domain.MessageFor(domain.RejectInvalid)},
}

// writeError converte erro de negócio em resposta; o resto vira 500
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if errors.Is(err, domain.ErrClientNotFound) {
		m := businessErrors["client_not_found"]
		httperr.Write(c, m.status, "client_not_found", m.message)
		return
	}

	if code, ok := httperr.CodeOf(err); ok {
		if m, ok := businessErrors[code]; ok {
			httperr.Write(c, m.status, code, m.message)
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "storage_error", "Erro ao acessar os dados.")
}
