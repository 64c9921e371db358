package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/httpresp"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	ucAppointment "github.com/BruksfildServices01/manicure-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	create        *ucAppointment.CreateClient
	registerFirst *ucAppointment.RegisterFirstClient
	reschedule    *ucAppointment.Reschedule
	toggle        *ucAppointment.ToggleAttended
	remove        *ucAppointment.DeleteClient
	agenda        *ucAppointment.ListAgenda
	history       *ucAppointment.ListHistory
	log           *zap.Logger
}

func NewClientHandler(
	create *ucAppointment.CreateClient,
	registerFirst *ucAppointment.RegisterFirstClient,
	reschedule *ucAppointment.Reschedule,
	toggle *ucAppointment.ToggleAttended,
	remove *ucAppointment.DeleteClient,
	agenda *ucAppointment.ListAgenda,
	history *ucAppointment.ListHistory,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		create:        create,
		registerFirst: registerFirst,
		reschedule:    reschedule,
		toggle:        toggle,
		remove:        remove,
		agenda:        agenda,
		history:       history,
		log:           log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name  string                   `json:"name" binding:"required"`
	Type  models.ServiceType       `json:"type"`
	Date  string                   `json:"date" binding:"required"`
	Time  string                   `json:"time" binding:"required"`
	Value models.Optional[float64] `json:"value"`
}

func (r CreateClientRequest) input() ucAppointment.ClientInput {
	return ucAppointment.ClientInput{
		Name:  r.Name,
		Type:  r.Type,
		Date:  r.Date,
		Time:  r.Time,
		Value: r.Value,
	}
}

type RescheduleRequest struct {
	Date string             `json:"date"`
	Time string             `json:"time"`
	Type models.ServiceType `json:"type"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, client)
}

// RegisterFirst é o cadastro do onboarding (com validação de horário)
func (h *ClientHandler) RegisterFirst(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.registerFirst.Execute(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, client)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		ClientID: c.Param("id"),
		Date:     req.Date,
		Time:     req.Time,
		Type:     req.Type,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) ToggleAttended(c *gin.Context) {
	client, err := h.toggle.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// LISTS
// ======================================================

func (h *ClientHandler) Agenda(c *gin.Context) {
	items, err := h.agenda.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ClientHandler) History(c *gin.Context) {
	items, err := h.history.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}
