package appointment

import (
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAttended Status = "attended"
)

func StatusOf(c models.Client) Status {
	if c.IsAttended() {
		return StatusAttended
	}
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanEdit: data, horário e tipo só mudam enquanto o atendimento está pendente
func CanEdit(c models.Client) error {
	if StatusOf(c) != StatusPending {
		return httperr.ErrBusiness("appointment_locked")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

// ToggleAttended alterna pendente ⇄ atendido (sem trava terminal)
func ToggleAttended(c *models.Client) {
	c.Attended = models.Some(!c.IsAttended())
}

func Reschedule(c *models.Client, date, hm string) error {
	if err := CanEdit(*c); err != nil {
		return err
	}
	if date != "" {
		c.NextDate = date
	}
	if hm != "" {
		c.NextTime = hm
	}
	return nil
}
