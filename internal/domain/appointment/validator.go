package appointment

import (
	"time"

	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Códigos de recusa
const (
	RejectInvalid   = "invalid_date_or_time"
	RejectPastDate  = "past_date"
	RejectPastTime  = "past_time"
	RejectSlotTaken = "slot_taken"
)

var rejectMessages = map[string]string{
	RejectInvalid:   "Data ou horário inválido.",
	RejectPastDate:  "Não é possível agendar em uma data que já passou.",
	RejectPastTime:  "Esse horário já passou.",
	RejectSlotTaken: "Esse horário já está ocupado.",
}

// Slot é a data/hora candidata no formato persistido
type Slot struct {
	Date string // 2006-01-02
	Time string // 15:04
}

// Decision é o resultado da validação; recusa não é erro
type Decision struct {
	Accepted bool
	Code     string
	Message  string
}

func accept() Decision {
	return Decision{Accepted: true}
}

func reject(code string) Decision {
	return Decision{Code: code, Message: rejectMessages[code]}
}

// Err converte a recusa em erro de negócio (para a camada HTTP)
func (d Decision) Err() error {
	if d.Accepted {
		return nil
	}
	return httperr.ErrBusiness(d.Code)
}

// ValidateSlot aplica as regras de agendamento:
//  1. data anterior a hoje → past_date (hora ignorada)
//  2. hoje, mas data+hora antes de now → past_time
//  3. algum registro com a mesma (data, hora) exata → slot_taken
//
// Não existe janela de duração: 09:00 e 09:01 nunca conflitam.
func ValidateSlot(candidate Slot, existing []models.Client, now time.Time) Decision {
	loc := now.Location()

	day, err := time.ParseInLocation(DateLayout, candidate.Date, loc)
	if err != nil {
		return reject(RejectInvalid)
	}

	at, err := time.ParseInLocation(DateLayout+" "+TimeLayout, candidate.Date+" "+candidate.Time, loc)
	if err != nil {
		return reject(RejectInvalid)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if day.Before(today) {
		return reject(RejectPastDate)
	}

	if day.Equal(today) && at.Before(now) {
		return reject(RejectPastTime)
	}

	for _, c := range existing {
		if c.NextDate == candidate.Date && c.NextTime == candidate.Time {
			return reject(RejectSlotTaken)
		}
	}

	return accept()
}

// MessageFor devolve a mensagem amigável de um código de recusa
func MessageFor(code string) string {
	return rejectMessages[code]
}
