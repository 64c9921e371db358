package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o fuso; inválido ou vazio cai no padrão (e em UTC se nem o padrão existir)
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock fornece o "agora" no fuso do dispositivo
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewClock(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock devolve sempre o mesmo instante (testes)
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
