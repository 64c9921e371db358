package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/manicure-agenda/internal/models"
)

func sortKey(c models.Client) string {
	return c.NextDate + "T" + c.NextTime
}

// SortChronological ordena por data+hora crescente (agenda)
func SortChronological(list []models.Client) []models.Client {
	out := append([]models.Client(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// History: somente atendidos, do mais recente para o mais antigo
func History(list []models.Client) []models.Client {
	out := make([]models.Client, 0, len(list))
	for _, c := range list {
		if c.IsAttended() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) > sortKey(out[j])
	})
	return out
}

func IsToday(c models.Client, now time.Time) bool {
	return c.NextDate == now.Format(DateLayout)
}

// ValidTime confere o formato HH:mm
func ValidTime(hm string) bool {
	_, err := time.Parse(TimeLayout, hm)
	return err == nil
}

func ValidDate(d string) bool {
	_, err := time.Parse(DateLayout, d)
	return err == nil
}
