// Package relativetime renders notification timestamps the way the mobile
// client displays them: short Portuguese labels relative to the current time.
package relativetime

import (
	"fmt"
	"time"
)

var monthAbbr = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Format produces "Agora" under one minute, "N min" under an hour, "N horas"
// under a day, "N dias" under a week, and "D de MMM" beyond that.
func Format(t, now time.Time) string {
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "Agora"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d horas", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%d dias", int(elapsed.Hours()/24))
	default:
		return fmt.Sprintf("%d de %s", t.Day(), monthAbbr[int(t.Month())-1])
	}
}
