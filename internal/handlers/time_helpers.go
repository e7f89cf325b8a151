package handlers

import (
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/timezone"
)

// Todas las fechas de la API se interpretan en el timezone del local.

func parseDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(cfg.Timezone),
	)
}
