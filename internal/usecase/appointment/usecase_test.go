package appointment

import (
	"testing"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/infra/repository"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

type nopAuditor struct{}

func (nopAuditor) Dispatch(_ audit.Event) {}

func testConfig() *config.Config {
	return &config.Config{
		Timezone:        "UTC",
		BusinessOpen:    "08:00",
		BusinessClose:   "21:00",
		SlotStepMinutes: 30,
		BoxCount:        8,
	}
}

type fixture struct {
	repo   *repository.MemoryScheduleRepository
	cache  *cache.Cache
	cfg    *config.Config
	client models.Client
	treat  models.Treatment
	sub    models.SubTreatment
}

// newFixture arma un repositorio en memoria con un tratamiento de 60
// minutos y una ventana 09:00-12:00 en boxes 1 y 2 para marzo de 2026.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryScheduleRepository()

	treat := repo.AddTreatment(models.Treatment{Name: "Depilación láser"})
	sub := repo.AddSubTreatment(models.SubTreatment{
		TreatmentID: treat.ID,
		Name:        "Piernas completas",
		DurationMin: 60,
		Price:       25000,
	})
	client := repo.AddClient(models.Client{FullName: "Ana Suárez", DNI: "30123456", Phone: "+5491155550000"})

	repo.AddWindow(models.AvailabilityWindow{
		TreatmentID: treat.ID,
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00",
		EndTime:     "12:00",
		Boxes:       "1,2",
		MaxClients:  1,
	})

	return &fixture{
		repo:   repo,
		cache:  cache.New(&config.Config{}),
		cfg:    testConfig(),
		client: client,
		treat:  treat,
		sub:    sub,
	}
}
