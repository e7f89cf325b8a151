package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/infra/repository"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/middleware"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	ucAppointment "github.com/SUPERMITA777/reset-fire-sub001/internal/usecase/appointment"
)

type discardAuditor struct{}

func (discardAuditor) Dispatch(_ audit.Event) {}

func newAppointmentRouter(t *testing.T) (*gin.Engine, *repository.MemoryScheduleRepository) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Timezone:        "UTC",
		BusinessOpen:    "08:00",
		BusinessClose:   "21:00",
		SlotStepMinutes: 30,
		BoxCount:        8,
	}

	repo := repository.NewMemoryScheduleRepository()
	c := cache.New(&config.Config{})
	auditor := discardAuditor{}

	h := NewAppointmentHandler(
		cfg,
		ucAppointment.NewCreateAppointment(repo, c, auditor, cfg),
		ucAppointment.NewUpdateAppointment(repo, c, auditor, cfg),
		ucAppointment.NewSetAppointmentStatus(repo, c, auditor, cfg),
		ucAppointment.NewDeleteAppointment(repo, c, auditor),
		ucAppointment.NewListAppointmentsByDate(repo),
		ucAppointment.NewListAppointmentsByMonth(repo, cfg),
		ucAppointment.NewGetAvailability(repo, c, cfg),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, uint(1)) })

	r.GET("/api/citas", h.List)
	r.POST("/api/citas", h.Create)
	r.GET("/api/citas/disponibilidad", h.Availability)
	r.PUT("/api/citas/:id", h.Update)
	r.PATCH("/api/citas/:id/estado", h.SetStatus)
	r.DELETE("/api/citas/:id", h.Delete)

	return r, repo
}

func seedSchedule(t *testing.T, repo *repository.MemoryScheduleRepository) (models.Client, models.Treatment, models.SubTreatment) {
	t.Helper()

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

	return client, treat, sub
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAppointmentCreate_EndToEnd(t *testing.T) {
	r, repo := newAppointmentRouter(t)
	client, treat, sub := seedSchedule(t, repo)

	body := gin.H{
		"client_id":        client.ID,
		"treatment_id":     treat.ID,
		"sub_treatment_id": sub.ID,
		"date":             "2026-03-12",
		"time":             "09:00",
		"box":              1,
	}

	w := doJSON(r, http.MethodPost, "/api/citas", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// El mismo slot por segunda vez responde 400 con time_conflict.
	w = doJSON(r, http.MethodPost, "/api/citas", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var errResp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "time_conflict" {
		t.Fatalf("expected time_conflict, got %s", errResp.Code)
	}
}

func TestAppointmentCreate_UnknownClientIs404(t *testing.T) {
	r, repo := newAppointmentRouter(t)
	_, treat, sub := seedSchedule(t, repo)

	w := doJSON(r, http.MethodPost, "/api/citas", gin.H{
		"client_id":        999,
		"treatment_id":     treat.ID,
		"sub_treatment_id": sub.ID,
		"date":             "2026-03-12",
		"time":             "09:00",
		"box":              1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAppointmentAvailability_Query(t *testing.T) {
	r, repo := newAppointmentRouter(t)
	_, treat, _ := seedSchedule(t, repo)

	w := doJSON(r, http.MethodGet, "/api/citas/disponibilidad?fecha=2026-03-12&tratamiento_id=1&duracion=60", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			Start string `json:"start"`
			End   string `json:"end"`
			Box   int    `json:"box"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Ventana 09:00-12:00, 60 min, boxes 1 y 2: 5 inicios por box.
	if len(resp.Data) != 10 {
		t.Fatalf("expected 10 slots for treatment %d, got %d", treat.ID, len(resp.Data))
	}
	if resp.Data[0].Start != "09:00" || resp.Data[0].Box != 1 {
		t.Fatalf("unexpected first slot %+v", resp.Data[0])
	}

	// Sin parámetros obligatorios responde 400.
	w = doJSON(r, http.MethodGet, "/api/citas/disponibilidad?fecha=2026-03-12", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAppointmentStatusAndListFlow(t *testing.T) {
	r, repo := newAppointmentRouter(t)
	client, treat, sub := seedSchedule(t, repo)

	w := doJSON(r, http.MethodPost, "/api/citas", gin.H{
		"client_id":        client.ID,
		"treatment_id":     treat.ID,
		"sub_treatment_id": sub.ID,
		"date":             "2026-03-12",
		"time":             "09:00",
		"box":              1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created appointment: %v", err)
	}
	base := fmt.Sprintf("/api/citas/%d", created.ID)

	w = doJSON(r, http.MethodPatch, base+"/estado", gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Un confirmado no puede volver a reserved.
	w = doJSON(r, http.MethodPatch, base+"/estado", gin.H{"status": "reserved"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid transition: expected 400, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/citas?fecha=2026-03-12", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var list struct {
		Data []struct {
			ID         uint   `json:"id"`
			Status     string `json:"status"`
			ClientName string `json:"client_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(list.Data))
	}
	if list.Data[0].Status != "confirmed" || list.Data[0].ClientName != "Ana Suárez" {
		t.Fatalf("unexpected listed appointment %+v", list.Data[0])
	}

	w = doJSON(r, http.MethodDelete, base, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
