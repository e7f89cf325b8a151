package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
)

const availabilityTTL = 60 * time.Second

// Cache guarda respuestas de disponibilidad por (tratamiento, fecha,
// duración). La disponibilidad se recalcula en cada consulta del
// calendario, así que un TTL corto alcanza; las mutaciones igual
// invalidan la fecha afectada.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{}
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func availabilityKey(treatmentID uint, date string, durationMin int) string {
	return fmt.Sprintf("disponibilidad:%d:%s:%d", treatmentID, date, durationMin)
}

func (c *Cache) GetAvailability(
	ctx context.Context,
	treatmentID uint,
	date string,
	durationMin int,
) ([]schedule.Slot, bool) {

	if !c.Enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, availabilityKey(treatmentID, date, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Cache) SetAvailability(
	ctx context.Context,
	treatmentID uint,
	date string,
	durationMin int,
	slots []schedule.Slot,
) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, availabilityKey(treatmentID, date, durationMin), raw, availabilityTTL).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

// InvalidateDate borra todas las entradas del tratamiento para una fecha
// (cualquier duración consultada).
func (c *Cache) InvalidateDate(ctx context.Context, treatmentID uint, date string) {
	c.invalidate(ctx, fmt.Sprintf("disponibilidad:%d:%s:*", treatmentID, date))
}

// InvalidateTreatment borra todas las entradas del tratamiento. Se usa
// cuando cambian sus ventanas de disponibilidad.
func (c *Cache) InvalidateTreatment(ctx context.Context, treatmentID uint) {
	c.invalidate(ctx, fmt.Sprintf("disponibilidad:%d:*", treatmentID))
}

func (c *Cache) invalidate(ctx context.Context, pattern string) {
	if !c.Enabled() {
		return
	}

	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache invalidate error:", err)
	}
}
