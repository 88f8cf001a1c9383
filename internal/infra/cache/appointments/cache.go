package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
)

const (
	refreshKeyPrefix  = "agenda:refresh:"
	snapshotKeyPrefix = "agenda:appointments:"

	// Счетчик живет дольше снимков: после его истечения все снимки старых версий уже удалены
	counterTTL = 7 * 24 * time.Hour
)

// Cache снимок неотмененных записей дня в Redis.
// Снимок хранится под ключом с текущим значением счетчика обновлений даты,
// поэтому инкремент счетчика (Bump) делает старый снимок недостижимым.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш снимков записей
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func refreshKey(date time.Time) string {
	return refreshKeyPrefix + date.Format(domain.DateFormat)
}

func snapshotKey(date time.Time, version int64) string {
	return fmt.Sprintf("%s%s:%d", snapshotKeyPrefix, date.Format(domain.DateFormat), version)
}

// Version текущее значение счетчика обновлений даты (0, если обновлений не было)
func (c *Cache) Version(ctx context.Context, date time.Time) (int64, error) {
	version, err := c.client.Get(ctx, refreshKey(date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Version - get counter: %v", ErrCache, err)
	}
	return version, nil
}

// Lookup читает снимок текущей версии даты
func (c *Cache) Lookup(ctx context.Context, date time.Time) (*Snapshot, error) {
	version, err := c.Version(ctx, date)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, snapshotKey(date, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Snapshot{Version: version}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Lookup - get snapshot: %v", ErrCache, err)
	}

	var cached []cachedAppointment
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	result := make([]*domain.Appointment, 0, len(cached))
	for _, item := range cached {
		appt, err := fromCached(item, date.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrDecode, item.ID, err)
		}
		result = append(result, appt)
	}

	return &Snapshot{Version: version, Hit: true, Appointments: result}, nil
}

// Store сохраняет снимок для версии, прочитанной до загрузки записей из БД
func (c *Cache) Store(ctx context.Context, date time.Time, version int64, appointments []*domain.Appointment) error {
	cached := make([]cachedAppointment, 0, len(appointments))
	for _, a := range appointments {
		cached = append(cached, toCached(a))
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Store - marshal: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, snapshotKey(date, version), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Store - set snapshot: %v", ErrCache, err)
	}

	return nil
}

// Bump инкрементирует счетчик обновлений даты после создания или отмены записи
func (c *Cache) Bump(ctx context.Context, date time.Time) (int64, error) {
	key := refreshKey(date)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("%w: Bump - incr counter: %v", ErrCache, err)
	}

	return incr.Val(), nil
}
