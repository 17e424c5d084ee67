// Package cache хранит производное представление календаря в Redis и сбрасывает его
// при любых изменениях заявок и оборудования.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maintenance-service/internal/model"
)

const (
	calendarKey        = "cache:calendar:preventive"
	calendarVersionKey = "cache:calendar:preventive:version"
)

var errVersionChanged = errors.New("calendar version changed")

// CalendarCache: кэш событий календаря. Каждая инвалидация увеличивает версию;
// SetCalendar записывает события, только если версия не менялась с момента чтения.
type CalendarCache interface {
	// GetCalendar возвращает события и true, если они есть в кэше.
	GetCalendar(ctx context.Context) ([]model.CalendarEvent, bool, error)
	CalendarVersion(ctx context.Context) (int64, error)
	// SetCalendar возвращает false, если календарь был сброшен после чтения версии.
	SetCalendar(ctx context.Context, version int64, events []model.CalendarEvent) (bool, error)
	InvalidateCalendar(ctx context.Context) error
}

// RedisCache: реализация CalendarCache поверх go-redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache подключается к Redis и проверяет соединение.
func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// GetCalendar читает события календаря из Redis.
func (c *RedisCache) GetCalendar(ctx context.Context) ([]model.CalendarEvent, bool, error) {
	data, err := c.client.Get(ctx, calendarKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var events []model.CalendarEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, fmt.Errorf("decode calendar: %w", err)
	}
	return events, true, nil
}

// CalendarVersion возвращает текущую версию календаря. До первой инвалидации это 0.
func (c *RedisCache) CalendarVersion(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, calendarVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get version: %w", err)
	}
	return v, nil
}

// SetCalendar сохраняет события с TTL в транзакции под WATCH версии. Если версия
// изменилась, запись отбрасывается.
func (c *RedisCache) SetCalendar(ctx context.Context, version int64, events []model.CalendarEvent) (bool, error) {
	data, err := json.Marshal(events)
	if err != nil {
		return false, fmt.Errorf("encode calendar: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, calendarVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errVersionChanged
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, calendarKey, data, c.ttl)
			return nil
		})
		return err
	}, calendarVersionKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errVersionChanged), errors.Is(err, redis.TxFailedErr):
		return false, nil
	}
	return false, fmt.Errorf("redis set: %w", err)
}

// InvalidateCalendar увеличивает версию и удаляет кэшированный календарь.
func (c *RedisCache) InvalidateCalendar(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, calendarVersionKey)
		pipe.Del(ctx, calendarKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NopCache используется, когда Redis не настроен: всегда промах, запись игнорируется.
type NopCache struct{}

func (NopCache) GetCalendar(context.Context) ([]model.CalendarEvent, bool, error) {
	return nil, false, nil
}

func (NopCache) CalendarVersion(context.Context) (int64, error) { return 0, nil }

func (NopCache) SetCalendar(context.Context, int64, []model.CalendarEvent) (bool, error) {
	return false, nil
}

func (NopCache) InvalidateCalendar(context.Context) error { return nil }
