package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"maintenance-service/internal/model"
)

// CalendarService строит календарь плановых работ.
type CalendarService struct {
	requests RequestRepository
	cache    CalendarCache
	log      *zap.Logger
}

// NewCalendarService создаёт сервис календаря.
func NewCalendarService(requests RequestRepository, cache CalendarCache, log *zap.Logger) *CalendarService {
	return &CalendarService{requests: requests, cache: cache, log: log}
}

// Events возвращает события плановых заявок, начинающихся в [from, to).
// Полный календарь без границ кэшируется. Версия кэша читается до запроса к БД,
// поэтому календарь, собранный до параллельной инвалидации, в кэш не попадает.
func (s *CalendarService) Events(ctx context.Context, from, to *time.Time) ([]model.CalendarEvent, error) {
	unbounded := from == nil && to == nil
	cacheable := false
	var version int64
	if unbounded {
		events, ok, err := s.cache.GetCalendar(ctx)
		if err != nil {
			s.log.Warn("calendar cache read failed", zap.Error(err))
		} else if ok {
			return events, nil
		}

		if version, err = s.cache.CalendarVersion(ctx); err != nil {
			s.log.Warn("calendar cache version read failed", zap.Error(err))
		} else {
			cacheable = true
		}
	}

	items, err := s.requests.ListPreventive(ctx, from, to)
	if err != nil {
		return nil, errInternal("failed to list preventive requests", err)
	}
	events := make([]model.CalendarEvent, 0, len(items))
	for _, mr := range items {
		if ev, ok := model.NewCalendarEvent(mr); ok {
			events = append(events, ev)
		}
	}

	if cacheable {
		stored, err := s.cache.SetCalendar(ctx, version, events)
		switch {
		case err != nil:
			s.log.Warn("calendar cache write failed", zap.Error(err))
		case !stored:
			s.log.Debug("calendar invalidated while building, not cached", zap.Int64("version", version))
		}
	}
	return events, nil
}
