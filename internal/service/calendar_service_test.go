package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
	"maintenance-service/internal/service/mocks"
)

func TestCalendarService_Events(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	preventive := []model.MaintenanceRequest{
		{ID: 1, Subject: "Lubrication", RequestType: model.TypePreventive, ScheduledDate: start, Duration: model.Duration(90 * time.Minute)},
		{ID: 2, Subject: "Inspection", RequestType: model.TypePreventive, ScheduledDate: start},
	}

	t.Run("cache miss fills the cache", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		cache.On("GetCalendar", mock.Anything).Return(nil, false, nil)
		cache.On("CalendarVersion", mock.Anything).Return(int64(3), nil)
		requests.On("ListPreventive", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(preventive, nil)
		cache.On("SetCalendar", mock.Anything, int64(3), mock.AnythingOfType("[]model.CalendarEvent")).Return(true, nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		events, err := svc.Events(context.Background(), nil, nil)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, start.Add(90*time.Minute), events[0].End)
		assert.Equal(t, start.Add(time.Hour), events[1].End)
		assert.Equal(t, "Unassigned", events[1].Technician)
	})

	t.Run("cache hit", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		cache.On("GetCalendar", mock.Anything).Return([]model.CalendarEvent{{ID: 5}}, true, nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		events, err := svc.Events(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, []model.CalendarEvent{{ID: 5}}, events)
	})

	t.Run("ranged query bypasses the cache", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		from := start.Add(-24 * time.Hour)
		requests.On("ListPreventive", mock.Anything, &from, (*time.Time)(nil)).Return(preventive[:1], nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		events, err := svc.Events(context.Background(), &from, nil)

		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("broken cache is ignored", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		cache.On("GetCalendar", mock.Anything).Return(nil, false, errors.New("redis down"))
		cache.On("CalendarVersion", mock.Anything).Return(int64(0), errors.New("redis down"))
		requests.On("ListPreventive", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return([]model.MaintenanceRequest{}, nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		events, err := svc.Events(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("version is read before the query", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		cache.On("GetCalendar", mock.Anything).Return(nil, false, nil)
		cache.On("CalendarVersion", mock.Anything).Return(int64(7), nil)
		requests.On("ListPreventive", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
			Run(func(mock.Arguments) {
				cache.AssertCalled(t, "CalendarVersion", mock.Anything)
			}).
			Return(preventive, nil)
		cache.On("SetCalendar", mock.Anything, int64(7), mock.Anything).Return(true, nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		_, err := svc.Events(context.Background(), nil, nil)

		require.NoError(t, err)
	})

	t.Run("invalidated while building is not an error", func(t *testing.T) {
		requests := mocks.NewRequestRepository(t)
		cache := mocks.NewCalendarCache(t)
		cache.On("GetCalendar", mock.Anything).Return(nil, false, nil)
		cache.On("CalendarVersion", mock.Anything).Return(int64(7), nil)
		requests.On("ListPreventive", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(preventive, nil)
		cache.On("SetCalendar", mock.Anything, int64(7), mock.Anything).Return(false, nil)

		svc := service.NewCalendarService(requests, cache, zap.NewNop())
		events, err := svc.Events(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}
