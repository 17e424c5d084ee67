package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-service/internal/model"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "hours minutes seconds", in: "01:30:00", want: 90 * time.Minute},
		{name: "minutes seconds", in: "45:10", want: 45*time.Minute + 10*time.Second},
		{name: "with days", in: "1 02:00:00", want: 26 * time.Hour},
		{name: "zero", in: "00:00:00", want: 0},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "2h", wantErr: true},
		{name: "minutes overflow", in: "01:75:00", wantErr: true},
		{name: "negative", in: "-01:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(got))
		})
	}
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "02:05:09", model.Duration(2*time.Hour+5*time.Minute+9*time.Second).String())
	assert.Equal(t, "1 01:00:00", model.Duration(25*time.Hour).String())
}

func TestNewCalendarEvent(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tech := "Jane Doe"

	t.Run("preventive with duration", func(t *testing.T) {
		ev, ok := model.NewCalendarEvent(model.MaintenanceRequest{
			ID: 7, Subject: "Oil change", RequestType: model.TypePreventive,
			ScheduledDate: start, Duration: model.Duration(2 * time.Hour), TechnicianName: &tech,
		})
		require.True(t, ok)
		assert.Equal(t, int64(7), ev.RequestID)
		assert.Equal(t, start.Add(2*time.Hour), ev.End)
		assert.Equal(t, "Jane Doe", ev.Technician)
	})

	t.Run("preventive without duration defaults to an hour", func(t *testing.T) {
		ev, ok := model.NewCalendarEvent(model.MaintenanceRequest{RequestType: model.TypePreventive, ScheduledDate: start})
		require.True(t, ok)
		assert.Equal(t, start.Add(time.Hour), ev.End)
		assert.Equal(t, "Unassigned", ev.Technician)
	})

	t.Run("corrective never appears", func(t *testing.T) {
		_, ok := model.NewCalendarEvent(model.MaintenanceRequest{RequestType: model.TypeCorrective, ScheduledDate: start})
		assert.False(t, ok)
	})
}
