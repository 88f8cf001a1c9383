package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()

	for _, d := range AllWeekdays {
		day, ok := s.WorkingDays[d]
		require.True(t, ok, d)
		assert.Equal(t, d != Sunday, day.Active, d)
		assert.False(t, day.HasAllowedHours())
	}

	require.NotNil(t, s.LunchBreak)
	assert.Equal(t, DefaultLunchBreak(), *s.LunchBreak)
	assert.Empty(t, s.Exceptions)
	assert.NoError(t, s.Validate())
}

func TestBarberSchedule_MissingWeekdayIsInactive(t *testing.T) {
	s := BarberSchedule{WorkingDays: map[Weekday]WorkingDay{Monday: {Active: true}}}

	assert.True(t, s.DayFor(date(t, "2024-06-10")).Active)  // Monday
	assert.False(t, s.DayFor(date(t, "2024-06-11")).Active) // Tuesday
}

func TestBarberSchedule_ExceptionFirstMatchWins(t *testing.T) {
	s := DefaultSchedule()
	s.Exceptions = []ScheduleException{
		{Date: "2024-06-09", Active: true},
		{Date: "2024-06-11", Active: false},
		{Date: "2024-06-11", Active: true},
	}

	exc := s.ExceptionFor(date(t, "2024-06-11"))
	require.NotNil(t, exc)
	assert.False(t, exc.Active)
	assert.Nil(t, s.ExceptionFor(date(t, "2024-06-12")))

	assert.False(t, s.IsWorkingDay(date(t, "2024-06-11")))
	assert.True(t, s.IsWorkingDay(date(t, "2024-06-09"))) // Sunday forced open
}

func TestBarberSchedule_EffectiveLunch(t *testing.T) {
	s := BarberSchedule{}
	assert.Equal(t, DefaultLunchBreak(), s.EffectiveLunch())

	off := LunchBreak{Active: false, Start: "12:00", End: "12:30"}
	s.LunchBreak = &off
	assert.Equal(t, off, s.EffectiveLunch())
}

func TestLunchBreak_ContainsBoundaries(t *testing.T) {
	l := DefaultLunchBreak()

	assert.False(t, l.Contains("12:30"))
	assert.True(t, l.Contains("13:00"))
	assert.True(t, l.Contains("13:30"))
	assert.False(t, l.Contains("14:00"))
}

func TestBarberSchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *BarberSchedule)
		wantErr  bool
		wantTime bool
	}{
		{
			name:   "valid allowed hours",
			mutate: func(s *BarberSchedule) { s.WorkingDays[Monday] = WorkingDay{Active: true, AllowedHours: []types.TimeString{"09:00", "10:30"}} },
		},
		{
			name:     "single digit hour is rejected",
			mutate:   func(s *BarberSchedule) { s.WorkingDays[Monday] = WorkingDay{Active: true, AllowedHours: []types.TimeString{"9:00"}} },
			wantErr:  true,
			wantTime: true,
		},
		{
			name:    "allowed hour off the slot grid",
			mutate:  func(s *BarberSchedule) { s.WorkingDays[Monday] = WorkingDay{Active: true, AllowedHours: []types.TimeString{"09:15"}} },
			wantErr: true,
		},
		{
			name:    "unknown weekday",
			mutate:  func(s *BarberSchedule) { s.WorkingDays["funday"] = WorkingDay{Active: true} },
			wantErr: true,
		},
		{
			name:    "lunch start after end",
			mutate:  func(s *BarberSchedule) { s.LunchBreak = &LunchBreak{Active: true, Start: "14:00", End: "13:00"} },
			wantErr: true,
		},
		{
			name:     "lunch malformed",
			mutate:   func(s *BarberSchedule) { s.LunchBreak = &LunchBreak{Active: true, Start: "13-00", End: "14:00"} },
			wantErr:  true,
			wantTime: true,
		},
		{
			name:    "exception date malformed",
			mutate:  func(s *BarberSchedule) { s.Exceptions = []ScheduleException{{Date: "10/06/2024"}} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchedule()
			tt.mutate(&s)

			err := s.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSchedule)
			if tt.wantTime {
				assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
			}
		})
	}
}
