package appointment

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberAgenda/internal/domain"
	"github.com/m04kA/SMC-BarberAgenda/pkg/types"
)

type fakeRow struct {
	id                 int64
	startHour, endHour float64
}

type fakeRows struct {
	rows []fakeRow
	pos  int
	err  error
}

func (f *fakeRows) Next() bool {
	f.pos++
	return f.pos <= len(f.rows)
}

func (f *fakeRows) Err() error { return f.err }

func (f *fakeRows) Scan(dest ...interface{}) error {
	row := f.rows[f.pos-1]
	*dest[0].(*int64) = row.id
	*dest[1].(*int64) = 1
	*dest[2].(*string) = "Ana"
	*dest[3].(*string) = "Corte"
	*dest[4].(*time.Time) = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	*dest[5].(*float64) = row.startHour
	*dest[6].(*float64) = row.endHour
	*dest[7].(*domain.AppointmentStatus) = domain.StatusConfirmed
	*dest[8].(*sql.NullTime) = sql.NullTime{}
	*dest[9].(*sql.NullTime) = sql.NullTime{}
	return nil
}

type recordingLogger struct {
	warnings int
}

func (l *recordingLogger) Warn(string, ...interface{}) { l.warnings++ }

func TestScanActive_SkipsUnconvertibleRows(t *testing.T) {
	logger := &recordingLogger{}
	repo := NewRepository(nil, logger)

	rows := &fakeRows{rows: []fakeRow{
		{id: 1, startHour: 9.75, endHour: 10.25},
		{id: 2, startHour: 25, endHour: 26},
		{id: 3, startHour: 23.9999, endHour: 24},
		{id: 4, startHour: 21.5, endHour: 24},
	}}

	appointments, err := repo.scanActive("GetActiveByDate", rows)

	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, int64(1), appointments[0].ID)
	assert.Equal(t, types.ClockTime("09:45:00"), appointments[0].StartTime)
	assert.Equal(t, types.ClockTime("10:15:00"), appointments[0].EndTime)
	assert.Equal(t, int64(4), appointments[1].ID)
	assert.Equal(t, types.EndOfDay, appointments[1].EndTime)
	assert.Equal(t, 2, logger.warnings)
}

func TestScanActive_RowsError(t *testing.T) {
	repo := NewRepository(nil, &recordingLogger{})

	_, err := repo.scanActive("GetActiveByDate", &fakeRows{err: errors.New("conn reset")})

	assert.ErrorIs(t, err, ErrScanRow)
}
