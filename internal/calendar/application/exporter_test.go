package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

func sampleSchedule() *domain.DaySchedule {
	s := domain.NewDaySchedule(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	s.SetBlocks([]domain.Block{
		{Start: domain.Clock{Hour: 9}, DurationMinutes: 45, Title: "Write report", Kind: domain.BlockKindTask},
		{Start: domain.Clock{Hour: 12}, DurationMinutes: 60, Title: "Lunch", Kind: domain.BlockKindMeal},
	})
	return s
}

func TestExportRendersBlocks(t *testing.T) {
	data, err := NewExporter().Export(sampleSchedule())

	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//Lifeflow//EN")
	assert.Contains(t, out, "VERSION:2.0")

	assert.Contains(t, out, "UID:lifeflow-2026-08-28-0")
	assert.Contains(t, out, "UID:lifeflow-2026-08-28-1")
	assert.Contains(t, out, "SUMMARY:Write report")
	assert.Contains(t, out, "SUMMARY:Lunch")
	assert.Contains(t, out, "DESCRIPTION:Type: task")
	assert.Contains(t, out, "DESCRIPTION:Type: meal")

	assert.Contains(t, out, "DTSTART:20260828T090000Z")
	assert.Contains(t, out, "DTEND:20260828T094500Z")
}

func TestExportIsByteStable(t *testing.T) {
	exporter := NewExporter()
	schedule := sampleSchedule()

	first, err := exporter.Export(schedule)
	require.NoError(t, err)
	second, err := exporter.Export(schedule)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-exports must replace, not duplicate, on import")
}

func TestExportEmptySchedule(t *testing.T) {
	s := domain.NewDaySchedule(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	data, err := NewExporter().Export(s)

	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.NotContains(t, string(data), "BEGIN:VEVENT")
}
