// Package application holds the calendar export service.
package application

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-ical"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

const productID = "-//Lifeflow//EN"

// Exporter renders a day plan's blocks as an iCalendar document for import
// into external calendar apps.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() Exporter {
	return Exporter{}
}

// Export serializes the schedule's blocks to iCalendar bytes. UIDs derive
// from the date and block position, and DTSTAMP reuses the block start, so
// exporting the same plan twice yields identical bytes and re-imports
// replace rather than duplicate.
func (Exporter) Export(schedule *domain.DaySchedule) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	date := schedule.Date()
	for i, block := range schedule.Blocks() {
		start := block.Start.At(date).UTC()
		end := block.End().At(date).UTC()

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("lifeflow-%s-%d", schedule.DateKey(), i))
		event.Props.SetDateTime(ical.PropDateTimeStamp, start)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		event.Props.SetText(ical.PropSummary, block.Title)
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("Type: %s", block.Kind))

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}
