// Package queries holds the wellness read operations.
package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/wellness/domain"
)

// SleepStatsQuery summarizes sleep over the window ending at a date.
type SleepStatsQuery struct {
	EndDate time.Time
	Days    int
}

// SleepNightView is the read model for one recorded night.
type SleepNightView struct {
	Date            string
	BedTime         string
	WakeTime        string
	DurationMinutes int
	Quality         int
	Notes           string
}

// SleepStatsView is the aggregated read model.
type SleepStatsView struct {
	Nights         []SleepNightView
	AverageMinutes int
	AverageQuality float64
	RecordedNights int
}

// SleepStatsHandler handles SleepStatsQuery.
type SleepStatsHandler struct {
	repo domain.Repository
}

// NewSleepStatsHandler creates a SleepStatsHandler.
func NewSleepStatsHandler(repo domain.Repository) *SleepStatsHandler {
	return &SleepStatsHandler{repo: repo}
}

// Handle computes the stats. Days defaults to 7. Nights without both times
// count toward quality but not toward the duration average.
func (h *SleepStatsHandler) Handle(ctx context.Context, q SleepStatsQuery) (*SleepStatsView, error) {
	days := q.Days
	if days <= 0 {
		days = 7
	}
	end := q.EndDate
	from := end.AddDate(0, 0, -(days - 1))

	records, err := h.repo.FindRange(ctx, from, end)
	if err != nil {
		return nil, err
	}

	view := &SleepStatsView{RecordedNights: len(records)}
	var (
		totalMinutes, timedNights int
		totalQuality, ratedNights int
	)
	for _, r := range records {
		duration := r.DurationMinutes()
		view.Nights = append(view.Nights, SleepNightView{
			Date:            r.DateKey(),
			BedTime:         r.BedTime,
			WakeTime:        r.WakeTime,
			DurationMinutes: duration,
			Quality:         r.Quality,
			Notes:           r.Notes,
		})
		if duration > 0 {
			totalMinutes += duration
			timedNights++
		}
		if r.Quality > 0 {
			totalQuality += r.Quality
			ratedNights++
		}
	}

	if timedNights > 0 {
		view.AverageMinutes = totalMinutes / timedNights
	}
	if ratedNights > 0 {
		view.AverageQuality = float64(totalQuality) / float64(ratedNights)
	}
	return view, nil
}
