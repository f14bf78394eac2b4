package inventory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"apartment-availability-backend/internal/model"
)

// DaysInDataset is the length of the generated calendar.
const DaysInDataset = 30

// Probability of a flat being taken on a given day.
const (
	weekendUnavailableP = 0.7
	weekdayUnavailableP = 0.4
)

// RandomSource is the randomness used by the Generator. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// NewRandomSource returns a PCG source. A zero seed draws one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator synthesises availability calendars.
type Generator struct {
	rnd RandomSource
}

// NewGenerator creates a generator drawing from rnd.
func NewGenerator(rnd RandomSource) *Generator {
	return &Generator{rnd: rnd}
}

// Generate builds DaysInDataset consecutive days starting at start for the given flats.
func (g *Generator) Generate(flats []model.Flat, start time.Time) []model.DayAvailability {
	start = dateOnly(start)
	days := make([]model.DayAvailability, 0, DaysInDataset)

	for i := 0; i < DaysInDataset; i++ {
		date := start.AddDate(0, 0, i)
		threshold := weekdayUnavailableP
		if isWeekend(date) {
			threshold = weekendUnavailableP
		}

		statuses := make(map[string]model.FlatDayStatus, len(flats))
		for _, flat := range flats {
			statuses[flat.ID] = g.drawStatus(flat, threshold)
		}

		days = append(days, model.DayAvailability{
			Date:             date.Format(time.DateOnly),
			Day:              WeekdayName(date),
			FlatAvailability: statuses,
		})
	}
	return days
}

func (g *Generator) drawStatus(flat model.Flat, threshold float64) model.FlatDayStatus {
	if g.rnd.Float64() > threshold {
		return model.FlatDayStatus{Available: true}
	}

	name := fmt.Sprintf("Guest %d", g.rnd.IntN(100))
	amount := g.rnd.IntN(2000) + 1000
	return model.FlatDayStatus{
		Available:  false,
		GuestCount: g.rnd.IntN(max(flat.Capacity, 1)) + 1,
		GuestName:  &name,
		Amount:     &amount,
	}
}

// Friday and Saturday nights are the busy ones.
func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Friday || d.Weekday() == time.Saturday
}

// WeekdayName returns the three-letter weekday, e.g. "Tue".
func WeekdayName(d time.Time) string {
	return d.Weekday().String()[:3]
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
