package reminder

import (
	"fmt"
	"time"
)

// Planregels voor afspraakherinneringen. Een datum is kiesbaar als hij niet
// vóór vandaag ligt en er voor de afspraak nog geen niet-geannuleerde
// herinnering op die datum staat.

// Day is één kalenderdag in de weergegeven maand.
type Day struct {
	Date       time.Time `json:"date"`
	Selectable bool      `json:"selectable"`
	Occupied   bool      `json:"occupied"`
}

// DateOnly normaliseert naar middernacht UTC zodat datums op dagniveau
// vergeleken worden.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsSelectable bepaalt of een datum gekozen mag worden als nieuwe
// herinneringsdatum. existing zijn de datums van niet-geannuleerde
// herinneringen voor dezelfde afspraak.
func IsSelectable(date, today time.Time, existing []time.Time) bool {
	d := DateOnly(date)
	if d.Before(DateOnly(today)) {
		return false
	}
	return !isOccupied(d, existing)
}

func isOccupied(date time.Time, existing []time.Time) bool {
	d := DateOnly(date)
	for _, e := range existing {
		if DateOnly(e).Equal(d) {
			return true
		}
	}
	return false
}

// MonthDays somt alle dagen van de weergegeven maand op met hun
// kiesbaarheid, voor de kalender in de afspraak-editor.
func MonthDays(year int, month time.Month, today time.Time, existing []time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]Day, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:       d,
			Selectable: IsSelectable(d, today, existing),
			Occupied:   isOccupied(d, existing),
		})
	}
	return days
}

// SplitSchedulable verdeelt gevraagde datums in toegestane en afgewezen
// datums. Dubbele datums binnen het verzoek zelf worden ook afgewezen.
func SplitSchedulable(requested []time.Time, today time.Time, existing []time.Time) (valid, rejected []time.Time) {
	taken := make([]time.Time, len(existing))
	copy(taken, existing)
	for _, r := range requested {
		d := DateOnly(r)
		if !IsSelectable(d, today, taken) {
			rejected = append(rejected, d)
			continue
		}
		valid = append(valid, d)
		taken = append(taken, d)
	}
	return valid, rejected
}

// SendReport telt per-item resultaten van een bulkverzending. Een mislukt
// item breekt de batch nooit af.
type SendReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

func (r *SendReport) Success() { r.Sent++ }
func (r *SendReport) Failure() { r.Failed++ }

func (r SendReport) String() string {
	return fmt.Sprintf("%d verzonden, %d mislukt", r.Sent, r.Failed)
}
