package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsSelectable(t *testing.T) {
	today := date(2025, time.June, 15)
	existing := []time.Time{date(2025, time.June, 20)}

	t.Run("datum in het verleden wordt afgewezen", func(t *testing.T) {
		assert.False(t, IsSelectable(date(2025, time.June, 14), today, nil))
	})

	t.Run("vandaag is toegestaan", func(t *testing.T) {
		assert.True(t, IsSelectable(today, today, nil))
	})

	t.Run("bezette datum wordt afgewezen", func(t *testing.T) {
		assert.False(t, IsSelectable(date(2025, time.June, 20), today, existing))
	})

	t.Run("vrije toekomstige datum is toegestaan", func(t *testing.T) {
		assert.True(t, IsSelectable(date(2025, time.June, 21), today, existing))
	})

	t.Run("tijdstip binnen de dag maakt niet uit", func(t *testing.T) {
		lateToday := time.Date(2025, time.June, 15, 23, 30, 0, 0, time.UTC)
		assert.True(t, IsSelectable(lateToday, today, nil))
	})
}

func TestMonthDays(t *testing.T) {
	today := date(2025, time.June, 15)
	existing := []time.Time{date(2025, time.June, 20)}

	days := MonthDays(2025, time.June, today, existing)
	require.Len(t, days, 30)

	byDay := make(map[int]Day)
	for _, d := range days {
		byDay[d.Date.Day()] = d
	}

	assert.False(t, byDay[1].Selectable)
	assert.True(t, byDay[15].Selectable)
	assert.False(t, byDay[20].Selectable)
	assert.True(t, byDay[20].Occupied)
	assert.True(t, byDay[30].Selectable)
}

func TestSplitSchedulable(t *testing.T) {
	today := date(2025, time.June, 15)
	existing := []time.Time{date(2025, time.June, 20)}

	requested := []time.Time{
		date(2025, time.June, 10), // verleden
		date(2025, time.June, 20), // al bezet
		date(2025, time.June, 25), // ok
		date(2025, time.June, 25), // dubbel in het verzoek zelf
		date(2025, time.June, 26), // ok
	}

	valid, rejected := SplitSchedulable(requested, today, existing)

	assert.Equal(t, []time.Time{date(2025, time.June, 25), date(2025, time.June, 26)}, valid)
	assert.Equal(t, []time.Time{
		date(2025, time.June, 10),
		date(2025, time.June, 20),
		date(2025, time.June, 25),
	}, rejected)
}

func TestSendReport(t *testing.T) {
	var report SendReport
	for i := 0; i < 3; i++ {
		report.Success()
	}
	report.Failure()

	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "3 verzonden, 1 mislukt", report.String())
}
