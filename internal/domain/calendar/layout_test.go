package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

var monday = time.Date(2030, 6, 3, 0, 0, 0, 0, time.Local)

func entry(id uint, date, start string, dur int) Entry {
	return Entry{
		ID:          id,
		Date:        date,
		StartTime:   start,
		DurationMin: dur,
		Status:      "scheduled",
	}
}

func TestBuildDayGridPositions(t *testing.T) {
	day := schedule.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "18:00"}

	entries := []Entry{
		entry(2, "2030-06-03", "10:30", 60),
		entry(1, "2030-06-03", "09:00", 45),
		entry(3, "2030-06-04", "09:00", 30), // outro dia, fora da grade
	}

	grid := BuildDayGrid(monday, day, entries, DefaultSlotHeight)

	require.False(t, grid.Closed)
	require.Len(t, grid.Entries, 2)

	// ordenadas por horário
	assert.Equal(t, uint(1), grid.Entries[0].ID)
	assert.Equal(t, 0, grid.Entries[0].Top)
	assert.Equal(t, 3*48, grid.Entries[0].Height) // 45min = 3 faixas

	assert.Equal(t, uint(2), grid.Entries[1].ID)
	assert.Equal(t, 6*48, grid.Entries[1].Top) // 10:30 = 90min após abertura
	assert.Equal(t, 4*48, grid.Entries[1].Height)
}

func TestBuildDayGridAxis(t *testing.T) {
	day := schedule.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "11:00"}

	grid := BuildDayGrid(monday, day, nil, 0)

	require.Len(t, grid.Axis, 8)
	assert.Equal(t, "09:00", grid.Axis[0])
	assert.Equal(t, "10:45", grid.Axis[7])
}

func TestBuildDayGridClosed(t *testing.T) {
	day := schedule.DaySchedule{Open: false}

	// agendamentos em dia fechado não são renderizados
	entries := []Entry{entry(1, "2030-06-03", "10:00", 30)}
	grid := BuildDayGrid(monday, day, entries, DefaultSlotHeight)

	assert.True(t, grid.Closed)
	assert.Empty(t, grid.Axis)
	assert.Empty(t, grid.Entries)
}

func TestBuildDayGridCustomSlotHeight(t *testing.T) {
	day := schedule.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "18:00"}
	entries := []Entry{entry(1, "2030-06-03", "09:30", 30)}

	grid := BuildDayGrid(monday, day, entries, 20)

	require.Len(t, grid.Entries, 1)
	assert.Equal(t, 40, grid.Entries[0].Top)
	assert.Equal(t, 40, grid.Entries[0].Height)
}

func TestBuildDayGridIdempotent(t *testing.T) {
	day := schedule.DaySchedule{Open: true, OpenTime: "08:00", CloseTime: "20:00"}
	entries := []Entry{
		entry(1, "2030-06-03", "09:15", 45),
		entry(2, "2030-06-03", "14:00", 90),
	}

	a := BuildDayGrid(monday, day, entries, DefaultSlotHeight)
	b := BuildDayGrid(monday, day, entries, DefaultSlotHeight)

	assert.Equal(t, a, b)
}

func TestBuildWeekGrid(t *testing.T) {
	var hours schedule.OpeningHours
	for i := 1; i <= 5; i++ { // seg–sex
		hours[i] = schedule.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "18:00"}
	}

	entries := []Entry{
		entry(1, "2030-06-03", "14:00", 60), // segunda
		entry(2, "2030-06-03", "09:00", 30), // segunda, mais cedo
		entry(3, "2030-06-05", "10:00", 45), // quarta
		entry(4, "2030-06-02", "10:00", 30), // domingo (fechado)
	}

	grid := BuildWeekGrid(monday, hours, entries)

	assert.Equal(t, "2030-06-02", grid.Start) // semana começa no domingo
	assert.Equal(t, "2030-06-08", grid.End)

	sunday := grid.Days[0]
	assert.True(t, sunday.Closed)
	assert.Empty(t, sunday.Entries) // suprimido na grade, não nos dados

	mondayCol := grid.Days[1]
	require.Len(t, mondayCol.Entries, 2)
	assert.Equal(t, uint(2), mondayCol.Entries[0].ID)
	assert.Equal(t, uint(1), mondayCol.Entries[1].ID)

	wednesday := grid.Days[3]
	require.Len(t, wednesday.Entries, 1)
	assert.Equal(t, uint(3), wednesday.Entries[0].ID)
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, monday.AddDate(0, 0, 1), NextDay(monday))
	assert.Equal(t, monday.AddDate(0, 0, -1), PrevDay(monday))
	assert.Equal(t, monday.AddDate(0, 0, 7), NextWeek(monday))
	assert.Equal(t, monday.AddDate(0, 0, -7), PrevWeek(monday))

	// navegação é pura: âncora original intacta
	anchor := monday
	_ = NextDay(anchor)
	assert.Equal(t, monday, anchor)
}

func TestWeekStart(t *testing.T) {
	// qualquer dia da semana leva ao mesmo domingo
	for i := 0; i < 7; i++ {
		d := time.Date(2030, 6, 2, 15, 30, 0, 0, time.Local).AddDate(0, 0, i)
		assert.Equal(t, "2030-06-02", WeekStart(d).Format("2006-01-02"), "dia %d", i)
	}
}
