package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// segunda-feira futura, longe de "now"
	futureMonday = time.Date(2030, 6, 3, 0, 0, 0, 0, time.Local)
	testNow      = time.Date(2030, 1, 10, 14, 20, 0, 0, time.Local)
)

func openDay(open, close string) DaySchedule {
	return DaySchedule{Open: true, OpenTime: open, CloseTime: close}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	day := DaySchedule{Open: false}

	slots := GenerateSlots(futureMonday, day, 60, nil, testNow)
	assert.Empty(t, slots)

	// fechado vence qualquer agendamento existente
	booked := []BookedInterval{{StartMin: 600, EndMin: 645}}
	slots = GenerateSlots(futureMonday, day, 30, booked, testNow)
	assert.Empty(t, slots)
}

func TestGenerateSlotsMissingTimes(t *testing.T) {
	day := DaySchedule{Open: true}
	assert.Empty(t, GenerateSlots(futureMonday, day, 60, nil, testNow))

	day = DaySchedule{Open: true, OpenTime: "09:00"}
	assert.Empty(t, GenerateSlots(futureMonday, day, 60, nil, testNow))
}

func TestGenerateSlotsInvalidDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(futureMonday, openDay("09:00", "18:00"), 0, nil, testNow))
	assert.Empty(t, GenerateSlots(futureMonday, openDay("09:00", "18:00"), -15, nil, testNow))
}

func TestGenerateSlotsFullDay(t *testing.T) {
	slots := GenerateSlots(futureMonday, openDay("09:00", "18:00"), 60, nil, testNow)

	require.Len(t, slots, 36) // 9h de funcionamento, 4 slots por hora
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:45", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlotsOrderedAndAligned(t *testing.T) {
	slots := GenerateSlots(futureMonday, openDay("09:30", "12:00"), 45, nil, testNow)
	require.NotEmpty(t, slots)

	open, err := ParseClock("09:30")
	require.NoError(t, err)
	closeMin, err := ParseClock("12:00")
	require.NoError(t, err)

	seen := map[string]bool{}
	prev := -1
	for _, s := range slots {
		min, err := ParseClock(s.Time)
		require.NoError(t, err)

		assert.False(t, seen[s.Time], "slot duplicado %s", s.Time)
		seen[s.Time] = true

		assert.Greater(t, min, prev, "slots fora de ordem")
		assert.Equal(t, 0, (min-open)%SlotStepMinutes, "slot desalinhado %s", s.Time)
		assert.Less(t, min, closeMin)
		prev = min
	}
}

func TestGenerateSlotsTodayClampsToNextFullHour(t *testing.T) {
	now := time.Date(2030, 6, 3, 14, 20, 0, 0, time.Local)

	slots := GenerateSlots(futureMonday, openDay("09:00", "18:00"), 30, nil, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, "15:00", slots[0].Time)

	// hora exata também empurra para a próxima hora cheia
	now = time.Date(2030, 6, 3, 14, 0, 0, 0, time.Local)
	slots = GenerateSlots(futureMonday, openDay("09:00", "18:00"), 30, nil, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, "15:00", slots[0].Time)
}

func TestGenerateSlotsTodayAlreadyClosed(t *testing.T) {
	now := time.Date(2030, 6, 3, 17, 30, 0, 0, time.Local)

	slots := GenerateSlots(futureMonday, openDay("09:00", "18:00"), 30, nil, now)
	assert.Empty(t, slots)
}

func TestGenerateSlotsOverlap(t *testing.T) {
	// agendamento existente 10:00–10:45
	booked := []BookedInterval{{StartMin: 600, EndMin: 645}}

	slots := GenerateSlots(futureMonday, openDay("09:00", "18:00"), 30, booked, testNow)

	byTime := map[string]TimeSlot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.False(t, byTime["10:15"].Available) // [10:15, 10:45) cruza
	assert.False(t, byTime["09:45"].Available) // [09:45, 10:15) cruza
	assert.True(t, byTime["10:45"].Available)  // começa quando o outro termina
	assert.True(t, byTime["09:30"].Available)  // termina quando o outro começa
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	booked := []BookedInterval{{StartMin: 600, EndMin: 660}}

	a := GenerateSlots(futureMonday, openDay("08:00", "20:00"), 45, booked, testNow)
	b := GenerateSlots(futureMonday, openDay("08:00", "20:00"), 45, booked, testNow)

	assert.Equal(t, a, b)
}

func TestIntervalFromTimes(t *testing.T) {
	start := time.Date(2030, 6, 3, 10, 0, 0, 0, time.Local)
	end := time.Date(2030, 6, 3, 10, 45, 0, 0, time.Local)

	iv := IntervalFromTimes(start, end)
	assert.Equal(t, 600, iv.StartMin)
	assert.Equal(t, 645, iv.EndMin)
}

func TestDayScheduleValidate(t *testing.T) {
	assert.NoError(t, DaySchedule{Open: false}.Validate())
	assert.NoError(t, openDay("09:00", "18:00").Validate())
	assert.Error(t, openDay("18:00", "09:00").Validate())
	assert.Error(t, openDay("09:00", "09:00").Validate())
	assert.Error(t, openDay("", "18:00").Validate())
	assert.Error(t, openDay("9h00", "18:00").Validate())
}
