package schedule

import "time"

// ===============================
// Geração de slots
// ===============================

// Cadência fixa da grade de horários
const SlotStepMinutes = 15

type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// Intervalo já reservado do profissional, em minutos desde a meia-noite
type BookedInterval struct {
	StartMin int
	EndMin   int
}

func IntervalFromTimes(start, end time.Time) BookedInterval {
	return BookedInterval{
		StartMin: MinutesOfDay(start),
		EndMin:   MinutesOfDay(end),
	}
}

// GenerateSlots produz a grade de horários de um dia para um serviço.
//
// Regras:
//   - dia fechado ou horários ausentes → vazio
//   - slots a cada 15 minutos a partir do open_time, emitidos enquanto
//     o início for estritamente anterior ao close_time
//   - se a data for hoje (em relação a now), o primeiro slot é empurrado
//     para a próxima hora cheia; os anteriores são omitidos
//   - available = false quando [slot, slot+duração) cruza algum
//     intervalo já reservado
func GenerateSlots(
	date time.Time,
	day DaySchedule,
	durationMin int,
	booked []BookedInterval,
	now time.Time,
) []TimeSlot {

	if !day.Open || day.OpenTime == "" || day.CloseTime == "" || durationMin <= 0 {
		return []TimeSlot{}
	}

	openMin, err := ParseClock(day.OpenTime)
	if err != nil {
		return []TimeSlot{}
	}

	closeMin, err := ParseClock(day.CloseTime)
	if err != nil || openMin >= closeMin {
		return []TimeSlot{}
	}

	first := openMin

	// hoje: nunca oferecer horário no passado
	if sameDay(date, now) {
		nextHour := (now.Hour() + 1) * 60
		if nextHour > first {
			// primeiro ponto da grade (alinhada ao open_time) >= próxima hora cheia
			offset := nextHour - openMin
			steps := offset / SlotStepMinutes
			if offset%SlotStepMinutes != 0 {
				steps++
			}
			first = openMin + steps*SlotStepMinutes
		}
	}

	slots := []TimeSlot{}

	for cur := first; cur < closeMin; cur += SlotStepMinutes {
		slotEnd := cur + durationMin

		available := true
		for _, b := range booked {
			if cur < b.EndMin && b.StartMin < slotEnd {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			Time:      FormatClock(cur),
			Available: available,
		})
	}

	return slots
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
