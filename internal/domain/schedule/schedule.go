package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Horário de funcionamento
// ===============================

type DaySchedule struct {
	Open      bool   `json:"open"`
	OpenTime  string `json:"open_time"`  // HH:MM
	CloseTime string `json:"close_time"` // HH:MM
}

// OpeningHours indexado por time.Weekday (0 = domingo)
type OpeningHours [7]DaySchedule

func (oh OpeningHours) ForWeekday(wd time.Weekday) DaySchedule {
	return oh[int(wd)%7]
}

// Valida o invariante: dia aberto exige open < close
func (d DaySchedule) Validate() error {
	if !d.Open {
		return nil
	}

	open, err := ParseClock(d.OpenTime)
	if err != nil {
		return fmt.Errorf("open_time inválido: %w", err)
	}

	closeMin, err := ParseClock(d.CloseTime)
	if err != nil {
		return fmt.Errorf("close_time inválido: %w", err)
	}

	if open >= closeMin {
		return fmt.Errorf("open_time deve ser anterior a close_time")
	}

	return nil
}

// ===============================
// Relógio de parede (HH:MM)
// ===============================

// ParseClock converte "HH:MM" em minutos desde a meia-noite
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// MinutesOfDay extrai minutos desde a meia-noite de um time.Time
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
