package calendar

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

// ===============================
// Grade de agenda (painel)
// ===============================

// Altura padrão de cada faixa de 15 minutos, em pixels
const DefaultSlotHeight = 48

// Entry é um agendamento já persistido, achatado para renderização
type Entry struct {
	ID            uint   `json:"id"`
	CustomerName  string `json:"customer_name"`
	StaffName     string `json:"staff_name"`
	TreatmentName string `json:"treatment_name"`
	Date          string `json:"date"` // YYYY-MM-DD
	StartTime     string `json:"start_time"`
	DurationMin   int    `json:"duration_min"`
	Status        string `json:"status"`
}

// PositionedEntry posiciona um Entry na coluna do dia
type PositionedEntry struct {
	Entry
	Top    int `json:"top"`
	Height int `json:"height"`
}

type DayGrid struct {
	Date    string            `json:"date"`
	Closed  bool              `json:"closed"`
	Axis    []string          `json:"axis"` // marcações de 15 em 15 minutos
	Entries []PositionedEntry `json:"entries"`
}

type WeekDayColumn struct {
	Date    string  `json:"date"`
	Weekday int     `json:"weekday"`
	Closed  bool    `json:"closed"`
	Entries []Entry `json:"entries"`
}

type WeekGrid struct {
	Start string           `json:"start"` // domingo
	End   string           `json:"end"`
	Days  [7]WeekDayColumn `json:"days"`
}

const dateLayout = "2006-01-02"

// BuildDayGrid monta a visão diária: eixo de horários + entradas
// posicionadas verticalmente a partir do open_time.
//
// offset = (startMin - openMin) / 15 * slotHeight
// altura = durationMin / 15 * slotHeight
func BuildDayGrid(
	date time.Time,
	day schedule.DaySchedule,
	entries []Entry,
	slotHeight int,
) DayGrid {

	grid := DayGrid{Date: date.Format(dateLayout)}

	if slotHeight <= 0 {
		slotHeight = DefaultSlotHeight
	}

	if !day.Open || day.OpenTime == "" || day.CloseTime == "" {
		// dia fechado: nada é renderizado, mesmo que existam agendamentos
		grid.Closed = true
		return grid
	}

	openMin, err := schedule.ParseClock(day.OpenTime)
	if err != nil {
		grid.Closed = true
		return grid
	}

	closeMin, err := schedule.ParseClock(day.CloseTime)
	if err != nil || openMin >= closeMin {
		grid.Closed = true
		return grid
	}

	grid.Axis = []string{}
	for cur := openMin; cur < closeMin; cur += schedule.SlotStepMinutes {
		grid.Axis = append(grid.Axis, schedule.FormatClock(cur))
	}

	grid.Entries = []PositionedEntry{}
	for _, e := range entries {
		if e.Date != grid.Date {
			continue
		}

		startMin, err := schedule.ParseClock(e.StartTime)
		if err != nil {
			continue
		}

		grid.Entries = append(grid.Entries, PositionedEntry{
			Entry:  e,
			Top:    (startMin - openMin) / schedule.SlotStepMinutes * slotHeight,
			Height: e.DurationMin / schedule.SlotStepMinutes * slotHeight,
		})
	}

	sort.SliceStable(grid.Entries, func(i, j int) bool {
		return grid.Entries[i].StartTime < grid.Entries[j].StartTime
	})

	return grid
}

// BuildWeekGrid particiona os agendamentos numa janela de 7 dias
// iniciada no domingo. Mesma regra do dia fechado: a coluna é
// marcada como closed e nada é listado nela.
func BuildWeekGrid(
	anchor time.Time,
	hours schedule.OpeningHours,
	entries []Entry,
) WeekGrid {

	start := WeekStart(anchor)

	grid := WeekGrid{
		Start: start.Format(dateLayout),
		End:   start.AddDate(0, 0, 6).Format(dateLayout),
	}

	byDate := map[string][]Entry{}
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	for i := 0; i < 7; i++ {
		dayDate := start.AddDate(0, 0, i)
		dateStr := dayDate.Format(dateLayout)
		day := hours.ForWeekday(dayDate.Weekday())

		col := WeekDayColumn{
			Date:    dateStr,
			Weekday: int(dayDate.Weekday()),
			Closed:  !day.Open,
			Entries: []Entry{},
		}

		if !col.Closed {
			col.Entries = append(col.Entries, byDate[dateStr]...)
			sort.SliceStable(col.Entries, func(a, b int) bool {
				return col.Entries[a].StartTime < col.Entries[b].StartTime
			})
		}

		grid.Days[i] = col
	}

	return grid
}

// ===============================
// Navegação (funções puras da âncora)
// ===============================

func WeekStart(anchor time.Time) time.Time {
	d := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func PrevDay(anchor time.Time) time.Time { return anchor.AddDate(0, 0, -1) }
func NextDay(anchor time.Time) time.Time { return anchor.AddDate(0, 0, 1) }

func PrevWeek(anchor time.Time) time.Time { return anchor.AddDate(0, 0, -7) }
func NextWeek(anchor time.Time) time.Time { return anchor.AddDate(0, 0, 7) }
