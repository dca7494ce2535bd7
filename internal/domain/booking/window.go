package booking

import (
	"fmt"
	"time"
)

// SlotWindow is a contiguous block of whole-hour slots on one date.
type SlotWindow struct {
	Date      time.Time
	StartHour int
	Hours     int
}

func NewSlotWindow(date time.Time, startHour, hours int) SlotWindow {
	return SlotWindow{Date: Midnight(date), StartHour: startHour, Hours: hours}
}

func (w SlotWindow) EndHour() int {
	return w.StartHour + w.Hours
}

// FitsBusinessDay reports whether every covered hour lies inside the working
// day; crossing DayEndHour makes the whole window infeasible.
func (w SlotWindow) FitsBusinessDay() bool {
	return w.StartHour >= DayStartHour && w.Hours > 0 && w.EndHour() <= DayEndHour
}

// HourSlots lists the covered start hours, e.g. 9h/3h -> [9 10 11].
func (w SlotWindow) HourSlots() []int {
	hours := make([]int, 0, w.Hours)
	for h := w.StartHour; h < w.EndHour(); h++ {
		hours = append(hours, h)
	}
	return hours
}

func (w SlotWindow) String() string {
	return fmt.Sprintf("%s %02d:00-%02d:00", w.Date.Format("2006-01-02"), w.StartHour, w.EndHour())
}

// FormatHour renders an hour-of-day as HH:MM.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
