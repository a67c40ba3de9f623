package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

// SlotCatalog is the fixed set of bookable times, in display order.
// 13:00 is the salon's lunch hour and is never offered.
var SlotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

type SlotAvailability struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Occupied bool   `json:"occupied"`
}

// SlotLabel converts a 24h HH:MM value to its 12-hour AM/PM display label,
// e.g. "14:00" -> "02:00 PM".
func SlotLabel(value string) string {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return value
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return value
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%02d:%s %s", display, parts[1], suffix)
}

// AvailableSlots marks each catalog slot occupied iff some reservation on
// date already holds its time value. The catalog order is never changed and
// occupied slots are kept in the result (the UI shows them disabled).
func AvailableSlots(date string, reservations []models.Reservation) []SlotAvailability {
	taken := make(map[string]bool)
	for _, res := range reservations {
		if res.Date == date {
			taken[res.Time] = true
		}
	}

	slots := make([]SlotAvailability, 0, len(SlotCatalog))
	for _, value := range SlotCatalog {
		slots = append(slots, SlotAvailability{
			Value:    value,
			Label:    SlotLabel(value),
			Occupied: taken[value],
		})
	}

	return slots
}
