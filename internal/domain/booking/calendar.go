package booking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Dalopezos28/salon-bienestar/internal/models"
	"github.com/Dalopezos28/salon-bienestar/internal/timezone"
)

// DateLayout is the wire format for every calendar date.
const DateLayout = "2006-01-02"

// gridCells is always six full weeks.
const gridCells = 42

type CalendarCell struct {
	Date           string               `json:"date"`
	Day            int                  `json:"day"`
	InCurrentMonth bool                 `json:"in_current_month"`
	Today          bool                 `json:"today"`
	Selected       bool                 `json:"selected"`
	Count          int                  `json:"count"`
	Reservations   []models.Reservation `json:"reservations,omitempty"`
}

type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// MonthGrid builds the 42-cell view for year/month. The first cell is the
// most recent Sunday on or before the 1st; if the 1st is a Sunday the grid
// starts on it. Reservations are matched to cells by exact YYYY-MM-DD string
// equality, keeping the store's order within each cell.
func MonthGrid(
	year int,
	month time.Month,
	today time.Time,
	reservations []models.Reservation,
) CalendarMonth {

	byDate := make(map[string][]models.Reservation)
	for _, res := range reservations {
		byDate[res.Date] = append(byDate[res.Date], res)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayStr := today.Format(DateLayout)

	cells := make([]CalendarCell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		day := start.AddDate(0, 0, i)
		dateStr := day.Format(DateLayout)
		dayReservations := byDate[dateStr]

		cells = append(cells, CalendarCell{
			Date:           dateStr,
			Day:            day.Day(),
			InCurrentMonth: day.Month() == month && day.Year() == year,
			Today:          dateStr == todayStr,
			Count:          len(dayReservations),
			Reservations:   dayReservations,
		})
	}

	return CalendarMonth{
		Year:  year,
		Month: int(month),
		Cells: cells,
	}
}

// ======================================================
// CALENDAR COMPONENT
// ======================================================

// Calendar owns the displayed month/year, the last-fetched reservation
// snapshot and the selected day. The snapshot is replaced wholesale on each
// successful fetch and never merged.
type Calendar struct {
	mu   sync.Mutex
	repo Repository
	now  func() time.Time

	year     int
	month    time.Month
	snapshot []models.Reservation
	selected string
}

// DaySelection is what a day click yields: the day's reservations plus the
// slot list computed from the current snapshot.
type DaySelection struct {
	Date         string               `json:"date"`
	Reservations []models.Reservation `json:"reservations"`
	Slots        []SlotAvailability   `json:"slots"`
}

// NewCalendar starts at the real-world current month in the salon timezone.
func NewCalendar(repo Repository, now func() time.Time) *Calendar {
	if now == nil {
		now = timezone.Now
	}
	t := now()
	return &Calendar{
		repo:  repo,
		now:   now,
		year:  t.Year(),
		month: t.Month(),
	}
}

// Refresh replaces the snapshot with a fresh full fetch. On store failure the
// previous snapshot stays in place and no error reaches the caller; the grid
// keeps showing the last known state.
func (c *Calendar) Refresh(ctx context.Context) {
	list, err := c.repo.ListReservations(ctx)
	if err != nil {
		log.Printf("calendar refresh failed, keeping previous snapshot: %v", err)
		return
	}

	c.mu.Lock()
	c.snapshot = list
	c.mu.Unlock()
}

// ChangeMonth moves the displayed month by delta (+1 or -1), wrapping year
// boundaries. Navigation is render-only: no re-fetch happens.
func (c *Calendar) ChangeMonth(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := int(c.month) + delta
	for m < 1 {
		m += 12
		c.year--
	}
	for m > 12 {
		m -= 12
		c.year++
	}
	c.month = time.Month(m)
}

// SelectDay clears the previous selection, marks date selected and returns
// the day's reservations and slot list from the current snapshot.
func (c *Calendar) SelectDay(date string) DaySelection {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = date

	var dayReservations []models.Reservation
	for _, res := range c.snapshot {
		if res.Date == date {
			dayReservations = append(dayReservations, res)
		}
	}

	return DaySelection{
		Date:         date,
		Reservations: dayReservations,
		Slots:        AvailableSlots(date, c.snapshot),
	}
}

// View renders the grid for the displayed month from the current snapshot.
func (c *Calendar) View() CalendarMonth {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := MonthGrid(c.year, c.month, c.now(), c.snapshot)
	if c.selected != "" {
		for i := range view.Cells {
			if view.Cells[i].Date == c.selected {
				view.Cells[i].Selected = true
			}
		}
	}
	return view
}

// Displayed reports the current month/year without rendering.
func (c *Calendar) Displayed() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.year, c.month
}
