package sections

import (
	"sync"
	"time"

	"github.com/Dalopezos28/salon-bienestar/internal/httperr"
)

// Names is the fixed set of page sections, single-select.
var Names = []string{"home", "services", "reservations", "calendar", "contact"}

// CalendarRefreshDelay gives the calendar section time to become visible
// before its data refresh fires.
const CalendarRefreshDelay = 100 * time.Millisecond

// Navigator owns which section is active. Activating the calendar section
// schedules onCalendar once, after a fixed short delay; nothing depends on
// the delay being precise.
type Navigator struct {
	mu         sync.Mutex
	active     string
	delay      time.Duration
	onCalendar func()
}

func NewNavigator(onCalendar func()) *Navigator {
	return &Navigator{
		active:     "home",
		delay:      CalendarRefreshDelay,
		onCalendar: onCalendar,
	}
}

func valid(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Activate switches the active section. Unknown names are rejected and leave
// the current section in place.
func (n *Navigator) Activate(name string) error {
	if !valid(name) {
		return httperr.ErrBusiness("unknown_section")
	}

	n.mu.Lock()
	n.active = name
	n.mu.Unlock()

	if name == "calendar" && n.onCalendar != nil {
		time.AfterFunc(n.delay, n.onCalendar)
	}

	return nil
}

func (n *Navigator) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}
