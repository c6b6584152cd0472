package building

// EventKind określa rodzaj zdarzenia emitowanego przez budynek
type EventKind string

const (
	EventBuilt          EventKind = "built"
	EventEntered        EventKind = "entered"
	EventLeft           EventKind = "left"
	EventFloorChanged   EventKind = "floor_changed"
	EventStaffOnlyFloor EventKind = "staff_only_floor" // Piętro tylko dla personelu (kawiarnia)

	EventCoffeeSold EventKind = "coffee_sold"
	EventRestocked  EventKind = "restocked"

	EventMovedIn          EventKind = "moved_in"
	EventMovedOut         EventKind = "moved_out"
	EventResidentNotFound EventKind = "resident_not_found"

	EventTitleAdded       EventKind = "title_added"
	EventTitleRemoved     EventKind = "title_removed"
	EventTitleNotFound    EventKind = "title_not_found"
	EventCheckedOut       EventKind = "checked_out"
	EventTitleUnavailable EventKind = "title_unavailable"
	EventReturned         EventKind = "returned"
	EventReturnRejected   EventKind = "return_rejected"
)

// Soft sprawdza czy zdarzenie opisuje błąd miękki (operacja nie przerywa wykonania)
func (k EventKind) Soft() bool {
	switch k {
	case EventResidentNotFound, EventTitleNotFound, EventTitleUnavailable, EventReturnRejected:
		return true
	}
	return false
}

// Event to pojedyncze zdarzenie z budynku
type Event struct {
	Building string
	Kind     EventKind
	Floor    int    // Piętro, którego dotyczy zdarzenie (0 gdy nie dotyczy)
	Subject  string // Mieszkaniec, tytuł książki lub typ budynku
	Stock    *Inventory
}

// Reporter odbiera zdarzenia z budynków. Warstwa prezentacji (konsola, logi, metryki)
// implementuje ten interfejs, rdzeń nic nie wypisuje sam.
type Reporter interface {
	Report(Event)
}

// ReporterFunc pozwala użyć zwykłej funkcji jako Reporter
type ReporterFunc func(Event)

// Report wywołuje funkcję
func (f ReporterFunc) Report(e Event) {
	f(e)
}

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// NopReporter zwraca reporter, który ignoruje wszystkie zdarzenia
func NopReporter() Reporter {
	return nopReporter{}
}
