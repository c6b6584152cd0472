package report

import (
	"fmt"
	"io"

	"building-navigation-system/internal/building"
)

var builtBanners = map[string]string{
	"cafe":    "You have built a cafe: ☕",
	"house":   "You have built a house: 🏠",
	"library": "You have built a library: 📖",
}

// ConsoleReporter wypisuje zdarzenia jako komunikaty dla użytkownika
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter tworzy reporter piszący do w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Report wypisuje komunikat dla zdarzenia
func (c *ConsoleReporter) Report(e building.Event) {
	if msg := Message(e); msg != "" {
		fmt.Fprintln(c.w, msg)
	}
}

// Message zwraca tekst komunikatu dla zdarzenia (pusty gdy zdarzenie jest ciche)
func Message(e building.Event) string {
	switch e.Kind {
	case building.EventBuilt:
		return builtBanners[e.Subject]
	case building.EventEntered:
		return fmt.Sprintf("You are now inside %s on the ground floor.", e.Building)
	case building.EventLeft:
		return fmt.Sprintf("You have left %s.", e.Building)
	case building.EventFloorChanged:
		return fmt.Sprintf("You are now on floor #%d of %s.", e.Floor, e.Building)
	case building.EventStaffOnlyFloor:
		return "It is employees only!"
	case building.EventRestocked:
		return fmt.Sprintf("%s has been restocked.", e.Building)
	case building.EventMovedIn:
		return fmt.Sprintf("%s has moved in.", e.Subject)
	case building.EventMovedOut:
		return fmt.Sprintf("%s has moved out.", e.Subject)
	case building.EventResidentNotFound:
		return fmt.Sprintf("Error! %s is not a resident of %s", e.Subject, e.Building)
	case building.EventTitleNotFound:
		return fmt.Sprintf("Error! %s does not exist in the collection", e.Subject)
	case building.EventTitleUnavailable:
		return fmt.Sprintf("Error! %s is not available.", e.Subject)
	case building.EventReturnRejected:
		return fmt.Sprintf("Error! %s cannot be returned.", e.Subject)
	}
	return ""
}
