package building

import "errors"

// Błędy twarde - operacja zostaje przerwana, stan budynku się nie zmienia.
// Sprawdzaj je przez errors.Is, komunikaty są zawsze opakowane kontekstem.
var (
	ErrInvalidConstruction       = errors.New("nieprawidłowa konfiguracja budynku")
	ErrAlreadyInside             = errors.New("jesteś już w środku budynku")
	ErrNotInside                 = errors.New("nie jesteś w środku budynku")
	ErrFellOutWindow             = errors.New("wypadłeś przez okno")
	ErrInvalidFloorRange         = errors.New("nieprawidłowy numer piętra")
	ErrNoElevator                = errors.New("budynek nie ma windy")
	ErrElevatorRequiresParameter = errors.New("budynek ma windę, użyj nawigacji windą")
)
