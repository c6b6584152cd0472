package building

import "fmt"

// Position określa gdzie znajduje się osoba względem budynku:
// na zewnątrz albo na konkretnym piętrze. Wartość zerowa oznacza "na zewnątrz".
type Position struct {
	floor int
}

// Outside zwraca pozycję poza budynkiem
func Outside() Position {
	return Position{}
}

// OnFloor zwraca pozycję na danym piętrze (numeracja od 1)
func OnFloor(floor int) Position {
	return Position{floor: floor}
}

// Inside sprawdza czy pozycja jest w środku budynku
func (p Position) Inside() bool {
	return p.floor > 0
}

// Floor zwraca numer piętra oraz informację czy jesteśmy w środku
func (p Position) Floor() (int, bool) {
	return p.floor, p.floor > 0
}

// String zwraca czytelny opis pozycji
func (p Position) String() string {
	if !p.Inside() {
		return "outside"
	}
	return fmt.Sprintf("floor #%d", p.floor)
}
