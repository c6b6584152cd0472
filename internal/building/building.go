package building

import (
	"fmt"
)

const (
	// DefaultName to nazwa używana gdy nie podano nazwy budynku
	DefaultName = "<Name Unknown>"
	// DefaultAddress to adres używany gdy nie podano adresu budynku
	DefaultAddress = "<Address Unknown>"
)

// Navigable to wspólny kontrakt nawigacji dla wszystkich budynków
type Navigable interface {
	fmt.Stringer

	Name() string
	Address() string
	Floors() int
	Position() Position
	ActiveFloor() int
	HasElevator() bool

	Enter() (Navigable, error)
	Exit() error
	GoUp() error
	GoDown() error
	GoToFloorStairs(floor int) error
	GoToFloorElevator(floor int) error
	GoUpElevator(floor int) error
	GoDownElevator(floor int) error

	ShowOptions() []string
}

// Option konfiguruje budynek przy tworzeniu
type Option func(*Base)

// WithReporter ustawia odbiorcę zdarzeń budynku
func WithReporter(r Reporter) Option {
	return func(b *Base) {
		if r != nil {
			b.reporter = r
		}
	}
}

// Base przechowuje tożsamość budynku i stan nawigacji.
// Jest osadzany w Cafe, House i Library.
type Base struct {
	name     string
	address  string
	floors   int
	elevator bool
	position Position
	reporter Reporter
}

func newBase(name, address string, floors int, elevator bool, opts []Option) (Base, error) {
	if floors < 1 {
		return Base{}, fmt.Errorf("%w: budynek musi mieć co najmniej 1 piętro (podano %d)", ErrInvalidConstruction, floors)
	}

	if name == "" {
		name = DefaultName
	}
	if address == "" {
		address = DefaultAddress
	}

	b := Base{
		name:     name,
		address:  address,
		floors:   floors,
		elevator: elevator,
		reporter: NopReporter(),
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b, nil
}

// Name zwraca nazwę budynku
func (b *Base) Name() string {
	return b.name
}

// Address zwraca adres budynku
func (b *Base) Address() string {
	return b.address
}

// Floors zwraca liczbę pięter
func (b *Base) Floors() int {
	return b.floors
}

// HasElevator sprawdza czy budynek ma windę
func (b *Base) HasElevator() bool {
	return b.elevator
}

// Position zwraca aktualną pozycję
func (b *Base) Position() Position {
	return b.position
}

// ActiveFloor zwraca aktualne piętro lub -1 gdy jesteśmy na zewnątrz
func (b *Base) ActiveFloor() int {
	if floor, inside := b.position.Floor(); inside {
		return floor
	}
	return -1
}

// String zwraca opis budynku
func (b *Base) String() string {
	return fmt.Sprintf("%s is a %d-story building located at %s.", b.name, b.floors, b.address)
}

func (b *Base) emit(e Event) {
	e.Building = b.name
	b.reporter.Report(e)
}

// enter przenosi osobę na parter. Typy budynków opakowują tę metodę w Enter.
func (b *Base) enter() error {
	if b.position.Inside() {
		return fmt.Errorf("%w: %s", ErrAlreadyInside, b.name)
	}

	b.position = OnFloor(1)
	b.emit(Event{Kind: EventEntered, Floor: 1})
	return nil
}

// Exit wyprowadza osobę z budynku. Wyjść można tylko z parteru.
func (b *Base) Exit() error {
	floor, inside := b.position.Floor()
	if !inside {
		return fmt.Errorf("%w: najpierw wywołaj Enter() (%s)", ErrNotInside, b.name)
	}
	if floor > 1 {
		return fmt.Errorf("%w z piętra #%d (%s)", ErrFellOutWindow, floor, b.name)
	}

	b.position = Outside()
	b.emit(Event{Kind: EventLeft})
	return nil
}

// GoToFloorStairs przechodzi schodami na wskazane piętro.
// Budynki z windą wymagają nawigacji przez GoToFloorElevator.
func (b *Base) GoToFloorStairs(floor int) error {
	if b.elevator {
		return fmt.Errorf("%w: %s", ErrElevatorRequiresParameter, b.name)
	}
	return b.moveTo(floor)
}

// GoToFloorElevator jedzie windą na wskazane piętro
func (b *Base) GoToFloorElevator(floor int) error {
	if !b.elevator {
		return fmt.Errorf("%w: %s", ErrNoElevator, b.name)
	}
	return b.moveTo(floor)
}

// GoUp przechodzi schodami piętro wyżej
func (b *Base) GoUp() error {
	return b.GoToFloorStairs(b.ActiveFloor() + 1)
}

// GoDown przechodzi schodami piętro niżej
func (b *Base) GoDown() error {
	return b.GoToFloorStairs(b.ActiveFloor() - 1)
}

// GoUpElevator jedzie windą w górę na wskazane piętro
func (b *Base) GoUpElevator(floor int) error {
	if !b.elevator {
		return fmt.Errorf("%w: %s", ErrNoElevator, b.name)
	}
	difference := floor - b.ActiveFloor()
	return b.GoToFloorElevator(b.ActiveFloor() + difference)
}

// GoDownElevator jedzie windą w dół na wskazane piętro
func (b *Base) GoDownElevator(floor int) error {
	if !b.elevator {
		return fmt.Errorf("%w: %s", ErrNoElevator, b.name)
	}
	difference := b.ActiveFloor() - floor
	return b.GoToFloorElevator(b.ActiveFloor() - difference)
}

func (b *Base) moveTo(floor int) error {
	if !b.position.Inside() {
		return fmt.Errorf("%w: najpierw wywołaj Enter() (%s)", ErrNotInside, b.name)
	}
	if floor < 1 || floor > b.floors {
		return fmt.Errorf("%w: %d, dozwolony zakres dla %s to 1-%d", ErrInvalidFloorRange, floor, b.name, b.floors)
	}

	b.position = OnFloor(floor)
	b.emit(Event{Kind: EventFloorChanged, Floor: floor})
	return nil
}

// navigationOptions to operacje nawigacji dostępne w każdym budynku
func (b *Base) navigationOptions() []string {
	options := []string{"Enter()", "Exit()", "GoUp()", "GoDown()", "GoToFloorStairs(n)"}
	if b.elevator {
		options = []string{"Enter()", "Exit()", "GoUpElevator(n)", "GoDownElevator(n)", "GoToFloorElevator(n)"}
	}
	return options
}

var (
	_ Navigable = (*Cafe)(nil)
	_ Navigable = (*House)(nil)
	_ Navigable = (*Library)(nil)
)
