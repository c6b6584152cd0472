package building

import "fmt"

const (
	DefaultCoffeeOunces = 200
	DefaultSugarPackets = 300
	DefaultCreams       = 100
	DefaultCups         = 400

	// RestockAmount to stała ilość dokładana do każdego zapasu przy uzupełnianiu
	RestockAmount = 20
)

// Inventory reprezentuje zapasy kawiarni
type Inventory struct {
	CoffeeOunces int
	SugarPackets int
	Creams       int
	Cups         int
}

// DefaultInventory zwraca początkowe zapasy nowej kawiarni
func DefaultInventory() Inventory {
	return Inventory{
		CoffeeOunces: DefaultCoffeeOunces,
		SugarPackets: DefaultSugarPackets,
		Creams:       DefaultCreams,
		Cups:         DefaultCups,
	}
}

// Cafe to budynek z magazynem kawy, cukru, śmietanki i kubków.
// Kawiarnia nie ma windy, piętra powyżej parteru są tylko dla personelu.
type Cafe struct {
	Base
	stock Inventory
}

// NewCafe tworzy kawiarnię z domyślnymi zapasami
func NewCafe(name, address string, floors int, opts ...Option) (*Cafe, error) {
	return NewCafeWithStock(name, address, floors, DefaultInventory(), opts...)
}

// NewCafeWithStock tworzy kawiarnię z podanymi zapasami
func NewCafeWithStock(name, address string, floors int, stock Inventory, opts ...Option) (*Cafe, error) {
	if stock.CoffeeOunces < 0 || stock.SugarPackets < 0 || stock.Creams < 0 || stock.Cups < 0 {
		return nil, fmt.Errorf("%w: zapasy nie mogą być ujemne", ErrInvalidConstruction)
	}

	base, err := newBase(name, address, floors, false, opts)
	if err != nil {
		return nil, err
	}

	c := &Cafe{Base: base, stock: stock}
	c.emit(Event{Kind: EventBuilt, Subject: "cafe"})
	return c, nil
}

// DefaultCafe tworzy jednopiętrową kawiarnię bez nazwy i adresu
func DefaultCafe(opts ...Option) *Cafe {
	c, _ := NewCafe(DefaultName, DefaultAddress, 1, opts...)
	return c
}

// Inventory zwraca kopię aktualnych zapasów
func (c *Cafe) Inventory() Inventory {
	return c.stock
}

// SellCoffee sprzedaje kawę i zdejmuje zamówienie z magazynu.
// Jeśli któregoś składnika brakuje, magazyn jest jednorazowo uzupełniany o stałą ilość.
// Po uzupełnieniu nie ma ponownej kontroli, więc zapasy mogą spaść poniżej zera.
func (c *Cafe) SellCoffee(sizeOz, sugarPackets, creams int) {
	if sizeOz > c.stock.CoffeeOunces || sugarPackets > c.stock.SugarPackets || creams > c.stock.Creams {
		c.restock(RestockAmount, RestockAmount, RestockAmount, RestockAmount)
	}

	c.stock.CoffeeOunces -= sizeOz
	c.stock.SugarPackets -= sugarPackets
	c.stock.Creams -= creams
	c.stock.Cups--

	stock := c.stock
	c.emit(Event{Kind: EventCoffeeSold, Subject: fmt.Sprintf("%doz", sizeOz), Stock: &stock})
}

// restock dokłada podane ilości do zapasów, bez górnego limitu
func (c *Cafe) restock(coffeeOunces, sugarPackets, creams, cups int) {
	c.stock.CoffeeOunces += coffeeOunces
	c.stock.SugarPackets += sugarPackets
	c.stock.Creams += creams
	c.stock.Cups += cups

	stock := c.stock
	c.emit(Event{Kind: EventRestocked, Stock: &stock})
}

// Enter wchodzi do kawiarni na parter
func (c *Cafe) Enter() (Navigable, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	return c, nil
}

// GoToFloorStairs przechodzi schodami na piętro, powyżej parteru tylko dla personelu
func (c *Cafe) GoToFloorStairs(floor int) error {
	if err := c.Base.GoToFloorStairs(floor); err != nil {
		return err
	}
	if floor != 1 {
		c.emit(Event{Kind: EventStaffOnlyFloor, Floor: floor})
	}
	return nil
}

// GoUp przechodzi schodami piętro wyżej
func (c *Cafe) GoUp() error {
	return c.GoToFloorStairs(c.ActiveFloor() + 1)
}

// GoDown przechodzi schodami piętro niżej
func (c *Cafe) GoDown() error {
	return c.GoToFloorStairs(c.ActiveFloor() - 1)
}

// ShowOptions zwraca listę operacji dostępnych w kawiarni
func (c *Cafe) ShowOptions() []string {
	return append(c.navigationOptions(), "SellCoffee(oz, sugar, creams)", "Inventory()")
}
