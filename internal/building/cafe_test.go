package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellCoffeeWithinStock(t *testing.T) {
	rec := &recorder{}
	c, err := NewCafe("Grace's Cafe", "228 Random Street", 2, WithReporter(rec))
	require.NoError(t, err)

	c.SellCoffee(16, 1, 1)

	assert.Equal(t, Inventory{CoffeeOunces: 184, SugarPackets: 299, Creams: 99, Cups: 399}, c.Inventory())
	assert.Equal(t, []EventKind{EventBuilt, EventCoffeeSold}, rec.kinds())
}

func TestSellCoffeeRestocksOnceAndCanGoNegative(t *testing.T) {
	rec := &recorder{}
	c, err := NewCafe("Kawiarnia", "Rynek 5", 1, WithReporter(rec))
	require.NoError(t, err)

	c.SellCoffee(250, 1, 1)

	assert.Equal(t, Inventory{
		CoffeeOunces: 200 + RestockAmount - 250,
		SugarPackets: 300 + RestockAmount - 1,
		Creams:       100 + RestockAmount - 1,
		Cups:         400 + RestockAmount - 1,
	}, c.Inventory())
	assert.Equal(t, -30, c.Inventory().CoffeeOunces)
	assert.Equal(t, []EventKind{EventBuilt, EventRestocked, EventCoffeeSold}, rec.kinds())
}

func TestSellCoffeeRestockTriggers(t *testing.T) {
	tests := []struct {
		name                string
		size, sugar, creams int
		wantRestock         bool
	}{
		{"coffee short", 11, 0, 0, true},
		{"sugar short", 1, 6, 0, true},
		{"cream short", 1, 0, 8, true},
		{"exact stock", 10, 5, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := Inventory{CoffeeOunces: 10, SugarPackets: 5, Creams: 7, Cups: 0}
			c, err := NewCafeWithStock("C", "A", 1, stock)
			require.NoError(t, err)

			c.SellCoffee(tt.size, tt.sugar, tt.creams)

			bonus := 0
			if tt.wantRestock {
				bonus = RestockAmount
			}
			assert.Equal(t, Inventory{
				CoffeeOunces: 10 + bonus - tt.size,
				SugarPackets: 5 + bonus - tt.sugar,
				Creams:       7 + bonus - tt.creams,
				Cups:         bonus - 1,
			}, c.Inventory())
		})
	}
}

func TestNewCafeWithStock(t *testing.T) {
	c, err := NewCafeWithStock("C", "A", 3, Inventory{CoffeeOunces: 1, SugarPackets: 2, Creams: 3, Cups: 4})
	require.NoError(t, err)
	assert.Equal(t, Inventory{CoffeeOunces: 1, SugarPackets: 2, Creams: 3, Cups: 4}, c.Inventory())

	_, err = NewCafeWithStock("C", "A", 3, Inventory{Cups: -1})
	require.ErrorIs(t, err, ErrInvalidConstruction)

	_, err = NewCafeWithStock("C", "A", 0, DefaultInventory())
	require.ErrorIs(t, err, ErrInvalidConstruction)
}

func TestCafeStaffOnlyFloors(t *testing.T) {
	rec := &recorder{}
	c, err := NewCafe("Kawiarnia", "Rynek 5", 2, WithReporter(rec))
	require.NoError(t, err)
	assert.False(t, c.HasElevator())

	_, err = c.Enter()
	require.NoError(t, err)
	require.NoError(t, c.GoUp())
	require.ErrorIs(t, c.GoUp(), ErrInvalidFloorRange)
	require.NoError(t, c.GoDown())
	require.ErrorIs(t, c.GoToFloorElevator(2), ErrNoElevator)

	assert.Equal(t, []EventKind{
		EventBuilt, EventEntered,
		EventFloorChanged, EventStaffOnlyFloor,
		EventFloorChanged,
	}, rec.kinds())
}
