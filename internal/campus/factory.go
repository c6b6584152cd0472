package campus

import (
	"fmt"

	"building-navigation-system/internal/building"
	"building-navigation-system/internal/models"
)

// Build tworzy budynek na podstawie definicji i wypełnia go danymi startowymi
// (zapasy kawiarni, mieszkańcy domu, katalog biblioteki).
func Build(spec models.BuildingSpec, opts ...building.Option) (building.Navigable, error) {
	spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Kind {
	case models.KindCafe:
		stock := building.DefaultInventory()
		if spec.Stock != nil {
			stock = building.Inventory{
				CoffeeOunces: spec.Stock.CoffeeOunces,
				SugarPackets: spec.Stock.SugarPackets,
				Creams:       spec.Stock.Creams,
				Cups:         spec.Stock.Cups,
			}
		}
		cafe, err := building.NewCafeWithStock(spec.Name, spec.Address, spec.Floors, stock, opts...)
		if err != nil {
			return nil, fmt.Errorf("błąd tworzenia kawiarni %q: %w", spec.Name, err)
		}
		return cafe, nil

	case models.KindHouse:
		house, err := building.NewHouse(spec.Name, spec.Address, spec.Floors, spec.HasDiningRoom, spec.HasElevator, opts...)
		if err != nil {
			return nil, fmt.Errorf("błąd tworzenia domu %q: %w", spec.Name, err)
		}
		for _, resident := range spec.Residents {
			house.MoveIn(resident)
		}
		return house, nil

	case models.KindLibrary:
		library, err := building.NewLibrary(spec.Name, spec.Address, spec.Floors, spec.HasElevator, opts...)
		if err != nil {
			return nil, fmt.Errorf("błąd tworzenia biblioteki %q: %w", spec.Name, err)
		}
		for _, book := range spec.Books {
			library.AddTitle(book.Title)
			if !book.IsAvailable() {
				library.CheckOut(book.Title)
			}
		}
		return library, nil
	}

	return nil, fmt.Errorf("nieznany typ budynku: %q", spec.Kind)
}
