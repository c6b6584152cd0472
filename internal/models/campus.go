package models

import "fmt"

// Campus reprezentuje zestaw budynków wczytany z pliku
type Campus struct {
	Name      string         `json:"name" yaml:"name"`
	Buildings []BuildingSpec `json:"buildings" yaml:"buildings"`
}

// Validate sprawdza wszystkie budynki oraz unikalność nazw
func (c *Campus) Validate() error {
	seen := make(map[string]bool, len(c.Buildings))

	for i := range c.Buildings {
		spec := &c.Buildings[i]
		spec.Normalize()

		if err := spec.Validate(); err != nil {
			return fmt.Errorf("budynek #%d: %w", i+1, err)
		}
		if spec.Name != "" && seen[spec.Name] {
			return fmt.Errorf("budynek #%d: zduplikowana nazwa %q", i+1, spec.Name)
		}
		seen[spec.Name] = true
	}

	return nil
}

// CountByKind zwraca liczbę budynków danego typu
func (c *Campus) CountByKind(kind BuildingKind) int {
	count := 0
	for _, spec := range c.Buildings {
		if spec.Kind == kind {
			count++
		}
	}
	return count
}
