package models

import (
	"fmt"
	"strings"
)

// BuildingKind określa typ budynku w definicji kampusu
type BuildingKind string

const (
	KindCafe    BuildingKind = "cafe"    // Kawiarnia
	KindHouse   BuildingKind = "house"   // Dom mieszkalny
	KindLibrary BuildingKind = "library" // Biblioteka
)

// Stock reprezentuje początkowe zapasy kawiarni
type Stock struct {
	CoffeeOunces int `json:"coffee_ounces" yaml:"coffee_ounces"`
	SugarPackets int `json:"sugar_packets" yaml:"sugar_packets"`
	Creams       int `json:"creams" yaml:"creams"`
	Cups         int `json:"cups" yaml:"cups"`
}

// BuildingSpec reprezentuje deklaratywną definicję budynku
type BuildingSpec struct {
	Kind          BuildingKind `json:"kind" yaml:"kind"`
	Name          string       `json:"name" yaml:"name"`
	Address       string       `json:"address" yaml:"address"`
	Floors        int          `json:"floors" yaml:"floors"`
	HasElevator   bool         `json:"has_elevator,omitempty" yaml:"has_elevator,omitempty"`       // Dom i biblioteka
	HasDiningRoom bool         `json:"has_dining_room,omitempty" yaml:"has_dining_room,omitempty"` // Tylko dom
	Stock         *Stock       `json:"stock,omitempty" yaml:"stock,omitempty"`                     // Tylko kawiarnia, nil = domyślne zapasy
	Residents     []string     `json:"residents,omitempty" yaml:"residents,omitempty"`             // Tylko dom
	Books         []Book       `json:"books,omitempty" yaml:"books,omitempty"`                     // Tylko biblioteka
}

// Normalize ujednolica typ budynku (małe litery, bez spacji)
func (s *BuildingSpec) Normalize() {
	s.Kind = BuildingKind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
}

// Validate sprawdza czy definicja pasuje do typu budynku
func (s *BuildingSpec) Validate() error {
	switch s.Kind {
	case KindCafe:
		if s.HasElevator {
			return fmt.Errorf("kawiarnia %q nie może mieć windy", s.Name)
		}
		if len(s.Residents) > 0 || len(s.Books) > 0 {
			return fmt.Errorf("kawiarnia %q nie przyjmuje mieszkańców ani książek", s.Name)
		}
	case KindHouse:
		if s.Stock != nil || len(s.Books) > 0 {
			return fmt.Errorf("dom %q nie przyjmuje zapasów ani książek", s.Name)
		}
	case KindLibrary:
		if s.Stock != nil || len(s.Residents) > 0 {
			return fmt.Errorf("biblioteka %q nie przyjmuje zapasów ani mieszkańców", s.Name)
		}
		for _, book := range s.Books {
			if book.Title == "" {
				return fmt.Errorf("tytuł książki w bibliotece %q jest wymagany", s.Name)
			}
		}
	default:
		return fmt.Errorf("nieznany typ budynku: %q", s.Kind)
	}

	if s.Floors < 1 {
		return fmt.Errorf("budynek %q musi mieć co najmniej 1 piętro", s.Name)
	}

	return nil
}
