package campus

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"building-navigation-system/internal/building"
	"building-navigation-system/internal/models"
)

// Entry reprezentuje budynek zarejestrowany w katalogu kampusu
type Entry struct {
	ID       string
	Kind     models.BuildingKind
	Building building.Navigable
	AddedAt  time.Time
}

// Directory przechowuje budynki kampusu w kolejności dodania.
// Nie jest bezpieczny dla wielu goroutine - każdy kampus ma jednego właściciela.
type Directory struct {
	entries map[string]*Entry
	order   []string
}

// NewDirectory tworzy pusty katalog budynków
func NewDirectory() *Directory {
	return &Directory{
		entries: make(map[string]*Entry),
	}
}

// Add rejestruje budynek i zwraca wygenerowane ID
func (d *Directory) Add(b building.Navigable) (*Entry, error) {
	if b == nil {
		return nil, fmt.Errorf("budynek nie może być nil")
	}

	entry := &Entry{
		ID:       uuid.NewString(),
		Kind:     KindOf(b),
		Building: b,
		AddedAt:  time.Now(),
	}

	d.entries[entry.ID] = entry
	d.order = append(d.order, entry.ID)

	return entry, nil
}

// Get pobiera budynek po ID
func (d *Directory) Get(id string) (*Entry, bool) {
	entry, exists := d.entries[id]
	return entry, exists
}

// FindByName wyszukuje pierwszy budynek o podanej nazwie
func (d *Directory) FindByName(name string) (*Entry, bool) {
	for _, id := range d.order {
		if entry := d.entries[id]; entry.Building.Name() == name {
			return entry, true
		}
	}
	return nil, false
}

// List zwraca budynki w kolejności dodania
func (d *Directory) List() []*Entry {
	entries := make([]*Entry, 0, len(d.order))
	for _, id := range d.order {
		entries = append(entries, d.entries[id])
	}
	return entries
}

// ListByKind zwraca budynki danego typu
func (d *Directory) ListByKind(kind models.BuildingKind) []*Entry {
	var entries []*Entry
	for _, entry := range d.List() {
		if entry.Kind == kind {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Remove usuwa budynek z katalogu
func (d *Directory) Remove(id string) bool {
	if _, exists := d.entries[id]; !exists {
		return false
	}

	delete(d.entries, id)
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Len zwraca liczbę budynków
func (d *Directory) Len() int {
	return len(d.order)
}

// Occupied zwraca budynki, w których ktoś aktualnie przebywa
func (d *Directory) Occupied() []*Entry {
	var entries []*Entry
	for _, entry := range d.List() {
		if entry.Building.Position().Inside() {
			entries = append(entries, entry)
		}
	}
	return entries
}

// KindOf zwraca typ budynku
func KindOf(b building.Navigable) models.BuildingKind {
	switch b.(type) {
	case *building.Cafe:
		return models.KindCafe
	case *building.House:
		return models.KindHouse
	case *building.Library:
		return models.KindLibrary
	}
	return ""
}
