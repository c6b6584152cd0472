package building

// House to budynek z listą mieszkańców (kolejność wprowadzenia, duplikaty dozwolone)
type House struct {
	Base
	residents     []string
	hasDiningRoom bool
}

// NewHouse tworzy dom bez mieszkańców
func NewHouse(name, address string, floors int, hasDiningRoom, hasElevator bool, opts ...Option) (*House, error) {
	base, err := newBase(name, address, floors, hasElevator, opts)
	if err != nil {
		return nil, err
	}

	h := &House{
		Base:          base,
		residents:     []string{},
		hasDiningRoom: hasDiningRoom,
	}
	h.emit(Event{Kind: EventBuilt, Subject: "house"})
	return h, nil
}

// DefaultHouse tworzy jednopiętrowy dom bez jadalni i windy
func DefaultHouse(opts ...Option) *House {
	h, _ := NewHouse(DefaultName, DefaultAddress, 1, false, false, opts...)
	return h
}

// HasDiningRoom sprawdza czy dom ma jadalnię
func (h *House) HasDiningRoom() bool {
	return h.hasDiningRoom
}

// ResidentCount zwraca liczbę mieszkańców
func (h *House) ResidentCount() int {
	return len(h.residents)
}

// Residents zwraca kopię listy mieszkańców
func (h *House) Residents() []string {
	out := make([]string, len(h.residents))
	copy(out, h.residents)
	return out
}

// MoveIn dopisuje mieszkańca na koniec listy
func (h *House) MoveIn(name string) {
	h.residents = append(h.residents, name)
	h.emit(Event{Kind: EventMovedIn, Subject: name})
}

// MoveOut usuwa pierwsze wystąpienie mieszkańca. Zwraca imię oraz false,
// jeśli taka osoba nie mieszka w domu (lista pozostaje bez zmian).
func (h *House) MoveOut(name string) (string, bool) {
	for i, resident := range h.residents {
		if resident == name {
			h.residents = append(h.residents[:i], h.residents[i+1:]...)
			h.emit(Event{Kind: EventMovedOut, Subject: name})
			return name, true
		}
	}

	h.emit(Event{Kind: EventResidentNotFound, Subject: name})
	return name, false
}

// IsResident sprawdza czy osoba mieszka w domu
func (h *House) IsResident(name string) bool {
	for _, resident := range h.residents {
		if resident == name {
			return true
		}
	}
	return false
}

// Enter wchodzi do domu na parter
func (h *House) Enter() (Navigable, error) {
	if err := h.enter(); err != nil {
		return nil, err
	}
	return h, nil
}

// ShowOptions zwraca listę operacji dostępnych w domu
func (h *House) ShowOptions() []string {
	return append(h.navigationOptions(), "MoveIn(name)", "MoveOut(name)", "IsResident(name)")
}
