package building

import "sort"

// TitleStatus to pozycja katalogu wraz z dostępnością
type TitleStatus struct {
	Title     string
	Available bool  
}

// Library to budynek z katalogiem tytułów (tytuł -> dostępny)
type Library struct {
	Base
	catalog map[string]bool
}

// NewLibrary tworzy bibliotekę z pustym katalogiem
func NewLibrary(name, address string, floors int, hasElevator bool, opts ...Option) (*Library, error) {
	base, err := newBase(name, address, floors, hasElevator, opts)
	if err != nil {
		return nil, err
	}

	l := &Library{
		Base:    base,
		catalog: make(map[string]bool),
	}
	l.emit(Event{Kind: EventBuilt, Subject: "library"})
	return l, nil
}

// DefaultLibrary tworzy jednopiętrową bibliotekę bez windy
func DefaultLibrary(opts ...Option) *Library {
	l, _ := NewLibrary(DefaultName, DefaultAddress, 1, false, opts...)
	return l
}

// AddTitle dodaje tytuł jako dostępny (nadpisuje istniejący wpis)
func (l *Library) AddTitle(title string) {
	l.catalog[title] = true
	l.emit(Event{Kind: EventTitleAdded, Subject: title})
}

// RemoveTitle usuwa tytuł z katalogu. Zwraca tytuł oraz false gdy tytułu nie było.
func (l *Library) RemoveTitle(title string) (string, bool) {
	if !l.ContainsTitle(title) {
		l.emit(Event{Kind: EventTitleNotFound, Subject: title})
		return title, false
	}

	delete(l.catalog, title)
	l.emit(Event{Kind: EventTitleRemoved, Subject: title})
	return title, true
}

// CheckOut wypożycza dostępny tytuł. Brak tytułu w katalogu traktujemy jak niedostępność.
func (l *Library) CheckOut(title string) bool {
	if !l.IsAvailable(title) {
		l.emit(Event{Kind: EventTitleUnavailable, Subject: title})
		return false
	}

	l.catalog[title] = false
	l.emit(Event{Kind: EventCheckedOut, Subject: title})
	return true
}

// ReturnBook zwraca wypożyczony tytuł. Tytułu spoza katalogu nie da się zwrócić.
func (l *Library) ReturnBook(title string) bool {
	available, exists := l.catalog[title]
	if !exists {
		l.emit(Event{Kind: EventTitleNotFound, Subject: title})
		return false
	}
	if available {
		l.emit(Event{Kind: EventReturnRejected, Subject: title})
		return false
	}

	l.catalog[title] = true
	l.emit(Event{Kind: EventReturned, Subject: title})
	return true
}

// ContainsTitle sprawdza czy tytuł jest w katalogu
func (l *Library) ContainsTitle(title string) bool {
	_, exists := l.catalog[title]
	return exists
}

// IsAvailable sprawdza czy tytuł można wypożyczyć (brak w katalogu = niedostępny)
func (l *Library) IsAvailable(title string) bool {
	return l.catalog[title]
}

// Titles zwraca posortowaną listę tytułów
func (l *Library) Titles() []string {
	titles := make([]string, 0, len(l.catalog))
	for title := range l.catalog {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Collection zwraca katalog posortowany po tytule
func (l *Library) Collection() []TitleStatus {
	collection := make([]TitleStatus, 0, len(l.catalog))
	for _, title := range l.Titles() {
		collection = append(collection, TitleStatus{Title: title, Available: l.catalog[title]})
	}
	return collection
}

// Enter wchodzi do biblioteki na parter
func (l *Library) Enter() (Navigable, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	return l, nil
}

// ShowOptions zwraca listę operacji dostępnych w bibliotece
func (l *Library) ShowOptions() []string {
	return append(l.navigationOptions(),
		"AddTitle(title)", "RemoveTitle(title)", "CheckOut(title)", "ReturnBook(title)",
		"ContainsTitle(title)", "IsAvailable(title)", "Collection()")
}
