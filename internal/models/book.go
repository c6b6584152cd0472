package models

// Book reprezentuje pozycję katalogu biblioteki w definicji kampusu
type Book struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author,omitempty" yaml:"author,omitempty"`
	ISBN       string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	CheckedOut bool   `json:"checked_out,omitempty" yaml:"checked_out,omitempty"` // Wypożyczona przy starcie
}

// IsAvailable sprawdza czy książka jest dostępna do wypożyczenia
func (b *Book) IsAvailable() bool {
	return !b.CheckedOut
}
