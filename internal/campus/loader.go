package campus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"building-navigation-system/internal/building"
	"building-navigation-system/internal/models"
)

// Parse dekoduje definicję kampusu z YAML
func Parse(data []byte) (*models.Campus, error) {
	var campus models.Campus
	if err := yaml.Unmarshal(data, &campus); err != nil {
		return nil, fmt.Errorf("błąd parsowania definicji kampusu: %w", err)
	}

	if err := campus.Validate(); err != nil {
		return nil, fmt.Errorf("nieprawidłowa definicja kampusu: %w", err)
	}

	return &campus, nil
}

// LoadFile wczytuje definicję kampusu z pliku YAML
func LoadFile(path string) (*models.Campus, error) {
	if path == "" {
		return nil, fmt.Errorf("ścieżka do pliku kampusu nie może być pusta")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku kampusu: %w", err)
	}

	return Parse(data)
}

// Marshal koduje definicję kampusu do YAML
func Marshal(campus *models.Campus) ([]byte, error) {
	if campus == nil {
		return nil, fmt.Errorf("kampus nie może być nil")
	}

	data, err := yaml.Marshal(campus)
	if err != nil {
		return nil, fmt.Errorf("błąd kodowania definicji kampusu: %w", err)
	}
	return data, nil
}

// NewFromSpec buduje katalog ze wszystkich budynków definicji
func NewFromSpec(campus *models.Campus, opts ...building.Option) (*Directory, error) {
	if campus == nil {
		return nil, fmt.Errorf("kampus nie może być nil")
	}

	dir := NewDirectory()
	for i, spec := range campus.Buildings {
		b, err := Build(spec, opts...)
		if err != nil {
			return nil, fmt.Errorf("budynek #%d: %w", i+1, err)
		}
		if _, err := dir.Add(b); err != nil {
			return nil, err
		}
	}

	return dir, nil
}
