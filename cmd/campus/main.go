package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"building-navigation-system/internal/building"
	"building-navigation-system/internal/campus"
	"building-navigation-system/internal/config"
	"building-navigation-system/internal/logger"
	"building-navigation-system/internal/models"
	"building-navigation-system/internal/report"
)

func main() {
	// Wczytaj konfigurację z .env i zmiennych środowiskowych
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Błąd konfiguracji: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Nie można utworzyć loggera: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	// Zdarzenia trafiają na konsolę, do logów i opcjonalnie do metryk
	registry := prometheus.NewRegistry()
	reporters := []building.Reporter{
		report.NewConsoleReporter(os.Stdout),
		report.NewLogReporter(zapLogger),
	}
	if cfg.MetricsEnabled {
		metrics, err := report.NewMetricsReporter(registry)
		if err != nil {
			zapLogger.Fatal("Błąd inicjalizacji metryk", zap.Error(err))
		}
		reporters = append(reporters, metrics)
	}
	reporter := report.Multi(reporters...)

	spec := defaultCampus()
	if cfg.CampusFile != "" {
		spec, err = campus.LoadFile(cfg.CampusFile)
		if err != nil {
			zapLogger.Fatal("Błąd wczytywania kampusu", zap.String("file", cfg.CampusFile), zap.Error(err))
		}
	}

	dir, err := campus.NewFromSpec(spec, building.WithReporter(reporter))
	if err != nil {
		zapLogger.Fatal("Błąd budowania kampusu", zap.Error(err))
	}
	zapLogger.Info("Kampus zbudowany", zap.String("campus", spec.Name), zap.Int("buildings", dir.Len()))

	for _, entry := range dir.List() {
		if err := runDemo(os.Stdout, entry); err != nil {
			zapLogger.Error("Demonstracja przerwana",
				zap.String("building", entry.Building.Name()),
				zap.String("id", entry.ID),
				zap.Error(err))
		}
	}

	if cfg.MetricsEnabled {
		logMetrics(zapLogger, registry)
	}
}

// runDemo odtwarza scenariusz demonstracyjny dla danego typu budynku
func runDemo(w io.Writer, entry *campus.Entry) error {
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintln(w, entry.Building.String())
	fmt.Fprintln(w, "-----------------------------------")

	if err := report.RenderOptions(w, entry.Building); err != nil {
		return err
	}

	switch b := entry.Building.(type) {
	case *building.Cafe:
		b.SellCoffee(16, 1, 1)
		if err := report.RenderInventory(w, b); err != nil {
			return err
		}
	case *building.House:
		if err := report.RenderResidents(w, b); err != nil {
			return err
		}
		b.MoveOut("Jordan")
		if residents := b.Residents(); len(residents) > 0 {
			b.MoveOut(residents[0])
		}
		if err := report.RenderResidents(w, b); err != nil {
			return err
		}
	case *building.Library:
		if err := report.RenderCollection(w, b); err != nil {
			return err
		}
		if titles := b.Titles(); len(titles) > 0 {
			b.CheckOut(titles[0])
			b.CheckOut(titles[0])
		}
		if err := report.RenderCollection(w, b); err != nil {
			return err
		}
	}

	return walk(entry.Building)
}

// walk wchodzi do budynku, idzie na górę i wraca, po czym wychodzi
func walk(b building.Navigable) error {
	if _, err := b.Enter(); err != nil {
		return err
	}

	var err error
	if b.HasElevator() {
		if err = b.GoUpElevator(b.Floors()); err == nil && b.Floors() > 1 {
			// Wyjście z wyższego piętra kończy się wypadnięciem przez okno
			if exitErr := b.Exit(); !errors.Is(exitErr, building.ErrFellOutWindow) {
				return fmt.Errorf("oczekiwano błędu wypadnięcia przez okno, otrzymano: %v", exitErr)
			}
			err = b.GoDownElevator(1)
		}
	} else {
		if err = b.GoUp(); errors.Is(err, building.ErrInvalidFloorRange) {
			// Budynek parterowy - nie ma dokąd iść
			err = nil
		} else if err == nil {
			err = b.GoDown()
		}
	}
	if err != nil {
		return err
	}

	return b.Exit()
}

func logMetrics(l *zap.Logger, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		l.Warn("Błąd zbierania metryk", zap.Error(err))
		return
	}

	for _, family := range families {
		total := 0.0
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			}
		}
		l.Info("Metryka", zap.String("name", family.GetName()), zap.Int("series", len(family.GetMetric())), zap.Float64("sum", total))
	}
}

// defaultCampus zwraca kampus z przykładów: kawiarnia, dom i biblioteka
func defaultCampus() *models.Campus {
	return &models.Campus{
		Name: "Demo",
		Buildings: []models.BuildingSpec{
			{
				Kind:    models.KindCafe,
				Name:    "Grace's Cafe",
				Address: "228 Random Street",
				Floors:  2,
			},
			{
				Kind:          models.KindHouse,
				Name:          "Grace's House",
				Address:       "102 Lake St",
				Floors:        2,
				HasDiningRoom: true,
				Residents:     []string{"Grace", "Kira", "Fiadh"},
			},
			{
				Kind:        models.KindLibrary,
				Name:        "Neilson",
				Address:     "7 Neilson Drive",
				Floors:      4,
				HasElevator: true,
				Books: []models.Book{
					{Title: "Twilight"},
					{Title: "Macbeth"},
					{Title: "Little Women"},
				},
			},
		},
	}
}
