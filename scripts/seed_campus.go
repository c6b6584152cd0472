package main

import (
	"flag"
	"log"
	"os"

	"building-navigation-system/internal/campus"
	"building-navigation-system/internal/models"
)

func main() {
	output := flag.String("o", "campus.yaml", "ścieżka pliku wyjściowego")
	flag.Parse()

	log.Println("Generowanie przykładowej definicji kampusu...")

	spec := &models.Campus{
		Name: "Smith College",
		Buildings: []models.BuildingSpec{
			{
				Kind:    models.KindCafe,
				Name:    "Compass Cafe",
				Address: "7 Neilson Drive",
				Floors:  1,
				Stock: &models.Stock{
					CoffeeOunces: 200,
					SugarPackets: 300,
					Creams:       100,
					Cups:         400,
				},
			},
			{
				Kind:          models.KindHouse,
				Name:          "Chapin House",
				Address:       "3 Chapin Way",
				Floors:        4,
				HasDiningRoom: true,
				HasElevator:   true,
				Residents:     []string{"Grace", "Kira", "Fiadh", "Jordan"},
			},
			{
				Kind:          models.KindHouse,
				Name:          "Cutter House",
				Address:       "79 Elm Street",
				Floors:        3,
				HasDiningRoom: false,
			},
			{
				Kind:        models.KindLibrary,
				Name:        "Neilson Library",
				Address:     "7 Neilson Drive",
				Floors:      4,
				HasElevator: true,
				Books: []models.Book{
					{Title: "Wiedźmin: Ostatnie życzenie", Author: "Andrzej Sapkowski", ISBN: "978-83-8032-464-8"},
					{Title: "Zbrodnia i kara", Author: "Fiodor Dostojewski", ISBN: "978-83-240-1455-5"},
					{Title: "Rok 1984", Author: "George Orwell", ISBN: "978-83-7885-585-8", CheckedOut: true},
					{Title: "Macbeth", Author: "William Shakespeare"},
					{Title: "Little Women", Author: "Louisa May Alcott"},
				},
			},
			{
				Kind:    models.KindLibrary,
				Name:    "Hillyer Art Library",
				Address: "20 Elm Street",
				Floors:  2,
				Books: []models.Book{
					{Title: "Twilight", Author: "Stephenie Meyer"},
				},
			},
		},
	}

	if err := spec.Validate(); err != nil {
		log.Fatalf("Nieprawidłowa definicja kampusu: %v", err)
	}

	data, err := campus.Marshal(spec)
	if err != nil {
		log.Fatalf("Błąd kodowania kampusu: %v", err)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Błąd zapisu pliku %s: %v", *output, err)
	}

	log.Printf("✓ Zapisano %d budynków do %s", len(spec.Buildings), *output)
	log.Printf("  Kawiarnie: %d, domy: %d, biblioteki: %d",
		spec.CountByKind(models.KindCafe), spec.CountByKind(models.KindHouse), spec.CountByKind(models.KindLibrary))
}
