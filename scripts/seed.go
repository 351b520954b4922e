//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Seeds the reference data a fresh deployment needs: base directory
// categories, emergency hotlines and safety tips for Dumaguete City.
// Run with: go run scripts/seed.go -dsn "host=localhost ..."

var categories = []struct {
	name  string
	color string
}{
	{"Police Stations", "#1d4ed8"},
	{"Hospitals", "#dc2626"},
	{"Fire Stations", "#ea580c"},
	{"Evacuation Centers", "#16a34a"},
	{"Barangay Halls", "#7c3aed"},
}

var contacts = []struct {
	name  string
	phone string
	order int
}{
	{"Dumaguete City Police", "(035) 225-3511", 1},
	{"Bureau of Fire Protection", "(035) 225-0926", 2},
	{"City Disaster Risk Reduction Office", "(035) 225-0904", 3},
	{"Negros Oriental Provincial Hospital", "(035) 225-3801", 4},
	{"Philippine Red Cross Dumaguete", "(035) 225-3292", 5},
}

var tips = []string{
	"Save the emergency hotline numbers in your phone before you need them.",
	"Know the evacuation center nearest to your barangay.",
	"Keep a go-bag with water, flashlight, documents and basic medicine.",
	"During an earthquake, drop, cover and hold on. Move away from windows.",
	"Report downed power lines to the authorities. Never approach them.",
}

func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=safedumaguide sslmode=disable", "PostgreSQL DSN")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	for _, c := range categories {
		normalized := strings.ToLower(strings.Join(strings.Fields(c.name), " "))
		_, err := db.ExecContext(ctx, `
			INSERT INTO directory_categories (name, name_normalized, color)
			VALUES ($1, $2, $3)
			ON CONFLICT (name_normalized) DO NOTHING`,
			c.name, normalized, c.color,
		)
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", c.name, err)
		}
	}
	fmt.Printf("Seeded %d categories\n", len(categories))

	for _, c := range contacts {
		_, err := db.ExecContext(ctx, `
			INSERT INTO emergency_contacts (name, phone_number, is_active, sort_order)
			SELECT $1, $2, TRUE, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM emergency_contacts WHERE name = $1
			)`,
			c.name, c.phone, c.order,
		)
		if err != nil {
			log.Fatalf("Failed to seed contact %q: %v", c.name, err)
		}
	}
	fmt.Printf("Seeded %d emergency contacts\n", len(contacts))

	for i, tip := range tips {
		_, err := db.ExecContext(ctx, `
			INSERT INTO safety_tips (tip, sort_order)
			SELECT $1, $2
			WHERE NOT EXISTS (
				SELECT 1 FROM safety_tips WHERE tip = $1
			)`,
			tip, i+1,
		)
		if err != nil {
			log.Fatalf("Failed to seed tip %d: %v", i+1, err)
		}
	}
	fmt.Printf("Seeded %d safety tips\n", len(tips))
}
