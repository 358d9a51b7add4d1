package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/subtrackapp/subtrack/store"
)

func main() {
	dbPath := flag.String("dbPath", "", "Path to the SQLite database file")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("Database path must be provided via -dbPath flag")
	}

	s, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer s.Close()

	if err := s.InitializeSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	fmt.Printf("Database initialized successfully at %s\n", *dbPath)
}
