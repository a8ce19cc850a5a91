package main

import (
	"log"

	"github.com/streamarchive/catalogd/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ catalogd failed to initialize: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ catalogd failed to start: %v", err)
	}
}
