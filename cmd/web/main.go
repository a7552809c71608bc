package main

import (
	"log"

	"inflo_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
