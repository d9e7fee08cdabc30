package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Sabirdaar/multi-lang-e-commerce/gatewayservice"
)

func main() {
	// Local overrides from a .env file, when present.
	_ = godotenv.Load()

	if err := gatewayservice.Run(); err != nil {
		os.Exit(1)
	}
}
