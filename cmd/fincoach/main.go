package main

import (
	"os"

	"github.com/fincoach/fincoach-cli/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Optional; a missing .env is the normal case.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
