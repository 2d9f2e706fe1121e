package main

import (
	"github.com/joho/godotenv"

	"github.com/tacogips/fwversion/internal/cli"
)

func main() {
	// A missing .env is fine; already-set variables win.
	_ = godotenv.Load()

	// Execute the root command
	cli.Execute()
}
