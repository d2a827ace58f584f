package main

import (
	"github.com/joho/godotenv"

	"stockwatch/cmd"
)

func main() {
	// Load environment variables from .env when present
	godotenv.Load()

	cmd.Execute()
}
