package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/boardbank/banker/internal/commands"
)

func main() {
	// Optional .env for BANKER_DATA and friends; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
