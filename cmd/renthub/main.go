package main

import (
	"os"

	"github.com/wonny/renthub/backend/cmd/renthub/commands"
)

// main is the entry point for the RentHub CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/renthub [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
