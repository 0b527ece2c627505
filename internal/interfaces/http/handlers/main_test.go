package handlers

import (
	"os"
	"testing"

	"subcommerce/internal/interfaces/dto"
)

// TestMain registers the custom binding tags that production registers at
// server startup, so request DTOs validate the same way under test.
func TestMain(m *testing.M) {
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
