package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Load loads environment variables from the first .env file found for the
// current ENV. Variables already present in the process environment win.
// Returns the path that was loaded or an empty string when no file exists.
func Load() string {
	name := os.Getenv("ENV")
	if name == "" {
		name = "development"
	}

	candidates := []string{
		filepath.Join("internal", "config", "env", fmt.Sprintf(".env.%s", name)),
		fmt.Sprintf(".env.%s", name),
		".env",
	}

	for _, path := range candidates {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}

	return ""
}
