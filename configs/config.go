// configs/config.go
package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
)

// LoadConfig loads environment variables from a .env file when present and
// verifies the required ones are set. Called at the very start of main, so
// early messages go to Stderr directly: the logger may not be ready yet.
func LoadConfig() {
	fmt.Fprintln(os.Stderr, "[INFO] Loading application configuration...")

	// Variables already present in the environment win over .env values.
	err := godotenv.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "[WARN] No .env file found or error loading it. Reading environment variables directly.")
	} else {
		fmt.Fprintln(os.Stderr, "[INFO] Loaded environment variables from .env file (if found).")
	}

	requiredVars := []string{
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"APP_PORT",
		"JWT_SECRET",
	}

	fmt.Fprintf(os.Stderr, "[INFO] Validating %d required environment variables...\n", len(requiredVars))
	missingVars := []string{}
	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missingVars = append(missingVars, varName)
			fmt.Fprintf(os.Stderr, "[ERROR] Required environment variable '%s' is not set.\n", varName)
		}
	}

	if len(missingVars) > 0 {
		zlog.Fatal().Strs("missing_variables", missingVars).Msg("Missing required environment variables. Application cannot start.")
	}

	zlog.Info().Msg("All required environment variables are set. Configuration loaded successfully.")
}
