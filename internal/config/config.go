package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// ImportUserID is the ledger user batches are imported for.
	ImportUserID int64
	// ImportWorkers is the size of the import runner pool.
	ImportWorkers int
	// ImportApplyRules enables the rule stage after commit. Off unless
	// explicitly turned on.
	ImportApplyRules bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		ImportUserID:     1,
		ImportWorkers:    2,
		ImportApplyRules: false,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envImportUserID := os.Getenv("IMPORT_USER_ID")
	envImportWorkers := os.Getenv("IMPORT_WORKERS")
	envImportApplyRules := os.Getenv("IMPORT_APPLY_RULES")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envImportUserID) != 0 {
		userID, err := strconv.ParseInt(envImportUserID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("IMPORT_USER_ID %q is not an integer", envImportUserID)
		}
		env.ImportUserID = userID
	}

	if len(envImportWorkers) != 0 {
		workers, err := strconv.Atoi(envImportWorkers)
		if err != nil {
			return nil, fmt.Errorf("IMPORT_WORKERS %q is not an integer", envImportWorkers)
		}
		env.ImportWorkers = workers
	}

	if len(envImportApplyRules) != 0 {
		applyRules, err := strconv.ParseBool(envImportApplyRules)
		if err != nil {
			return nil, fmt.Errorf("IMPORT_APPLY_RULES %q is not a boolean", envImportApplyRules)
		}
		env.ImportApplyRules = applyRules
	}

	return &env, nil
}
