package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces defaultPaths. A missing file is an error only in
// local mode (env is "local" or empty); elsewhere the process environment is used as-is.
func LoadDotEnv(env string, defaultPaths ...string) error {
	envPaths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPaths = []string{p}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	err := godotenv.Load(envPaths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}
