package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"raj/stmt-extract/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or the project root, then reapplies the logging
// settings they may carry.
func LoadEnv() {
	once.Do(func() {
		log := logging.GetLogger()

		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				log.Debug("no .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).Warn("error loading .env file")
			return
		}
		log.Info("loaded environment variables",
			logging.Field{Key: logging.FieldFile, Value: envFile})

		ConfigureLoggingFromEnv()
	})
}

// ConfigureLoggingFromEnv applies LOG_LEVEL and LOG_FORMAT from the
// environment to every logger.
func ConfigureLoggingFromEnv() {
	levelStr := GetEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}
	logging.SetAllLogLevels(level)
	logging.SetLogFormat(GetEnv("LOG_FORMAT", "text"))
}

// ApplyLogging applies a loaded Config's log section to every logger.
func ApplyLogging(config *Config) {
	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logging.SetAllLogLevels(level)
	logging.SetLogFormat(config.Log.Format)
}

// GetEnv retrieves an environment variable with a fallback when unset.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
