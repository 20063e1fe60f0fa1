package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DataDir     string
	PageSize    int
	Logging     bool
	ShowTimings bool
	Language    language.Tag // title-casing rules for station names
}

// Load reads settings from the environment. With no files it tries ./.env
// and ignores a missing one; named files must exist. Variables already set
// in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	config := &Config{
		DataDir:     getEnv("BIKESHARE_DATA_DIR", "."),
		PageSize:    getEnvAsInt("BIKESHARE_PAGE_SIZE", 5),
		Logging:     getEnvAsBool("BIKESHARE_LOG", false),
		ShowTimings: getEnvAsBool("BIKESHARE_TIMINGS", true),
	}

	tag, err := language.Parse(getEnv("BIKESHARE_LANGUAGE", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid BIKESHARE_LANGUAGE: %w", err)
	}
	config.Language = tag

	if config.PageSize <= 0 {
		return nil, fmt.Errorf("BIKESHARE_PAGE_SIZE must be positive, got %d", config.PageSize)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
