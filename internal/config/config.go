package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
		},
		Port: getEnv("PORT"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOptional("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOptional("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
		Parser: ParserConfig{
			URL: getEnv("PARSER_URL"),
		},
		Fees: FeesConfig{
			BaseFee:        getEnvInt64("BASE_FEE", 30000),
			BetFee:         getEnvInt64("BET_FEE", 20000),
			SpecialLossFee: getEnvInt64("SPECIAL_LOSS_FEE", 60000),
			MaxDailyFee:    getEnvInt64("MAX_DAILY_FEE", 100000),
		},
		TiePolicy: tennis.TiePolicy(getEnvOptional("TIE_POLICY", string(tennis.TieSideA))),
	}
	return cfg
}

// FeeConstants converts the fee settings into the calculator's value object.
func (c Config) FeeConstants() fees.Constants {
	return fees.Constants{
		BaseFee:        c.Fees.BaseFee,
		BetFee:         c.Fees.BetFee,
		SpecialLossFee: c.Fees.SpecialLossFee,
		MaxDailyFee:    c.Fees.MaxDailyFee,
	}
}

func getEnvOptional(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Error: Environment variable %s must be an integer, got %q.", key, value)
	}
	return parsed
}
