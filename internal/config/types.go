package config

import "github.com/courtkeep/courtkeep/internal/tennis"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
	Parser        ParserConfig
	Fees          FeesConfig
	TiePolicy     tennis.TiePolicy
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type ParserConfig struct {
	URL string
}

// FeesConfig carries the fee schedule in won. All four values are
// overridable so clubs with different pricing can reuse the engine.
type FeesConfig struct {
	BaseFee        int64
	BetFee         int64
	SpecialLossFee int64
	MaxDailyFee    int64
}
