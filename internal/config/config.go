package config

// Config is the root application configuration.
type Config struct {
	Library     LibraryConfig     `yaml:"library"`
	Circulation CirculationConfig `yaml:"circulation"`
	Log         LogConfig         `yaml:"log"`
}

// LibraryConfig identifies the library instance and its optional seed
// fixture.
type LibraryConfig struct {
	Name     string `yaml:"name"      env:"LIBRARY_NAME"      env-default:"Main Library"`
	SeedPath string `yaml:"seed_path" env:"LIBRARY_SEED_PATH"`
}

// CirculationConfig holds lending policy settings.
type CirculationConfig struct {
	FineDailyRate float64 `yaml:"fine_daily_rate" env:"CIRC_FINE_DAILY_RATE" env-default:"0.25"`
	MaxRenewals   int     `yaml:"max_renewals"    env:"CIRC_MAX_RENEWALS"    env-default:"2"`
	RenewOverdue  bool    `yaml:"renew_overdue"   env:"CIRC_RENEW_OVERDUE"   env-default:"false"`
	HoldTTLDays   int     `yaml:"hold_ttl_days"   env:"CIRC_HOLD_TTL_DAYS"   env-default:"7"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
