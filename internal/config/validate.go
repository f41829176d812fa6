package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Library.Name == "" {
		return fmt.Errorf("library.name must not be empty")
	}

	if err := c.Circulation.validate(); err != nil {
		return fmt.Errorf("circulation: %w", err)
	}

	return nil
}

func (c *CirculationConfig) validate() error {
	if c.FineDailyRate < 0 {
		return fmt.Errorf("fine_daily_rate must be >= 0 (got %v)", c.FineDailyRate)
	}
	if c.MaxRenewals < 0 {
		return fmt.Errorf("max_renewals must be >= 0 (got %d)", c.MaxRenewals)
	}
	if c.HoldTTLDays <= 0 {
		return fmt.Errorf("hold_ttl_days must be > 0 (got %d)", c.HoldTTLDays)
	}
	return nil
}
