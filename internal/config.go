package internal

import (
	"fmt"

	"petspace/notify"
)

type Config struct {
	LogLevel           string `env:"LOG_LEVEL,default=INFO"`
	NotifyLevel        string `env:"NOTIFY_LEVEL,default=BASIC"`
	Colours            bool   `env:"COLOURS,default=true"`
	DailyMessageLimit  int    `env:"DAILY_MESSAGE_LIMIT,default=10"`
	StartingDailyCount int    `env:"STARTING_DAILY_COUNT,default=0"`
}

// Validate rejects values that would make the quota model meaningless.
func (c Config) Validate() error {
	if c.DailyMessageLimit <= 0 {
		return fmt.Errorf("DAILY_MESSAGE_LIMIT must be positive, got %d", c.DailyMessageLimit)
	}
	if c.StartingDailyCount < 0 || c.StartingDailyCount > c.DailyMessageLimit {
		return fmt.Errorf("STARTING_DAILY_COUNT must be within [0, %d], got %d", c.DailyMessageLimit, c.StartingDailyCount)
	}
	return nil
}

func (c Config) Verbosity() notify.Level {
	return notify.ParseLevel(c.NotifyLevel)
}
