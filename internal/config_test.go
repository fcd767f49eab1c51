package internal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"petspace/notify"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "defaults", cfg: Config{DailyMessageLimit: 10, StartingDailyCount: 0}, ok: true},
		{name: "pre-seeded counter", cfg: Config{DailyMessageLimit: 10, StartingDailyCount: 10}, ok: true},
		{name: "zero limit", cfg: Config{DailyMessageLimit: 0}, ok: false},
		{name: "negative starting count", cfg: Config{DailyMessageLimit: 10, StartingDailyCount: -1}, ok: false},
		{name: "starting count above limit", cfg: Config{DailyMessageLimit: 5, StartingDailyCount: 6}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestConfig_Verbosity(t *testing.T) {
	req := require.New(t)
	req.Equal(notify.Debug, Config{NotifyLevel: "DEBUG"}.Verbosity())
	req.Equal(notify.Basic, Config{NotifyLevel: ""}.Verbosity())
}
