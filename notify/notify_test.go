package notify

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{input: "SILENT", expected: Silent},
		{input: "none", expected: Silent},
		{input: "user_only", expected: UserOnly},
		{input: "USER", expected: UserOnly},
		{input: "basic", expected: Basic},
		{input: "INFO", expected: Basic},
		{input: " debug ", expected: Debug},
		{input: "garbage", expected: Basic},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNotifier_UserRespectsLevel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	var buf bytes.Buffer
	n := New(&buf, log, Silent, false)
	n.User("Alice: hidden")
	req.Empty(buf.String())

	n.SetLevel(UserOnly)
	n.User("Alice: visible")
	req.Contains(buf.String(), "Alice: visible")

	n.Chat("Bob", "hey")
	req.Contains(buf.String(), "Bob: hey")
}

func TestNotifier_SetLevel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	var buf bytes.Buffer

	n := New(&buf, log, Basic, false)
	req.Equal(Basic, n.Level())
	n.SetLevel(Debug)
	req.Equal(Debug, n.Level())
}
