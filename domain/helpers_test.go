package domain

import (
	"bytes"
	"log/slog"

	"github.com/mama165/sdk-go/logs"

	"petspace/notify"
)

func newTestNotifier(buf *bytes.Buffer) *notify.Notifier {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return notify.New(buf, log, notify.Debug, false)
}

// stubPolicy accepts or rejects everything and counts validation calls, so
// tests can assert when validation is (not) consulted.
type stubPolicy struct {
	allow bool
	calls int
}

func (p *stubPolicy) Validate(string, string) bool { p.calls++; return p.allow }
func (p *stubPolicy) Name() string                 { return "Stub" }
func (p *stubPolicy) MaxLength() int               { return -1 }
