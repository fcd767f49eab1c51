// Package notify carries the three classes of human-readable notices the
// chat core emits: user-facing lines, informational system events, and the
// full diagnostic trace. Verbosity only changes what is narrated, never
// what the core returns.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gookit/color"
)

type Level int

const (
	Silent Level = iota
	UserOnly
	Basic
	Debug
)

func (l Level) String() string {
	switch l {
	case Silent:
		return "SILENT"
	case UserOnly:
		return "USER_ONLY"
	case Basic:
		return "BASIC"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a Level, defaulting to Basic.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SILENT", "NONE":
		return Silent
	case "USER_ONLY", "USER":
		return UserOnly
	case "BASIC", "INFO":
		return Basic
	case "DEBUG":
		return Debug
	default:
		return Basic
	}
}

// Notifier fans notices out to a console writer (user-facing lines) and a
// structured logger (informational and diagnostic lines). It is injected
// into every component that narrates; there is no package-level instance.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	log     *slog.Logger
	level   Level
	colours bool
}

func New(out io.Writer, log *slog.Logger, level Level, colours bool) *Notifier {
	return &Notifier{out: out, log: log, level: level, colours: colours}
}

func (n *Notifier) Level() Level {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.level
}

func (n *Notifier) SetLevel(level Level) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.level = level
}

// User prints an end-user-facing notice (rejection reasons, chat lines).
func (n *Notifier) User(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.level < UserOnly {
		return
	}
	if n.colours {
		msg = color.New(color.FgCyan).Render(msg)
	}
	fmt.Fprintln(n.out, msg)
}

// Chat renders a delivered message the way history records it.
func (n *Notifier) Chat(sender, body string) {
	n.User(sender + ": " + body)
}

// Info reports a system-level event (joins, leaves, deliveries).
func (n *Notifier) Info(msg string, args ...any) {
	if n.Level() < Basic {
		return
	}
	n.log.Info(msg, args...)
}

// Debug reports internal trace detail.
func (n *Notifier) Debug(msg string, args ...any) {
	if n.Level() < Debug {
		return
	}
	n.log.Debug(msg, args...)
}
