package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level defines the logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ActionType represents the type of backend action being logged.
type ActionType string

const (
	ActionCreate           ActionType = "CREATE"
	ActionRegister         ActionType = "REGISTER"
	ActionStyle            ActionType = "STYLE"
	ActionRedraw           ActionType = "REDRAW"
	ActionIgnoredAttribute ActionType = "IGNORED-ATTRIBUTE"
	ActionUnsupported      ActionType = "UNSUPPORTED"
	ActionUnimplemented    ActionType = "UNIMPLEMENTED"
)

// actionLevel returns the log level for an action type.
func actionLevel(action ActionType) Level {
	switch action {
	case ActionStyle, ActionRedraw, ActionIgnoredAttribute:
		return LevelDebug
	case ActionCreate, ActionRegister:
		return LevelInfo
	case ActionUnsupported, ActionUnimplemented:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// Config holds configuration for the logger.
type Config struct {
	Enabled bool
	Level   Level
}

// Logger writes one line per backend action. A nil *Logger discards
// everything.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	config Config
	now    func() time.Time
}

// New creates a logger writing to out. A nil out means stdout, which the
// wasm runtime forwards to the browser console.
func New(cfg Config, out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, config: cfg, now: time.Now}
}

// Enabled reports whether an action would be written.
func (l *Logger) Enabled(action ActionType) bool {
	if l == nil || !l.config.Enabled {
		return false
	}
	return actionLevel(action) >= l.config.Level
}

// Log records a backend action for the given window.
func (l *Logger) Log(action ActionType, window uint32, details map[string]interface{}) {
	if !l.Enabled(action) {
		return
	}

	timestamp := l.now().Format("2006-01-02 15:04:05")
	var sb strings.Builder
	sb.WriteString(timestamp)
	sb.WriteString(" [")
	sb.WriteString(string(action))
	sb.WriteString("]")
	sb.WriteString(fmt.Sprintf(" window=%d", window))

	// Add details in sorted order for consistent output
	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch val := details[k].(type) {
			case string:
				sb.WriteString(fmt.Sprintf(" %s=%q", k, val))
			default:
				sb.WriteString(fmt.Sprintf(" %s=%v", k, val))
			}
		}
	}
	sb.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, sb.String()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// ParseLevel converts a string to Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
