package capability

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var levelTags = map[Level]string{
	LevelDebug: color.New(color.FgHiBlack).Sprint("DEBUG"),
	LevelInfo:  color.New(color.FgGreen).Sprint("INFO "),
	LevelWarn:  color.New(color.FgYellow).Sprint("WARN "),
	LevelError: color.New(color.FgRed).Sprint("ERROR"),
}

// Logger is a minimal leveled logger capability. Lines below the configured
// minimum level are dropped.
type Logger struct {
	mu  sync.Mutex
	min Level
	out io.Writer
}

// NewLogger writes lines at or above min to out.
func NewLogger(min Level, out io.Writer) *Logger {
	return &Logger{min: min, out: out}
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s\n", levelTags[level], fmt.Sprintf(format, args...))
}
