// Package logger is a small levelled logger writing to stderr so command
// output on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel falls back to INFO for anything it does not recognise.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	}
	return INFO
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	level      Level
	prefix     string
	colorize   bool
	showTime   bool
	timeFormat string
}

type Config struct {
	Level      Level
	Prefix     string
	Colorize   bool
	ShowTime   bool
	TimeFormat string
	Output     io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:      INFO,
		Colorize:   true,
		ShowTime:   true,
		TimeFormat: "2006-01-02 15:04:05",
		Output:     os.Stderr,
	}
}

func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "2006-01-02 15:04:05"
	}
	return &Logger{
		out:        cfg.Output,
		level:      cfg.Level,
		prefix:     cfg.Prefix,
		colorize:   cfg.Colorize,
		showTime:   cfg.ShowTime,
		timeFormat: cfg.TimeFormat,
	}
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the process-wide logger, configured from LOG_LEVEL and
// NO_COLOR on first use.
func GetLogger() *Logger {
	once.Do(func() {
		cfg := DefaultConfig()
		cfg.Level = ParseLevel(os.Getenv("LOG_LEVEL"))
		if os.Getenv("NO_COLOR") != "" {
			cfg.Colorize = false
		}
		defaultLogger = New(cfg)
	})
	return defaultLogger
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// With returns a logger sharing the configuration with prefix appended.
func (l *Logger) With(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := prefix
	if l.prefix != "" {
		p = l.prefix + " " + prefix
	}
	return &Logger{
		out:        l.out,
		level:      l.level,
		prefix:     p,
		colorize:   l.colorize,
		showTime:   l.showTime,
		timeFormat: l.timeFormat,
	}
}

func (l *Logger) format(level Level, msg string, args ...any) string {
	var parts []string
	if l.showTime {
		parts = append(parts, time.Now().Format(l.timeFormat))
	}

	tag := "[" + level.String() + "]"
	if l.colorize {
		switch level {
		case DEBUG:
			tag = colorGray + tag + colorReset
		case INFO:
			tag = colorBlue + tag + colorReset
		case WARN:
			tag = colorYellow + tag + colorReset
		case ERROR:
			tag = colorRed + tag + colorReset
		}
	}
	parts = append(parts, tag)

	if l.prefix != "" {
		parts = append(parts, l.prefix)
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return strings.Join(append(parts, msg), " ")
}

func (l *Logger) log(level Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintln(l.out, l.format(level, msg, args...))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(DEBUG, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(INFO, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(WARN, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(ERROR, format, args...)
}

// Package-level helpers on the default logger.

func Debugf(format string, args ...any) {
	GetLogger().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	GetLogger().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	GetLogger().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	GetLogger().Errorf(format, args...)
}
